package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"liftsim/src/config"
	"liftsim/src/executor"
	"liftsim/src/types"
	"liftsim/src/utils"

	"github.com/eiannone/keyboard"
)

const usage = `keys: 1-9 hall call | c<floor> car call | p<origin><dest> passenger | o open | x close | s snapshot | q quit`

func main() {
	configPath := flag.String("config", "", "YAML config file")
	envPath := flag.String("env", "", "dotenv file with LIFTSIM_* overrides")
	speed := flag.Float64("speed", 1, "logical seconds per real second")
	step := flag.Duration("step", config.SimStep, "real time between ticks")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := config.ApplyEnv(&cfg, *envPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid config:", err)
		os.Exit(1)
	}
	level, _ := cfg.SlogLevel()
	logCloser, err := utils.InitLogger(level, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logCloser.Close()

	mgr := executor.StartMgr(executor.NewSim(cfg))
	defer mgr.Close()

	keyEvents, err := keyboard.GetKeys(10)
	if err != nil {
		slog.Error("Keyboard unavailable", "err", err)
		return
	}
	defer keyboard.Close()

	fmt.Println(usage)
	ticker := time.NewTicker(*step)
	defer ticker.Stop()
	tickLen := time.Duration(float64(*step) * *speed)

	var pending []rune
	for {
		select {
		case ev := <-keyEvents:
			if ev.Err != nil {
				slog.Error("Keyboard error", "err", ev.Err)
				return
			}
			if ev.Key == keyboard.KeyEsc || ev.Key == keyboard.KeyCtrlC || ev.Rune == 'q' {
				return
			}
			pending = handleKey(mgr, append(pending, ev.Rune))
		case <-ticker.C:
			mgr.Tick(tickLen)
		}
	}
}

// handleKey interprets the buffered key sequence and returns what is still incomplete.
func handleKey(mgr *executor.Mgr, keys []rune) []rune {
	switch keys[0] {
	case 'o':
		mgr.OpenDoor()
	case 'x':
		mgr.CloseDoor()
	case 's':
		fmt.Println(utils.FormatSnapshot(mgr.Snapshot()))
	case 'c':
		if len(keys) < 2 {
			return keys
		}
		if floor, ok := digit(keys[1]); ok {
			mgr.RequestFloor(floor, types.BT_Cab)
		}
	case 'p':
		if len(keys) < 3 {
			return keys
		}
		origin, ok1 := digit(keys[1])
		destination, ok2 := digit(keys[2])
		if !ok1 || !ok2 {
			break
		}
		id, err := mgr.AddPassenger(origin, destination)
		if errors.Is(err, types.ErrInvalidRequest) {
			fmt.Printf("rejected %d->%d, pick two different floors\n", origin, destination)
			break
		}
		fmt.Printf("passenger #%d %d->%d\n", id, origin, destination)
	default:
		if floor, ok := digit(keys[0]); ok {
			mgr.RequestFloor(floor, types.BT_Hall)
		}
	}
	return nil
}

func digit(r rune) (int, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}
