package config

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	NumFloors           = 5
	InitialFloor        = 1
	DoorOpenDuration    = 1 * time.Second
	DoorDwellDuration   = 3 * time.Second
	DoorCloseDuration   = 1 * time.Second
	FloorTravelDuration = 2 * time.Second
	SimStep             = 100 * time.Millisecond
	LogLevel            = "info"
)

// Environment keys read by ApplyEnv.
const (
	EnvDoorOpen     = "LIFTSIM_DOOR_OPEN"
	EnvDoorDwell    = "LIFTSIM_DOOR_DWELL"
	EnvDoorClose    = "LIFTSIM_DOOR_CLOSE"
	EnvFloorTravel  = "LIFTSIM_FLOOR_TRAVEL"
	EnvFloors       = "LIFTSIM_FLOORS"
	EnvInitialFloor = "LIFTSIM_INITIAL_FLOOR"
	EnvLogLevel     = "LIFTSIM_LOG_LEVEL"
	EnvLogFile      = "LIFTSIM_LOG_FILE"
)

// Config holds the static settings of one simulation.
type Config struct {
	Floors              []int         `yaml:"floors"`
	InitialFloor        int           `yaml:"initial_floor"`
	DoorOpenDuration    time.Duration `yaml:"door_open_duration"`
	DoorDwellDuration   time.Duration `yaml:"door_dwell_duration"`
	DoorCloseDuration   time.Duration `yaml:"door_close_duration"`
	FloorTravelDuration time.Duration `yaml:"floor_travel_duration"`
	LogLevel            string        `yaml:"log_level"`
	LogFile             string        `yaml:"log_file"`
}

func Default() Config {
	floors := make([]int, NumFloors)
	for i := range floors {
		floors[i] = i + 1
	}
	return Config{
		Floors:              floors,
		InitialFloor:        InitialFloor,
		DoorOpenDuration:    DoorOpenDuration,
		DoorDwellDuration:   DoorDwellDuration,
		DoorCloseDuration:   DoorCloseDuration,
		FloorTravelDuration: FloorTravelDuration,
		LogLevel:            LogLevel,
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from a dotenv file and then from the process environment.
// An empty path only consults the process environment.
func ApplyEnv(cfg *Config, path string) error {
	values := map[string]string{}
	if path != "" {
		read, err := godotenv.Read(path)
		if err != nil {
			return fmt.Errorf("read env file: %w", err)
		}
		values = read
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{EnvDoorOpen, &cfg.DoorOpenDuration},
		{EnvDoorDwell, &cfg.DoorDwellDuration},
		{EnvDoorClose, &cfg.DoorCloseDuration},
		{EnvFloorTravel, &cfg.FloorTravelDuration},
	}
	for _, d := range durations {
		v, ok := lookup(d.key)
		if !ok {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = parsed
	}

	if v, ok := lookup(EnvFloors); ok {
		floors, err := parseFloors(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFloors, err)
		}
		cfg.Floors = floors
	}
	if v, ok := lookup(EnvInitialFloor); ok {
		floor, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvInitialFloor, err)
		}
		cfg.InitialFloor = floor
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}
	return nil
}

func parseFloors(s string) ([]int, error) {
	var floors []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		f, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		floors = append(floors, f)
	}
	return floors, nil
}

// Validate checks that durations are positive, floors strictly ascending and the initial floor known.
func (c Config) Validate() error {
	if len(c.Floors) == 0 {
		return fmt.Errorf("no floors configured")
	}
	for i := 1; i < len(c.Floors); i++ {
		if c.Floors[i] <= c.Floors[i-1] {
			return fmt.Errorf("floors must be strictly ascending: %v", c.Floors)
		}
	}
	if !c.ValidFloor(c.InitialFloor) {
		return fmt.Errorf("initial floor %d not in %v", c.InitialFloor, c.Floors)
	}
	for name, d := range map[string]time.Duration{
		"door_open_duration":    c.DoorOpenDuration,
		"door_dwell_duration":   c.DoorDwellDuration,
		"door_close_duration":   c.DoorCloseDuration,
		"floor_travel_duration": c.FloorTravelDuration,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %v", name, d)
		}
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

func (c Config) ValidFloor(floor int) bool {
	_, found := slices.BinarySearch(c.Floors, floor)
	return found
}

// SlogLevel maps LogLevel onto a slog level. Empty means info.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}
