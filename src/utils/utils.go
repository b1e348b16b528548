package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"liftsim/src/types"
)

// InitLogger sets up global logging with a compact time format and file:line sources.
// If logFile is set, output is also written there. The returned closer releases the file.
func InitLogger(level slog.Level, logFile string) (io.Closer, error) {
	var out io.Writer = os.Stdout
	var closer io.Closer = io.NopCloser(nil)
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = io.MultiWriter(os.Stdout, file)
		closer = file
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format("15:04:05"))
				}
			}
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					file := source.File
					if lastSlash := strings.LastIndexByte(file, '/'); lastSlash >= 0 {
						file = file[lastSlash+1:]
					}
					a.Value = slog.StringValue(fmt.Sprintf("%s:%d", file, source.Line))
				}
			}
			return a
		},
	})
	slog.SetDefault(slog.New(handler))
	return closer, nil
}

// FormatSnapshot renders a snapshot on one line for the console.
func FormatSnapshot(snap types.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "t=%v floor=%d dir=%v door=%v queue=%v person=%d",
		snap.Time, snap.Floor, snap.Dir, snap.Door, snap.Queue, snap.Onboard)
	for _, p := range snap.ActivePassengers() {
		fmt.Fprintf(&b, " [#%d %d->%d %v]", p.ID, p.Origin, p.Destination, p.Status)
	}
	return b.String()
}
