package event

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level is the canonical log severity: debug < info < warn < error < critical.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
)

var levelNames = map[Level]string{
	LevelDebug:    "debug",
	LevelInfo:     "info",
	LevelWarn:     "warn",
	LevelError:    "error",
	LevelCritical: "critical",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// ParseLevel converts a severity name to a Level. Unknown names are an error.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug", "trace":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "critical", "crit", "fatal":
		return LevelCritical, nil
	}
	return 0, fmt.Errorf("event: unknown level %q", s)
}

// legacyLevels maps canonical severities to the integer constants of the
// legacy call convention, which on this platform are log/slog level values.
// slog has no critical constant; the conventional spelling is Error+4.
var legacyLevels = map[Level]slog.Level{
	LevelDebug:    slog.LevelDebug,
	LevelInfo:     slog.LevelInfo,
	LevelWarn:     slog.LevelWarn,
	LevelError:    slog.LevelError,
	LevelCritical: slog.LevelError + 4,
}

// Legacy returns the legacy integer equivalent of the severity. The forward
// mapping is total: every Level has a legacy value.
func (l Level) Legacy() slog.Level {
	if v, ok := legacyLevels[l]; ok {
		return v
	}
	return slog.LevelInfo
}

// LevelFromLegacy maps an arbitrary legacy integer to the nearest canonical
// severity. The reverse direction is lossy: values between two severities
// round toward the higher one.
func LevelFromLegacy(v slog.Level) Level {
	nearest := LevelDebug
	best := distance(v, nearest.Legacy())
	for l := LevelInfo; l <= LevelCritical; l++ {
		if d := distance(v, l.Legacy()); d <= best {
			nearest, best = l, d
		}
	}
	return nearest
}

func distance(a, b slog.Level) slog.Level {
	if a > b {
		return a - b
	}
	return b - a
}
