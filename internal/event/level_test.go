package event_test

import (
	"log/slog"
	"testing"

	"github.com/vladamatena/twisted/internal/event"
)

func TestLevel_Legacy(t *testing.T) {
	tests := []struct {
		level  event.Level
		legacy slog.Level
	}{
		{event.LevelDebug, slog.LevelDebug},
		{event.LevelInfo, slog.LevelInfo},
		{event.LevelWarn, slog.LevelWarn},
		{event.LevelError, slog.LevelError},
		{event.LevelCritical, slog.LevelError + 4},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := tt.level.Legacy(); got != tt.legacy {
				t.Errorf("%v.Legacy() = %v; want %v", tt.level, got, tt.legacy)
			}
		})
	}
}

func TestLevelFromLegacy_ExactHits(t *testing.T) {
	for l := event.LevelDebug; l <= event.LevelCritical; l++ {
		if got := event.LevelFromLegacy(l.Legacy()); got != l {
			t.Errorf("LevelFromLegacy(%v) = %v; want %v", l.Legacy(), got, l)
		}
	}
}

func TestLevelFromLegacy_NearestMatch(t *testing.T) {
	tests := []struct {
		name   string
		legacy slog.Level
		want   event.Level
	}{
		{"far below debug", -100, event.LevelDebug},
		{"between debug and info rounds up", -2, event.LevelInfo},
		{"between info and warn rounds up", 2, event.LevelWarn},
		{"just above error", 9, event.LevelError},
		{"far above critical", 100, event.LevelCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := event.LevelFromLegacy(tt.legacy); got != tt.want {
				t.Errorf("LevelFromLegacy(%v) = %v; want %v", tt.legacy, got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want event.Level
	}{
		{"debug", event.LevelDebug},
		{"INFO", event.LevelInfo},
		{"warning", event.LevelWarn},
		{"err", event.LevelError},
		{"fatal", event.LevelCritical},
	}

	for _, tt := range tests {
		got, err := event.ParseLevel(tt.in)
		if err != nil {
			t.Errorf("ParseLevel(%q) returned error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}

	if _, err := event.ParseLevel("verbose"); err == nil {
		t.Error("ParseLevel(\"verbose\") should fail")
	}
}

func TestLevelOrdering(t *testing.T) {
	order := []event.Level{
		event.LevelDebug,
		event.LevelInfo,
		event.LevelWarn,
		event.LevelError,
		event.LevelCritical,
	}
	for i := 1; i < len(order); i++ {
		if !(order[i-1] < order[i]) {
			t.Errorf("expected %v < %v", order[i-1], order[i])
		}
		if !(order[i-1].Legacy() < order[i].Legacy()) {
			t.Errorf("legacy mapping must preserve ordering: %v vs %v", order[i-1], order[i])
		}
	}
}
