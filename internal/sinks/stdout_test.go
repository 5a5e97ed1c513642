package sinks

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/vladamatena/twisted/internal/event"
)

func TestStdout_WritesStructuredEvent(t *testing.T) {
	var buf bytes.Buffer
	s := NewStdout(&buf, false, false)

	e := event.Event{
		event.KeyFormat: "Hello, {who}!",
		"who":           "world",
	}
	if err := s.Observe(e); err != nil {
		t.Fatalf("Observe() error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got["who"] != "world" || got[event.KeyFormat] != "Hello, {who}!" {
		t.Errorf("unexpected payload: %v", got)
	}
}

func TestStdout_LegacyProjection(t *testing.T) {
	var buf bytes.Buffer
	s := NewStdout(&buf, false, true)

	e := event.Event{
		event.KeySystem:  "auth",
		event.KeyFailure: errors.New("nyargh!"),
		event.KeyFormat:  "oopsie...",
	}
	if err := s.Observe(e); err != nil {
		t.Fatalf("Observe() error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got["system"] != "auth" {
		t.Errorf("system = %v; want auth", got["system"])
	}
	if got["isError"] != true {
		t.Errorf("isError = %v; want true", got["isError"])
	}
	if got["failure"] != "nyargh!" {
		t.Errorf("failure = %v; want the error text", got["failure"])
	}
	if got["why"] != "oopsie..." {
		t.Errorf("why = %v", got["why"])
	}
}

func TestStdout_DoesNotMutateEvent(t *testing.T) {
	var buf bytes.Buffer
	s := NewStdout(&buf, false, true)

	e := event.Event{event.KeyFailure: errors.New("boom")}
	if err := s.Observe(e); err != nil {
		t.Fatalf("Observe() error: %v", err)
	}

	if len(e) != 1 {
		t.Errorf("sink added keys to the caller's event: %v", e)
	}
	if _, ok := e.Failure(); !ok {
		t.Error("original error value was replaced")
	}
}
