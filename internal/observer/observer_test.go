package observer_test

import (
	"errors"
	"testing"

	"github.com/vladamatena/twisted/internal/event"
	"github.com/vladamatena/twisted/internal/observer"
)

func TestMulti_DeliversToAll(t *testing.T) {
	var first, second []event.Event
	m := observer.NewMulti(
		observer.Func(func(e event.Event) error { first = append(first, e); return nil }),
		observer.Func(func(e event.Event) error { second = append(second, e); return nil }),
	)

	if err := m.Observe(event.Event{"foo": 1}); err != nil {
		t.Fatalf("Observe() returned error: %v", err)
	}
	if len(first) != 1 || len(second) != 1 {
		t.Errorf("delivery counts = %d, %d; want 1, 1", len(first), len(second))
	}
}

func TestMulti_FailureDoesNotStopDelivery(t *testing.T) {
	boom := errors.New("boom")
	var delivered int
	m := observer.NewMulti(
		observer.Func(func(event.Event) error { return boom }),
		observer.Func(func(event.Event) error { delivered++; return nil }),
	)

	err := m.Observe(event.Event{})
	if !errors.Is(err, boom) {
		t.Errorf("Observe() error = %v; want to contain boom", err)
	}
	if delivered != 1 {
		t.Errorf("second observer delivered %d times; want 1", delivered)
	}
}

func TestMulti_FiltersNil(t *testing.T) {
	var delivered int
	m := observer.NewMulti(nil, observer.Func(func(event.Event) error { delivered++; return nil }))

	if err := m.Observe(event.Event{}); err != nil {
		t.Fatalf("Observe() returned error: %v", err)
	}
	if delivered != 1 {
		t.Errorf("delivered = %d; want 1", delivered)
	}
}

func TestMulti_Empty(t *testing.T) {
	if err := observer.NewMulti().Observe(event.Event{}); err != nil {
		t.Errorf("empty Multi should accept events, got %v", err)
	}
}
