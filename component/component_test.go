package component

import (
	"context"
	"errors"
	"testing"
)

type fakeComponent struct {
	name     string
	startErr error
	stopErr  error
	started  bool
	stopped  bool
	order    *[]string
}

func (f *fakeComponent) Name() string { return f.name }

func (f *fakeComponent) Start(_ context.Context) error {
	if f.startErr != nil {
		return f.startErr
	}
	f.started = true
	if f.order != nil {
		*f.order = append(*f.order, "start:"+f.name)
	}
	return nil
}

func (f *fakeComponent) Stop(_ context.Context) error {
	if f.stopErr != nil {
		return f.stopErr
	}
	f.stopped = true
	if f.order != nil {
		*f.order = append(*f.order, "stop:"+f.name)
	}
	return nil
}

func (f *fakeComponent) Health(_ context.Context) Health {
	status := StatusHealthy
	if !f.started {
		status = StatusUnhealthy
	}
	return Health{Name: f.name, Status: status}
}

func TestRegistry_DuplicateName(t *testing.T) {
	r := NewRegistry(nil)
	if err := r.Register(&fakeComponent{name: "a"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(&fakeComponent{name: "a"}); err == nil {
		t.Error("expected duplicate registration error")
	}
}

func TestRegistry_StartStopOrder(t *testing.T) {
	var order []string
	r := NewRegistry(nil)
	a := &fakeComponent{name: "a", order: &order}
	b := &fakeComponent{name: "b", order: &order}
	_ = r.Register(a)
	_ = r.Register(b)

	if err := r.StartAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.StopAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"start:a", "start:b", "stop:b", "stop:a"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("expected %v, got %v", want, order)
			break
		}
	}
}

func TestRegistry_StartFailureStopsEarly(t *testing.T) {
	r := NewRegistry(nil)
	a := &fakeComponent{name: "a"}
	b := &fakeComponent{name: "b", startErr: errors.New("boom")}
	c := &fakeComponent{name: "c"}
	_ = r.Register(a)
	_ = r.Register(b)
	_ = r.Register(c)

	if err := r.StartAll(context.Background()); err == nil {
		t.Fatal("expected start error")
	}
	if c.started {
		t.Error("component after the failing one must not start")
	}

	// StopAll only touches started components.
	if err := r.StopAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.stopped {
		t.Error("started component must be stopped")
	}
	if c.stopped {
		t.Error("never-started component must not be stopped")
	}
}

func TestRegistry_HealthAndLookup(t *testing.T) {
	r := NewRegistry(nil)
	a := &fakeComponent{name: "a"}
	_ = r.Register(a)
	_ = r.StartAll(context.Background())

	health := r.HealthAll(context.Background())
	if len(health) != 1 || health[0].Status != StatusHealthy {
		t.Errorf("unexpected health: %+v", health)
	}
	if r.Get("a") != a {
		t.Error("Get should return the registered component")
	}
	if r.Get("missing") != nil {
		t.Error("Get should return nil for unknown names")
	}
	if len(r.All()) != 1 {
		t.Error("All should list registered components")
	}
}
