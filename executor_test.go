package httpexec

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kbukum/httpexec/component"
)

func TestNew_ProtocolSelection(t *testing.T) {
	exec, err := New(Config{Host: "example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := exec.(*Client); !ok {
		t.Errorf("expected *Client for default protocol, got %T", exec)
	}

	exec, err = New(Config{Host: "example.com", Protocol: ProtocolH2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := exec.(*Session); !ok {
		t.Errorf("expected *Session for h2, got %T", exec)
	}

	if _, err := New(Config{Host: "example.com", Protocol: "spdy"}); err == nil {
		t.Error("expected error for unknown protocol")
	}
}

func TestComponent_Lifecycle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(204)
	}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL)
	cfg.Name = "upstream"
	comp := NewComponent(cfg)

	if comp.Name() != "upstream" {
		t.Errorf("expected configured name, got %s", comp.Name())
	}
	if got := comp.Health(context.Background()).Status; got != component.StatusUnhealthy {
		t.Errorf("expected unhealthy before start, got %s", got)
	}

	if err := comp.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := comp.Health(context.Background()).Status; got != component.StatusHealthy {
		t.Errorf("expected healthy after start, got %s", got)
	}

	res, err := comp.Executor().Execute(context.Background(), Request{Method: http.MethodGet, Path: "/ping"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StatusCode != 204 {
		t.Errorf("expected 204, got %d", res.StatusCode)
	}

	if err := comp.Stop(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestComponent_Describe(t *testing.T) {
	comp := NewComponent(Config{Host: "api.example.com", Scheme: "https", Protocol: ProtocolH2})
	desc := comp.Describe()
	if desc.Type != "http-executor" {
		t.Errorf("unexpected type %s", desc.Type)
	}
	if desc.Details != "https://api.example.com (h2)" {
		t.Errorf("unexpected details %s", desc.Details)
	}
}

func TestComponent_InRegistry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(204)
	}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL)
	cfg.Name = "upstream"

	reg := component.NewRegistry(nil)
	if err := reg.Register(NewComponent(cfg)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := reg.StartAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = reg.StopAll(context.Background()) }()

	health := reg.HealthAll(context.Background())
	if len(health) != 1 || health[0].Status != component.StatusHealthy {
		t.Errorf("unexpected health: %+v", health)
	}
}
