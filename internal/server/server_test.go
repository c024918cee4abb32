package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/versbook/folio/internal/config"
	"github.com/versbook/folio/internal/home"
)

func newTestManager(t *testing.T) *config.Manager {
	t.Helper()
	cm, err := config.NewManager("")
	if err != nil {
		t.Fatalf("failed to create config manager: %v", err)
	}
	return cm
}

func TestNew_RequiresConfigManager(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error without a config manager")
	}
}

func TestNew_Defaults(t *testing.T) {
	h, _ := home.New(t.TempDir())
	s, err := New(Config{ConfigManager: newTestManager(t), Home: h})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if s.Addr() != "127.0.0.1:8080" {
		t.Errorf("addr = %q, want 127.0.0.1:8080", s.Addr())
	}
	if s.IsRunning() {
		t.Error("server should not be running before Start")
	}
	if s.Home() != h {
		t.Error("home not carried through")
	}
}

func TestNew_CustomHostPort(t *testing.T) {
	h, _ := home.New(t.TempDir())
	s, err := New(Config{
		Host:          "0.0.0.0",
		Port:          "3000",
		ConfigManager: newTestManager(t),
		Home:          h,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.Addr() != "0.0.0.0:3000" {
		t.Errorf("addr = %q", s.Addr())
	}
}

func TestRequireInit_BeforeStart(t *testing.T) {
	h, _ := home.New(t.TempDir())
	s, err := New(Config{ConfigManager: newTestManager(t), Home: h})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	called := false
	handler := s.requireInit(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodPost, "/api/toc", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if called {
		t.Error("handler must not run before initialization")
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}
