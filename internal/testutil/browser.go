package testutil

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/rentzila/e2e/internal/browser"
	"github.com/rentzila/e2e/internal/config"
)

// TestBrowser is a Chromium instance pointed at a local fixture server
type TestBrowser struct {
	Launcher *browser.Launcher
	Config   *config.SuiteConfig
}

// SetupTestBrowser launches a headless browser whose base URL is baseURL.
// The test is skipped under -short or when no playwright driver is installed.
func SetupTestBrowser(t *testing.T, baseURL string) *TestBrowser {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	cfg := &config.SuiteConfig{
		BaseURL:           baseURL,
		APIURL:            baseURL,
		Headless:          getEnvOrDefault("HEADLESS", "true") != "false",
		ActionTimeout:     5 * time.Second,
		NavigationTimeout: 10 * time.Second,
		ArtifactsDir:      t.TempDir(),
		LogLevel:          slog.LevelInfo,
	}

	launcher, err := browser.Launch(cfg, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Skipf("playwright is not available: %v", err)
	}

	tb := &TestBrowser{Launcher: launcher, Config: cfg}
	t.Cleanup(func() { tb.Teardown(t) })
	return tb
}

// NewSession opens a context that is closed when the test ends
func (tb *TestBrowser) NewSession(t *testing.T) *browser.Session {
	t.Helper()

	session, err := tb.Launcher.NewSession(t.Name())
	if err != nil {
		t.Fatalf("Failed to open browser session: %v", err)
	}
	t.Cleanup(func() {
		if err := session.Close(); err != nil {
			t.Logf("Warning: Failed to close session: %v", err)
		}
	})
	return session
}

// Teardown closes the browser and the driver
func (tb *TestBrowser) Teardown(t *testing.T) {
	t.Helper()

	if err := tb.Launcher.Close(); err != nil {
		t.Logf("Warning: Failed to close browser: %v", err)
	}
}

// ServeFixtures serves the html files in dir. register may add more routes,
// such as the fake backend, on the same origin.
func ServeFixtures(t *testing.T, dir string, register func(mux *http.ServeMux)) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(dir)))
	if register != nil {
		register(mux)
	}

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
