package e2e

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"github.com/rentzila/e2e/internal/apiclient"
	"github.com/rentzila/e2e/internal/browser"
	"github.com/rentzila/e2e/internal/config"
	"github.com/rentzila/e2e/internal/fixtures"
	"github.com/rentzila/e2e/internal/observability"
	"github.com/rentzila/e2e/internal/scenario"
)

var (
	suite    *config.SuiteConfig
	creds    *config.Credentials
	launcher *browser.Launcher
	api      *apiclient.Client
	photos   fixtures.PhotoSet
	logger   *slog.Logger

	// skipReason is set when the suite cannot run against the marketplace
	skipReason string
)

// TestMain sets up and tears down the Playwright browser for all tests
func TestMain(m *testing.M) {
	os.Exit(run(m))
}

func run(m *testing.M) int {
	// Load .env from the repository root if present
	if err := godotenv.Load("../.env"); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	var err error
	suite, err = config.LoadSuiteConfig(os.Getenv)
	if err != nil {
		log.Printf("Failed to load suite config: %v", err)
		return 1
	}
	logger = observability.InitSlog(suite.LogLevel, os.Stderr)

	if !config.HasCredentials(os.Getenv) {
		skipReason = "marketplace credentials are not configured"
		return m.Run()
	}
	creds, err = config.LoadCredentials(os.Getenv)
	if err != nil {
		log.Printf("Failed to load credentials: %v", err)
		return 1
	}

	photoDir, err := os.MkdirTemp("", "rentzila-photos-")
	if err != nil {
		log.Printf("Failed to create photo dir: %v", err)
		return 1
	}
	defer os.RemoveAll(photoDir)
	if photos, err = fixtures.WritePhotos(photoDir); err != nil {
		log.Printf("Failed to write photos: %v", err)
		return 1
	}

	launcher, err = browser.Launch(suite, logger)
	if err != nil {
		log.Printf("Failed to launch browser: %v", err)
		return 1
	}
	defer func() {
		if err := launcher.Close(); err != nil {
			log.Printf("Warning: failed to close browser: %v", err)
		}
	}()

	api = apiclient.New(suite.APIURL, creds.Admin, apiclient.WithLogger(logger))

	return m.Run()
}

// requireMarketplace skips t unless the suite can reach the marketplace
func requireMarketplace(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping marketplace test in short mode")
	}
	if skipReason != "" {
		t.Skip(skipReason)
	}
}

// newSession opens a fresh browser context for t
func newSession(t *testing.T) *scenario.Session {
	t.Helper()

	requireMarketplace(t)
	bs, err := launcher.NewSession(t.Name())
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := bs.Close(); err != nil {
			t.Logf("Warning: failed to close session: %v", err)
		}
	})

	return scenario.New(bs, suite, api, logger.With("test", t.Name()))
}

// loggedIn opens a session signed in as the main user
func loggedIn(t *testing.T) *scenario.Session {
	t.Helper()

	s := newSession(t)
	require.NoError(t, s.LogIn(creds.User))
	return s
}

// onGeneralInfo opens the listing wizard as the main user
func onGeneralInfo(t *testing.T) *scenario.Session {
	t.Helper()

	s := loggedIn(t)
	require.NoError(t, s.OpenCreateUnit())
	return s
}

// onPhotos opens the wizard and completes the general info tab
func onPhotos(t *testing.T) *scenario.Session {
	t.Helper()

	s := onGeneralInfo(t)
	require.NoError(t, s.CompleteGeneralInfo())
	return s
}

// onServices completes the wizard up to the services tab
func onServices(t *testing.T) *scenario.Session {
	t.Helper()

	s := onPhotos(t)
	require.NoError(t, s.CompletePhotos(photos.Valid[:1]))
	return s
}

// onPrice completes the wizard up to the price tab and returns the
// selected service
func onPrice(t *testing.T) (*scenario.Session, string) {
	t.Helper()

	s := onServices(t)
	service, err := s.CompleteServices()
	require.NoError(t, err)
	return s, service
}

// subject names an indexed element in failure messages
func subject(what string, i int) string {
	return fmt.Sprintf("%s %d", what, i)
}
