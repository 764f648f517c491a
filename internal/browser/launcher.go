// Package browser owns the playwright process, the shared Chromium instance
// and the per-scenario browser contexts.
package browser

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"

	"github.com/rentzila/e2e/internal/config"
)

// Clipboard permissions every context is granted so pasting can be exercised
var clipboardPermissions = []string{"clipboard-read", "clipboard-write"}

// Launcher holds one playwright driver and one browser shared by all sessions
type Launcher struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	cfg     *config.SuiteConfig
	logger  *slog.Logger
}

// Launch starts the playwright driver and a Chromium instance
func Launch(cfg *config.SuiteConfig, logger *slog.Logger) (*Launcher, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	logger.Info("browser launched", "headless", cfg.Headless, "version", browser.Version())
	return &Launcher{pw: pw, browser: browser, cfg: cfg, logger: logger}, nil
}

// Session is one isolated browser context with a single page
type Session struct {
	Context     playwright.BrowserContext
	Page        playwright.Page
	ArtifactDir string

	trace  bool
	logger *slog.Logger
}

// NewSession opens a fresh context named after the scenario. Artifacts for
// the session go to a unique directory under the configured artifacts dir.
func (l *Launcher) NewSession(name string) (*Session, error) {
	dir := filepath.Join(l.cfg.ArtifactsDir, ArtifactName(name))

	opts := playwright.BrowserNewContextOptions{
		BaseURL:     playwright.String(l.cfg.BaseURL),
		Permissions: clipboardPermissions,
	}
	if l.cfg.RecordVideo {
		opts.RecordVideo = &playwright.RecordVideo{Dir: dir}
	}

	ctx, err := l.browser.NewContext(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}
	ctx.SetDefaultTimeout(float64(l.cfg.ActionTimeout.Milliseconds()))
	ctx.SetDefaultNavigationTimeout(float64(l.cfg.NavigationTimeout.Milliseconds()))

	if l.cfg.Trace {
		if err := ctx.Tracing().Start(playwright.TracingStartOptions{
			Name:        playwright.String(name),
			Screenshots: playwright.Bool(true),
			Snapshots:   playwright.Bool(true),
		}); err != nil {
			ctx.Close()
			return nil, fmt.Errorf("failed to start tracing: %w", err)
		}
	}

	page, err := ctx.NewPage()
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	logger := l.logger.With("session", name)
	logger.Debug("session opened", "artifacts", dir)

	return &Session{
		Context:     ctx,
		Page:        page,
		ArtifactDir: dir,
		trace:       l.cfg.Trace,
		logger:      logger,
	}, nil
}

// Close stops tracing and closes the context, which flushes the video
func (s *Session) Close() error {
	var errs []error
	if s.trace {
		if err := os.MkdirAll(s.ArtifactDir, 0o755); err != nil {
			errs = append(errs, fmt.Errorf("failed to create artifacts dir: %w", err))
		} else if err := s.Context.Tracing().Stop(filepath.Join(s.ArtifactDir, "trace.zip")); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop tracing: %w", err))
		}
	}
	if err := s.Context.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close context: %w", err))
	}
	s.logger.Debug("session closed")
	return errors.Join(errs...)
}

// Close shuts down the browser and the playwright driver
func (l *Launcher) Close() error {
	var errs []error
	if err := l.browser.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close browser: %w", err))
	}
	if err := l.pw.Stop(); err != nil {
		errs = append(errs, fmt.Errorf("failed to stop playwright: %w", err))
	}
	return errors.Join(errs...)
}

// Install downloads the Chromium build the driver expects
func Install() error {
	return playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}})
}

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ArtifactName turns a test name into a unique directory name
func ArtifactName(name string) string {
	slug := strings.Trim(unsafeNameChars.ReplaceAllString(name, "-"), "-")
	if slug == "" {
		slug = "session"
	}
	return slug + "-" + uuid.New().String()[:8]
}
