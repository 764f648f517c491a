package pages_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rentzila/e2e/internal/check"
	"github.com/rentzila/e2e/internal/fixtures"
	"github.com/rentzila/e2e/internal/pages"
	"github.com/rentzila/e2e/internal/random"
	"github.com/rentzila/e2e/internal/testutil"
)

// firstSource always chooses the first option
type firstSource struct{}

func (firstSource) IntN(int) int { return 0 }

// lastSource always chooses the last option
type lastSource struct{}

func (lastSource) IntN(n int) int { return n - 1 }

// openFixture serves testdata, opens file in a fresh browser session and
// returns an Env for it
func openFixture(t *testing.T, file string, src random.Source, register func(mux *http.ServeMux)) pages.Env {
	t.Helper()

	srv := testutil.ServeFixtures(t, "testdata", register)
	tb := testutil.SetupTestBrowser(t, srv.URL)
	session := tb.NewSession(t)

	_, err := session.Page.Goto("/" + file)
	require.NoError(t, err)

	env := pages.NewEnv(session.Page, check.New(5*time.Second), src, slog.New(slog.DiscardHandler))
	env.DialogTimeout = 5 * time.Second
	return env
}

// serveCategories exposes the category fixture the way the popup loads it
func serveCategories(mux *http.ServeMux) {
	mux.HandleFunc("/categories.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(fixtures.Categories)
	})
}
