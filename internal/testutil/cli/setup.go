package cli

import (
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/jobtrack/internal/app"
	"github.com/thenoetrevino/jobtrack/internal/browser"
	"github.com/thenoetrevino/jobtrack/internal/testutil"
)

// FixedNow is the clock CLI tests run with, so "today" is 2024-03-15
var FixedNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

// RecordingOpener records URLs instead of launching a browser
type RecordingOpener struct {
	URLs []string
	Err  error
}

func (r *RecordingOpener) Open(rawURL string) error {
	if r.Err != nil {
		return r.Err
	}
	if _, err := browser.Normalize(rawURL); err != nil {
		return err
	}
	r.URLs = append(r.URLs, rawURL)
	return nil
}

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// The App never opens a real browser and its config lookups see an empty
// XDG_CONFIG_HOME, so the developer's own config cannot leak into tests.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("JOBTRACK_THEME_FILE", "")

	db := testutil.SetupTestDB(t)
	appInstance := app.New(db,
		app.WithOpener(&RecordingOpener{}),
		app.WithClock(func() time.Time { return FixedNow }),
	)

	return db, appInstance
}

// Opener returns the RecordingOpener installed by SetupCLITest
func Opener(t *testing.T, a *app.App) *RecordingOpener {
	t.Helper()
	opener, ok := a.Opener.(*RecordingOpener)
	if !ok {
		t.Fatalf("app opener is %T, want *RecordingOpener", a.Opener)
	}
	return opener
}

// CreateTestApplication wraps testutil.CreateTestApplication for CLI tests
func CreateTestApplication(t *testing.T, db *sql.DB, jobName, company, dateApplied string) int {
	t.Helper()
	return testutil.CreateTestApplication(t, db, jobName, company, dateApplied)
}
