package tui

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/jobtrack/internal/app"
	"github.com/thenoetrevino/jobtrack/internal/config"
	"github.com/thenoetrevino/jobtrack/internal/models"
	"github.com/thenoetrevino/jobtrack/internal/testutil"
	clitest "github.com/thenoetrevino/jobtrack/internal/testutil/cli"
	"github.com/thenoetrevino/jobtrack/internal/tui/state"
)

// setupTestModel creates a model over a fresh database with three
// applications, newest first under the default date sort.
func setupTestModel(t *testing.T) (Model, *sql.DB, *app.App) {
	t.Helper()
	db, a := clitest.SetupCLITest(t)

	testutil.CreateTestApplicationWith(t, db, "Backend Engineer", "Acme", "2024-01-10", models.StatusApplied, models.PriorityLow)
	testutil.CreateTestApplicationWith(t, db, "SRE", "Globex", "2024-02-20", models.StatusInterviewed, models.PriorityHigh)
	testutil.CreateTestApplicationWith(t, db, "Data Engineer", "Initech", "2024-03-01", models.StatusRejected, models.PriorityMedium)

	cfg := config.Default()
	cfg.ExportDir = t.TempDir()

	m := New(context.Background(), a, cfg)
	return m, db, a
}

func key(s string) tea.KeyPressMsg {
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update returned %T", next)
	}
	return m
}

func jobNames(m Model) []string {
	var names []string
	for _, a := range m.appState.Applications() {
		names = append(names, a.JobName)
	}
	return names
}

func lastNotification(t *testing.T, m Model) state.Notification {
	t.Helper()
	all := m.notificationState.All()
	require.NotEmpty(t, all, "expected a notification")
	return all[len(all)-1]
}

func TestNew_LoadsApplicationsAndStats(t *testing.T) {
	m, _, _ := setupTestModel(t)

	assert.Equal(t, []string{"Data Engineer", "SRE", "Backend Engineer"}, jobNames(m))

	stats := m.appState.Stats()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Applied)
	assert.Equal(t, 1, stats.Rejected)
	assert.Equal(t, state.NormalMode, m.uiState.Mode())
}

func TestNew_UsesConfiguredSort(t *testing.T) {
	db, a := clitest.SetupCLITest(t)
	testutil.CreateTestApplicationWith(t, db, "Low", "A", "2024-03-01", models.StatusApplied, models.PriorityLow)
	testutil.CreateTestApplicationWith(t, db, "High", "B", "2024-01-01", models.StatusApplied, models.PriorityHigh)

	cfg := config.Default()
	cfg.DefaultSort = "priority"

	m := New(context.Background(), a, cfg)
	assert.Equal(t, models.SortPriority, m.appState.Sort())
	assert.Equal(t, []string{"High", "Low"}, jobNames(m))
}

func TestNavigation(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = send(t, m, key("j"), special(tea.KeyDown))
	assert.Equal(t, 2, m.uiState.Selected())

	m = send(t, m, key("j"))
	assert.Equal(t, 2, m.uiState.Selected(), "selection stops at the last card")

	m = send(t, m, key("k"))
	assert.Equal(t, 1, m.uiState.Selected())
	assert.Equal(t, "SRE", m.selectedApplication().JobName)
}

func TestQuit(t *testing.T) {
	m, _, _ := setupTestModel(t)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSearch_FiltersLiveAndEscClears(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = send(t, m, key("/"))
	require.Equal(t, state.SearchMode, m.uiState.Mode())

	m = send(t, m, key("g"), key("l"), key("o"))
	assert.Equal(t, "glo", m.appState.Filter())
	assert.Equal(t, []string{"SRE"}, jobNames(m))

	m = send(t, m, special(tea.KeyEscape))
	assert.Equal(t, state.NormalMode, m.uiState.Mode())
	assert.Empty(t, m.appState.Filter())
	assert.Len(t, m.appState.Applications(), 3)
}

func TestSearch_EnterKeepsFilter(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = send(t, m, key("/"), key("r"), key("e"), key("j"), special(tea.KeyEnter))
	assert.Equal(t, state.NormalMode, m.uiState.Mode())
	assert.Equal(t, "rej", m.appState.Filter(), "status text matches too")
	assert.Equal(t, []string{"Data Engineer"}, jobNames(m))
	assert.Contains(t, m.View().Content, "filter:")

	// esc in normal mode drops the kept filter
	m = send(t, m, special(tea.KeyEscape))
	assert.Empty(t, m.appState.Filter())
	assert.Len(t, m.appState.Applications(), 3)
}

func TestToggleSort(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = send(t, m, key("s"))
	assert.Equal(t, models.SortPriority, m.appState.Sort())
	assert.Equal(t, []string{"SRE", "Data Engineer", "Backend Engineer"}, jobNames(m))
	assert.Equal(t, "Sorted by Priority", lastNotification(t, m).Message)

	m = send(t, m, key("s"))
	assert.Equal(t, models.SortDateApplied, m.appState.Sort())
}

func TestDelete_Confirmed(t *testing.T) {
	m, db, _ := setupTestModel(t)

	m = send(t, m, key("d"))
	require.Equal(t, state.DeleteConfirmMode, m.uiState.Mode())
	assert.Contains(t, m.View().Content, "Delete 'Data Engineer' at Initech?")

	m = send(t, m, key("y"))
	assert.Equal(t, state.NormalMode, m.uiState.Mode())
	assert.Equal(t, 2, testutil.CountApplications(t, db))
	assert.Equal(t, []string{"SRE", "Backend Engineer"}, jobNames(m))
	assert.Equal(t, 2, m.appState.Stats().Total)
}

func TestDelete_AnyOtherKeyCancels(t *testing.T) {
	m, db, _ := setupTestModel(t)

	m = send(t, m, key("d"), key("n"))
	assert.Equal(t, state.NormalMode, m.uiState.Mode())
	assert.Equal(t, 3, testutil.CountApplications(t, db))
	assert.Equal(t, "Delete cancelled", lastNotification(t, m).Message)
}

func TestDelete_LastCardMovesSelectionUp(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = send(t, m, key("j"), key("j"), key("d"), key("Y"))
	assert.Len(t, m.appState.Applications(), 2)
	assert.Equal(t, 1, m.uiState.Selected())
}

func TestOpenURL(t *testing.T) {
	m, db, a := setupTestModel(t)
	_, err := db.Exec(`UPDATE applications SET url = ? WHERE job_name = ?`, "https://initech.example/jobs/1", "Data Engineer")
	require.NoError(t, err)
	m.reload()

	m = send(t, m, key("o"))
	assert.Equal(t, []string{"https://initech.example/jobs/1"}, clitest.Opener(t, a).URLs)
	assert.Equal(t, state.LevelInfo, lastNotification(t, m).Level)
}

func TestOpenURL_MissingURLWarns(t *testing.T) {
	m, _, a := setupTestModel(t)

	m = send(t, m, key("o"))
	assert.Empty(t, clitest.Opener(t, a).URLs)
	n := lastNotification(t, m)
	assert.Equal(t, state.LevelWarning, n.Level)
	assert.Contains(t, n.Message, "No URL")
}

func TestExport_PromptsForDestination(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = send(t, m, key("x"))
	require.Equal(t, state.ExportMode, m.uiState.Mode())
	require.NotNil(t, m.formState.Form)
	assert.Equal(t, m.config.ExportDir, filepath.Dir(m.formState.ExportPath))
	assert.Regexp(t, `^job_applications_\d{8}\.csv$`, filepath.Base(m.formState.ExportPath))
	assert.Contains(t, m.View().Content, "Export CSV")

	matches, err := filepath.Glob(filepath.Join(m.config.ExportDir, "*.csv"))
	require.NoError(t, err)
	assert.Empty(t, matches, "nothing is written before the destination is confirmed")

	m = send(t, m, special(tea.KeyEscape))
	assert.Equal(t, state.NormalMode, m.uiState.Mode())
	assert.Equal(t, "Export cancelled", lastNotification(t, m).Message)
}

func TestSubmitExport(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = send(t, m, key("x"))
	path := filepath.Join(t.TempDir(), "my-jobs.csv")
	m.formState.ExportPath = path

	next, _ := m.submitExport()
	m = next.(Model)

	assert.Equal(t, state.NormalMode, m.uiState.Mode())
	n := lastNotification(t, m)
	assert.Equal(t, state.LevelInfo, n.Level)
	assert.Contains(t, n.Message, "Exported 3 application(s) to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Data Engineer")
}

func TestSubmitExport_BadDirectoryReopensPrompt(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = send(t, m, key("x"))
	path := filepath.Join(t.TempDir(), "missing", "jobs.csv")
	m.formState.ExportPath = path

	next, _ := m.submitExport()
	m = next.(Model)

	assert.Equal(t, state.ExportMode, m.uiState.Mode())
	assert.Equal(t, path, m.formState.ExportPath, "the typed path survives")
	n := lastNotification(t, m)
	assert.Equal(t, state.LevelError, n.Level)
	assert.Contains(t, n.Message, "export failed")
	assert.Contains(t, n.Message, "no such file or directory")
}

func TestDelete_RowRemovedUnderneath(t *testing.T) {
	m, db, _ := setupTestModel(t)
	selected := m.selectedApplication()
	require.NotNil(t, selected)

	_, err := db.Exec(`DELETE FROM applications WHERE id = ?`, selected.ID)
	require.NoError(t, err)

	m = send(t, m, key("d"), key("y"))
	n := lastNotification(t, m)
	assert.Equal(t, state.LevelError, n.Level)
	assert.Equal(t, "Application no longer exists", n.Message)
	assert.Equal(t, -1, m.appState.IndexOf(selected.ID), "the stale card is dropped")
	assert.Len(t, m.appState.Applications(), 2)
}

func TestSubmitStatus_StorageErrorKeepsMessage(t *testing.T) {
	m, db, _ := setupTestModel(t)

	m = send(t, m, key("t"))
	m.formState.Status = models.StatusOfferReceived
	require.NoError(t, db.Close())

	next, _ := m.submitStatus()
	m = next.(Model)

	n := lastNotification(t, m)
	assert.Equal(t, state.LevelError, n.Level)
	assert.Contains(t, n.Message, "Failed to update status: ")
	assert.Contains(t, n.Message, "database is closed")
}

func TestAddForm_OpensAndEscCancels(t *testing.T) {
	m, db, _ := setupTestModel(t)

	m = send(t, m, key("a"))
	require.Equal(t, state.AddFormMode, m.uiState.Mode())
	require.NotNil(t, m.formState.Form)
	assert.Equal(t, models.DateToday, m.formState.ApplicationValues.DateApplied)
	assert.Contains(t, m.View().Content, "New Application")

	m = send(t, m, special(tea.KeyEscape))
	assert.Equal(t, state.NormalMode, m.uiState.Mode())
	assert.Nil(t, m.formState.Form)
	assert.Equal(t, 3, testutil.CountApplications(t, db))
}

func TestSubmitAddForm(t *testing.T) {
	m, db, _ := setupTestModel(t)

	m = send(t, m, key("a"))
	values := m.formState.ApplicationValues
	values.JobName = "Platform Engineer"
	values.Company = "Hooli"
	values.Priority = models.PriorityHigh

	next, _ := m.submitApplicationForm()
	m = next.(Model)

	assert.Equal(t, state.NormalMode, m.uiState.Mode())
	assert.Equal(t, 4, testutil.CountApplications(t, db))
	selected := m.selectedApplication()
	require.NotNil(t, selected)
	assert.Equal(t, "Platform Engineer", selected.JobName)
	assert.Equal(t, "2024-03-15", selected.DateApplied, "today resolves with the app clock")
	assert.Equal(t, "Application added", lastNotification(t, m).Message)
}

func TestSubmitAddForm_ValidationReopensForm(t *testing.T) {
	m, db, _ := setupTestModel(t)

	m = send(t, m, key("a"))
	m.formState.ApplicationValues.JobName = "No Company"

	next, _ := m.submitApplicationForm()
	m = next.(Model)

	assert.Equal(t, state.AddFormMode, m.uiState.Mode())
	require.NotNil(t, m.formState.Form)
	assert.Equal(t, "No Company", m.formState.ApplicationValues.JobName, "entered values survive")
	assert.Equal(t, state.LevelError, lastNotification(t, m).Level)
	assert.Equal(t, 3, testutil.CountApplications(t, db))
}

func TestSubmitEditForm(t *testing.T) {
	m, _, a := setupTestModel(t)

	m = send(t, m, key("j"), key("e"))
	require.Equal(t, state.EditFormMode, m.uiState.Mode())
	values := m.formState.ApplicationValues
	assert.Equal(t, "SRE", values.JobName)
	assert.Equal(t, "Globex", values.Company)

	values.Salary = "$150k"
	next, _ := m.submitApplicationForm()
	m = next.(Model)

	updated, err := a.ApplicationService.GetApplication(context.Background(), m.selectedApplication().ID)
	require.NoError(t, err)
	assert.Equal(t, "SRE", updated.JobName)
	assert.Equal(t, "$150k", updated.Salary)
	assert.Equal(t, models.StatusInterviewed, updated.Status)
	assert.Equal(t, "Application updated", lastNotification(t, m).Message)
}

func TestSubmitStatus(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = send(t, m, key("j"), key("j"), key("t"))
	require.Equal(t, state.StatusPickerMode, m.uiState.Mode())
	assert.Equal(t, models.StatusApplied, m.formState.Status)

	m.formState.Status = models.StatusOfferReceived
	next, _ := m.submitStatus()
	m = next.(Model)

	assert.Equal(t, state.NormalMode, m.uiState.Mode())
	assert.Equal(t, models.StatusOfferReceived, m.selectedApplication().Status)
	assert.Equal(t, 1, m.appState.Stats().Offers)
}

func TestActionsOnEmptyListWarn(t *testing.T) {
	_, a := clitest.SetupCLITest(t)
	m := New(context.Background(), a, config.Default())

	for _, k := range []string{"e", "t", "d", "o"} {
		m = send(t, m, key(k))
		assert.Equal(t, state.NormalMode, m.uiState.Mode(), "key %s", k)
		assert.Equal(t, state.LevelWarning, lastNotification(t, m).Level, "key %s", k)
	}
	assert.Contains(t, m.View().Content, "No applications yet")
}

func TestClearNotification(t *testing.T) {
	m, _, _ := setupTestModel(t)

	cmd := m.notify(state.LevelInfo, "hello")
	require.NotNil(t, cmd)
	id := lastNotification(t, m).ID

	m = send(t, m, clearNotificationMsg{id: id})
	assert.False(t, m.notificationState.HasAny())
}

func TestView(t *testing.T) {
	m, _, _ := setupTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	view := m.View()
	assert.True(t, view.AltScreen)
	for _, want := range []string{"Job Application Tracker", "Data Engineer", "Globex", "Total:", "sort: Date Applied"} {
		assert.Contains(t, view.Content, want)
	}
}

func TestView_ScrollsToKeepSelectionVisible(t *testing.T) {
	m, _, _ := setupTestModel(t)
	// room for a single card
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 13})

	m = send(t, m, key("j"), key("j"))
	assert.Equal(t, 2, m.uiState.ScrollOffset())

	content := m.View().Content
	assert.Contains(t, content, "Backend Engineer")
	assert.NotContains(t, content, "Globex")
}
