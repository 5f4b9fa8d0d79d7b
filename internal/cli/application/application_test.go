package application

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/jobtrack/internal/cli"
	"github.com/thenoetrevino/jobtrack/internal/models"
	applicationservice "github.com/thenoetrevino/jobtrack/internal/services/application"
	"github.com/thenoetrevino/jobtrack/internal/testutil"
	clitest "github.com/thenoetrevino/jobtrack/internal/testutil/cli"
)

func TestAddCmd(t *testing.T) {
	db, app := clitest.SetupCLITest(t)

	t.Run("quiet prints the new id", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, AddCmd(),
			[]string{"--job", "Backend Engineer", "--company", "Acme", "--quiet"})
		require.NoError(t, err)
		assert.Regexp(t, `^\d+$`, strings.TrimSpace(output))

		var jobName, date, status, priority string
		err = db.QueryRowContext(context.Background(),
			"SELECT job_name, date_applied, status, priority FROM applications WHERE id = ?",
			strings.TrimSpace(output)).Scan(&jobName, &date, &status, &priority)
		require.NoError(t, err)
		assert.Equal(t, "Backend Engineer", jobName)
		assert.Equal(t, "2024-03-15", date)
		assert.Equal(t, "Applied", status)
		assert.Equal(t, "Medium", priority)
	})

	t.Run("json with every field", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{
			"--job", "Staff Engineer",
			"--company", "Globex",
			"--url", "https://globex.example/jobs/1",
			"--date", "2024-02-29",
			"--salary", "$200k",
			"--status", "interview scheduled",
			"--priority", "high",
			"--recruiter", "jane@globex.example",
			"--team-member", "Sam",
			"--hiring-manager", "Pat",
			"--json",
		})
		require.NoError(t, err)

		result := testutil.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])
		created := result["application"].(map[string]interface{})
		assert.Equal(t, "Globex", created["company"])
		assert.Equal(t, "2024-02-29", created["date_applied"])
		assert.Equal(t, "Interview Scheduled", created["status"])
		assert.Equal(t, "High", created["priority"])
		assert.Equal(t, "Pat", created["hiring_manager_contact"])
	})

	t.Run("human output", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, AddCmd(),
			[]string{"--job", "SRE", "--company", "Initech"})
		require.NoError(t, err)
		assert.Contains(t, output, "Application 'SRE' at Initech recorded")
	})
}

func TestAddCmd_Validation(t *testing.T) {
	db, app := clitest.SetupCLITest(t)

	tests := []struct {
		name   string
		args   []string
		target error
	}{
		{"missing company", []string{"--job", "Engineer"}, applicationservice.ErrEmptyCompany},
		{"blank job", []string{"--job", "  ", "--company", "Acme"}, applicationservice.ErrEmptyJobName},
		{"impossible date", []string{"--job", "E", "--company", "A", "--date", "2024-02-30"}, applicationservice.ErrInvalidDate},
		{"unknown status", []string{"--job", "E", "--company", "A", "--status", "ghosted"}, applicationservice.ErrInvalidStatus},
		{"unknown priority", []string{"--job", "E", "--company", "A", "--priority", "urgent"}, applicationservice.ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := clitest.ExecuteCLICommand(t, app, AddCmd(), append(tt.args, "--json"))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
			assert.True(t, cli.IsReported(err))

			result := testutil.ParseJSON(t, output)
			assert.Equal(t, false, result["success"])
			assert.Equal(t, "VALIDATION_ERROR", result["error"].(map[string]interface{})["code"])
		})
	}

	assert.Equal(t, 0, testutil.CountApplications(t, db))
}

func TestEditCmd(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	id := clitest.CreateTestApplication(t, db, "Engineer", "Acme", "2024-01-10")

	output, err := clitest.ExecuteCLICommand(t, app, EditCmd(), []string{
		itoa(id), "--salary", "$150k", "--priority", "low", "--json",
	})
	require.NoError(t, err)

	updated := testutil.ParseJSON(t, output)["application"].(map[string]interface{})
	assert.Equal(t, "$150k", updated["salary"])
	assert.Equal(t, "Low", updated["priority"])
	// untouched fields keep their values
	assert.Equal(t, "Engineer", updated["job_name"])
	assert.Equal(t, "2024-01-10", updated["date_applied"])
	assert.Equal(t, "Applied", updated["status"])
}

func TestEditCmd_Errors(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	id := clitest.CreateTestApplication(t, db, "Engineer", "Acme", "2024-01-10")

	_, err := clitest.ExecuteCLICommand(t, app, EditCmd(), []string{"--id", "999", "--salary", "1"})
	assert.ErrorIs(t, err, applicationservice.ErrNotFound)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

	_, err = clitest.ExecuteCLICommand(t, app, EditCmd(), []string{"--salary", "1"})
	assert.ErrorIs(t, err, cli.ErrUsage)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))

	_, err = clitest.ExecuteCLICommand(t, app, EditCmd(), []string{itoa(id), "--company", ""})
	assert.ErrorIs(t, err, applicationservice.ErrEmptyCompany)

	var company string
	require.NoError(t, db.QueryRowContext(context.Background(),
		"SELECT company FROM applications WHERE id = ?", id).Scan(&company))
	assert.Equal(t, "Acme", company)
}

func TestStatusCmd(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	id := clitest.CreateTestApplication(t, db, "Engineer", "Acme", "2024-01-10")

	output, err := clitest.ExecuteCLICommand(t, app, StatusCmd(),
		[]string{"--id", itoa(id), "--status", "offer-received"})
	require.NoError(t, err)
	assert.Contains(t, output, "is now Offer Received")

	var status string
	require.NoError(t, db.QueryRowContext(context.Background(),
		"SELECT status FROM applications WHERE id = ?", id).Scan(&status))
	assert.Equal(t, "Offer Received", status)

	_, err = clitest.ExecuteCLICommand(t, app, StatusCmd(), []string{"--id", itoa(id)})
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))

	_, err = clitest.ExecuteCLICommand(t, app, StatusCmd(), []string{"--id", "404", "--status", "Rejected"})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestDeleteCmd(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	keep := clitest.CreateTestApplication(t, db, "Keep", "Acme", "2024-01-10")
	drop := clitest.CreateTestApplication(t, db, "Drop", "Acme", "2024-01-11")

	output, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{itoa(drop), "--force"})
	require.NoError(t, err)
	assert.Contains(t, output, "Deleted 'Drop'")
	assert.Equal(t, 1, testutil.CountApplications(t, db))

	_, err = clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{itoa(drop), "--force"})
	assert.ErrorIs(t, err, applicationservice.ErrNotFound)

	output, err = clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{itoa(keep), "--quiet", "--force"})
	require.NoError(t, err)
	assert.Equal(t, itoa(keep), strings.TrimSpace(output))
	assert.Equal(t, 0, testutil.CountApplications(t, db))
}

func TestDeleteCmd_NoPromptRequiresForce(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	id := clitest.CreateTestApplication(t, db, "Keep", "Acme", "2024-01-10")

	for _, flag := range []string{"--json", "--quiet"} {
		t.Run(flag, func(t *testing.T) {
			_, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{itoa(id), flag})
			require.Error(t, err)
			assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
			assert.Equal(t, 1, testutil.CountApplications(t, db), "nothing is deleted without --force")
		})
	}

	stdout, _, err := clitest.ExecuteCLICommandWithStderr(t, app, DeleteCmd(), []string{itoa(id), "--json"})
	require.Error(t, err)
	result := testutil.ParseJSON(t, stdout)
	assert.Equal(t, false, result["success"])
	assert.Contains(t, stdout, "--force")
}

func TestShowCmd_NotFoundWritesStderr(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	stdout, stderr, err := clitest.ExecuteCLICommandWithStderr(t, app, ShowCmd(), []string{"404"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "not found")
}

func TestListCmd(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	a := testutil.CreateTestApplicationWith(t, db, "A", "Acme", "2024-03-01", models.StatusApplied, models.PriorityLow)
	b := testutil.CreateTestApplicationWith(t, db, "B", "Globex", "2024-02-01", models.StatusRejected, models.PriorityHigh)
	c := testutil.CreateTestApplicationWith(t, db, "C", "Acme Labs", "2024-01-01", models.StatusPending, models.PriorityHigh)

	t.Run("date order", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
		require.NoError(t, err)
		assert.Equal(t, []string{itoa(a), itoa(b), itoa(c)}, strings.Fields(output))
	})

	t.Run("priority order", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--sort", "priority", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, []string{itoa(b), itoa(c), itoa(a)}, strings.Fields(output))
	})

	t.Run("search", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--search", "ACME", "--json"})
		require.NoError(t, err)
		apps := testutil.ParseJSON(t, output)["applications"].([]interface{})
		assert.Len(t, apps, 2)
	})

	t.Run("search on status", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--search", "reject", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, []string{itoa(b)}, strings.Fields(output))
	})

	t.Run("no match is an empty json list", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--search", "nothing", "--json"})
		require.NoError(t, err)
		assert.Empty(t, testutil.ParseJSON(t, output)["applications"])
	})

	t.Run("human table", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "Globex")
		assert.Contains(t, output, "3 application(s)")
	})

	t.Run("bad sort", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--sort", "salary"})
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})
}

func TestShowCmd(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	id := clitest.CreateTestApplication(t, db, "Platform Engineer", "Acme", "2024-01-10")

	output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{itoa(id), "--json"})
	require.NoError(t, err)
	shown := testutil.ParseJSON(t, output)["application"].(map[string]interface{})
	assert.Equal(t, "Platform Engineer", shown["job_name"])

	output, err = clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{itoa(id)})
	require.NoError(t, err)
	assert.Contains(t, output, "Platform Engineer")
	assert.Contains(t, output, "Acme")

	_, err = clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"77"})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestDetailMarkdown(t *testing.T) {
	md := detailMarkdown(&models.Application{
		ID:               3,
		JobName:          "Engineer",
		Company:          "Acme",
		DateApplied:      "2024-01-10",
		Status:           models.StatusInterviewed,
		Priority:         models.PriorityHigh,
		URL:              "https://acme.example",
		RecruiterContact: "jane@acme.example",
	})

	assert.True(t, strings.HasPrefix(md, "# Engineer\n"))
	assert.Contains(t, md, "**Status:** Interviewed")
	assert.Contains(t, md, "<https://acme.example>")
	assert.Contains(t, md, "- Recruiter: jane@acme.example")
	assert.Contains(t, md, "- Team member: —")
}

func TestStatsCmd(t *testing.T) {
	db, app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, StatsCmd(), []string{"--json"})
	require.NoError(t, err)
	stats := testutil.ParseJSON(t, output)["stats"].(map[string]interface{})
	assert.Equal(t, float64(0), stats["total"])

	testutil.CreateTestApplicationWith(t, db, "A", "Acme", "2024-01-01", models.StatusApplied, models.PriorityLow)
	testutil.CreateTestApplicationWith(t, db, "B", "Acme", "2024-01-02", models.StatusOfferReceived, models.PriorityLow)

	output, err = clitest.ExecuteCLICommand(t, app, StatsCmd(), []string{"--json"})
	require.NoError(t, err)
	stats = testutil.ParseJSON(t, output)["stats"].(map[string]interface{})
	assert.Equal(t, float64(2), stats["total"])
	assert.Equal(t, float64(1), stats["applied"])
	assert.Equal(t, float64(1), stats["offers"])
	assert.Equal(t, float64(0), stats["rejected"])
}

func TestExportCmd(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	clitest.CreateTestApplication(t, db, "Older", "Acme", "2024-01-01")
	clitest.CreateTestApplication(t, db, "Newer", "Acme", "2024-02-01")

	path := filepath.Join(t.TempDir(), "out.csv")
	output, err := clitest.ExecuteCLICommand(t, app, ExportCmd(), []string{"--output", path, "--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, output)["export"].(map[string]interface{})
	assert.Equal(t, float64(2), result["rows"])

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Job Name,Company,Date Applied"))
	assert.True(t, strings.HasPrefix(lines[1], "Newer,"))

	_, err = clitest.ExecuteCLICommand(t, app, ExportCmd(),
		[]string{"--output", filepath.Join(t.TempDir(), "missing", "out.csv")})
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
}

func TestOpenCmd(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	noURL := clitest.CreateTestApplication(t, db, "Engineer", "Acme", "2024-01-10")
	_, err := db.ExecContext(context.Background(),
		"UPDATE applications SET url = 'acme.example/jobs/1' WHERE id = ?", noURL)
	require.NoError(t, err)
	empty := clitest.CreateTestApplication(t, db, "Other", "Globex", "2024-01-11")

	_, err = clitest.ExecuteCLICommand(t, app, OpenCmd(), []string{itoa(noURL)})
	require.NoError(t, err)
	assert.Equal(t, []string{"acme.example/jobs/1"}, clitest.Opener(t, app).URLs)

	_, err = clitest.ExecuteCLICommand(t, app, OpenCmd(), []string{itoa(empty)})
	require.Error(t, err)
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))

	clitest.Opener(t, app).Err = errors.New("no browser")
	_, err = clitest.ExecuteCLICommand(t, app, OpenCmd(), []string{itoa(noURL)})
	assert.Error(t, err)
}
