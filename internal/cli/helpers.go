package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/jobtrack/internal/models"
	applicationservice "github.com/thenoetrevino/jobtrack/internal/services/application"
	"github.com/thenoetrevino/jobtrack/internal/tui/huhforms"
)

// DBPath returns the --db persistent flag, or "" when the command was run
// without the root command (as in tests).
func DBPath(cmd *cobra.Command) string {
	path, err := cmd.Flags().GetString("db")
	if err != nil {
		return ""
	}
	return path
}

// GetApplicationID reads the application id from the first positional
// argument or the --id flag.
func GetApplicationID(cmd *cobra.Command, args []string) (int, error) {
	if len(args) > 0 {
		id, err := strconv.Atoi(args[0])
		if err != nil || id <= 0 {
			return 0, fmt.Errorf("%w: application id must be a positive integer, got %q", ErrUsage, args[0])
		}
		return id, nil
	}

	id, _ := cmd.Flags().GetInt("id")
	if id <= 0 {
		return 0, fmt.Errorf("%w: --id is required and must be a positive integer", ErrUsage)
	}
	return id, nil
}

// ParseStatus parses a status flag value, reporting failures as validation errors
func ParseStatus(raw string) (models.Status, error) {
	status, err := models.ParseStatus(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", applicationservice.ErrInvalidStatus, raw)
	}
	return status, nil
}

// ParsePriority parses a priority flag value, reporting failures as validation errors
func ParsePriority(raw string) (models.Priority, error) {
	priority, err := models.ParsePriority(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", applicationservice.ErrInvalidPriority, raw)
	}
	return priority, nil
}

// AddApplicationFlags registers one flag per application attribute
func AddApplicationFlags(flags *pflag.FlagSet, defaultDate, defaultStatus, defaultPriority string) {
	flags.String("job", "", "Job name")
	flags.String("company", "", "Company name")
	flags.String("url", "", "Job posting URL")
	flags.String("date", defaultDate, "Date applied (YYYY-MM-DD or today)")
	flags.String("salary", "", "Salary or range")
	flags.String("status", defaultStatus, "Status: "+StatusList())
	flags.String("priority", defaultPriority, "Priority: High, Medium, Low")
	flags.String("recruiter", "", "Recruiter contact")
	flags.String("team-member", "", "Team member contact")
	flags.String("hiring-manager", "", "Hiring manager contact")
}

// StatusList returns every status name, comma separated
func StatusList() string {
	names := make([]string, len(models.Statuses))
	for i, status := range models.Statuses {
		names[i] = status.String()
	}
	return strings.Join(names, ", ")
}

// ApplyApplicationFlags overlays flag values on base. With onlyChanged set,
// flags the user did not pass leave base untouched (used by edit).
func ApplyApplicationFlags(flags *pflag.FlagSet, base applicationservice.Input, onlyChanged bool) (applicationservice.Input, error) {
	use := func(name string) bool {
		return !onlyChanged || flags.Changed(name)
	}
	str := func(name string, dst *string) {
		if use(name) {
			*dst, _ = flags.GetString(name)
		}
	}

	in := base
	str("job", &in.JobName)
	str("company", &in.Company)
	str("url", &in.URL)
	str("date", &in.DateApplied)
	str("salary", &in.Salary)
	str("recruiter", &in.RecruiterContact)
	str("team-member", &in.TeamMemberContact)
	str("hiring-manager", &in.HiringManagerContact)

	if use("status") {
		raw, _ := flags.GetString("status")
		status, err := ParseStatus(raw)
		if err != nil {
			return in, err
		}
		in.Status = status
	}

	if use("priority") {
		raw, _ := flags.GetString("priority")
		priority, err := ParsePriority(raw)
		if err != nil {
			return in, err
		}
		in.Priority = priority
	}

	return in, nil
}

// RunApplicationForm shows the interactive add/edit form prefilled with in.
// ok is false when the user declined the final confirmation.
func RunApplicationForm(submitTitle string, in applicationservice.Input) (out applicationservice.Input, ok bool, err error) {
	values := huhforms.NewApplicationValues(in)
	if err := huhforms.CreateApplicationForm(submitTitle, values).Run(); err != nil {
		return in, false, err
	}
	return values.Input(), values.Confirm, nil
}

// Confirm asks a yes/no question on the terminal, defaulting to no
func Confirm(title string) (bool, error) {
	confirmed := false
	if err := huhforms.CreateConfirmForm(title, &confirmed).Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
