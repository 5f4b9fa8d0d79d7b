package huhforms

import (
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/jobtrack/internal/models"
	applicationservice "github.com/thenoetrevino/jobtrack/internal/services/application"
)

// ApplicationValues backs the add/edit form. The form writes into it
// through pointers, matching huh's Value(&field) pattern.
type ApplicationValues struct {
	JobName              string
	Company              string
	URL                  string
	DateApplied          string
	Salary               string
	Status               models.Status
	Priority             models.Priority
	RecruiterContact     string
	TeamMemberContact    string
	HiringManagerContact string
	Confirm              bool
}

// NewApplicationValues prefills form values. Empty status, priority and
// date get the same defaults the add command uses.
func NewApplicationValues(in applicationservice.Input) *ApplicationValues {
	v := &ApplicationValues{
		JobName:              in.JobName,
		Company:              in.Company,
		URL:                  in.URL,
		DateApplied:          in.DateApplied,
		Salary:               in.Salary,
		Status:               in.Status,
		Priority:             in.Priority,
		RecruiterContact:     in.RecruiterContact,
		TeamMemberContact:    in.TeamMemberContact,
		HiringManagerContact: in.HiringManagerContact,
		Confirm:              true,
	}
	if v.DateApplied == "" {
		v.DateApplied = models.DateToday
	}
	if v.Status == "" {
		v.Status = models.StatusApplied
	}
	if v.Priority == "" {
		v.Priority = models.DefaultPriority
	}
	return v
}

// Input converts the submitted values for the application service
func (v *ApplicationValues) Input() applicationservice.Input {
	return applicationservice.Input{
		JobName:              v.JobName,
		Company:              v.Company,
		URL:                  v.URL,
		DateApplied:          v.DateApplied,
		Salary:               v.Salary,
		Status:               v.Status,
		RecruiterContact:     v.RecruiterContact,
		TeamMemberContact:    v.TeamMemberContact,
		HiringManagerContact: v.HiringManagerContact,
		Priority:             v.Priority,
	}
}

func required(err error) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return err
		}
		return nil
	}
}

func statusOptions() []huh.Option[models.Status] {
	opts := make([]huh.Option[models.Status], len(models.Statuses))
	for i, s := range models.Statuses {
		opts[i] = huh.NewOption(s.String(), s)
	}
	return opts
}

func priorityOptions() []huh.Option[models.Priority] {
	opts := make([]huh.Option[models.Priority], len(models.Priorities))
	for i, p := range models.Priorities {
		opts[i] = huh.NewOption(p.String(), p)
	}
	return opts
}

// CreateApplicationForm creates a huh form for adding/editing an application.
// Fields are split into pages: the posting, its tracking state, then contacts.
func CreateApplicationForm(submitTitle string, v *ApplicationValues) *huh.Form {
	posting := huh.NewGroup(
		huh.NewInput().
			Key("job_name").
			Title("Job Name").
			Placeholder("Backend Engineer").
			Validate(required(applicationservice.ErrEmptyJobName)).
			Value(&v.JobName),

		huh.NewInput().
			Key("company").
			Title("Company").
			Placeholder("Acme").
			Validate(required(applicationservice.ErrEmptyCompany)).
			Value(&v.Company),

		huh.NewInput().
			Key("url").
			Title("Posting URL").
			Placeholder("https://...").
			Value(&v.URL),

		huh.NewInput().
			Key("salary").
			Title("Salary").
			Placeholder("$120k").
			Value(&v.Salary),
	)

	tracking := huh.NewGroup(
		huh.NewInput().
			Key("date_applied").
			Title("Date Applied").
			Description("YYYY-MM-DD or \"today\"").
			Validate(applicationservice.ValidateDate).
			Value(&v.DateApplied),

		huh.NewSelect[models.Status]().
			Key("status").
			Title("Status").
			Options(statusOptions()...).
			Value(&v.Status),

		huh.NewSelect[models.Priority]().
			Key("priority").
			Title("Priority").
			Options(priorityOptions()...).
			Value(&v.Priority),
	)

	contacts := huh.NewGroup(
		huh.NewInput().
			Key("recruiter").
			Title("Recruiter Contact").
			Value(&v.RecruiterContact),

		huh.NewInput().
			Key("team_member").
			Title("Team Member Contact").
			Value(&v.TeamMemberContact),

		huh.NewInput().
			Key("hiring_manager").
			Title("Hiring Manager Contact").
			Value(&v.HiringManagerContact),

		huh.NewConfirm().
			Key("confirm").
			Title(submitTitle).
			Affirmative("Yes").
			Negative("No").
			Value(&v.Confirm),
	)

	return huh.NewForm(posting, tracking, contacts).WithShowHelp(false)
}

// CreateStatusForm creates a single select for changing an application's status
func CreateStatusForm(status *models.Status) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[models.Status]().
			Key("status").
			Title("Status").
			Options(statusOptions()...).
			Value(status),
	)).WithShowHelp(false)
}

// CreateConfirmForm creates a yes/no confirmation defaulting to the value in confirm
func CreateConfirmForm(title string, confirm *bool) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Key("confirm").
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	)).WithShowHelp(false)
}
