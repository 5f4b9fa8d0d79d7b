package models

import "time"

// Application represents a single tracked job application
type Application struct {
	ID                   int       `json:"id"`
	JobName              string    `json:"job_name"`
	Company              string    `json:"company"`
	URL                  string    `json:"url"`
	DateApplied          string    `json:"date_applied"` // YYYY-MM-DD
	Salary               string    `json:"salary"`
	Status               Status    `json:"status"`
	RecruiterContact     string    `json:"recruiter_contact"`
	TeamMemberContact    string    `json:"team_member_contact"`
	HiringManagerContact string    `json:"hiring_manager_contact"`
	Priority             Priority  `json:"priority"`
	CreatedAt            time.Time `json:"created_at"`
}

// GetID lets the quiet CLI output mode print just the ID
func (a *Application) GetID() int {
	return a.ID
}

// ApplicationFields holds every mutable attribute of an application.
// It is what the add and edit forms produce and what the store writes.
type ApplicationFields struct {
	JobName              string
	Company              string
	URL                  string
	DateApplied          string
	Salary               string
	Status               Status
	RecruiterContact     string
	TeamMemberContact    string
	HiringManagerContact string
	Priority             Priority
}

// Fields returns the mutable attributes of the application
func (a *Application) Fields() ApplicationFields {
	return ApplicationFields{
		JobName:              a.JobName,
		Company:              a.Company,
		URL:                  a.URL,
		DateApplied:          a.DateApplied,
		Salary:               a.Salary,
		Status:               a.Status,
		RecruiterContact:     a.RecruiterContact,
		TeamMemberContact:    a.TeamMemberContact,
		HiringManagerContact: a.HiringManagerContact,
		Priority:             a.Priority,
	}
}

// Stats holds the aggregate counts shown in the status bar
type Stats struct {
	Total    int `json:"total"`
	Applied  int `json:"applied"`
	Pending  int `json:"pending"`
	Offers   int `json:"offers"`
	Rejected int `json:"rejected"`
}
