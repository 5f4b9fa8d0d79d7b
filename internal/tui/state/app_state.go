package state

import (
	"github.com/thenoetrevino/jobtrack/internal/models"
)

// AppState holds the domain data the TUI shows: the current page of
// applications, the aggregate stats and the query that produced them.
type AppState struct {
	applications []*models.Application
	stats        models.Stats
	sort         models.SortKey
	filter       string
}

// NewAppState creates an empty AppState sorted by sort
func NewAppState(sort models.SortKey) *AppState {
	return &AppState{
		applications: []*models.Application{},
		sort:         sort,
	}
}

// Applications returns the loaded applications in display order
func (s *AppState) Applications() []*models.Application {
	return s.applications
}

// SetApplications replaces the loaded applications
func (s *AppState) SetApplications(apps []*models.Application) {
	if apps == nil {
		apps = []*models.Application{}
	}
	s.applications = apps
}

// At returns the application at index i, or nil when out of range
func (s *AppState) At(i int) *models.Application {
	if i < 0 || i >= len(s.applications) {
		return nil
	}
	return s.applications[i]
}

// IndexOf returns the index of the application with id, or -1
func (s *AppState) IndexOf(id int) int {
	for i, app := range s.applications {
		if app.ID == id {
			return i
		}
	}
	return -1
}

func (s *AppState) Stats() models.Stats         { return s.stats }
func (s *AppState) SetStats(stats models.Stats) { s.stats = stats }

func (s *AppState) Sort() models.SortKey { return s.sort }

// ToggleSort flips between date applied and priority order
func (s *AppState) ToggleSort() {
	if s.sort == models.SortPriority {
		s.sort = models.SortDateApplied
		return
	}
	s.sort = models.SortPriority
}

func (s *AppState) Filter() string          { return s.filter }
func (s *AppState) SetFilter(filter string) { s.filter = filter }
