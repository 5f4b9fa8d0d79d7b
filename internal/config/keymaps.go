package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Applications
	AddApplication    string `yaml:"add_application"`
	EditApplication   string `yaml:"edit_application"`
	DeleteApplication string `yaml:"delete_application"`
	ChangeStatus      string `yaml:"change_status"`
	OpenURL           string `yaml:"open_url"`
	Export            string `yaml:"export"`

	// List
	Search     string `yaml:"search"`
	ToggleSort string `yaml:"toggle_sort"`
	PrevCard   string `yaml:"prev_card"`
	NextCard   string `yaml:"next_card"`

	// Other
	Quit string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddApplication:    "a",
		EditApplication:   "e",
		DeleteApplication: "d",
		ChangeStatus:      "t",
		OpenURL:           "o",
		Export:            "x",

		Search:     "/",
		ToggleSort: "s",
		PrevCard:   "k",
		NextCard:   "j",

		Quit: "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddApplication == "" {
		k.AddApplication = defaults.AddApplication
	}
	if k.EditApplication == "" {
		k.EditApplication = defaults.EditApplication
	}
	if k.DeleteApplication == "" {
		k.DeleteApplication = defaults.DeleteApplication
	}
	if k.ChangeStatus == "" {
		k.ChangeStatus = defaults.ChangeStatus
	}
	if k.OpenURL == "" {
		k.OpenURL = defaults.OpenURL
	}
	if k.Export == "" {
		k.Export = defaults.Export
	}
	if k.Search == "" {
		k.Search = defaults.Search
	}
	if k.ToggleSort == "" {
		k.ToggleSort = defaults.ToggleSort
	}
	if k.PrevCard == "" {
		k.PrevCard = defaults.PrevCard
	}
	if k.NextCard == "" {
		k.NextCard = defaults.NextCard
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
