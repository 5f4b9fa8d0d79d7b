package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#874BFD",

		Create: "#5FD75F",
		Edit:   "#5F87D7",
		Delete: "#FF5F5F",

		CardBorder:     "#585858",
		SelectedBorder: "#D75FD7",
		SelectedBg:     "#3A3A3A",

		Title:  "#D75FD7",
		Subtle: "#808080",
		Normal: "#D0D0D0",

		StatusPending:   "#FFD700",
		StatusApplied:   "#5F87D7",
		StatusInterview: "#AF87FF",
		StatusOffer:     "#5FD75F",
		StatusRejected:  "#FF5F5F",
		StatusWithdrawn: "#808080",

		PriorityHigh:   "#FF5F5F",
		PriorityMedium: "#FFAF00",
		PriorityLow:    "#5FAF5F",

		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",
	}
}
