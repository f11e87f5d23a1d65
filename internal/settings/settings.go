package settings

// Settings is the singleton site-wide display configuration.
type Settings struct {
	Language        string `json:"language"`
	HeaderText      string `json:"headerText"`
	HeaderTextKh    string `json:"headerTextKh"`
	TitleFont       string `json:"titleFont"`
	DescriptionFont string `json:"descriptionFont"`
}

// Defaults returns the settings used before the admin ever saves any.
func Defaults() Settings {
	return Settings{
		Language:        "en",
		TitleFont:       "Segoe UI",
		DescriptionFont: "Segoe UI",
	}
}
