package models

// Settings holds UI preferences persisted alongside the catalog.
type Settings struct {
	Theme     string `json:"theme"`
	PageUnits string `json:"pageUnits"`
}

// DefaultSettings returns the settings used when none have been saved.
func DefaultSettings() Settings {
	return Settings{Theme: "dark", PageUnits: "pages"}
}
