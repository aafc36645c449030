// Package entity defines the preferences domain entities.
package entity

// Theme values accepted by the preferences API.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// Preferences holds a user's display settings.
type Preferences struct {
	Theme string `json:"theme"`
}

// ValidTheme reports whether s is one of the accepted theme values.
func ValidTheme(s string) bool {
	switch s {
	case ThemeSystem, ThemeLight, ThemeDark:
		return true
	}
	return false
}
