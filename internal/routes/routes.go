// Package routes resolves navigation route names to tab icons and indices.
package routes

import "strings"

// IconID identifies a tab icon.
type IconID int

const (
	IconFallback IconID = iota
	IconHome
	IconStats
	IconProfile
)

// Known route keys.
const (
	Home    = "home"
	Stats   = "stats"
	Profile = "profile"
)

// Descriptor is one navigable tab. Order in a slice of descriptors is the
// left-to-right order of the cells.
type Descriptor struct {
	Key         string `json:"key" mapstructure:"key"`
	Title       string `json:"title" mapstructure:"title"`
	Description string `json:"description" mapstructure:"description"`
}

// Icon returns the icon for the descriptor's key.
func (d Descriptor) Icon() IconID { return IconFor(d.Key) }

// Label is the title, or the key when no title is set.
func (d Descriptor) Label() string {
	if d.Title != "" {
		return d.Title
	}
	return d.Key
}

// Defaults is the built-in three-tab set.
func Defaults() []Descriptor {
	return []Descriptor{
		{Key: Home, Title: "Home", Description: "# Home\n\nRecent activity and shortcuts."},
		{Key: Stats, Title: "Stats", Description: "# Stats\n\nTotals and trends over time."},
		{Key: Profile, Title: "Profile", Description: "# Profile\n\nAccount and preferences."},
	}
}

// IconFor maps a route name to its icon. It is total: names outside the
// known set get IconFallback.
func IconFor(name string) IconID {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Home:
		return IconHome
	case Stats:
		return IconStats
	case Profile:
		return IconProfile
	default:
		return IconFallback
	}
}

// Glyph is the single-column rune drawn for the icon.
func (id IconID) Glyph() string {
	switch id {
	case IconHome:
		return "⌂"
	case IconStats:
		return "≡"
	case IconProfile:
		return "☺"
	default:
		return "•"
	}
}

// String returns the icon name.
func (id IconID) String() string {
	switch id {
	case IconHome:
		return "home"
	case IconStats:
		return "stats"
	case IconProfile:
		return "profile"
	default:
		return "fallback"
	}
}

// IndexOf returns the position of key in list. Unknown keys resolve to 0 so
// the bar always has a focused tab.
func IndexOf(list []Descriptor, key string) int {
	for i, d := range list {
		if d.Key == key {
			return i
		}
	}
	return 0
}

// Keys returns the route keys in order.
func Keys(list []Descriptor) []string {
	keys := make([]string, len(list))
	for i, d := range list {
		keys[i] = d.Key
	}
	return keys
}
