package domain

import "time"

// Viewer identifies a caller of the board API. Display preferences are stored per viewer.
type Viewer struct {
	ID string
}

// Token represents issued authentication token metadata.
type Token struct {
	Value     string
	ViewerID  string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// Preferences are the display controls a viewer last selected.
type Preferences struct {
	Grouping string `json:"grouping"`
	Ordering string `json:"ordering"`
}
