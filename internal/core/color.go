package core

// Color represents a foreground color role for a screen cell.
// The platform maps each role to a terminal style.
type Color uint8

const (
	ColorDefault Color = iota
	ColorLive          // live cells, drawn in the configured RGB colour
	ColorDim           // grid background and inactive text
	ColorAccent        // titles and selection
	ColorStatus        // status line
	ColorWarn          // extinct/stable notices
)
