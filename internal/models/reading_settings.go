package models

// Reading settings bounds. Update requests outside these limits clamp.
const (
	MinFontSize   = 12
	MaxFontSize   = 24
	MinLineHeight = 1.2
	MaxLineHeight = 2.2
)

// FontFamily is the reading typeface choice.
type FontFamily string

const (
	FontSerif FontFamily = "serif"
	FontSans  FontFamily = "sans"
)

// ReadingSettings holds client-local reading preferences. They are never
// synced to the remote store.
type ReadingSettings struct {
	FontSize   int        `json:"fontSize"`
	LineHeight float64    `json:"lineHeight"`
	FontFamily FontFamily `json:"fontFamily"`
}

// DefaultReadingSettings returns the initial reading preferences.
func DefaultReadingSettings() ReadingSettings {
	return ReadingSettings{
		FontSize:   16,
		LineHeight: 1.6,
		FontFamily: FontSerif,
	}
}

// Clamped returns a copy with every field forced into its valid range.
func (s ReadingSettings) Clamped() ReadingSettings {
	if s.FontSize < MinFontSize {
		s.FontSize = MinFontSize
	}
	if s.FontSize > MaxFontSize {
		s.FontSize = MaxFontSize
	}
	if s.LineHeight < MinLineHeight {
		s.LineHeight = MinLineHeight
	}
	if s.LineHeight > MaxLineHeight {
		s.LineHeight = MaxLineHeight
	}
	if s.FontFamily != FontSerif && s.FontFamily != FontSans {
		s.FontFamily = FontSerif
	}
	return s
}
