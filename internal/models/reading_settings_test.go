package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultReadingSettings(t *testing.T) {
	settings := DefaultReadingSettings()

	assert.Equal(t, 16, settings.FontSize)
	assert.Equal(t, 1.6, settings.LineHeight)
	assert.Equal(t, FontSerif, settings.FontFamily)
}

func TestReadingSettings_Clamped(t *testing.T) {
	tests := []struct {
		name string
		in   ReadingSettings
		want ReadingSettings
	}{
		{
			name: "valid values pass through",
			in:   ReadingSettings{FontSize: 18, LineHeight: 1.8, FontFamily: FontSans},
			want: ReadingSettings{FontSize: 18, LineHeight: 1.8, FontFamily: FontSans},
		},
		{
			name: "font size below minimum",
			in:   ReadingSettings{FontSize: 8, LineHeight: 1.6, FontFamily: FontSerif},
			want: ReadingSettings{FontSize: MinFontSize, LineHeight: 1.6, FontFamily: FontSerif},
		},
		{
			name: "font size above maximum",
			in:   ReadingSettings{FontSize: 40, LineHeight: 1.6, FontFamily: FontSerif},
			want: ReadingSettings{FontSize: MaxFontSize, LineHeight: 1.6, FontFamily: FontSerif},
		},
		{
			name: "line height below minimum",
			in:   ReadingSettings{FontSize: 16, LineHeight: 0.5, FontFamily: FontSerif},
			want: ReadingSettings{FontSize: 16, LineHeight: MinLineHeight, FontFamily: FontSerif},
		},
		{
			name: "line height above maximum",
			in:   ReadingSettings{FontSize: 16, LineHeight: 5.0, FontFamily: FontSerif},
			want: ReadingSettings{FontSize: 16, LineHeight: MaxLineHeight, FontFamily: FontSerif},
		},
		{
			name: "unknown font family falls back to serif",
			in:   ReadingSettings{FontSize: 16, LineHeight: 1.6, FontFamily: "comic-sans"},
			want: ReadingSettings{FontSize: 16, LineHeight: 1.6, FontFamily: FontSerif},
		},
		{
			name: "zero value clamps everywhere",
			in:   ReadingSettings{},
			want: ReadingSettings{FontSize: MinFontSize, LineHeight: MinLineHeight, FontFamily: FontSerif},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Clamped())
		})
	}
}
