package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWhatsApp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "full international format",
			input: "+5521999887766",
			want:  "5521999887766",
		},
		{
			name:  "country code without plus",
			input: "5521999887766",
			want:  "5521999887766",
		},
		{
			name:  "bare national number assumes Brazil",
			input: "21999887766",
			want:  "5521999887766",
		},
		{
			name:  "whitespace is trimmed",
			input: "  +5521999887766  ",
			want:  "5521999887766",
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "too short",
			input:   "123",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeWhatsApp(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
