package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveDiacritics(t *testing.T) {
	assert.Equal(t, "cafe", RemoveDiacritics("café"))
	assert.Equal(t, "uredski papir", RemoveDiacritics("uredskí papír"))
	assert.Equal(t, "plain", RemoveDiacritics("plain"))
}

func TestNormalizeDescription(t *testing.T) {
	tests := []struct {
		name  string
		input string
		strip bool
		want  string
	}{
		{
			name:  "lowercases and collapses whitespace",
			input: "  Office   Paper  ",
			strip: true,
			want:  "office paper",
		},
		{
			name:  "strips punctuation when asked",
			input: "Pens, blue (fine-tip)",
			strip: true,
			want:  "pens blue fine tip",
		},
		{
			name:  "preserves punctuation when not asked",
			input: "post-it notes",
			strip: false,
			want:  "post-it notes",
		},
		{
			name:  "truncates to 50 characters",
			input: strings.Repeat("a", 80),
			strip: true,
			want:  strings.Repeat("a", 50),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDescription(tt.input, tt.strip))
		})
	}
}
