package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategorySlug(t *testing.T) {
	tests := []struct {
		name string
		slug string
		want string
	}{
		{"single word", "design", "Design"},
		{"two words", "web-dev", "Web Dev"},
		{"three words", "machine-learning-basics", "Machine Learning Basics"},
		{"already capitalized", "Web-Dev", "Web Dev"},
		{"empty", "", ""},
		{"trailing hyphen", "web-", "Web "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCategorySlug(tt.slug))
		})
	}
}

func TestNormalizeCategorySlugMatchesStoredForm(t *testing.T) {
	// Stored categories are title case with spaces; the normalized slug
	// must match them case-insensitively.
	stored := "Web Dev"
	got := NormalizeCategorySlug("web-dev")
	assert.True(t, strings.EqualFold(stored, got))
}
