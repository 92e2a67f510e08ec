package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Goa Beach Paradise", "goa-beach-paradise"},
		{"  Goa Beach Paradise!  ", "goa-beach-paradise"},
		{"Café Coast", "cafe-coast"},
		{"4 Nights / 5 Days", "4-nights-5-days"},
		{"Bali -- Explorer", "bali-explorer"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}

func TestSlugify_CapsLength(t *testing.T) {
	slug := Slugify(strings.Repeat("ab ", 150))
	assert.LessOrEqual(t, len(slug), 200)
	assert.False(t, strings.HasSuffix(slug, "-"))
}
