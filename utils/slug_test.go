package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Perkalian", "perkalian"},
		{"spaces", "Bangun Datar", "bangun-datar"},
		{"symbol run collapses", "Penjumlahan & Pengurangan!", "penjumlahan-pengurangan"},
		{"digits kept", "Kelas 3 IPA", "kelas-3-ipa"},
		{"leading and trailing symbols trimmed", "  --Pecahan--  ", "pecahan"},
		{"only symbols", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestIsValidSlug(t *testing.T) {
	assert.True(t, IsValidSlug("penjumlahan-pengurangan"))
	assert.True(t, IsValidSlug("kelas-3"))
	assert.False(t, IsValidSlug(""))
	assert.False(t, IsValidSlug("Kelas"))
	assert.False(t, IsValidSlug("bangun datar"))
	assert.False(t, IsValidSlug("-pecahan"))
	assert.False(t, IsValidSlug("pecahan-"))
}
