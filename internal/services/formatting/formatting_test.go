package formatting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitaliseWord(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lower case word", "word", "Word"},
		{"empty string", "", ""},
		{"already capitalised", "Word", "Word"},
		{"rest of word untouched", "wORD", "WORD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CapitaliseWord(tt.input))
		})
	}
}

func TestToTitleCase(t *testing.T) {
	assert.Equal(t, "Title Case String", ToTitleCase("TITLE CASE STRING"))
	assert.Equal(t, "Studded Leather", ToTitleCase("studded leather"))
	assert.Equal(t, "Two-handed", ToTitleCase("two-handed"))
	assert.Equal(t, "", ToTitleCase(""))
}

func TestToURISafe(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"light", "light"},
		{"HEAVY", "heavy"},
		{"Chain mail armour", "chain-mail-armour"},
		{"studded  leather", "studded-leather"},
		{"ammunition (range 80/120)", "ammunition-range"},
		{"Ammunition (range 80/320)", "ammunition-range"},
		{"thrown (range 20/60)", "thrown-range"},
		{"versatile (1d10)", "versatile"},
		{"two-handed", "two-handed"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToURISafe(tt.input))
		})
	}
}

func TestFromURISafeReplacesEveryHyphen(t *testing.T) {
	assert.Equal(t, "studded leather", FromURISafe("studded-leather"))
	assert.Equal(t, "a b c", FromURISafe("a-b-c"))
	assert.Equal(t, "plate", FromURISafe("plate"))
}
