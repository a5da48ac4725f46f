package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankSuggestions(t *testing.T) {
	names := []string{
		"Tokyo Temakeria",
		"Sushi Tokyo",
		"tokyo",
		"Tokyo Bar",
	}

	got := rankSuggestions(names, "TOKYO", 5)

	assert.Equal(t, []string{
		"tokyo",           // exact
		"Tokyo Bar",       // prefix
		"Tokyo Temakeria", // prefix
		"Sushi Tokyo",     // substring
	}, got)
}

func TestRankSuggestionsOrderAndLimit(t *testing.T) {
	names := []string{"Resto Da Vila", "Ponto Do Chef", "Tokyo Temakeria", "Boteco Toca", "Alto Rio", "Porto Sul"}

	got := rankSuggestions(names, "to", 5)

	assert.Equal(t, []string{
		"Tokyo Temakeria",
		"Alto Rio",
		"Boteco Toca",
		"Ponto Do Chef",
		"Porto Sul",
	}, got)
}
