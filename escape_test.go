package sqlbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEsc(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no_quotes", "hello", "hello"},
		{"single_quote", "O'Brien", "O''Brien"},
		{"multiple_quotes", "Hello, 'World'", "Hello, ''World''"},
		{"only_quote", "'", "''"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Esc(tt.input))
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "hello", "'hello'"},
		{"with_quote", "Hello, 'World'", "'Hello, ''World'''"},
		{"empty", "", "''"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Quote(tt.input))
		})
	}
}

func TestQuoteComposesEsc(t *testing.T) {
	for _, s := range []string{"", "a", "O'Brien", "''"} {
		assert.Equal(t, "'"+Esc(s)+"'", Quote(s))
	}
}
