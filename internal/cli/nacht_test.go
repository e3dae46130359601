package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"localhost:5173/dashboard", "http://localhost:5173/dashboard"},
		{"http://localhost:5173", "http://localhost:5173"},
		{"https://app.example.com", "https://app.example.com"},
		{"  example.com  ", "http://example.com"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeURL(tt.in), "input %q", tt.in)
	}
}

func TestParseLegacyNachtURL(t *testing.T) {
	tests := []struct {
		name string
		args []string
		url  string
		ok   bool
	}{
		{"flag with value", []string{"nacht", "-url", "localhost:5173/dashboard"}, "localhost:5173/dashboard", true},
		{"double-dash flag", []string{"nacht", "--url", "localhost:3000"}, "localhost:3000", true},
		{"equals form", []string{"nacht", "-url=localhost:3000"}, "localhost:3000", true},
		{"quoted value", []string{"nacht", "-url", `"localhost:5173"`}, "localhost:5173", true},
		{"embedded after git args", []string{"commit", "-m", "msg", "nacht", "-url", "localhost:5173"}, "localhost:5173", true},
		{"missing value", []string{"nacht", "-url"}, "", false},
		{"no nacht token", []string{"commit", "-m", "msg"}, "", false},
		{"nacht without url", []string{"nacht"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, ok := parseLegacyNachtURL(tt.args)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.url, url)
		})
	}
}
