package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Butcher and the Rye", "butcher and the rye"},
		{"  Butcher   and the  Rye  ", "butcher and the rye"},
		{"Fet-Fisk", "fetfisk"},
		{"Joe's Crab Shack!", "joes crab shack"},
		{"CAFÉ 33", "café 33"},
		{"...", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "input: %q", tt.in)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Butcher & the Rye", "Gaucho Parrilla Argentina", "  Spoon ", "Fet-Fisk",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input: %q", in)
	}
}
