package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckStrength(t *testing.T) {
	tests := []struct {
		password string
		want     StrengthIssue
	}{
		{"abc", StrengthTooShort},
		{"ABCDEFG1!", StrengthNoLower},
		{"abcdefg1!", StrengthNoUpper},
		{"Abcdefgh!", StrengthNoDigit},
		{"Abcdefg1", StrengthNoSpecial},
		{"Abcdefg1$", StrengthNoSpecial}, // $ is outside the allowed set
		{"Abcdefg1!", StrengthOK},
		{"Xy3?lmnop", StrengthOK},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, CheckStrength(tt.password), "password %q", tt.password)
	}
}
