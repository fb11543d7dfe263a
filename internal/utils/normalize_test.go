// internal/utils/normalize_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhilippinePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"9171234567", "+639171234567", true},
		{"09171234567", "+639171234567", true},
		{"639171234567", "+639171234567", true},
		{"+63 917 123 4567", "+639171234567", true},
		{"0917-123-4567", "+639171234567", true},
		{"12345", "", false},
		{"", "", false},
		{"917123456789", "", false},
	}

	for _, tc := range cases {
		got, ok := NormalizePhilippinePhone(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "ana_cruz", NormalizeUsername("Ana Cruz"))
	assert.Equal(t, "juan.dela-cruz", NormalizeUsername("Juan.Dela-Cruz"))
	assert.Equal(t, "abc123", NormalizeUsername("abc123!@#"))
	assert.Equal(t, "", NormalizeUsername("!!!"))
}

func TestFallbackUsername(t *testing.T) {
	assert.Equal(t, "ana_m._cruz", FallbackUsername("Ana", "M", "Cruz"))
	assert.Equal(t, "ana_cruz", FallbackUsername("Ana", "", "Cruz"))
}

func TestMiddleInitial(t *testing.T) {
	assert.Equal(t, "M", MiddleInitial("maria"))
	assert.Equal(t, "M", MiddleInitial("M."))
	assert.Equal(t, "", MiddleInitial("123"))
	assert.Equal(t, "", MiddleInitial(""))
}
