package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatorCheck(t *testing.T) {
	v := New()
	assert.True(t, v.Valid())

	v.Check(true, "title", "must be provided")
	assert.True(t, v.Valid())

	v.Check(false, "title", "must be provided")
	v.Check(false, "title", "second message is dropped")
	assert.False(t, v.Valid())
	assert.Equal(t, map[string]string{"title": "must be provided"}, v.Errors)
}

func TestNotBlank(t *testing.T) {
	assert.True(t, NotBlank("a", " b "))
	assert.True(t, NotBlank())
	assert.False(t, NotBlank("a", "   "))
	assert.False(t, NotBlank(""))
}

func TestPermittedValue(t *testing.T) {
	assert.True(t, PermittedValue("price", "title", "price", "course"))
	assert.False(t, PermittedValue("seller", "title", "price", "course"))
}

func TestBetween(t *testing.T) {
	assert.True(t, Between(1, 1, 10))
	assert.True(t, Between(10, 1, 10))
	assert.False(t, Between(0, 1, 10))
	assert.False(t, Between(11, 1, 10))
}

func TestPositiveAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"65.00", 65, true},
		{" 12.5 ", 12.5, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := PositiveAmount(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
