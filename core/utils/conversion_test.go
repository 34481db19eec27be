package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"int", 42, 42},
		{"int64", int64(7), 7},
		{"float64 truncates", 3.9, 3},
		{"plain string", "12", 12},
		{"save decoration", "4+", 4},
		{"movement decoration", `10"`, 10},
		{"negative armor pen", "-1", -1},
		{"dice expression", "D6", 0},
		{"empty", "", 0},
		{"whitespace", "  8 ", 8},
		{"bytes", []byte("5"), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt(tt.in))
		})
	}
}

func TestToFloat(t *testing.T) {
	assert.Equal(t, 145.0, ToFloat("145.0"))
	assert.Equal(t, 145.0, ToFloat(" 145.0 "))
	assert.Equal(t, 0.0, ToFloat("n/a"))
	assert.Equal(t, 2.5, ToFloat(2.5))
	assert.Equal(t, 3.0, ToFloat(3))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "hello", ToString("hello"))
	assert.Equal(t, "bytes", ToString([]byte("bytes")))
	assert.Equal(t, "99", ToString(99))
}
