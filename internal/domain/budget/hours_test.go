package budget

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/renudeshmukh940/TaskHive-sub000/internal/domain/errors"
)

func TestParseHours(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"0:00", 0},
		{"0:30", 0.5},
		{"9:00", 9},
		{"4:30", 4.5},
		{"10:15", 10.25},
		{"23:59", 23 + 59.0/60},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHours(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseHours_InvalidFormat(t *testing.T) {
	inputs := []string{"", "9", "9:0", "9:000", "abc", "1:2x", "-1:00", "9.30", "25:99"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseHours(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainErrors.ErrInvalidFormat))
		})
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0:00"},
		{0.5, "0:30"},
		{9, "9:00"},
		{10.25, "10:15"},
		{2.0 / 60, "0:02"},
		// 8.999 часа - 59.94 минуты, округление до 60 переносится в час
		{8.999, "9:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatHours(tt.input))
		})
	}
}

// TestHoursRoundTrip проверяет, что формат и разбор согласованы
// с точностью до минуты
func TestHoursRoundTrip(t *testing.T) {
	inputs := []float64{0.0, 0.5, 8.999, 9.0, 10.25}

	for _, input := range inputs {
		formatted := FormatHours(input)
		parsed, err := ParseHours(formatted)
		require.NoError(t, err, "formatted %q", formatted)
		assert.LessOrEqual(t, math.Abs(parsed-input), 1.0/60, "round trip of %v via %q", input, formatted)
	}
}
