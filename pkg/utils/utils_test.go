package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDateOnly(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"2024-01-15", true},
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2024-13-01", false},
		{"15/01/2024", false},
		{"2024-1-15", false},
		{" 2024-01-15", false},
		{"", false},
		{"garbage", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDateOnly(tt.input))
		})
	}
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, date)

	date, err = ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", date.Format("2006-01-02"))

	_, err = ParseDate("15-01-2024")
	assert.Error(t, err)
}

func TestRoundToCount(t *testing.T) {
	assert.Equal(t, 10, RoundToCount(9.6))
	assert.Equal(t, 3, RoundToCount(2.5))
	assert.Equal(t, 0, RoundToCount(-4))
	assert.Equal(t, 0, RoundToCount(0))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, idLength)
}
