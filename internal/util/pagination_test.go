package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	page, size := Normalize(0, 500)
	require.Equal(t, 1, page)
	require.Equal(t, DefaultPageSize, size)

	page, size = Normalize(-3, 0)
	require.Equal(t, 1, page)
	require.Equal(t, DefaultPageSize, size)

	page, size = Normalize(2, 100)
	require.Equal(t, 2, page)
	require.Equal(t, 100, size)
}

func TestCalculate(t *testing.T) {
	offset, limit := Calculate(1, 20)
	require.Equal(t, 0, offset)
	require.Equal(t, 20, limit)

	offset, limit = Calculate(3, 10)
	require.Equal(t, 20, offset)
	require.Equal(t, 10, limit)

	offset, limit = Calculate(0, 500)
	require.Equal(t, 0, offset)
	require.Equal(t, DefaultPageSize, limit)
}

func TestParseIntDefault(t *testing.T) {
	require.Equal(t, 5, ParseIntDefault("5", 1))
	require.Equal(t, 1, ParseIntDefault("", 1))
	require.Equal(t, 1, ParseIntDefault("abc", 1))
}
