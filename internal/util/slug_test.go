package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToSlug(t *testing.T) {
	require.Equal(t, "spicy-tuna-roll", ToSlug("Spicy Tuna Roll!!"))
	require.Equal(t, "salmon-nigiri", ToSlug("  Salmon   Nigiri  "))
	require.Equal(t, "combo-2", ToSlug("Combo #2"))
	require.Equal(t, "a-b", ToSlug("a --- b"))
	require.Equal(t, "wasabi", ToSlug("-wasabi-"))
}

func TestToSlugNothingUsable(t *testing.T) {
	s := ToSlug("!!! ###")
	require.Len(t, s, 8)
	require.NotEqual(t, s, ToSlug("!!! ###"))
}

func TestRandomTokenLength(t *testing.T) {
	require.Len(t, RandomToken(8), 8)
	require.Len(t, RandomToken(100), 32)
}
