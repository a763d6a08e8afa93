package plugboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forcedentropy/enigma/internal/plugboard"
)

func TestPlugboard_NewMapsEveryLetterToItself(t *testing.T) {
	p := plugboard.New()
	for i := 0; i < 26; i++ {
		assert.Equal(t, i, p.Swap(i))
	}
}

func TestPlugboard_ParseEmptyStringIsIdentity(t *testing.T) {
	p, err := plugboard.Parse("")
	require.NoError(t, err)
	assert.Equal(t, "", p.String())
}

func TestPlugboard_ParseIsReciprocal(t *testing.T) {
	p, err := plugboard.Parse("ab cd ef")
	require.NoError(t, err)

	assert.Equal(t, int('b'-'a'), p.Swap(int('a'-'a')))
	assert.Equal(t, int('a'-'a'), p.Swap(int('b'-'a')))
	assert.Equal(t, int('d'-'a'), p.Swap(int('c'-'a')))
	assert.Equal(t, int('g'-'a'), p.Swap(int('g'-'a'))) // unpaired, maps to itself
}

func TestPlugboard_ParseRejectsMalformedGroup(t *testing.T) {
	_, err := plugboard.Parse("abc de")
	assert.Error(t, err)
}

func TestPlugboard_AddRejectsOutOfRangeLetters(t *testing.T) {
	p := plugboard.New()
	assert.Error(t, p.Add(-1, 0))
	assert.Error(t, p.Add(0, 26))
}

func TestPlugboard_StringRoundTrips(t *testing.T) {
	p, err := plugboard.Parse("ar gk ox")
	require.NoError(t, err)

	reparsed, err := plugboard.Parse(p.String())
	require.NoError(t, err)

	for i := 0; i < 26; i++ {
		assert.Equal(t, p.Swap(i), reparsed.Swap(i))
	}
}
