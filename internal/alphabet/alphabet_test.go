package alphabet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forcedentropy/enigma/internal/alphabet"
)

func TestToIndexAndToLetter_RoundTrip(t *testing.T) {
	for c := byte('a'); c <= 'z'; c++ {
		i := alphabet.ToIndex(c)
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, alphabet.Size)
		assert.Equal(t, c, alphabet.ToLetter(i))
	}
}

func TestSize_Is26(t *testing.T) {
	assert.Equal(t, 26, alphabet.Size)
}
