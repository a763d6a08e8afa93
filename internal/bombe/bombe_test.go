package bombe_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forcedentropy/enigma/internal/bombe"
	"github.com/forcedentropy/enigma/internal/enigma"
)

func buildMachine(t *testing.T, plugboardPairs string) *enigma.Enigma {
	t.Helper()
	m, err := enigma.NewBuilder().
		SetReflector("B").
		SetLeft("I", 'a', 'a').
		SetMiddle("II", 'a', 'a').
		SetRight("III", 'a', 'a').
		Build()
	require.NoError(t, err)

	if plugboardPairs != "" {
		require.NoError(t, m.SetPlugboard(plugboardPairs))
	}

	return m
}

// TestBombe_CrackRoundTrip reproduces the worked example: encode a known
// plaintext under a known plugboard, then crack the ciphertext against the
// plaintext as crib with a fresh, plugboard-less machine of the same rotor
// stack. The cracked stop at the true starting rotation must deduce at
// least the stecker pairs that were actually used.
func TestBombe_CrackRoundTrip(t *testing.T) {
	encoder := buildMachine(t, "ar gk ox")
	ciphertext := encoder.Encode("ATTACKATDAWN")

	crackMachine := buildMachine(t, "")
	b, err := bombe.New(crackMachine, strings.ToLower(ciphertext), "attackatdawn", true)
	require.NoError(t, err)

	stops, err := b.Run()
	require.NoError(t, err)
	require.NotEmpty(t, stops)

	var found *bombe.Stop
	for i, s := range stops {
		if s.Indicator == "aaa" {
			found = &stops[i]
			break
		}
	}
	require.NotNil(t, found, "expected a stop at the true starting rotation aaa")

	assert.Contains(t, found.Plugboard, "ar")
	assert.Contains(t, found.Plugboard, "gk")
	assert.Contains(t, found.Plugboard, "ox")
}

func TestBombe_New_PropagatesMenuError(t *testing.T) {
	machine := buildMachine(t, "")
	_, err := bombe.New(machine, "a", "a", true)
	assert.Error(t, err)
}
