package bombe_test

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forcedentropy/enigma/internal/bombe"
)

// TestFarm_CoversSingleOrderResult checks that farm-crack's results for the
// (I, II, III) / reflector B rotor order are identical, up to ordering, to
// running that one order's Bombe directly.
func TestFarm_CoversSingleOrderResult(t *testing.T) {
	encoder := buildMachine(t, "ar gk ox")
	ciphertext := strings.ToLower(encoder.Encode("ATTACKATDAWN"))
	const crib = "attackatdawn"

	crackMachine := buildMachine(t, "")
	single, err := bombe.New(crackMachine, ciphertext, crib, true)
	require.NoError(t, err)
	wantStops, err := single.Run()
	require.NoError(t, err)

	farm := bombe.NewFarm(ciphertext, crib, true, zerolog.Nop())
	allStops, err := farm.Run()
	require.NoError(t, err)

	const wantConfig = "B, I, II, III"
	var gotStops []bombe.Stop
	for _, s := range allStops {
		if s.Configuration == wantConfig {
			gotStops = append(gotStops, s)
		}
	}

	assert.ElementsMatch(t, wantStops, gotStops)
}
