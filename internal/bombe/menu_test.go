package bombe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forcedentropy/enigma/internal/bombe"
)

func TestNewMenu_RejectsMismatchedLengths(t *testing.T) {
	_, err := bombe.NewMenu("abc", "ab")
	assert.Error(t, err)
}

func TestNewMenu_RejectsSelfMapping(t *testing.T) {
	_, err := bombe.NewMenu("a", "a")
	assert.Error(t, err)
}

// TestNewMenu_SingleCycle builds a menu whose five letters form one cycle
// (a-b-c-d-e-a), a single connected component with exactly one loop. Every
// node has degree two, so the tie-break keeps the first node visited ('a')
// as most-connected.
func TestNewMenu_SingleCycle(t *testing.T) {
	m, err := bombe.NewMenu("abcde", "bcdea")
	require.NoError(t, err)

	assert.Equal(t, 0, m.MostConnected())

	assert.ElementsMatch(t, []int{1, 4}, m.Adjacent(0))
	assert.ElementsMatch(t, []int{0, 2}, m.Adjacent(1))
	assert.ElementsMatch(t, []int{1, 3}, m.Adjacent(2))
	assert.ElementsMatch(t, []int{2, 4}, m.Adjacent(3))
	assert.ElementsMatch(t, []int{3, 0}, m.Adjacent(4))

	assert.Equal(t, 1, m.CribOffset(0, 1))
	assert.Equal(t, 5, m.CribOffset(0, 4))
	assert.Equal(t, 2, m.CribOffset(1, 2))
	assert.Equal(t, 3, m.CribOffset(2, 3))
	assert.Equal(t, 4, m.CribOffset(3, 4))
}

// TestNewMenu_PrunesToOneComponent feeds two disjoint letter groups; only
// the component with more loops should survive.
func TestNewMenu_PrunesToOneComponent(t *testing.T) {
	// "abcde"/"bcdea" contributes the 5-edge cycle among a..e (1 loop).
	// "fg"/"gf" contributes a single edge f-g (0 loops, isolated pair).
	m, err := bombe.NewMenu("abcdefg", "bcdeagf")
	require.NoError(t, err)

	assert.Nil(t, m.Adjacent(5)) // 'f' destroyed along with its component
	assert.Nil(t, m.Adjacent(6)) // 'g' destroyed
	assert.NotNil(t, m.Adjacent(0))
}
