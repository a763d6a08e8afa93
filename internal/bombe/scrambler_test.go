package bombe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forcedentropy/enigma/internal/bombe"
	"github.com/forcedentropy/enigma/internal/rotor"
)

// TestScrambler_MatchesDirectRotorStack checks the cache agrees with
// running the rotor stack directly (plugboard removed, ring zero), for an
// arbitrary rotation triple and shift.
func TestScrambler_MatchesDirectRotorStack(t *testing.T) {
	reflector := rotor.New(rotor.ReflectorB, 0, 0)
	left := rotor.New(rotor.RotorI, 0, 0)
	middle := rotor.New(rotor.RotorII, 0, 0)
	right := rotor.New(rotor.RotorIII, 0, 0)

	s := bombe.NewScrambler(&reflector, &left, &middle, &right)

	const l, m, r, shift, letter = 3, 7, 11, 5, 19

	s.SetRotation(l, m, r)
	got := s.Encode(letter, shift)

	left.SetRotationPermanent(l)
	middle.SetRotationPermanent(m)
	right.SetRotationPermanent((r + shift) % 26)

	c := letter
	c = right.Encode(c, true)
	c = middle.Encode(c, true)
	c = left.Encode(c, true)
	c = reflector.Encode(c, true)
	c = left.Encode(c, false)
	c = middle.Encode(c, false)
	c = right.Encode(c, false)

	assert.Equal(t, c, got)
}

func TestScrambler_IndicatorAndConfiguration(t *testing.T) {
	reflector := rotor.New(rotor.ReflectorB, 0, 0)
	left := rotor.New(rotor.RotorI, 0, 0)
	middle := rotor.New(rotor.RotorII, 0, 0)
	right := rotor.New(rotor.RotorIII, 0, 0)

	s := bombe.NewScrambler(&reflector, &left, &middle, &right)
	s.SetRotation(0, 3, 17)

	assert.Equal(t, "adr", s.Indicator())
	assert.Equal(t, "B, I, II, III", s.Configuration())
}
