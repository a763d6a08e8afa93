package enigma_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forcedentropy/enigma/internal/enigma"
)

func TestBuilder_RejectsUnknownRotorName(t *testing.T) {
	_, err := enigma.NewBuilder().
		SetReflector("B").
		SetLeft("VII", 'a', 'a').
		SetMiddle("II", 'a', 'a').
		SetRight("III", 'a', 'a').
		Build()
	assert.Error(t, err)
}

func TestBuilder_RejectsUnknownReflector(t *testing.T) {
	_, err := enigma.NewBuilder().
		SetReflector("Z").
		SetLeft("I", 'a', 'a').
		SetMiddle("II", 'a', 'a').
		SetRight("III", 'a', 'a').
		Build()
	assert.Error(t, err)
}

func TestBuilder_RequiresAllFourWheels(t *testing.T) {
	_, err := enigma.NewBuilder().SetReflector("B").Build()
	assert.Error(t, err)
}

func TestBuilder_DefaultsToEmptyPlugboard(t *testing.T) {
	m, err := enigma.NewBuilder().
		SetReflector("B").
		SetLeft("I", 'a', 'a').
		SetMiddle("II", 'a', 'a').
		SetRight("III", 'a', 'a').
		Build()
	require.NoError(t, err)
	assert.Contains(t, m.Configuration(), "Steckerboard: ")
}

func TestBuilder_RingAndRotationAppliedFromLetters(t *testing.T) {
	m, err := enigma.NewBuilder().
		SetReflector("B").
		SetLeft("I", 'r', 'z').
		SetMiddle("II", 'a', 'a').
		SetRight("III", 'a', 'a').
		Build()
	require.NoError(t, err)

	assert.Equal(t, int('r'-'a'), m.Left().RingOffset())
	assert.Equal(t, int('z'-'a'), m.Left().Rotation())
}
