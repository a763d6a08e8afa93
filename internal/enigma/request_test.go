package enigma_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forcedentropy/enigma/internal/enigma"
	"github.com/forcedentropy/enigma/internal/validation"
)

func TestEncodeRequest_ValidAccepted(t *testing.T) {
	v, err := validation.New()
	require.NoError(t, err)

	req := enigma.EncodeRequest{
		Rotors:    []string{"I", "II", "III"},
		Reflector: "B",
		Rings:     "aaa",
		Rotations: "aaa",
		Message:   "hello",
	}
	assert.NoError(t, req.Validate(v))
}

func TestEncodeRequest_RejectsDuplicateRotors(t *testing.T) {
	v, err := validation.New()
	require.NoError(t, err)

	req := enigma.EncodeRequest{
		Rotors:    []string{"I", "I", "III"},
		Reflector: "B",
		Rings:     "aaa",
		Rotations: "aaa",
		Message:   "hello",
	}
	assert.Error(t, req.Validate(v))
}

func TestEncodeRequest_RejectsBadRingsLength(t *testing.T) {
	v, err := validation.New()
	require.NoError(t, err)

	req := enigma.EncodeRequest{
		Rotors:    []string{"I", "II", "III"},
		Reflector: "B",
		Rings:     "aa",
		Rotations: "aaa",
		Message:   "hello",
	}
	assert.Error(t, req.Validate(v))
}

func TestCrackOneRequest_RejectsMismatchedLengths(t *testing.T) {
	v, err := validation.New()
	require.NoError(t, err)

	req := enigma.CrackOneRequest{
		Rotors:     []string{"I", "II", "III"},
		Reflector:  "B",
		CipherText: "abcde",
		Crib:       "abcd",
		Check:      true,
	}
	assert.Error(t, req.Validate(v))
}

func TestCrackFarmRequest_RejectsUppercaseInput(t *testing.T) {
	v, err := validation.New()
	require.NoError(t, err)

	req := enigma.CrackFarmRequest{
		CipherText: "ABCDE",
		Crib:       "fghij",
		Check:      true,
	}
	assert.Error(t, req.Validate(v))
}
