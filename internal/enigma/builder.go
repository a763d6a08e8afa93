package enigma

import (
	"fmt"

	"github.com/forcedentropy/enigma/internal/alphabet"
	"github.com/forcedentropy/enigma/internal/plugboard"
	"github.com/forcedentropy/enigma/internal/rotor"
)

// Builder assembles an Enigma fluently, ported from
// original_source/src/EnigmaBuilder.java.
type Builder struct {
	board     *plugboard.Plugboard
	reflector *rotor.Rotor
	left      *rotor.Rotor
	middle    *rotor.Rotor
	right     *rotor.Rotor
	err       error
}

// NewBuilder starts a fresh builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// SetBoard installs a plugboard.
func (b *Builder) SetBoard(board *plugboard.Plugboard) *Builder {
	b.board = board
	return b
}

// SetReflector chooses the reflector by name ("B" or "C").
func (b *Builder) SetReflector(name string) *Builder {
	w, ok := rotor.ReflectorByName[name]
	if !ok {
		b.err = fmt.Errorf("%w: unknown reflector %q", errInvalidRotorName, name)
		return b
	}
	r := rotor.New(w, 0, 0)
	b.reflector = &r
	return b
}

// SetLeft, SetMiddle, SetRight choose a wheel by name ("I".."V") and dial
// in a ring position and starting rotation, both lowercase letters a-z.
func (b *Builder) SetLeft(name string, ringPosition, rotation byte) *Builder {
	r, err := newWheel(name, ringPosition, rotation)
	if err != nil {
		b.err = err
		return b
	}
	b.left = r
	return b
}

func (b *Builder) SetMiddle(name string, ringPosition, rotation byte) *Builder {
	r, err := newWheel(name, ringPosition, rotation)
	if err != nil {
		b.err = err
		return b
	}
	b.middle = r
	return b
}

func (b *Builder) SetRight(name string, ringPosition, rotation byte) *Builder {
	r, err := newWheel(name, ringPosition, rotation)
	if err != nil {
		b.err = err
		return b
	}
	b.right = r
	return b
}

func newWheel(name string, ringPosition, rotation byte) (*rotor.Rotor, error) {
	w, ok := rotor.ByName[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown rotor %q", errInvalidRotorName, name)
	}
	r := rotor.New(w, alphabet.ToIndex(ringPosition), alphabet.ToIndex(rotation))
	return &r, nil
}

// Build returns the assembled Enigma, or the first error encountered while
// configuring it.
func (b *Builder) Build() (*Enigma, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.board == nil {
		b.board = plugboard.New()
	}
	if b.reflector == nil || b.left == nil || b.middle == nil || b.right == nil {
		return nil, fmt.Errorf("%w: reflector and all three rotors must be set", errInvalidRotorName)
	}
	return New(b.board, *b.reflector, *b.left, *b.middle, *b.right), nil
}
