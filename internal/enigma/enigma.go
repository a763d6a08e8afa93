// Package enigma composes three rotors, a reflector, and a plugboard into
// the full Enigma machine: stepping, substitution, and whole-message
// encode/decode (spec.md §4.3, §4.4).
package enigma

import (
	"strings"

	"github.com/forcedentropy/enigma/internal/alphabet"
	"github.com/forcedentropy/enigma/internal/plugboard"
	"github.com/forcedentropy/enigma/internal/rotor"
)

// Enigma is the assembled machine: a reflector, three movable wheels in
// left-to-right order, and a plugboard. The lifetime is builder-created and
// setter-mutated, matching original_source/src/Enigma.java.
type Enigma struct {
	board     *plugboard.Plugboard
	reflector rotor.Rotor
	left      rotor.Rotor
	middle    rotor.Rotor
	right     rotor.Rotor
}

// New assembles an Enigma from its parts. Rings and rotations on reflector
// should be zero; reflectors never step and have no ring setting (spec.md
// §3).
func New(board *plugboard.Plugboard, reflector, left, middle, right rotor.Rotor) *Enigma {
	return &Enigma{
		board:     board,
		reflector: reflector,
		left:      left,
		middle:    middle,
		right:     right,
	}
}

// Left, Middle, Right, and Reflector expose the machine's wheels, e.g. for
// BombeEnigma's cache construction (spec.md §4.5) which needs a Copy of
// each.
func (e *Enigma) Left() *rotor.Rotor      { return &e.left }
func (e *Enigma) Middle() *rotor.Rotor    { return &e.middle }
func (e *Enigma) Right() *rotor.Rotor     { return &e.right }
func (e *Enigma) Reflector() *rotor.Rotor { return &e.reflector }

// SetRotors replaces the reflector and all three wheels.
func (e *Enigma) SetRotors(reflector, left, middle, right rotor.Rotor) {
	e.reflector = reflector
	e.left = left
	e.middle = middle
	e.right = right
}

// SetPlugboard replaces the plugboard with one parsed from a space
// separated pair string, e.g. "ab cd".
func (e *Enigma) SetPlugboard(pairs string) error {
	board, err := plugboard.Parse(pairs)
	if err != nil {
		return err
	}
	e.board = board
	return nil
}

// SetRings sets the ring offsets of the three movable wheels, each 0..25.
func (e *Enigma) SetRings(left, middle, right int) {
	e.left.SetRingOffset(left)
	e.middle.SetRingOffset(middle)
	e.right.SetRingOffset(right)
}

// SetRotations dials in a new starting position for all three wheels,
// 0..25 each, and makes it the position Reset returns to.
func (e *Enigma) SetRotations(left, middle, right int) {
	e.left.SetRotationPermanent(left)
	e.middle.SetRotationPermanent(middle)
	e.right.SetRotationPermanent(right)
}

// Reset restores all three movable wheels to their last-dialed starting
// rotation, reverting stepping performed during an encode without
// disturbing ring settings or wiring.
func (e *Enigma) Reset() {
	e.left.Reset()
	e.middle.Reset()
	e.right.Reset()
}

// rotate applies the stepping rule before each letter, including the
// double-step anomaly (spec.md §4.3): the middle rotor steps whenever the
// right rotor is at its notch OR the middle rotor is itself at its notch.
func (e *Enigma) rotate() {
	shouldMiddleRotate := e.right.IsAtNotch() || e.middle.IsAtNotch()
	shouldLeftRotate := e.middle.IsAtNotch()

	e.right.Rotate()
	if shouldMiddleRotate {
		e.middle.Rotate()
	}
	if shouldLeftRotate {
		e.left.Rotate()
	}
}

// EncodeLetter steps the rotors and substitutes one letter (0..25) through
// plugboard, rotors forward, reflector, rotors backward, plugboard again.
func (e *Enigma) EncodeLetter(c int) int {
	e.rotate()

	c = e.board.Swap(c)

	c = e.right.Encode(c, true)
	c = e.middle.Encode(c, true)
	c = e.left.Encode(c, true)

	c = e.reflector.Encode(c, true)

	c = e.left.Encode(c, false)
	c = e.middle.Encode(c, false)
	c = e.right.Encode(c, false)

	return e.board.Swap(c)
}

// Encode lowercases message, passes spaces through unchanged, encodes
// every other character as a letter, then resets the movable rotors to
// their dialed starting position (spec.md §4.4). The result is uppercased.
func (e *Enigma) Encode(message string) string {
	message = strings.ToLower(message)
	var out strings.Builder
	out.Grow(len(message))

	for i := 0; i < len(message); i++ {
		c := message[i]
		if c == ' ' {
			out.WriteByte(' ')
			continue
		}
		letter := e.EncodeLetter(alphabet.ToIndex(c))
		out.WriteByte(alphabet.ToLetter(letter))
	}

	e.Reset()

	return strings.ToUpper(out.String())
}

// Configuration renders a human-readable summary of the machine's current
// settings, matching original_source/src/Enigma.java's getConfiguration().
func (e *Enigma) Configuration() string {
	var b strings.Builder
	b.WriteString("Rotors=[")
	b.WriteString(e.reflector.Wiring().Name)
	b.WriteString(", ")
	b.WriteString(e.left.Wiring().Name)
	b.WriteString(", ")
	b.WriteString(e.middle.Wiring().Name)
	b.WriteString(", ")
	b.WriteString(e.right.Wiring().Name)
	b.WriteString("], Rings=[")
	b.WriteByte(alphabet.ToLetter(e.left.RingOffset()))
	b.WriteString(", ")
	b.WriteByte(alphabet.ToLetter(e.middle.RingOffset()))
	b.WriteString(", ")
	b.WriteByte(alphabet.ToLetter(e.right.RingOffset()))
	b.WriteString("], Rotations=[")
	b.WriteByte(alphabet.ToLetter(e.left.Rotation()))
	b.WriteString(", ")
	b.WriteByte(alphabet.ToLetter(e.middle.Rotation()))
	b.WriteString(", ")
	b.WriteByte(alphabet.ToLetter(e.right.Rotation()))
	b.WriteString("], Steckerboard: ")
	b.WriteString(e.board.String())
	return b.String()
}
