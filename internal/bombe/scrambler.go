// Package bombe implements the Turing-Welchman Bombe: the precomputed
// scrambler cache, the menu graph, the energization/stop-detection engine,
// and the parallel search driver (spec.md §4.5-§4.11).
package bombe

import (
	"fmt"

	"github.com/forcedentropy/enigma/internal/rotor"
)

// Scrambler is BombeEnigma: an immutable 26x26x26x26 lookup table giving
// the rotor-stack output for every (left, middle, right) rotation and
// every input letter, with the plugboard removed and ring settings forced
// to zero (spec.md §4.5). Only the right rotor's rotation is offset at
// lookup time; the Bombe's assumption is that menus are short enough that
// the middle and left rotors never step while traversing them.
type Scrambler struct {
	cache  [26][26][26][26]byte
	cursor [3]int // left, middle, right - kept separate from any Rotor field (spec.md §9).

	names [4]string // reflector, left, middle, right wiring names, for Configuration.
}

// NewScrambler builds the cache from a snapshot of the machine's wheels.
// Per spec.md §4.5, each wheel is cloned via Rotor.Copy (ring offset and
// rotation both zeroed) before the 26^4 sweep.
func NewScrambler(reflector, left, middle, right *rotor.Rotor) *Scrambler {
	s := &Scrambler{
		names: [4]string{
			reflector.Wiring().Name,
			left.Wiring().Name,
			middle.Wiring().Name,
			right.Wiring().Name,
		},
	}

	reflectorCopy := reflector.Copy()
	leftCopy := left.Copy()
	middleCopy := middle.Copy()
	rightCopy := right.Copy()

	for l := 0; l < 26; l++ {
		leftCopy.SetRotationPermanent(l)
		for m := 0; m < 26; m++ {
			middleCopy.SetRotationPermanent(m)
			for r := 0; r < 26; r++ {
				rightCopy.SetRotationPermanent(r)
				for x := 0; x < 26; x++ {
					letter := x
					letter = rightCopy.Encode(letter, true)
					letter = middleCopy.Encode(letter, true)
					letter = leftCopy.Encode(letter, true)
					letter = reflectorCopy.Encode(letter, true)
					letter = leftCopy.Encode(letter, false)
					letter = middleCopy.Encode(letter, false)
					letter = rightCopy.Encode(letter, false)
					s.cache[l][m][r][x] = byte(letter)
				}
			}
		}
	}

	return s
}

// SetRotation stores the cursor triple the Bombe is currently sweeping.
func (s *Scrambler) SetRotation(left, middle, right int) {
	s.cursor = [3]int{left, middle, right}
}

// Encode looks up the scrambler output for letter at the cursor's left and
// middle rotation and the cursor's right rotation shifted by rightShift
// (spec.md §4.5). This is non-destructive: the cursor itself is unchanged.
func (s *Scrambler) Encode(letter, rightShift int) int {
	r := (s.cursor[2] + rightShift) % 26
	return int(s.cache[s.cursor[0]][s.cursor[1]][r][letter])
}

// Indicator renders the cursor as a three-letter lowercase string
// (left, middle, right), per spec.md §4.5 and §6.
func (s *Scrambler) Indicator() string {
	buf := [3]byte{
		byte(s.cursor[0]) + 'a',
		byte(s.cursor[1]) + 'a',
		byte(s.cursor[2]) + 'a',
	}
	return string(buf[:])
}

// Configuration renders the Bombe's fixed rotor order as "Reflector, Left,
// Middle, Right" wheel names, per spec.md §6.
func (s *Scrambler) Configuration() string {
	return fmt.Sprintf("%s, %s, %s, %s", s.names[0], s.names[1], s.names[2], s.names[3])
}
