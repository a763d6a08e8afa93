// Package rotor implements a single Enigma wheel: its wiring, ring offset,
// rotation, and the forward/backward substitution spec.md §4.1 describes.
package rotor

// Rotor is the per-machine state of one wheel. The wiring is shared by
// value (it is a small fixed-size array, immutable after construction);
// ring offset and rotation are owned by whichever machine holds this Rotor.
type Rotor struct {
	wiring           Wiring
	ringOffset       int
	rotation         int
	originalRotation int
}

// New creates a rotor with the given wiring, ring offset, and starting
// rotation, all as offsets 0..25.
func New(w Wiring, ringOffset, rotation int) Rotor {
	return Rotor{
		wiring:           w,
		ringOffset:       ringOffset,
		rotation:         rotation,
		originalRotation: rotation,
	}
}

// Wiring returns the rotor's core wiring.
func (r *Rotor) Wiring() Wiring {
	return r.wiring
}

// RingOffset returns the current ring setting.
func (r *Rotor) RingOffset() int {
	return r.ringOffset
}

// SetRingOffset updates the ring setting.
func (r *Rotor) SetRingOffset(offset int) {
	r.ringOffset = offset
}

// Rotation returns the current rotation.
func (r *Rotor) Rotation() int {
	return r.rotation
}

// Encode substitutes letter c (0..25) through this rotor. forwards is true
// when going right-to-left (keyboard toward reflector), false on the
// return path. Ring offset and rotation act in opposite directions from
// one another, per spec.md §4.1.
func (r *Rotor) Encode(c int, forwards bool) int {
	val := mod26(c - r.ringOffset + r.rotation)

	var mapped int
	if forwards {
		mapped = int(r.wiring.Forward[val])
	} else {
		mapped = int(r.wiring.Inverse[val])
	}

	return mod26(mapped + r.ringOffset - r.rotation)
}

// Rotate advances the rotor one position, wrapping mod 26.
func (r *Rotor) Rotate() {
	r.rotation = (r.rotation + 1) % 26
}

// IsAtNotch reports whether the current rotation lines up with the
// turnover letter, i.e. whether the rotor to this one's left should step
// on the next key press.
func (r *Rotor) IsAtNotch() bool {
	return r.wiring.Turnover >= 0 && r.rotation == r.wiring.Turnover
}

// SetRotationPermanent sets both the current and original rotation, so a
// subsequent Reset returns here. Used when an operator dials in a new
// starting position rather than mid-message stepping.
func (r *Rotor) SetRotationPermanent(rotation int) {
	r.originalRotation = rotation
	r.rotation = rotation
}

// Reset restores the rotation to the last value set via New or
// SetRotationPermanent, reverting any stepping performed during encoding.
func (r *Rotor) Reset() {
	r.rotation = r.originalRotation
}

// Copy returns a rotor with the same wiring but ring offset and rotation
// both zeroed, as used when building the Bombe's precomputed scrambler
// cache (spec.md §4.5: rings are forced to zero for cracking).
func (r *Rotor) Copy() Rotor {
	return New(r.wiring, 0, 0)
}

func mod26(n int) int {
	return ((n % 26) + 26) % 26
}
