package bombe

import (
	"fmt"

	"github.com/forcedentropy/enigma/internal/alphabet"
	"github.com/forcedentropy/enigma/internal/enigma"
	"github.com/forcedentropy/enigma/internal/errs"
)

// testRegisterPair is fixed at letter 'b' (offset 1), per spec.md §3: the
// Bombe's fixed stecker hypothesis is always (testRegister, 1).
const testRegisterPair = 1

// Bombe runs the energization/stop-detection sweep for one fixed rotor
// order (spec.md §4.7-§4.10). Each Bombe owns its own Scrambler and wire
// buffer; nothing is shared across rotor orders (spec.md §5).
type Bombe struct {
	scrambler *Scrambler
	menu      *Menu
	check     bool

	wires     [676]bool
	liveWires int

	testRegister int
}

// New constructs a Bombe for a fixed rotor stack, building the scrambler
// cache once and the menu once.
func New(machine *enigma.Enigma, cipherText, crib string, check bool) (*Bombe, error) {
	menu, err := NewMenu(cipherText, crib)
	if err != nil {
		return nil, err
	}

	return &Bombe{
		scrambler:    NewScrambler(machine.Reflector(), machine.Left(), machine.Middle(), machine.Right()),
		menu:         menu,
		check:        check,
		testRegister: menu.MostConnected(),
	}, nil
}

func wireIndex(i, j int) int {
	return 26*i + j
}

// energize propagates the stecker hypothesis (i, j) through the menu,
// using an explicit work stack rather than recursion (spec.md §9: "a
// faithful port should prefer an explicit work stack"). The idempotence
// property from spec.md §8 holds because a (k, e) pair is only ever pushed
// when its wire is not yet live, exactly mirroring the recursive
// early-return on an already-live wire.
func (b *Bombe) energize(i, j int) {
	type pair struct{ i, j int }
	stack := []pair{{i, j}}

	for len(stack) > 0 {
		n := len(stack) - 1
		p := stack[n]
		stack = stack[:n]

		idx := wireIndex(p.i, p.j)
		if b.wires[idx] {
			continue
		}

		b.wires[idx] = true
		b.wires[wireIndex(p.j, p.i)] = true

		if p.i == b.testRegister || p.j == b.testRegister {
			b.liveWires++
			if b.liveWires == 26 {
				return
			}
		}

		for _, k := range b.menu.Adjacent(p.i) {
			shift := b.menu.CribOffset(p.i, k)
			e := b.scrambler.Encode(p.j, shift)
			if !b.wires[wireIndex(k, e)] {
				stack = append(stack, pair{k, e})
			}
		}

		if p.i == p.j {
			continue
		}

		for _, k := range b.menu.Adjacent(p.j) {
			shift := b.menu.CribOffset(p.j, k)
			e := b.scrambler.Encode(p.i, shift)
			if !b.wires[wireIndex(k, e)] {
				stack = append(stack, pair{k, e})
			}
		}
	}
}

// checkStop inspects the post-energization wire state and reports whether
// the current rotation would have caused the Bombe to stop (spec.md §4.8).
//
// Precondition: energization must have started from the single hypothesis
// (testRegister, testRegisterPair) — the liveWires==1 branch below assumes
// that is the only way a single live wire can arise (spec.md §9).
func (b *Bombe) checkStop() (*Stop, error) {
	if b.liveWires == 26 {
		return nil, nil
	}

	var steckerPair int

	switch {
	case b.liveWires == 25:
		steckerPair = -1
		for j := 0; j < 26; j++ {
			if !b.wires[wireIndex(b.testRegister, j)] {
				steckerPair = j
				break
			}
		}
		if steckerPair == -1 {
			return nil, fmt.Errorf("%w: no dead wire found with liveWires==25", errs.ErrInternalInvariant)
		}
	case b.liveWires == 1:
		steckerPair = testRegisterPair
	default:
		if !b.check {
			return &Stop{}, nil
		}

		var found *deduction
		matches := 0
		for i := 0; i < 26; i++ {
			d := b.checkingMachine(i)
			if d != nil {
				matches++
				found = d
			}
		}

		switch matches {
		case 0:
			return nil, nil
		case 1:
			return &Stop{Plugboard: found.String()}, nil
		default:
			return &Stop{}, nil
		}
	}

	if b.check {
		d := b.checkingMachine(steckerPair)
		if d == nil {
			return nil, nil
		}
		return &Stop{Plugboard: d.String()}, nil
	}

	d := newDeduction()
	d.add(b.testRegister, steckerPair)
	return &Stop{Plugboard: d.String()}, nil
}

// checkingMachine re-derives plugboard pairs from the live-wire pattern
// for the hypothesis (testRegister, pair), per spec.md §4.9. Returns nil
// if the hypothesis leads to a contradiction (some letter live on more
// than one wire).
func (b *Bombe) checkingMachine(pair int) *deduction {
	if pair != testRegisterPair {
		b.wires = [676]bool{}
		b.liveWires = 0
		b.energize(b.testRegister, pair)
	}

	d := newDeduction()
	d.add(b.testRegister, pair)

	for i := 0; i < 26; i++ {
		count := 0
		other := -1
		for j := 0; j < 26; j++ {
			if b.wires[wireIndex(i, j)] {
				count++
				other = j
			}
		}

		switch {
		case count > 1:
			return nil
		case count == 0:
			continue
		default:
			d.add(i, other)
		}
	}

	return d
}

// Run sweeps all 26^3 starting rotations for this Bombe's fixed rotor
// order, emitting a Stop for every rotation the Bombe could not
// invalidate, in lexicographic (left, middle, right) order (spec.md
// §4.10).
func (b *Bombe) Run() ([]Stop, error) {
	var stops []Stop

	for l := 0; l < alphabet.Size; l++ {
		for m := 0; m < alphabet.Size; m++ {
			for r := 0; r < alphabet.Size; r++ {
				b.scrambler.SetRotation(l, m, r)
				b.wires = [676]bool{}
				b.liveWires = 0

				b.energize(b.testRegister, testRegisterPair)

				stop, err := b.checkStop()
				if err != nil {
					return nil, err
				}
				if stop != nil {
					stop.Indicator = b.scrambler.Indicator()
					stop.Configuration = b.scrambler.Configuration()
					stops = append(stops, *stop)
				}
			}
		}
	}

	return stops, nil
}
