package bombe

// Stop is one tuple the Bombe could not invalidate: a candidate starting
// rotation, the plugboard pairs deduced from it, and the rotor
// configuration that produced it (spec.md §4.10, §6).
type Stop struct {
	Indicator     string
	Plugboard     string
	Configuration string
}

// deduction is the plugboard-in-progress the checking machine builds up:
// partner[i] is the letter deduced for i, or -1 while i has no deduction.
// add records a pair without any checks; contradictions are detected by
// checkingMachine (§4.9) before it adds a pair.
type deduction struct {
	partner [26]int
}

func newDeduction() *deduction {
	d := &deduction{}
	for i := range d.partner {
		d.partner[i] = -1
	}
	return d
}

func (d *deduction) add(a, b int) {
	d.partner[a] = b
	d.partner[b] = a
}

// String renders the deduced pairs as space-separated two-letter groups,
// each pair emitted once, matching spec.md §6's plugboard string format.
func (d *deduction) String() string {
	seen := [26]bool{}
	var out []byte
	for i := 0; i < 26; i++ {
		if d.partner[i] < 0 || seen[i] {
			continue
		}
		j := d.partner[i]
		seen[i], seen[j] = true, true
		if len(out) > 0 {
			out = append(out, ' ')
		}
		out = append(out, byte(i)+'a', byte(j)+'a')
	}
	return string(out)
}
