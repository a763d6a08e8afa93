// Package plugboard implements the Enigma steckerboard: a partial
// involution on the 26-letter alphabet (spec.md §3, §4.2).
package plugboard

import (
	"fmt"
	"strings"
)

// Plugboard is an array-backed involution: partner[i] is the letter i is
// steckered to, or -1 if i is unpaired (maps to itself).
type Plugboard struct {
	partner [26]int8
}

// New returns an empty plugboard where every letter maps to itself.
func New() *Plugboard {
	p := &Plugboard{}
	for i := range p.partner {
		p.partner[i] = -1
	}
	return p
}

// Parse builds a plugboard from a whitespace-separated string of two-letter
// lowercase groups, e.g. "ab cd". Any group of other length is a format
// error, matching original_source/src/PlugBoard.java's string constructor.
func Parse(pairs string) (*Plugboard, error) {
	p := New()
	pairs = strings.TrimSpace(pairs)
	if pairs == "" {
		return p, nil
	}

	for _, group := range strings.Fields(strings.ToLower(pairs)) {
		if len(group) != 2 {
			return nil, fmt.Errorf("plugboard: stecker pairs must be provided in groupings of two, got %q", group)
		}
		if err := p.Add(int(group[0]-'a'), int(group[1]-'a')); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Add installs a stecker pair: a is steckered to b and b to a.
func (p *Plugboard) Add(a, b int) error {
	if a < 0 || a > 25 || b < 0 || b > 25 {
		return fmt.Errorf("plugboard: letters must be in range a-z")
	}
	p.partner[a] = int8(b)
	p.partner[b] = int8(a)
	return nil
}

// Swap returns the stecker partner of c, or c itself if unpaired.
func (p *Plugboard) Swap(c int) int {
	if p.partner[c] < 0 {
		return c
	}
	return int(p.partner[c])
}

// String renders the plugboard as space-separated two-letter groups, each
// pair emitted once.
func (p *Plugboard) String() string {
	var b strings.Builder
	seen := [26]bool{}
	for i := 0; i < 26; i++ {
		if p.partner[i] < 0 || seen[i] {
			continue
		}
		j := int(p.partner[i])
		seen[i] = true
		seen[j] = true
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(byte(i) + 'a')
		b.WriteByte(byte(j) + 'a')
	}
	return b.String()
}
