package rotor

// Wiring is an immutable rotor core: a fixed bijection over the 26-letter
// alphabet plus, for movable wheels, the turnover letter at which the
// prawl catches and steps the rotor to its left. Reflectors share the same
// representation with no turnover.
type Wiring struct {
	Name    string
	Forward [26]byte // Forward[i] is the contact reached from contact i.
	Inverse [26]byte // Inverse[Forward[i]] == i, precomputed once.
	Turnover int     // offset 0..25, or -1 for reflectors (no turnover).
}

func newWiring(name, forward string, turnover int) Wiring {
	var w Wiring
	w.Name = name
	w.Turnover = turnover
	for i := 0; i < 26; i++ {
		out := forward[i] - 'A'
		w.Forward[i] = out
		w.Inverse[out] = byte(i)
	}
	return w
}

// Historical rotor wirings I-V and reflectors B and C, per the Wehrmacht
// Enigma I wheel order. Turnover indexes are 0-based offsets from 'a'.
var (
	RotorI    = newWiring("I", "EKMFLGDQVZNTOWYHXUSPAIBRCJ", 16)   // Q
	RotorII   = newWiring("II", "AJDKSIRUXBLHWTMCQGZNPYFVOE", 4)   // E
	RotorIII  = newWiring("III", "BDFHJLCPRTXVZNYEIWGAKMUSQO", 21) // V
	RotorIV   = newWiring("IV", "ESOVPZJAYQUIRHXLNFTGKDCMWB", 9)   // J
	RotorV    = newWiring("V", "VZBRGITYUPSDNHLXAWMJQOFECK", 25)   // Z
	ReflectorB = newWiring("B", "YRUHQSLDPXNGOKMIEBFZCWVJAT", -1)
	ReflectorC = newWiring("C", "FVPJIAOYEDRZXWGCTKUQSBNMHL", -1)
)

// ByName maps the external rotor names (§6: {I, II, III, IV, V}) to wirings.
var ByName = map[string]Wiring{
	"I":   RotorI,
	"II":  RotorII,
	"III": RotorIII,
	"IV":  RotorIV,
	"V":   RotorV,
}

// ReflectorByName maps the external reflector names (§6: B or C).
var ReflectorByName = map[string]Wiring{
	"B": ReflectorB,
	"C": ReflectorC,
}

// Wheels lists the five movable wheels in a fixed order, used by the farm
// driver to enumerate the 5*4*3 = 60 rotor-order permutations.
var Wheels = [5]Wiring{RotorI, RotorII, RotorIII, RotorIV, RotorV}
