// Package alphabet converts between the 26-letter cipher alphabet and
// zero-based integer offsets. Every other package in this module works in
// terms of these offsets; only presentation code deals in characters.
package alphabet

// Size is the number of letters in the alphabet the Enigma and Bombe
// operate over.
const Size = 26

// ToIndex converts a lowercase letter 'a'..'z' to its offset 0..25.
func ToIndex(c byte) int {
	return int(c - 'a')
}

// ToLetter converts an offset 0..25 to its lowercase letter.
func ToLetter(i int) byte {
	return byte(i) + 'a'
}
