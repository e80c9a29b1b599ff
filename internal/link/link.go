package link

import "math/rand/v2"

const (
	MinLength = 10
	MaxLength = 14
)

// Generate returns a random alphabetic token used as a container name.
// Uniqueness is probabilistic: nothing checks the storage directory for an
// existing container with the same name, and a collision between two
// concurrent uploads lets the later seal replace the earlier archive.
func Generate() string {
	n := MinLength + rand.IntN(MaxLength-MinLength+1)
	b := make([]byte, n)
	for i := range b {
		if rand.IntN(2) == 0 {
			b[i] = byte('A' + rand.IntN(26))
		} else {
			b[i] = byte('a' + rand.IntN(26))
		}
	}
	return string(b)
}

func Valid(s string) bool {
	if len(s) < MinLength || len(s) > MaxLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}
