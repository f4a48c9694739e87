package test

import "math/rand/v2"

const nameAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// RandomASCIIString returns a lowercase alphanumeric string with a length in [minLen, maxLen].
// Seeded users and services use it so unique columns such as email never collide.
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	buf := make([]byte, minLen+rand.IntN(maxLen-minLen+1))
	for i := range buf {
		buf[i] = nameAlphabet[rand.IntN(len(nameAlphabet))]
	}
	return string(buf)
}
