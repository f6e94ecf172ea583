package nemid

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// CodeGenerator produces one-time numeric codes.
type CodeGenerator interface {
	Generate(digits int) (uint64, error)
}

// DigitGenerator draws each digit independently and uniformly from [0,9] and
// parses the concatenation as an integer, so leading zeros shorten the value.
// It is not suitable for secrets.
type DigitGenerator struct{}

func (DigitGenerator) Generate(digits int) (uint64, error) {
	if digits < 1 || digits > 19 {
		return 0, fmt.Errorf("generate code: %d digits out of range [1,19]", digits)
	}
	var b strings.Builder
	b.Grow(digits)
	for i := 0; i < digits; i++ {
		// top-level math/rand/v2 functions are safe for concurrent use
		b.WriteByte(byte('0' + rand.IntN(10)))
	}
	return strconv.ParseUint(b.String(), 10, 64)
}
