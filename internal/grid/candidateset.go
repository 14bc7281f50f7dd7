package grid

import (
	"math/bits"
	"strconv"
	"strings"
)

// CandidateSet represents the candidate values of a single cell as a bitmask.
// Bit v is set iff value v is a candidate. Bit 0 is never set, so the mask
// works for any grid size up to the word width.
type CandidateSet uint32

// NewCandidates creates a CandidateSet holding the given values.
func NewCandidates(values []int) CandidateSet {
	var c CandidateSet
	for _, v := range values {
		c = c.Set(v)
	}
	return c
}

// FullCandidates returns the CandidateSet holding every value 1..size.
func FullCandidates(size int) CandidateSet {
	return CandidateSet(1<<(size+1) - 2)
}

// SingleCandidate returns the CandidateSet holding only the given value.
func SingleCandidate(v int) CandidateSet {
	return CandidateSet(1 << v)
}

// Has returns true if the value is a candidate.
func (c CandidateSet) Has(v int) bool {
	return c&(1<<v) != 0
}

// Set adds a value and returns the new bitmask.
func (c CandidateSet) Set(v int) CandidateSet {
	if v < 1 {
		return c
	}
	return c | (1 << v)
}

// Clear removes a value and returns the new bitmask.
func (c CandidateSet) Clear(v int) CandidateSet {
	return c &^ (1 << v)
}

// Count returns the number of candidate values.
func (c CandidateSet) Count() int {
	return bits.OnesCount32(uint32(c))
}

// IsEmpty returns true if there are no candidates.
func (c CandidateSet) IsEmpty() bool {
	return c == 0
}

// First returns the smallest candidate, or 0 if the set is empty.
func (c CandidateSet) First() int {
	if c == 0 {
		return 0
	}
	return bits.TrailingZeros32(uint32(c))
}

// Only returns the single candidate if there is exactly one, else (0, false).
func (c CandidateSet) Only() (int, bool) {
	if c.Count() != 1 {
		return 0, false
	}
	return c.First(), true
}

// Digits returns the candidate values in ascending order.
func (c CandidateSet) Digits() []int {
	result := make([]int, 0, c.Count())
	for m := c; m != 0; m &= m - 1 {
		result = append(result, bits.TrailingZeros32(uint32(m)))
	}
	return result
}

// Intersect returns candidates present in both bitmasks.
func (c CandidateSet) Intersect(other CandidateSet) CandidateSet {
	return c & other
}

// Union returns candidates present in either bitmask.
func (c CandidateSet) Union(other CandidateSet) CandidateSet {
	return c | other
}

// Subtract returns candidates in c but not in other.
func (c CandidateSet) Subtract(other CandidateSet) CandidateSet {
	return c &^ other
}

// Xor returns candidates present in exactly one of the bitmasks.
func (c CandidateSet) Xor(other CandidateSet) CandidateSet {
	return c ^ other
}

// Complement returns the candidates of 1..size that are not in c.
func (c CandidateSet) Complement(size int) CandidateSet {
	return ^c & FullCandidates(size)
}

// Filter returns the candidates for which the predicate holds.
func (c CandidateSet) Filter(pred func(v int) bool) CandidateSet {
	var result CandidateSet
	for m := c; m != 0; m &= m - 1 {
		v := bits.TrailingZeros32(uint32(m))
		if pred(v) {
			result = result.Set(v)
		}
	}
	return result
}

// String returns a compact representation for debugging and descriptions.
func (c CandidateSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range c.Digits() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte('}')
	return sb.String()
}
