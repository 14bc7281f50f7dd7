package grid

import (
	"github.com/bits-and-blooms/bitset"
)

// Placement is a (cell, value) pair.
type Placement struct {
	Cell  int
	Value int
}

// PlacementSet is a set of (cell, value) pairs backed by a word-vector
// bitmask of N^3 bits, where the pair (cell, value) lives at bit index
// N*cell + (value-1).
type PlacementSet struct {
	bits *bitset.BitSet
	size int
}

// NewPlacementSet creates an empty PlacementSet for a grid of the given size.
func NewPlacementSet(size int) *PlacementSet {
	return &PlacementSet{
		bits: bitset.New(uint(size * size * size)),
		size: size,
	}
}

// FullPlacementSet creates a PlacementSet holding every (cell, value) pair.
func FullPlacementSet(size int) *PlacementSet {
	return NewPlacementSet(size).Complement()
}

// PlacementSetOf creates a PlacementSet holding the given placements.
func PlacementSetOf(size int, placements ...Placement) *PlacementSet {
	p := NewPlacementSet(size)
	for _, pl := range placements {
		p.Add(pl)
	}
	return p
}

func (p *PlacementSet) index(pl Placement) uint {
	return uint(p.size*pl.Cell + pl.Value - 1)
}

// Add inserts a placement into the set.
func (p *PlacementSet) Add(pl Placement) {
	p.bits.Set(p.index(pl))
}

// Remove deletes a placement from the set.
func (p *PlacementSet) Remove(pl Placement) {
	p.bits.Clear(p.index(pl))
}

// Contains returns true if the placement is in the set.
func (p *PlacementSet) Contains(pl Placement) bool {
	return p.bits.Test(p.index(pl))
}

// ContainsAll returns true if every placement of other is in p.
func (p *PlacementSet) ContainsAll(other *PlacementSet) bool {
	return p.bits.IsSuperSet(other.bits)
}

// Count returns the number of placements in the set.
func (p *PlacementSet) Count() int {
	return int(p.bits.Count())
}

// IsEmpty returns true if the set holds no placements.
func (p *PlacementSet) IsEmpty() bool {
	return p.bits.None()
}

// First returns the smallest placement in bit order, or (Placement{}, false).
func (p *PlacementSet) First() (Placement, bool) {
	idx, ok := p.bits.NextSet(0)
	if !ok {
		return Placement{}, false
	}
	return Placement{Cell: int(idx) / p.size, Value: int(idx)%p.size + 1}, true
}

// Placements returns all placements in ascending bit order.
func (p *PlacementSet) Placements() []Placement {
	result := make([]Placement, 0, p.Count())
	for idx, ok := p.bits.NextSet(0); ok; idx, ok = p.bits.NextSet(idx + 1) {
		result = append(result, Placement{Cell: int(idx) / p.size, Value: int(idx)%p.size + 1})
	}
	return result
}

// Clone returns an independent copy of the set.
func (p *PlacementSet) Clone() *PlacementSet {
	return &PlacementSet{bits: p.bits.Clone(), size: p.size}
}

// Intersect returns the placements present in both sets.
func (p *PlacementSet) Intersect(other *PlacementSet) *PlacementSet {
	return &PlacementSet{bits: p.bits.Intersection(other.bits), size: p.size}
}

// Union returns the placements present in either set.
func (p *PlacementSet) Union(other *PlacementSet) *PlacementSet {
	return &PlacementSet{bits: p.bits.Union(other.bits), size: p.size}
}

// Complement returns the placements not in p. The backing bitset is sized to
// exactly N^3 bits, so the flip never leaks bits beyond the last placement.
func (p *PlacementSet) Complement() *PlacementSet {
	return &PlacementSet{bits: p.bits.Complement(), size: p.size}
}

// Filter returns the placements for which the predicate holds.
func (p *PlacementSet) Filter(pred func(pl Placement) bool) *PlacementSet {
	result := NewPlacementSet(p.size)
	for _, pl := range p.Placements() {
		if pred(pl) {
			result.Add(pl)
		}
	}
	return result
}

// Equal returns true if both sets hold exactly the same placements.
func (p *PlacementSet) Equal(other *PlacementSet) bool {
	return p.size == other.size && p.bits.Equal(other.bits)
}

// IntersectionOfPlacements returns the intersection of the given sets,
// starting from the full set for the given grid size.
func IntersectionOfPlacements(sets []*PlacementSet, size int) *PlacementSet {
	result := FullPlacementSet(size)
	for _, s := range sets {
		result.bits.InPlaceIntersection(s.bits)
	}
	return result
}
