package domain

import (
	"encoding/json"
	"strconv"
)

// NoteSet is a set of pencil-marked candidate digits 1-9, one bit per digit.
type NoteSet uint16

// Has reports whether digit d is marked.
func (n NoteSet) Has(d uint8) bool {
	if d < 1 || d > 9 {
		return false
	}
	return n&(1<<d) != 0
}

// Toggle flips membership of digit d and returns the updated set.
func (n NoteSet) Toggle(d uint8) NoteSet {
	if d < 1 || d > 9 {
		return n
	}
	return n ^ (1 << d)
}

// Empty reports whether no digits are marked.
func (n NoteSet) Empty() bool { return n == 0 }

// Digits returns the marked digits in ascending order, nil when empty.
func (n NoteSet) Digits() []uint8 {
	if n == 0 {
		return nil
	}
	out := make([]uint8, 0, 9)
	for d := uint8(1); d <= 9; d++ {
		if n.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// MarshalJSON encodes the set as a sorted digit list.
func (n NoteSet) MarshalJSON() ([]byte, error) {
	// []uint8 would marshal as a base64 string, so copy into []int.
	digits := n.Digits()
	out := make([]int, len(digits))
	for i, d := range digits {
		out[i] = int(d)
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts either a digit list ([4,7]) or a sparse presence
// map ({"4":true,"7":true}); both normalize to the same set. Out-of-range
// digits are dropped.
func (n *NoteSet) UnmarshalJSON(data []byte) error {
	var list []int
	if err := json.Unmarshal(data, &list); err == nil {
		set := NoteSet(0)
		for _, d := range list {
			if d >= 1 && d <= 9 {
				set |= 1 << uint(d)
			}
		}
		*n = set
		return nil
	}
	var m map[string]bool
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	set := NoteSet(0)
	for k, present := range m {
		if !present {
			continue
		}
		d, err := strconv.Atoi(k)
		if err != nil || d < 1 || d > 9 {
			continue
		}
		set |= 1 << uint(d)
	}
	*n = set
	return nil
}
