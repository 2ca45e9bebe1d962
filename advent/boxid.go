package main

import (
	"fmt"
	"strings"
)

const numSymbols = 26

// A boxID is a box identifier with each letter mapped to 0-25.
// boxIDs are never modified after parsing.
type boxID []byte

func parseBoxID(s string) (boxID, error) {
	id := make(boxID, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
			id[i] = c - 'a'
		case c >= 'A' && c <= 'Z':
			id[i] = c - 'A'
		default:
			return nil, fmt.Errorf("bad box ID %q: non-letter %q at offset %d", s, c, i)
		}
	}
	return id, nil
}

func parseBoxIDs(lines []string) ([]boxID, error) {
	ids := make([]boxID, len(lines))
	for i, line := range lines {
		id, err := parseBoxID(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s", i+1, err)
		}
		ids[i] = id
	}
	return ids, nil
}

func (id boxID) String() string {
	var b strings.Builder
	b.Grow(len(id))
	for _, c := range id {
		b.WriteByte(c + 'a')
	}
	return b.String()
}

// split returns the symbols at even offsets and those at odd offsets.
//
// If two IDs of the same length differ in exactly one position, that
// position is either even or odd, so the other half is identical in both.
func (id boxID) split() (even, odd boxID) {
	even = make(boxID, 0, (len(id)+1)/2)
	odd = make(boxID, 0, len(id)/2)
	for i, c := range id {
		if i%2 == 0 {
			even = append(even, c)
		} else {
			odd = append(odd, c)
		}
	}
	return even, odd
}

// atDistance1 reports whether id and other have the same length and differ
// in exactly one position. If so, it returns id with that position removed.
func (id boxID) atDistance1(other boxID) (boxID, bool) {
	if len(id) != len(other) {
		return nil, false
	}
	diff := -1
	for i := range id {
		if id[i] == other[i] {
			continue
		}
		if diff >= 0 {
			return nil, false
		}
		diff = i
	}
	if diff < 0 {
		return nil, false
	}
	common := make(boxID, 0, len(id)-1)
	common = append(common, id[:diff]...)
	common = append(common, id[diff+1:]...)
	return common, true
}

// symbolCounts holds the number of occurrences of each symbol in a boxID.
type symbolCounts [numSymbols]int

func (id boxID) counts() symbolCounts {
	var counts symbolCounts
	for _, c := range id {
		counts[c]++
	}
	return counts
}

func (c *symbolCounts) hasExactly(n int) bool {
	for _, count := range c {
		if count == n {
			return true
		}
	}
	return false
}

func (c *symbolCounts) hasDouble() bool { return c.hasExactly(2) }
func (c *symbolCounts) hasTriple() bool { return c.hasExactly(3) }
