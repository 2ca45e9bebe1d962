package main

import (
	"errors"
	"fmt"
	"log"
	"strconv"
)

func init() {
	register("1", day1)
}

func day1(args []string) {
	lines, err := readInput("1", args)
	if err != nil {
		log.Fatal(err)
	}
	deltas, err := parseDeltas(lines)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("final freq:", finalFrequency(deltas))

	var freq int64
	timed("repeat search", func() {
		freq, err = firstRepeatedFrequency(deltas)
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("first repeating freq:", freq)
}

func parseDeltas(lines []string) ([]int64, error) {
	deltas := make([]int64, len(lines))
	for i, line := range lines {
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s", i+1, err)
		}
		deltas[i] = n
	}
	return deltas, nil
}

func finalFrequency(deltas []int64) int64 {
	var freq int64
	for _, d := range deltas {
		freq += d
	}
	return freq
}

var (
	errEmptyInput = errors.New("empty input")
	errNoRepeat   = errors.New("no frequency is ever repeated")
)

// firstRepeatedFrequency applies deltas cyclically, starting from 0, and
// returns the first running total reached twice. The starting 0 itself is
// not counted as reached.
func firstRepeatedFrequency(deltas []int64) (int64, error) {
	if len(deltas) == 0 {
		return 0, errEmptyInput
	}
	if !repeats(deltas) {
		return 0, errNoRepeat
	}
	seen := make(map[int64]struct{})
	var freq int64
	for i := 0; ; i = (i + 1) % len(deltas) {
		freq += deltas[i]
		if _, ok := seen[freq]; ok {
			return freq, nil
		}
		seen[freq] = struct{}{}
	}
}

// repeats reports whether cycling through deltas ever yields the same
// running total twice. Pass k reaches s+(k-1)*drift for each prefix sum s
// of the first pass, so with a non-zero drift a repeat needs two prefix
// sums in the same residue class mod drift.
func repeats(deltas []int64) bool {
	drift := finalFrequency(deltas)
	if drift == 0 {
		return true
	}
	if drift < 0 {
		drift = -drift
	}
	classes := make(map[int64]struct{})
	var sum int64
	for _, d := range deltas {
		sum += d
		r := sum % drift
		if r < 0 {
			r += drift
		}
		if _, ok := classes[r]; ok {
			return true
		}
		classes[r] = struct{}{}
	}
	return false
}
