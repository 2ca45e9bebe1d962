package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
)

func init() {
	register("2", day2)
}

func day2(args []string) {
	fs := flag.NewFlagSet("2", flag.ExitOnError)
	interactive := fs.Bool("i", false, "Read box IDs interactively instead of from a file")
	fs.Parse(args)

	if *interactive {
		if err := day2Interactive(); err != nil {
			log.Fatal(err)
		}
		return
	}

	lines, err := readInput("2", fs.Args())
	if err != nil {
		log.Fatal(err)
	}
	ids, err := parseBoxIDs(lines)
	if err != nil {
		log.Fatal(err)
	}

	var cs checksum
	timed("checksum", func() { cs = computeChecksum(ids) })
	vdump("checksum", cs)
	fmt.Println(cs)

	var nd nearDuplicate
	timed("near-duplicate search", func() { nd, err = findNearDuplicate(ids) })
	if err != nil {
		log.Fatal(err)
	}
	vdump("near duplicate", nd)
	fmt.Println(nd)
}

type checksum struct {
	doubles int // IDs with some letter exactly twice
	triples int // IDs with some letter exactly three times
}

func (cs *checksum) add(id boxID) {
	counts := id.counts()
	if counts.hasDouble() {
		cs.doubles++
	}
	if counts.hasTriple() {
		cs.triples++
	}
}

func (cs checksum) value() int { return cs.doubles * cs.triples }

func (cs checksum) String() string {
	return fmt.Sprintf("checksum is %d (from %d, %d)", cs.value(), cs.doubles, cs.triples)
}

func computeChecksum(ids []boxID) checksum {
	var cs checksum
	for _, id := range ids {
		cs.add(id)
	}
	return cs
}

// A nearDuplicate is a pair of IDs that differ in exactly one position.
// id is the later of the two in input order.
type nearDuplicate struct {
	id     boxID
	other  boxID
	common boxID
}

func (nd nearDuplicate) String() string {
	return fmt.Sprintf("common seq: %s (from %s and %s)", nd.common, nd.id, nd.other)
}

var errNoNearDuplicate = errors.New("no pair of box IDs differs by exactly one letter")

// findNearDuplicate returns the first pair of IDs, in input order, that
// differ in exactly one position.
func findNearDuplicate(ids []boxID) (nearDuplicate, error) {
	f := newNearDuplicateFinder()
	for _, id := range ids {
		if nd, ok := f.add(id); ok {
			return nd, nil
		}
	}
	return nearDuplicate{}, errNoNearDuplicate
}

// A nearDuplicateFinder indexes the IDs it has been given by their even and
// odd halves. Any ID at distance 1 from an indexed ID shares one of its
// halves, so only IDs under the same half need to be compared.
type nearDuplicateFinder struct {
	byEven map[string][]boxID
	byOdd  map[string][]boxID
}

func newNearDuplicateFinder() *nearDuplicateFinder {
	return &nearDuplicateFinder{
		byEven: make(map[string][]boxID),
		byOdd:  make(map[string][]boxID),
	}
}

// add checks id against every earlier ID sharing a half with it. If none is
// at distance 1, id is indexed and add returns false.
func (f *nearDuplicateFinder) add(id boxID) (nearDuplicate, bool) {
	even, odd := id.split()
	evenKey, oddKey := string(even), string(odd)
	if nd, ok := closest(id, f.byEven[evenKey]); ok {
		return nd, true
	}
	if nd, ok := closest(id, f.byOdd[oddKey]); ok {
		return nd, true
	}
	f.byEven[evenKey] = append(f.byEven[evenKey], id)
	f.byOdd[oddKey] = append(f.byOdd[oddKey], id)
	return nearDuplicate{}, false
}

// closest returns the first candidate at distance 1 from id. Sharing a half
// does not imply distance 1 (the other half may differ in several places,
// or not at all), so every candidate is checked.
func closest(id boxID, candidates []boxID) (nearDuplicate, bool) {
	for _, other := range candidates {
		if common, ok := id.atDistance1(other); ok {
			return nearDuplicate{id: id, other: other, common: common}, true
		}
	}
	return nearDuplicate{}, false
}

// A lineReader is the part of *readline.Instance used by the interactive
// session.
type lineReader interface {
	Readline() (string, error)
}

func day2Interactive() error {
	historyFile := ""
	if cacheDir, err := os.UserCacheDir(); err == nil {
		historyFile = filepath.Join(cacheDir, "advent-history")
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "box ID> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		return err
	}
	defer l.Close()
	return runInteractive(l, os.Stdout)
}

// runInteractive feeds IDs read from r to a finder until it reports a
// near-duplicate or r is exhausted. Lines that are not box IDs are reported
// and skipped.
func runInteractive(r lineReader, w io.Writer) error {
	f := newNearDuplicateFinder()
	var cs checksum
	for {
		line, err := r.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			fmt.Fprintln(w, cs)
			fmt.Fprintln(w, "no near-duplicate found")
			return nil
		default:
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		id, err := parseBoxID(line)
		if err != nil {
			fmt.Fprintln(w, err)
			continue
		}
		cs.add(id)
		if nd, ok := f.add(id); ok {
			fmt.Fprintln(w, cs)
			fmt.Fprintln(w, nd)
			return nil
		}
	}
}
