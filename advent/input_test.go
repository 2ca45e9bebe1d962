package main

import (
	"os"
	"reflect"
	"strings"
	"testing"
)

func TestReadLines(t *testing.T) {
	got, err := readLines(strings.NewReader("+1\n  -2 \n\n+3\n\n"))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"+1", "-2", "+3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestReadInput(t *testing.T) {
	path := writeFile(t, "day2.txt", "abcde\nfghij\nklmno\npqrst\nfguij\naxcye\nwvxyz\n")
	lines, err := readInput("2", []string{path})
	if err != nil {
		t.Fatal(err)
	}
	ids, err := parseBoxIDs(lines)
	if err != nil {
		t.Fatal(err)
	}
	nd, err := findNearDuplicate(ids)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := nd.common.String(), "fgij"; got != want {
		t.Errorf("got common %q; want %q", got, want)
	}

	if _, err := readInput("2", []string{path + ".missing"}); !os.IsNotExist(err) {
		t.Errorf("missing input: got err %v; want not-exist", err)
	}
}

func TestStartProfile(t *testing.T) {
	path := writeFile(t, "fgprof.pprof", "")
	stop, err := startProfile(path)
	if err != nil {
		t.Fatal(err)
	}
	_ = computeChecksum(mustParseBoxIDs(t, "abcde", "aabbb"))
	if err := stop(); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Error("profile is empty")
	}
}
