package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// readInput resolves the input file for the named solution and returns its
// non-blank lines, trimmed.
func readInput(name string, args []string) ([]string, error) {
	path, err := cfg.inputPath(name, args)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := &countingReader{r: f}
	lines, err := readLines(cr)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %s", path, err)
	}
	vlogf("read %s: %s in %d lines (%s)",
		path, humanize.Bytes(uint64(cr.n)), len(lines), time.Since(start))
	return lines, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}

// timed runs fn and reports how long it took when -v is set.
func timed(what string, fn func()) {
	start := time.Now()
	fn()
	vlogf("%s took %s", what, time.Since(start))
}
