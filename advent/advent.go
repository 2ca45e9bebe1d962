package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/kr/pretty"
)

var (
	configPath = flag.String("config", "", "INI file with default input paths (default $HOME/.config/advent/config.ini)")
	fgprofPath = flag.String("fgprof", "", "Write a wall-clock profile of the run to this file")
	verbose    = flag.Bool("v", false, "Print input sizes, timings, and results to stderr")
)

var cfg *config

func main() {
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	fn, ok := solutions[flag.Arg(0)]
	if !ok {
		log.Fatalf("unknown solution %q", flag.Arg(0))
	}

	var err error
	cfg, err = loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	if *fgprofPath != "" {
		stop, err := startProfile(*fgprofPath)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			if err := stop(); err != nil {
				log.Fatal(err)
			}
		}()
	}

	fn(flag.Args()[1:])
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [solution] [args...]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range solutionNames() {
		fmt.Fprintln(os.Stderr, name)
	}
	fmt.Fprintln(os.Stderr, "and flags are:")
	flag.PrintDefaults()
}

var solutions = make(map[string]func([]string))

func register(name string, fn func([]string)) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

func solutionNames() []string {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	return names
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}

func vlogf(format string, args ...interface{}) {
	if *verbose {
		log.Printf(format, args...)
	}
}

// vdump pretty-prints v to stderr when -v is set.
func vdump(label string, v interface{}) {
	if *verbose {
		pretty.Fprintf(os.Stderr, "%s: %# v\n", label, v)
	}
}
