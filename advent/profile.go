package main

import (
	"fmt"
	"os"

	"github.com/felixge/fgprof"
)

// startProfile begins an fgprof wall-clock profile written to path in pprof
// format. The returned func stops profiling and closes the file.
func startProfile(path string) (stop func() error, err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("error creating profile file: %s", err)
	}
	stopProf := fgprof.Start(f, fgprof.FormatPprof)
	return func() error {
		if err := stopProf(); err != nil {
			f.Close()
			return fmt.Errorf("error writing profile: %s", err)
		}
		return f.Close()
	}, nil
}
