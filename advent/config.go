package main

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/vaughan0/go-ini"
)

// A config holds the [inputs] section of the advent config file:
//
//	[inputs]
//	dir = /home/me/aoc2018
//	2 = /elsewhere/ids.txt
//
// A per-solution key wins over dir; dir resolves to dir/day<name>.txt.
type config struct {
	inputs ini.Section
}

func loadConfig(path string) (*config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = defaultConfigPath()
		if err != nil {
			return nil, err
		}
	}
	file, err := ini.LoadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &config{inputs: ini.Section{}}, nil
		}
		return nil, fmt.Errorf("error loading advent config (%s): %s", path, err)
	}
	return &config{inputs: file.Section("inputs")}, nil
}

func defaultConfigPath() (string, error) {
	user, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("cannot get current user: %s", err)
	}
	if user.HomeDir == "" {
		return "", fmt.Errorf("current user (%s) has no home dir", user.Username)
	}
	return filepath.Join(user.HomeDir, ".config", "advent", "config.ini"), nil
}

// inputPath picks the input file for a solution. An explicit argument
// always wins.
func (c *config) inputPath(name string, args []string) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("need at most 1 arg (input file); got %d", len(args))
	}
	if len(args) == 1 {
		return args[0], nil
	}
	if c != nil {
		if path, ok := c.inputs[name]; ok && path != "" {
			return path, nil
		}
		if dir, ok := c.inputs["dir"]; ok && dir != "" {
			return filepath.Join(dir, "day"+name+".txt"), nil
		}
	}
	return "", fmt.Errorf("no input file given for solution %s and none configured", name)
}
