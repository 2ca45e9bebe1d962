package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfigInputPath(t *testing.T) {
	path := writeFile(t, "config.ini", `
[inputs]
dir = /data/aoc
2 = /elsewhere/ids.txt

[other]
1 = /ignored
`)
	c, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range []struct {
		name string
		args []string
		want string
	}{
		{"1", nil, filepath.Join("/data/aoc", "day1.txt")},
		{"2", nil, "/elsewhere/ids.txt"},
		{"2", []string{"x.txt"}, "x.txt"},
	} {
		got, err := c.inputPath(tt.name, tt.args)
		if err != nil {
			t.Errorf("inputPath(%q, %q): %s", tt.name, tt.args, err)
			continue
		}
		if got != tt.want {
			t.Errorf("inputPath(%q, %q): got %q; want %q", tt.name, tt.args, got, tt.want)
		}
	}
	if _, err := c.inputPath("1", []string{"a", "b"}); err == nil {
		t.Error("inputPath with 2 args: got nil error")
	}
}

func TestConfigNoInputs(t *testing.T) {
	c, err := loadConfig(writeFile(t, "config.ini", "[other]\nx = y\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.inputPath("1", nil); err == nil {
		t.Error("got nil error with no configured input")
	}
	var nilConfig *config
	if got, err := nilConfig.inputPath("1", []string{"in.txt"}); err != nil || got != "in.txt" {
		t.Errorf("nil config: got (%q, %v); want (\"in.txt\", nil)", got, err)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.ini")
	if _, err := loadConfig(missing); err == nil {
		t.Error("explicit missing config: got nil error")
	}
}
