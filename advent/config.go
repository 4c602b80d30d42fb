package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vaughan0/go-ini"
)

const defaultConfigFile = "advent.ini"

// config holds the settings from the INI file. The [advent] section sets
// global options; a section named after a solution (e.g. [5]) holds its
// input paths and any puzzle-specific settings.
type config struct {
	file    ini.File
	dir     string
	verbose bool
}

// loadConfig reads the named INI file. An empty name means the default
// file, which may be absent.
func loadConfig(name string) (*config, error) {
	cfg := &config{file: make(ini.File), dir: "."}
	explicit := name != ""
	if !explicit {
		name = defaultConfigFile
	}
	file, err := ini.LoadFile(name)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error loading config (%s): %s", name, err)
	}
	cfg.file = file

	global := file.Section("advent")
	if dir, ok := global["dir"]; ok {
		// Relative input paths are relative to the config file.
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(filepath.Dir(name), dir)
		}
		cfg.dir = dir
	}
	if v, ok := global["verbose"]; ok {
		cfg.verbose, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: bad verbose setting %q", name, v)
		}
	}
	return cfg, nil
}

// sources returns the inputs to run the named solution against. Files
// given on the command line take precedence; otherwise the solution's
// config section may name a test and a real input, each defaulting to the
// files under the day's directory, e.g. 05/input-test.txt and
// 05/input.txt.
func (c *config) sources(name string, args []string) []source {
	if len(args) > 0 {
		srcs := make([]source, len(args))
		for i, arg := range args {
			srcs[i] = source{name: arg, path: arg}
		}
		return srcs
	}
	n, _ := splitName(name)
	dayDir := filepath.Join(c.dir, fmt.Sprintf("%02d", n))
	section := c.file[name]
	test, ok := section["test"]
	if !ok {
		test = filepath.Join(dayDir, "input-test.txt")
	}
	prod, ok := section["input"]
	if !ok {
		prod = filepath.Join(dayDir, "input.txt")
	}
	return []source{
		{name: "Test data", path: test},
		{name: "Prod data", path: prod},
	}
}

// intPair reads a setting of two comma-separated integers, neither less
// than least. It returns def if the key is absent.
func intPair(section ini.Section, key string, def [2]int, least int) ([2]int, error) {
	v, ok := section[key]
	if !ok {
		return def, nil
	}
	var pair [2]int
	parts := strings.Split(v, ",")
	if len(parts) != len(pair) {
		return pair, fmt.Errorf("%s setting %q: need two values", key, v)
	}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < least {
			return pair, fmt.Errorf("%s setting %q: bad value %q", key, v, p)
		}
		pair[i] = n
	}
	return pair, nil
}
