package main

import (
	"io"
	"math"
	"os"

	"github.com/BurntSushi/toml"
)

// Config describes one run: which ORCA output file to read, where to
// write the report, and the inclusive temperature window to keep
type Config struct {
	Infile  string
	Outfile string
	MinTemp float64
	MaxTemp float64
}

// LoadConfig reads a TOML run configuration from filename. Fields
// missing from the file keep their defaults.
func LoadConfig(filename string) (Config, error) {
	// Defaults
	conf := Config{
		Outfile: "results.txt",
		MinTemp: 0,
		MaxTemp: math.MaxFloat64,
	}
	f, err := os.Open(filename)
	if err != nil {
		return conf, err
	}
	defer f.Close()
	cont, err := io.ReadAll(f)
	if err != nil {
		return conf, err
	}
	if err := toml.Unmarshal(cont, &conf); err != nil {
		return conf, err
	}
	return conf, nil
}
