package main

import (
	"fmt"
	"os"
)

// Process runs the invariant calculator over every extracted tensor
// whose temperature lies in [min, max], in the order the temperatures
// first appear in the file. An error on any record aborts the whole
// batch.
func Process(tensors *TensorMap, min, max float64) ([]Result, error) {
	results := make([]Result, 0, tensors.Len())
	for _, temp := range tensors.Temps() {
		if temp < min || temp > max {
			continue
		}
		chi, _ := tensors.Get(temp)
		res, err := Decompose(chi, temp)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Run ties the pipeline together: parse infile, decompose the tensors
// with temperatures in [min, max], and write the report to outfile.
// It returns the number of records written.
func Run(infile, outfile string, min, max float64) (int, error) {
	f, err := os.Open(infile)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	tensors, err := ParseOrca(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", infile, err)
	}
	results, err := Process(tensors, min, max)
	if err != nil {
		return 0, err
	}
	out, err := os.Create(outfile)
	if err != nil {
		return 0, err
	}
	defer out.Close()
	if err := WriteResults(out, results); err != nil {
		return 0, err
	}
	return len(results), nil
}
