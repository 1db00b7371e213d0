package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func testTensor() *mat.SymDense {
	return mat.NewSymDense(3, []float64{
		1, 0, 0,
		0, 2, 0,
		0, 0, 4,
	})
}

func TestProcessFilter(t *testing.T) {
	tm := NewTensorMap()
	tm.Set(100.0, testTensor())
	tm.Set(10.0, testTensor())
	tm.Set(300.0, testTensor())
	got, err := Process(tm, 10.0, 100.0)
	if err != nil {
		t.Fatal(err)
	}
	wantTemps := []float64{100.0, 10.0}
	if len(got) != len(wantTemps) {
		t.Fatalf("got %d results, wanted %d\n", len(got), len(wantTemps))
	}
	for i, r := range got {
		if r.Temp != wantTemps[i] {
			t.Errorf("got %v, wanted %v\n", r.Temp, wantTemps[i])
		}
		if r.Temp < 10.0 || r.Temp > 100.0 {
			t.Errorf("temperature %v outside [10, 100]\n", r.Temp)
		}
	}
}

func TestProcessAborts(t *testing.T) {
	tm := NewTensorMap()
	tm.Set(50.0, testTensor())
	tm.Set(0.0, testTensor())
	got, err := Process(tm, 0.0, 100.0)
	if got != nil {
		t.Errorf("got %v, wanted no partial results\n", got)
	}
	var de *DomainError
	if !errors.As(err, &de) {
		t.Errorf("got %v, wanted a DomainError\n", err)
	}
}

func TestRun(t *testing.T) {
	outfile := filepath.Join(t.TempDir(), "results.txt")
	n, err := Run("testfiles/chi.out", outfile, 2.0, 300.0)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("got %d results, wanted 3\n", n)
	}
	cont, err := os.ReadFile(outfile)
	if err != nil {
		t.Fatal(err)
	}
	report := string(cont)
	if !strings.HasPrefix(report, "Temperature: 2 K\n") {
		t.Errorf("got %q, wanted a report starting at 2 K\n", report)
	}
	if c := strings.Count(report, "Temperature:"); c != 3 {
		t.Errorf("got %d blocks, wanted 3\n", c)
	}
}

func TestRunRange(t *testing.T) {
	outfile := filepath.Join(t.TempDir(), "results.txt")
	n, err := Run("testfiles/chi.out", outfile, 10.0, 100.0)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("got %d results, wanted 1\n", n)
	}
}
