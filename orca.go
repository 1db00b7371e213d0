package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Markers delimiting the susceptibility data in the SOC CORRECTED
// MAGNETIZATION AND/OR SUSCEPTIBILITY section of an ORCA output file
const (
	tempMarker   = "TEMPERATURE/K:"
	tensorMarker = "Tensor in molecular frame"
)

// ParseError describes a malformed line in an ORCA output file.
// Line is 1-based.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// TensorMap associates temperatures with their raw susceptibility
// tensors. Keys are unique; setting an existing temperature replaces
// its tensor but keeps the original position, so Temps follows the
// order of first appearance in the file.
type TensorMap struct {
	temps   []float64
	tensors map[float64]*mat.SymDense
}

func NewTensorMap() *TensorMap {
	return &TensorMap{tensors: make(map[float64]*mat.SymDense)}
}

// Set inserts tensor under temp, overwriting any previous entry
func (tm *TensorMap) Set(temp float64, tensor *mat.SymDense) {
	if _, ok := tm.tensors[temp]; !ok {
		tm.temps = append(tm.temps, temp)
	}
	tm.tensors[temp] = tensor
}

func (tm *TensorMap) Get(temp float64) (*mat.SymDense, bool) {
	t, ok := tm.tensors[temp]
	return t, ok
}

// Temps returns the temperatures in insertion order
func (tm *TensorMap) Temps() []float64 {
	return tm.temps
}

func (tm *TensorMap) Len() int {
	return len(tm.temps)
}

// ParseOrca extracts the temperature-dependent susceptibility tensors
// from an ORCA output file. A TEMPERATURE/K: line sets the current
// temperature from its last field, and each following "Tensor in
// molecular frame" header contributes the next 3 lines as a 3x3
// tensor under that temperature. Any malformed line aborts the whole
// extraction with a *ParseError; no partial map is returned.
func ParseOrca(r io.Reader) (*TensorMap, error) {
	scanner := bufio.NewScanner(r)
	tensors := NewTensorMap()
	var (
		curTemp  float64
		haveTemp bool
		lineno   int
	)
	for scanner.Scan() {
		line := scanner.Text()
		lineno++
		switch {
		case strings.Contains(line, tempMarker):
			fields := strings.Fields(line)
			last := fields[len(fields)-1]
			v, err := strconv.ParseFloat(last, 64)
			if err != nil {
				return nil, &ParseError{lineno,
					fmt.Sprintf("malformed temperature %q", last)}
			}
			curTemp = v
			haveTemp = true
		case strings.Contains(line, tensorMarker):
			if !haveTemp {
				return nil, &ParseError{lineno,
					"tensor block before any temperature"}
			}
			header := lineno
			data := make([]float64, 0, 9)
			for i := 0; i < 3; i++ {
				if !scanner.Scan() {
					return nil, &ParseError{header,
						"truncated tensor block"}
				}
				lineno++
				fields := strings.Fields(scanner.Text())
				if len(fields) != 3 {
					return nil, &ParseError{lineno,
						fmt.Sprintf("want 3 tensor components, got %d",
							len(fields))}
				}
				row, err := toFloat(fields)
				if err != nil {
					return nil, &ParseError{lineno, err.Error()}
				}
				data = append(data, row...)
			}
			tensors.Set(curTemp, mat.NewSymDense(3, data))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return tensors, nil
}
