package main

import (
	"fmt"
	"math"
	"strconv"
)

const EPS = 1e-14

// toFloat converts a list of strings to float64s using
// strconv.ParseFloat
func toFloat(strs []string) ([]float64, error) {
	ret := make([]float64, len(strs))
	var err error
	for i, s := range strs {
		ret[i], err = strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed float %q", s)
		}
	}
	return ret, nil
}

// Equal compares a and b to within EPS
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= EPS
}
