package main

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

const (
	// CODATA 2010 value, matching the constant ORCA prints with
	avogadro = 6.02214129e23
	// Å³ per m³, applied to the anisotropy scalars on the way out
	toCubicMeters = 1e-30
)

// DomainError reports a physically meaningless input to the invariant
// calculation, like a zero temperature.
type DomainError struct {
	Temp float64
	Msg  string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("T = %g K: %s", e.Temp, e.Msg)
}

// Result holds the decomposition of one temperature's susceptibility
// tensor. Traceless and Eigs are in the converted units; the
// anisotropy scalars and Iso carry the final 1e-30 scaling, making
// them m³ quantities. RhRel is dimensionless.
type Result struct {
	Temp      float64
	Traceless *mat.SymDense
	Eigs      [3]float64
	Ax1, Rh1  float64
	Ax2, Rh2  float64
	RhRel     float64
	Iso       float64
}

// Convert scales chi by 4π·10²⁴/(Nₐ·T), taking the molar cgs tensor
// ORCA prints to volume susceptibility units
func Convert(chi mat.Symmetric, temp float64) (*mat.SymDense, error) {
	if temp == 0 {
		return nil, &DomainError{temp, "unit conversion divides by zero"}
	}
	factor := 4 * math.Pi * 1e24 / (avogadro * temp)
	var ret mat.SymDense
	ret.ScaleSym(factor, chi)
	return &ret, nil
}

// Traceless subtracts the isotropic component trace/3·I₃ from chi,
// leaving only the anisotropic part. The result has zero trace to
// floating-point precision.
func Traceless(chi mat.Symmetric) *mat.SymDense {
	iso := mat.Trace(chi) / 3.0
	ret := mat.NewSymDense(3, nil)
	ret.CopySym(chi)
	for i := 0; i < 3; i++ {
		ret.SetSym(i, i, chi.At(i, i)-iso)
	}
	return ret
}

// Mehring returns the eigenvalues of m sorted ascending by absolute
// value, the Mehring convention from magnetic resonance. Ties keep
// the ascending-value order of the underlying decomposition.
func Mehring(m *mat.SymDense) ([3]float64, error) {
	var eig mat.EigenSym
	if ok := eig.Factorize(m, false); !ok {
		return [3]float64{}, fmt.Errorf("eigendecomposition failed")
	}
	vals := eig.Values(nil)
	sort.SliceStable(vals, func(i, j int) bool {
		return math.Abs(vals[i]) < math.Abs(vals[j])
	})
	return [3]float64{vals[0], vals[1], vals[2]}, nil
}

// Decompose converts chi at temperature temp, reduces it to its
// traceless part, and derives the Mehring-ordered eigenvalues and the
// axiality, rhombicity, and isotropy invariants
func Decompose(chi mat.Symmetric, temp float64) (Result, error) {
	conv, err := Convert(chi, temp)
	if err != nil {
		return Result{}, err
	}
	traceless := Traceless(conv)
	eigs, err := Mehring(traceless)
	if err != nil {
		return Result{}, fmt.Errorf("T = %g K: %w", temp, err)
	}
	if eigs[0] == 0 {
		return Result{}, &DomainError{temp,
			"relative rhombicity divides by zero eigenvalue"}
	}
	return Result{
		Temp:      temp,
		Traceless: traceless,
		Eigs:      eigs,
		Ax1:       1.5 * eigs[2] * toCubicMeters,
		Rh1:       (eigs[0] - eigs[1]) / 2 * toCubicMeters,
		Ax2:       (eigs[2] - (eigs[0]+eigs[1])/2) * toCubicMeters,
		Rh2:       (eigs[0] - eigs[1]) * toCubicMeters,
		RhRel:     math.Abs((eigs[0] - eigs[1]) / eigs[0]),
		Iso:       mat.Trace(conv) / 3.0 * toCubicMeters,
	}, nil
}
