/*
 * local.go, part of gocdft.
 *
 *
 * Copyright 2024 The gocdft Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package cdft

import (
	"gonum.org/v1/gonum/floats"
)

//QuadraticLocal is the local counterpart of QuadraticGlobal: the electron density at each point
//is fitted to rho(N) = a0 + a1*N + a2*N^2 using the densities of the systems with N0-1, N0
//and N0+1 electrons. All the operations work on whole slices. The object is immutable.
type QuadraticLocal struct {
	zero, plus, minus []float64
	a0, a1, a2        []float64
	n0                float64
}

//NewQuadraticLocal fits the quadratic local model to the densities of the systems with n0 (zero),
//n0+1 (plus) and n0-1 (minus) electrons. The three slices must have the same length, and
//n0 must be a positive integer. The slices are copied.
func NewQuadraticLocal(zero, plus, minus []float64, n0 float64) (*QuadraticLocal, error) {
	if err := checkN0(n0); err != nil {
		return nil, errDecorate(err, "NewQuadraticLocal")
	}
	if err := checkLengths(zero, plus, minus); err != nil {
		return nil, errDecorate(err, "NewQuadraticLocal")
	}
	for _, v := range [][]float64{zero, plus, minus} {
		if err := checkFinite("density point", v...); err != nil {
			return nil, errDecorate(err, "NewQuadraticLocal")
		}
	}
	L := new(QuadraticLocal)
	L.n0 = n0
	L.zero = copySlice(zero)
	L.plus = copySlice(plus)
	L.minus = copySlice(minus)
	l := len(zero)
	//Same formulas as fitQuadratic, for all the points at once.
	L.a2 = make([]float64, l)
	floats.AddTo(L.a2, plus, minus)
	floats.AddScaled(L.a2, -2, zero)
	floats.Scale(0.5, L.a2)

	L.a1 = make([]float64, l)
	floats.SubTo(L.a1, plus, minus)
	floats.Scale(0.5, L.a1)
	floats.AddScaled(L.a1, -2*n0, L.a2)

	L.a0 = copySlice(zero)
	floats.AddScaled(L.a0, -n0, L.a1)
	floats.AddScaled(L.a0, -n0*n0, L.a2)
	return L, nil
}

func copySlice(s []float64) []float64 {
	r := make([]float64, len(s))
	copy(r, s)
	return r
}

//optionalN returns the n given, or n0 if none was given.
func (L *QuadraticLocal) optionalN(n ...float64) (float64, bool, error) {
	switch len(n) {
	case 0:
		return L.n0, false, nil
	case 1:
		if err := checkN(n[0]); err != nil {
			return 0, false, err
		}
		return n[0], true, nil
	default:
		return 0, false, newError("only one number of electrons can be given", "optionalN")
	}
}

//N0 returns the number of electrons of the reference system.
func (L *QuadraticLocal) N0() float64 { return L.n0 }

//Len returns the number of points in the densities.
func (L *QuadraticLocal) Len() int { return len(L.zero) }

//DensityZero returns a copy of the density of the reference system
func (L *QuadraticLocal) DensityZero() []float64 { return copySlice(L.zero) }

//DensityPlus returns a copy of the density of the system with N0+1 electrons
func (L *QuadraticLocal) DensityPlus() []float64 { return copySlice(L.plus) }

//DensityMinus returns a copy of the density of the system with N0-1 electrons
func (L *QuadraticLocal) DensityMinus() []float64 { return copySlice(L.minus) }

//Params returns copies of the a0, a1 and a2 coefficients for every point.
func (L *QuadraticLocal) Params() (a0, a1, a2 []float64) {
	return copySlice(L.a0), copySlice(L.a1), copySlice(L.a2)
}

//Density returns the density of the system with n electrons. If n is not given
//the density of the reference system is returned as it was given.
func (L *QuadraticLocal) Density(n ...float64) ([]float64, error) {
	N, given, err := L.optionalN(n...)
	if err != nil {
		return nil, errDecorate(err, "Density")
	}
	if !given {
		return copySlice(L.zero), nil
	}
	r := copySlice(L.a0)
	floats.AddScaled(r, N, L.a1)
	floats.AddScaled(r, N*N, L.a2)
	return r, nil
}

//FukuiFunction returns a1+2*a2*n for every point, at the n given, or at N0.
func (L *QuadraticLocal) FukuiFunction(n ...float64) ([]float64, error) {
	N, _, err := L.optionalN(n...)
	if err != nil {
		return nil, errDecorate(err, "FukuiFunction")
	}
	r := copySlice(L.a1)
	floats.AddScaled(r, 2*N, L.a2)
	return r, nil
}

//DualDescriptor returns the second derivative of the density with respect to N, 2*a2,
//which does not depend on N.
func (L *QuadraticLocal) DualDescriptor() []float64 {
	r := copySlice(L.a2)
	floats.Scale(2, r)
	return r
}

//FFPlus returns the Fukui function for nucleophilic attack, rho(N0+1)-rho(N0)
func (L *QuadraticLocal) FFPlus() []float64 {
	r := make([]float64, len(L.zero))
	floats.SubTo(r, L.plus, L.zero)
	return r
}

//FFMinus returns the Fukui function for electrophilic attack, rho(N0)-rho(N0-1)
func (L *QuadraticLocal) FFMinus() []float64 {
	r := make([]float64, len(L.zero))
	floats.SubTo(r, L.zero, L.minus)
	return r
}

//FFZero returns the Fukui function for radical attack, the average of FFPlus and FFMinus.
func (L *QuadraticLocal) FFZero() []float64 {
	r := make([]float64, len(L.zero))
	floats.SubTo(r, L.plus, L.minus)
	floats.Scale(0.5, r)
	return r
}
