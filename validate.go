/*
 * validate.go, part of gocdft.
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
	"fmt"
	"math"
)

//Validators shared by the global and local models. Each returns nil or an *Error
//decorated with its own name, so the caller only needs to add its own.

//checkN0 returns an error unless n0 is an integer-valued real, equal or larger than 1.
func checkN0(n0 float64) error {
	if math.IsNaN(n0) || math.IsInf(n0, 0) {
		return newError(fmt.Sprintf("n0 must be finite, got %v", n0), "checkN0")
	}
	if n0 < 1 || n0 != math.Trunc(n0) {
		return newError(fmt.Sprintf("n0 must be a positive integer, got %v", n0), "checkN0")
	}
	return nil
}

//checkN returns an error if n is negative or not a number.
func checkN(n float64) error {
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return newError(fmt.Sprintf("the number of electrons must be a non-negative number, got %v", n), "checkN")
	}
	return nil
}

//checkOrder returns the derivative order given (1 if none was given) or an error
//if more than one order is given, or the order is not a positive integer.
func checkOrder(order ...int) (int, error) {
	switch len(order) {
	case 0:
		return 1, nil
	case 1:
		if order[0] < 1 {
			return 0, newError(fmt.Sprintf("the derivative order must be a positive integer, got %d", order[0]), "checkOrder")
		}
		return order[0], nil
	default:
		return 0, newError(fmt.Sprintf("only one derivative order can be given, got %v", order), "checkOrder")
	}
}

//checkFinite returns an error if any of the values is NaN or infinite.
//name is used in the error message.
func checkFinite(name string, values ...float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return newError(fmt.Sprintf("%s %d is not a finite number: %v", name, i, v), "checkFinite")
		}
	}
	return nil
}

//checkLengths returns an error unless all the slices given have the same, non-zero, length.
func checkLengths(slices ...[]float64) error {
	if len(slices) == 0 || len(slices[0]) == 0 {
		return newError("empty density arrays", "checkLengths")
	}
	l := len(slices[0])
	for i, v := range slices[1:] {
		if len(v) != l {
			return newError(fmt.Sprintf("density array %d has %d points, but %d were expected", i+1, len(v), l), "checkLengths")
		}
	}
	return nil
}

//fitQuadratic returns the coefficients of the parabola a0+a1*N+a2*N^2 that goes
//through (n0-1, minus), (n0, zero) and (n0+1, plus).
func fitQuadratic(zero, plus, minus, n0 float64) (a0, a1, a2 float64) {
	a2 = (plus - 2*zero + minus) / 2
	a1 = (plus-minus)/2 - 2*a2*n0
	a0 = zero - a1*n0 - a2*n0*n0
	return a0, a1, a2
}
