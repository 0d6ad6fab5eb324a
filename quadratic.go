/*
 * quadratic.go, part of gocdft.
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
	"strings"
)

//QuadraticGlobal is the quadratic energy model E(N) = a0 + a1*N + a2*N^2, fitted
//to the energies of the systems with N0-1, N0 and N0+1 electrons.
//It is immutable, and safe to use from several goroutines.
type QuadraticGlobal struct {
	params [3]float64
	n0     float64
}

//NewQuadraticGlobal fits a quadratic energy model to the energies of the systems with n0 (zero),
//n0+1 (plus) and n0-1 (minus) electrons. n0 must be a positive integer.
func NewQuadraticGlobal(zero, plus, minus, n0 float64) (*QuadraticGlobal, error) {
	if err := checkN0(n0); err != nil {
		return nil, errDecorate(err, "NewQuadraticGlobal")
	}
	if err := checkFinite("energy", zero, plus, minus); err != nil {
		return nil, errDecorate(err, "NewQuadraticGlobal")
	}
	Q := new(QuadraticGlobal)
	Q.n0 = n0
	a0, a1, a2 := fitQuadratic(zero, plus, minus, n0)
	Q.params = [3]float64{a0, a1, a2}
	return Q, nil
}

//Params returns the a0, a1 and a2 coefficients of the model.
func (Q *QuadraticGlobal) Params() [3]float64 {
	return Q.params
}

//N0 returns the number of electrons of the reference system.
func (Q *QuadraticGlobal) N0() float64 {
	return Q.n0
}

//NMax returns the number of electrons that minimizes the energy, -a1/(2a2).
//It returns an error for a linear model.
func (Q *QuadraticGlobal) NMax() (float64, error) {
	if Q.params[2] == 0 {
		return 0, newError("the quadratic coefficient is zero, E(N) has no minimum", "NMax")
	}
	return -Q.params[1] / (2 * Q.params[2]), nil
}

//energy evaluates the polynomial without any check.
func (Q *QuadraticGlobal) energy(n float64) float64 {
	return Q.params[0] + Q.params[1]*n + Q.params[2]*n*n
}

//Energy returns E(n)
func (Q *QuadraticGlobal) Energy(n float64) (float64, error) {
	if err := checkN(n); err != nil {
		return 0, errDecorate(err, "Energy")
	}
	return Q.energy(n), nil
}

//EnergyDerivative returns the derivative of the given order of E(N) at n.
//If no order is given, the first derivative is returned.
func (Q *QuadraticGlobal) EnergyDerivative(n float64, order ...int) (float64, error) {
	if err := checkN(n); err != nil {
		return 0, errDecorate(err, "EnergyDerivative")
	}
	o, err := checkOrder(order...)
	if err != nil {
		return 0, errDecorate(err, "EnergyDerivative")
	}
	switch o {
	case 1:
		return Q.params[1] + 2*Q.params[2]*n, nil
	case 2:
		return 2 * Q.params[2], nil
	default:
		return 0, nil
	}
}

//GrandPotential returns E(n) - n*mu(n), where mu(n) is the first derivative of E(N) at n.
func (Q *QuadraticGlobal) GrandPotential(n float64) (float64, error) {
	if err := checkN(n); err != nil {
		return 0, errDecorate(err, "GrandPotential")
	}
	mu := Q.params[1] + 2*Q.params[2]*n
	return Q.energy(n) - n*mu, nil
}

//GrandPotentialDerivative returns the derivative of the given order (1 if not given) of the grand
//potential with respect to mu, evaluated at the chemical potential of the system with n electrons.
//The first derivative is -n, the second -1/(2a2), the rest are zero.
func (Q *QuadraticGlobal) GrandPotentialDerivative(n float64, order ...int) (float64, error) {
	if err := checkN(n); err != nil {
		return 0, errDecorate(err, "GrandPotentialDerivative")
	}
	o, err := checkOrder(order...)
	if err != nil {
		return 0, errDecorate(err, "GrandPotentialDerivative")
	}
	switch o {
	case 1:
		return -n, nil
	case 2:
		if Q.params[2] == 0 {
			return 0, newError("the quadratic coefficient is zero, N(mu) is not defined", "GrandPotentialDerivative")
		}
		return -1 / (2 * Q.params[2]), nil
	default:
		return 0, nil
	}
}

//ConvertMuToN returns the number of electrons at which the chemical potential is mu.
//This is the inverse of mu(N)=a1+2a2*N, which doesn't exist if a2 is zero.
func (Q *QuadraticGlobal) ConvertMuToN(mu float64) (float64, error) {
	if Q.params[2] == 0 {
		return 0, newError("the quadratic coefficient is zero, mu can't be converted to N", "ConvertMuToN")
	}
	if err := checkFinite("mu", mu); err != nil {
		return 0, errDecorate(err, "ConvertMuToN")
	}
	return (mu - Q.params[1]) / (2 * Q.params[2]), nil
}

//GrandPotentialMu returns the grand potential as a function of the chemical potential.
func (Q *QuadraticGlobal) GrandPotentialMu(mu float64) (float64, error) {
	n, err := Q.ConvertMuToN(mu)
	if err != nil {
		return 0, errDecorate(err, "GrandPotentialMu")
	}
	g, err := Q.GrandPotential(n)
	if err != nil {
		return 0, errDecorate(err, "GrandPotentialMu")
	}
	return g, nil
}

//GrandPotentialMuDerivative returns the derivative of the given order (1 if not given)
//of the grand potential with respect to mu, evaluated at mu.
func (Q *QuadraticGlobal) GrandPotentialMuDerivative(mu float64, order ...int) (float64, error) {
	n, err := Q.ConvertMuToN(mu)
	if err != nil {
		return 0, errDecorate(err, "GrandPotentialMuDerivative")
	}
	d, err := Q.GrandPotentialDerivative(n, order...)
	if err != nil {
		return 0, errDecorate(err, "GrandPotentialMuDerivative")
	}
	return d, nil
}

//IP returns the ionization potential, E(N0-1)-E(N0).
func (Q *QuadraticGlobal) IP() float64 {
	return Q.energy(Q.n0-1) - Q.energy(Q.n0)
}

//IonizationPotential is the same as IP
func (Q *QuadraticGlobal) IonizationPotential() float64 { return Q.IP() }

//EA returns the electron affinity, E(N0)-E(N0+1).
func (Q *QuadraticGlobal) EA() float64 {
	return Q.energy(Q.n0) - Q.energy(Q.n0+1)
}

//ElectronAffinity is the same as EA
func (Q *QuadraticGlobal) ElectronAffinity() float64 { return Q.EA() }

//Mu returns the chemical potential, -(IP+EA)/2
func (Q *QuadraticGlobal) Mu() float64 {
	return -0.5 * (Q.IP() + Q.EA())
}

//ChemicalPotential is the same as Mu
func (Q *QuadraticGlobal) ChemicalPotential() float64 { return Q.Mu() }

//Eta returns the chemical hardness, IP-EA
func (Q *QuadraticGlobal) Eta() float64 {
	return Q.IP() - Q.EA()
}

//ChemicalHardness is the same as Eta
func (Q *QuadraticGlobal) ChemicalHardness() float64 { return Q.Eta() }

//Softness returns 1/Eta. It is infinite if Eta is zero.
func (Q *QuadraticGlobal) Softness() float64 {
	return 1 / Q.Eta()
}

//Electronegativity returns -Mu
func (Q *QuadraticGlobal) Electronegativity() float64 {
	return -Q.Mu()
}

//Electrophilicity returns -Mu^2/(2 Eta). Note the sign, opposite to the usual
//definition of the electrophilicity index.
func (Q *QuadraticGlobal) Electrophilicity() float64 {
	mu := Q.Mu()
	return -(mu * mu) / (2 * Q.Eta())
}

//Nucleofugality returns (IP-3EA)^2/(8 Eta)
func (Q *QuadraticGlobal) Nucleofugality() float64 {
	ip, ea := Q.IP(), Q.EA()
	t := ip - 3*ea
	return t * t / (8 * (ip - ea))
}

//Electrofugality returns -(3IP-EA)^2/(8 Eta)
func (Q *QuadraticGlobal) Electrofugality() float64 {
	ip, ea := Q.IP(), Q.EA()
	t := 3*ip - ea
	return -t * t / (8 * (ip - ea))
}

//HyperHardness returns the derivative of order order+1 of E(N) at N0.
//For this model it is zero for every order larger than 1.
func (Q *QuadraticGlobal) HyperHardness(order int) (float64, error) {
	if _, err := checkOrder(order); err != nil {
		return 0, errDecorate(err, "HyperHardness")
	}
	h, err := Q.EnergyDerivative(Q.n0, order+1)
	if err != nil {
		return 0, errDecorate(err, "HyperHardness")
	}
	return h, nil
}

//HyperSoftness returns minus the derivative of order order+1 of the grand potential
//with respect to mu, at mu=Mu(). For this model it is zero for every order larger than 1.
func (Q *QuadraticGlobal) HyperSoftness(order int) (float64, error) {
	if _, err := checkOrder(order); err != nil {
		return 0, errDecorate(err, "HyperSoftness")
	}
	s, err := Q.GrandPotentialMuDerivative(Q.Mu(), order+1)
	if err != nil {
		return 0, errDecorate(err, "HyperSoftness")
	}
	return -s, nil
}

//String returns a table with the parameters of the model and all its global descriptors.
func (Q *QuadraticGlobal) String() string {
	var b strings.Builder
	b.WriteString("Quadratic energy model: E(N) = a0 + a1*N + a2*N^2\n")
	fmt.Fprintf(&b, "%-20s % .6f % .6f % .6f\n", "Parameters", Q.params[0], Q.params[1], Q.params[2])
	fmt.Fprintf(&b, "%-20s % .6f\n", "N0", Q.n0)
	if nmax, err := Q.NMax(); err == nil {
		fmt.Fprintf(&b, "%-20s % .6f\n", "N_max", nmax)
	}
	for _, d := range GlobalDescriptors() {
		fmt.Fprintf(&b, "%-20s % .6f\n", d.Long(), d.Value(Q))
	}
	return b.String()
}
