/*
 * tool.go, part of gocdft.
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

import "fmt"

//GlobalTool is the set of global conceptual DFT descriptors that a model for E(N)
//provides. N is the number of electrons, mu the chemical potential.
type GlobalTool interface {
	//String returns a summary of the model and its descriptors.
	fmt.Stringer

	//N0 returns the reference number of electrons.
	N0() float64

	//Energy returns E(N)
	Energy(n float64) (float64, error)

	//EnergyDerivative returns the derivative of E(N) of the given order (1 if not given).
	EnergyDerivative(n float64, order ...int) (float64, error)

	//GrandPotential returns the grand potential as a function of N.
	GrandPotential(n float64) (float64, error)

	//GrandPotentialDerivative returns the derivative of the grand potential with respect to
	//mu, of the given order (1 if not given), evaluated at the number of electrons n.
	GrandPotentialDerivative(n float64, order ...int) (float64, error)

	//ConvertMuToN returns the number of electrons for which the chemical potential is mu.
	ConvertMuToN(mu float64) (float64, error)

	//GrandPotentialMu returns the grand potential as a function of mu.
	GrandPotentialMu(mu float64) (float64, error)

	//GrandPotentialMuDerivative returns the derivative of the grand potential with respect to
	//mu, of the given order (1 if not given), evaluated at mu.
	GrandPotentialMuDerivative(mu float64, order ...int) (float64, error)

	IP() float64
	EA() float64
	Mu() float64
	Eta() float64
	Softness() float64
	Electronegativity() float64
	Electrophilicity() float64
	Nucleofugality() float64
	Electrofugality() float64

	//HyperHardness returns the derivative of order order+1 of E(N) at N0.
	HyperHardness(order int) (float64, error)

	//HyperSoftness returns minus the derivative of order order+1 of the grand potential with
	//respect to mu, at the chemical potential of the reference system.
	HyperSoftness(order int) (float64, error)
}

//LocalTool is the set of local conceptual DFT descriptors that a model for the
//electron density as a function of N provides. All the returned slices have Len() elements.
type LocalTool interface {
	N0() float64
	Len() int

	//Density returns the density for a system with n electrons, or the density of the
	//reference system if n is not given.
	Density(n ...float64) ([]float64, error)

	//FukuiFunction returns the derivative of the density with respect to N, at n,
	//or at N0 if n is not given.
	FukuiFunction(n ...float64) ([]float64, error)

	DualDescriptor() []float64
	FFPlus() []float64
	FFMinus() []float64
	FFZero() []float64
}
