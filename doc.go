/*
 * doc.go, part of gocdft.
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

/*Package cdft implements analytic models of conceptual density functional theory (DFT).

A global model gives the energy of a molecule as a closed-form function of its number of electrons, E(N),
fitted to the energies of the systems with N0-1, N0 and N0+1 electrons. From it, the usual
global reactivity descriptors are obtained: ionization potential, electron affinity, chemical
potential and hardness, softness, electronegativity, electrophilicity, nucleofugality,
electrofugality, the grand potential (as a function of N or of the chemical potential) and
the hyper-hardness and hyper-softness.

A local model does the same, point by point, for the electron density, giving the density
as a function of N, the Fukui function and the dual descriptor.

The quadratic model, E(N) = a0 + a1*N + a2*N^2, is implemented by QuadraticGlobal and
QuadraticLocal. Both fulfill the GlobalTool and LocalTool interfaces, respectively, and
descriptors can be requested by name through the GlobalDescriptor and LocalProperty types.

All objects are immutable after construction. Failures are always invalid arguments, which
can be checked with errors.Is(err, ErrInvalidArgument).

The sub-packages cube, vmd and input deal with writing grids, visualization scripts and
reading job files. The package cdft itself does no I/O.
*/
package cdft
