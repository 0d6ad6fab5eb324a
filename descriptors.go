/*
 * descriptors.go, part of gocdft.
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

//Model identifies an energy model.
type Model int

const (
	Quadratic Model = iota
)

var modelNames = map[Model]string{
	Quadratic: "quadratic",
}

func (M Model) String() string {
	if s, ok := modelNames[M]; ok {
		return s
	}
	return fmt.Sprintf("Model(%d)", int(M))
}

//ParseModel returns the Model with the given name (case insensitive).
func ParseModel(name string) (Model, error) {
	for k, v := range modelNames {
		if strings.EqualFold(v, strings.TrimSpace(name)) {
			return k, nil
		}
	}
	return 0, newError(fmt.Sprintf("unknown energy model %q", name), "ParseModel")
}

//NewGlobal builds the global tool for model from the energies of the systems with
//n0, n0+1 and n0-1 electrons.
func NewGlobal(model Model, zero, plus, minus, n0 float64) (GlobalTool, error) {
	switch model {
	case Quadratic:
		g, err := NewQuadraticGlobal(zero, plus, minus, n0)
		if err != nil {
			return nil, errDecorate(err, "NewGlobal")
		}
		return g, nil
	default:
		return nil, newError(fmt.Sprintf("model %v has no global tool", model), "NewGlobal")
	}
}

//NewLocal builds the local tool for model from the densities of the systems with
//n0, n0+1 and n0-1 electrons.
func NewLocal(model Model, zero, plus, minus []float64, n0 float64) (LocalTool, error) {
	switch model {
	case Quadratic:
		l, err := NewQuadraticLocal(zero, plus, minus, n0)
		if err != nil {
			return nil, errDecorate(err, "NewLocal")
		}
		return l, nil
	default:
		return nil, newError(fmt.Sprintf("model %v has no local tool", model), "NewLocal")
	}
}

//GlobalDescriptor identifies one of the scalar descriptors of a GlobalTool.
type GlobalDescriptor int

const (
	IP GlobalDescriptor = iota
	EA
	Mu
	Eta
	Softness
	Electronegativity
	Electrophilicity
	Nucleofugality
	Electrofugality
)

type globalEntry struct {
	name  string
	long  string
	value func(GlobalTool) float64
}

//The order of this table is the order in which descriptors are listed.
var globalTable = [...]globalEntry{
	IP:                {"ip", "Ionization Potential", GlobalTool.IP},
	EA:                {"ea", "Electron Affinity", GlobalTool.EA},
	Mu:                {"mu", "Chemical Potential", GlobalTool.Mu},
	Eta:               {"eta", "Chemical Hardness", GlobalTool.Eta},
	Softness:          {"softness", "Chemical Softness", GlobalTool.Softness},
	Electronegativity: {"electronegativity", "Electronegativity", GlobalTool.Electronegativity},
	Electrophilicity:  {"electrophilicity", "Electrophilicity", GlobalTool.Electrophilicity},
	Nucleofugality:    {"nucleofugality", "Nucleofugality", GlobalTool.Nucleofugality},
	Electrofugality:   {"electrofugality", "Electrofugality", GlobalTool.Electrofugality},
}

//Some other names used in the literature.
var globalAliases = map[string]GlobalDescriptor{
	"ionization_potential": IP,
	"electron_affinity":    EA,
	"chemical_potential":   Mu,
	"chemical_hardness":    Eta,
}

//GlobalDescriptors returns all the global descriptors.
func GlobalDescriptors() []GlobalDescriptor {
	r := make([]GlobalDescriptor, len(globalTable))
	for i := range globalTable {
		r[i] = GlobalDescriptor(i)
	}
	return r
}

func (D GlobalDescriptor) valid() bool {
	return D >= 0 && int(D) < len(globalTable)
}

//String returns the short name of the descriptor, the one accepted by ParseGlobalDescriptor.
func (D GlobalDescriptor) String() string {
	if !D.valid() {
		return fmt.Sprintf("GlobalDescriptor(%d)", int(D))
	}
	return globalTable[D].name
}

//Long returns a human-readable name for the descriptor.
func (D GlobalDescriptor) Long() string {
	if !D.valid() {
		return D.String()
	}
	return globalTable[D].long
}

//Value returns the value of the descriptor for the tool G.
//It panics if D is not one of the defined descriptors.
func (D GlobalDescriptor) Value(G GlobalTool) float64 {
	if !D.valid() {
		panic(fmt.Sprintf("goCDFT: undefined global descriptor %d", int(D)))
	}
	return globalTable[D].value(G)
}

//ParseGlobalDescriptor returns the descriptor with the given name.
func ParseGlobalDescriptor(name string) (GlobalDescriptor, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, v := range globalTable {
		if v.name == n {
			return GlobalDescriptor(i), nil
		}
	}
	if d, ok := globalAliases[n]; ok {
		return d, nil
	}
	return 0, newError(fmt.Sprintf("unknown global descriptor %q", name), "ParseGlobalDescriptor")
}

//LocalProperty identifies one of the per-point descriptors of a LocalTool
//that don't need extra arguments.
type LocalProperty int

const (
	FFPlus LocalProperty = iota
	FFMinus
	FFZero
	FukuiFunction
	DualDescriptor
	Density
)

type localEntry struct {
	name   string
	values func(LocalTool) []float64
}

func localDensity(L LocalTool) []float64 {
	//Density without arguments can't fail.
	d, _ := L.Density()
	return d
}

func localFukui(L LocalTool) []float64 {
	f, _ := L.FukuiFunction()
	return f
}

var localTable = [...]localEntry{
	FFPlus:         {"ff_plus", LocalTool.FFPlus},
	FFMinus:        {"ff_minus", LocalTool.FFMinus},
	FFZero:         {"ff_zero", LocalTool.FFZero},
	FukuiFunction:  {"fukui_function", localFukui},
	DualDescriptor: {"dual_descriptor", LocalTool.DualDescriptor},
	Density:        {"density", localDensity},
}

//LocalProperties returns all the local properties.
func LocalProperties() []LocalProperty {
	r := make([]LocalProperty, len(localTable))
	for i := range localTable {
		r[i] = LocalProperty(i)
	}
	return r
}

func (P LocalProperty) valid() bool {
	return P >= 0 && int(P) < len(localTable)
}

func (P LocalProperty) String() string {
	if !P.valid() {
		return fmt.Sprintf("LocalProperty(%d)", int(P))
	}
	return localTable[P].name
}

//Values returns the property for the tool L, evaluated at N0 when it depends on N.
//It panics if P is not one of the defined properties.
func (P LocalProperty) Values(L LocalTool) []float64 {
	if !P.valid() {
		panic(fmt.Sprintf("goCDFT: undefined local property %d", int(P)))
	}
	return localTable[P].values(L)
}

//ParseLocalProperty returns the local property with the given name.
func ParseLocalProperty(name string) (LocalProperty, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, v := range localTable {
		if v.name == n {
			return LocalProperty(i), nil
		}
	}
	names := make([]string, 0, len(localTable))
	for _, v := range localTable {
		names = append(names, v.name)
	}
	return 0, newError(fmt.Sprintf("unknown local property %q, choices: {%s}", name, strings.Join(names, ", ")), "ParseLocalProperty")
}
