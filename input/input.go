/*
 * input.go, part of gocdft.
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

//Package input reads the YAML job files and the density files used by the cdft command.
package input

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	cdft "github.com/rmera/gocdft"
	"github.com/rmera/gocdft/cube"
)

//Defaults for the optional fields of the jobs.
const (
	DefaultModel      = "quadratic"
	DefaultProperty   = "fukui_function"
	DefaultCubeSpec   = "0.2,4.0"
	DefaultIsosurface = 0.005
	DefaultOutput     = "cdft"
)

//gridTol is the tolerance, in bohr, for two cube grids to be considered the same.
const gridTol = 1e-5

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("cdftmodel", func(fl validator.FieldLevel) bool {
		_, err := cdft.ParseModel(fl.Field().String())
		return err == nil
	})
	validate.RegisterValidation("descriptor", func(fl validator.FieldLevel) bool {
		_, err := cdft.ParseGlobalDescriptor(fl.Field().String())
		return err == nil
	})
	validate.RegisterValidation("property", func(fl validator.FieldLevel) bool {
		_, err := cdft.ParseLocalProperty(fl.Field().String())
		return err == nil
	})
	validate.RegisterValidation("cubespec", func(fl validator.FieldLevel) bool {
		_, _, err := cube.ParseSpec(fl.Field().String())
		return err == nil
	})
}

//Energies are the energies of the system with N0, N0+1 and N0-1 electrons.
//They are pointers so a missing energy can be told apart from a zero one.
type Energies struct {
	Zero  *float64 `yaml:"zero" validate:"required"`
	Plus  *float64 `yaml:"plus" validate:"required"`
	Minus *float64 `yaml:"minus" validate:"required"`
}

//GlobalJob describes the evaluation of global reactivity descriptors.
type GlobalJob struct {
	Model       string   `yaml:"model" validate:"cdftmodel"`
	N0          float64  `yaml:"n0" validate:"gte=1"`
	Energies    Energies `yaml:"energies"`
	Descriptors []string `yaml:"descriptors" validate:"dive,descriptor"`
}

//Tool returns the global model set up with the energies of the job.
//The job is validated first.
func (J *GlobalJob) Tool() (cdft.GlobalTool, error) {
	if err := J.Validate(); err != nil {
		return nil, err
	}
	m, err := cdft.ParseModel(J.Model)
	if err != nil {
		return nil, err
	}
	return cdft.NewGlobal(m, *J.Energies.Zero, *J.Energies.Plus, *J.Energies.Minus, J.N0)
}

//GlobalDescriptors returns the descriptors requested in the job, or all of them
//if none was requested.
func (J *GlobalJob) GlobalDescriptors() ([]cdft.GlobalDescriptor, error) {
	if len(J.Descriptors) == 0 {
		return cdft.GlobalDescriptors(), nil
	}
	ret := make([]cdft.GlobalDescriptor, 0, len(J.Descriptors))
	for _, v := range J.Descriptors {
		d, err := cdft.ParseGlobalDescriptor(v)
		if err != nil {
			return nil, err
		}
		ret = append(ret, d)
	}
	return ret, nil
}

//Densities are the names of the files with the electron densities of the system with
//N0, N0+1 and N0-1 electrons. All of them must be cube files, or none.
type Densities struct {
	Zero  string `yaml:"zero" validate:"required"`
	Plus  string `yaml:"plus" validate:"required"`
	Minus string `yaml:"minus" validate:"required"`
}

//Atom is an atom in a LocalJob, in bohr.
type Atom struct {
	Number int        `yaml:"number" validate:"gte=1,lte=118"`
	Charge float64    `yaml:"charge"`
	Coords [3]float64 `yaml:"coords"`
}

//LocalJob describes the evaluation of a local property on a grid.
type LocalJob struct {
	Model      string    `yaml:"model" validate:"cdftmodel"`
	N0         float64   `yaml:"n0" validate:"gte=1"`
	Densities  Densities `yaml:"densities"`
	Property   string    `yaml:"property" validate:"property"`
	Cube       string    `yaml:"cube" validate:"cubespec"` //spacing,extension of the grid built around the atoms
	Atoms      []Atom    `yaml:"atoms" validate:"dive"`
	Isosurface float64   `yaml:"isosurface" validate:"gt=0"`
	Output     string    `yaml:"output" validate:"required"`
}

func (J *LocalJob) setDefaults() {
	if J.Model == "" {
		J.Model = DefaultModel
	}
	if J.Property == "" {
		J.Property = DefaultProperty
	}
	if J.Cube == "" {
		J.Cube = DefaultCubeSpec
	}
	if J.Isosurface == 0 {
		J.Isosurface = DefaultIsosurface
	}
	if J.Output == "" {
		J.Output = DefaultOutput
	}
}

//Validate checks the job. It must be called again after any change to the job.
func (J *LocalJob) Validate() error {
	if err := validate.Struct(J); err != nil {
		return formatValidationError(err)
	}
	c := IsCube(J.Densities.Zero)
	if IsCube(J.Densities.Plus) != c || IsCube(J.Densities.Minus) != c {
		return fmt.Errorf("goCDFT/input: densities: either all or none of the files must be cube files")
	}
	if !c && len(J.Atoms) == 0 {
		return fmt.Errorf("goCDFT/input: atoms: required to build the grid when the densities are not cube files")
	}
	return nil
}

//Validate checks the job.
func (J *GlobalJob) Validate() error {
	if err := validate.Struct(J); err != nil {
		return formatValidationError(err)
	}
	return nil
}

//Load reads the densities of the job and returns the grid they are defined on together
//with the local model built from them.
//The job is validated first.
func (J *LocalJob) Load() (*cube.Grid, cdft.LocalTool, error) {
	if err := J.Validate(); err != nil {
		return nil, nil, err
	}
	m, err := cdft.ParseModel(J.Model)
	if err != nil {
		return nil, nil, err
	}
	var grid *cube.Grid
	names := []string{J.Densities.Zero, J.Densities.Plus, J.Densities.Minus}
	dens := make([][]float64, len(names))
	if IsCube(names[0]) {
		for i, name := range names {
			g, v, err := cube.ReadFile(name)
			if err != nil {
				return nil, nil, err
			}
			if grid == nil {
				grid = g
			} else if !grid.Same(g, gridTol) {
				return nil, nil, fmt.Errorf("goCDFT/input: the grid of %s doesn't match the grid of %s", name, names[0])
			}
			dens[i] = v
		}
	} else {
		spacing, extension, err := cube.ParseSpec(J.Cube)
		if err != nil {
			return nil, nil, err
		}
		grid, err = cube.FromAtoms(J.cubeAtoms(), spacing, extension)
		if err != nil {
			return nil, nil, err
		}
		for i, name := range names {
			if dens[i], err = ReadValues(name); err != nil {
				return nil, nil, err
			}
			if len(dens[i]) != grid.Len() {
				return nil, nil, fmt.Errorf("goCDFT/input: %s has %d values, the grid has %d points", name, len(dens[i]), grid.Len())
			}
		}
	}
	L, err := cdft.NewLocal(m, dens[0], dens[1], dens[2], J.N0)
	if err != nil {
		return nil, nil, err
	}
	return grid, L, nil
}

func (J *LocalJob) cubeAtoms() []cube.Atom {
	ret := make([]cube.Atom, len(J.Atoms))
	for i, v := range J.Atoms {
		ret[i] = cube.Atom{Number: v.Number, Charge: v.Charge, Coords: v.Coords}
	}
	return ret
}

//Populations are the atomic populations (one per atom, in the order of the atoms) of the
//systems with N0, N0+1 and N0-1 electrons.
type Populations struct {
	Zero  []float64 `yaml:"zero" validate:"required"`
	Plus  []float64 `yaml:"plus" validate:"required"`
	Minus []float64 `yaml:"minus" validate:"required"`
}

//CondensedJob describes the evaluation of a local property condensed to atoms.
type CondensedJob struct {
	Model       string      `yaml:"model" validate:"cdftmodel"`
	N0          float64     `yaml:"n0" validate:"gte=1"`
	Numbers     []int       `yaml:"numbers" validate:"required,dive,gte=1,lte=118"` //atomic numbers
	Populations Populations `yaml:"populations"`
	Property    string      `yaml:"property" validate:"property"`
}

//Validate checks the job.
func (J *CondensedJob) Validate() error {
	if err := validate.Struct(J); err != nil {
		return formatValidationError(err)
	}
	n := len(J.Numbers)
	P := J.Populations
	if len(P.Zero) != n || len(P.Plus) != n || len(P.Minus) != n {
		return fmt.Errorf("goCDFT/input: populations: %d atoms, but got %d, %d and %d populations", n, len(P.Zero), len(P.Plus), len(P.Minus))
	}
	return nil
}

//Tool validates the job and returns the local model built on the atomic populations.
func (J *CondensedJob) Tool() (cdft.LocalTool, error) {
	if err := J.Validate(); err != nil {
		return nil, err
	}
	m, err := cdft.ParseModel(J.Model)
	if err != nil {
		return nil, err
	}
	return cdft.NewLocal(m, J.Populations.Zero, J.Populations.Plus, J.Populations.Minus, J.N0)
}

//IsCube returns true if name is the name of a cube file, possibly compressed.
func IsCube(name string) bool {
	name = strings.ToLower(name)
	name = strings.TrimSuffix(strings.TrimSuffix(name, ".gz"), ".zst")
	ext := filepath.Ext(name)
	return ext == ".cube" || ext == ".cub"
}

func decode(name string, job any) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("goCDFT/input: %w", err)
	}
	defer f.Close()
	d := yaml.NewDecoder(f)
	d.KnownFields(true)
	if err := d.Decode(job); err != nil {
		return fmt.Errorf("goCDFT/input: %s: %w", name, err)
	}
	return nil
}

//ReadGlobalJob reads and validates the YAML global job in the file name.
func ReadGlobalJob(name string) (*GlobalJob, error) {
	J := new(GlobalJob)
	if err := decode(name, J); err != nil {
		return nil, err
	}
	if J.Model == "" {
		J.Model = DefaultModel
	}
	if err := J.Validate(); err != nil {
		return nil, err
	}
	return J, nil
}

//ReadLocalJob reads the YAML local job in the file name, fills the missing optional
//fields with their defaults and validates the job.
func ReadLocalJob(name string) (*LocalJob, error) {
	J := new(LocalJob)
	if err := decode(name, J); err != nil {
		return nil, err
	}
	J.setDefaults()
	if err := J.Validate(); err != nil {
		return nil, err
	}
	return J, nil
}

//ReadCondensedJob reads the YAML condensed job in the file name, fills the missing optional
//fields with their defaults and validates the job.
func ReadCondensedJob(name string) (*CondensedJob, error) {
	J := new(CondensedJob)
	if err := decode(name, J); err != nil {
		return nil, err
	}
	if J.Model == "" {
		J.Model = DefaultModel
	}
	if J.Property == "" {
		J.Property = DefaultProperty
	}
	if err := J.Validate(); err != nil {
		return nil, err
	}
	return J, nil
}

//formatValidationError turns the first error of the validator into a readable one.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("goCDFT/input: %w", err)
	}
	e := verrs[0]
	field := e.Namespace()
	switch e.Tag() {
	case "required":
		return fmt.Errorf("goCDFT/input: %s: field is required", field)
	case "gte", "gt":
		return fmt.Errorf("goCDFT/input: %s: must be %s %s", field, map[string]string{"gte": "at least", "gt": "greater than"}[e.Tag()], e.Param())
	case "lte":
		return fmt.Errorf("goCDFT/input: %s: must not exceed %s", field, e.Param())
	case "cdftmodel", "descriptor", "property":
		return fmt.Errorf("goCDFT/input: %s: unknown %s %q", field, e.Tag(), e.Value())
	case "cubespec":
		return fmt.Errorf("goCDFT/input: %s: %q is not a valid spacing,extension pair", field, e.Value())
	default:
		return fmt.Errorf("goCDFT/input: %s: failed on %s", field, e.Tag())
	}
}
