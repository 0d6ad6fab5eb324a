/*
 * input_test.go, part of gocdft.
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

package input

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cdft "github.com/rmera/gocdft"
	"github.com/rmera/gocdft/cube"
)

func writeFile(Te *testing.T, dir, name, content string) string {
	p := filepath.Join(dir, name)
	require.NoError(Te, os.WriteFile(p, []byte(content), 0644))
	return p
}

const globalYAML = `model: quadratic
n0: 15
energies:
  zero: -159
  plus: -153
  minus: -163
descriptors: [mu, eta, ionization_potential]
`

func TestReadGlobalJob(Te *testing.T) {
	dir := Te.TempDir()
	J, err := ReadGlobalJob(writeFile(Te, dir, "g.yaml", globalYAML))
	require.NoError(Te, err)
	G, err := J.Tool()
	require.NoError(Te, err)
	assert.InDelta(Te, 5.0, G.Mu(), 1e-10)
	D, err := J.GlobalDescriptors()
	require.NoError(Te, err)
	assert.Equal(Te, []cdft.GlobalDescriptor{cdft.Mu, cdft.Eta, cdft.IP}, D)

	//model defaults to quadratic, all descriptors by default
	J, err = ReadGlobalJob(writeFile(Te, dir, "g2.yaml", "n0: 5\nenergies: {zero: 75, plus: 102, minus: 54}\n"))
	require.NoError(Te, err)
	assert.Equal(Te, DefaultModel, J.Model)
	D, err = J.GlobalDescriptors()
	require.NoError(Te, err)
	assert.Equal(Te, cdft.GlobalDescriptors(), D)
}

func TestGlobalJobInvalid(Te *testing.T) {
	dir := Te.TempDir()
	cases := map[string]string{
		"missing energy":   "n0: 5\nenergies: {zero: 75, plus: 102}\n",
		"bad n0":           "n0: 0\nenergies: {zero: 75, plus: 102, minus: 54}\n",
		"bad model":        "model: cubic\nn0: 5\nenergies: {zero: 75, plus: 102, minus: 54}\n",
		"bad descriptor":   "n0: 5\nenergies: {zero: 75, plus: 102, minus: 54}\ndescriptors: [mu, foo]\n",
		"unknown field":    "n0: 5\nenergy: {zero: 75, plus: 102, minus: 54}\n",
		"not numbers":      "n0: five\n",
		"non-integer n0":  "n0: 5.5\nenergies: {zero: 75, plus: 102, minus: 54}\n",
	}
	for k, v := range cases {
		J, err := ReadGlobalJob(writeFile(Te, dir, "g.yaml", v))
		if err == nil {
			//the decoding is fine, the model must reject it
			_, err = J.Tool()
			assert.True(Te, errors.Is(err, cdft.ErrInvalidArgument), k)
		}
		assert.Error(Te, err, k)
	}
	_, err := ReadGlobalJob(filepath.Join(dir, "nothere.yaml"))
	assert.Error(Te, err)

	//jobs built in code are validated before use
	_, err = (&GlobalJob{Model: "quadratic", N0: 5}).Tool()
	assert.Error(Te, err)
	zero, plus, minus := 75.0, 102.0, 54.0
	G, err := (&GlobalJob{Model: "quadratic", N0: 5, Energies: Energies{Zero: &zero, Plus: &plus, Minus: &minus}}).Tool()
	require.NoError(Te, err)
	assert.InDelta(Te, -27.0, G.EA(), 1e-10)
}

func TestReadValues(Te *testing.T) {
	dir := Te.TempDir()
	p := writeFile(Te, dir, "v.dat", "1.0 2.5\n-3e-2\t4\n\n")
	v, err := ReadValues(p)
	require.NoError(Te, err)
	assert.Equal(Te, []float64{1, 2.5, -0.03, 4}, v)

	gz := filepath.Join(dir, "v.dat.gz")
	f, err := os.Create(gz)
	require.NoError(Te, err)
	w := gzip.NewWriter(f)
	_, err = w.Write([]byte("1 2 3"))
	require.NoError(Te, err)
	require.NoError(Te, w.Close())
	require.NoError(Te, f.Close())
	v, err = ReadValues(gz)
	require.NoError(Te, err)
	assert.Equal(Te, []float64{1, 2, 3}, v)

	_, err = ReadValues(writeFile(Te, dir, "bad.dat", "1 2 x"))
	assert.Error(Te, err)
	_, err = ReadValues(writeFile(Te, dir, "empty.dat", " \n"))
	assert.Error(Te, err)
}

func TestIsCube(Te *testing.T) {
	for _, v := range []string{"a.cube", "a.CUBE", "a.cub", "a.cube.gz", "a.cube.zst"} {
		assert.True(Te, IsCube(v), v)
	}
	for _, v := range []string{"a.dat", "a.gz", "cube", "a.cube.bz2"} {
		assert.False(Te, IsCube(v), v)
	}
}

func repeat(v float64, n int) string {
	s := make([]string, n)
	for i := range s {
		s[i] = fmt.Sprint(v)
	}
	return strings.Join(s, " ")
}

func TestLocalJobValues(Te *testing.T) {
	dir := Te.TempDir()
	//one atom, spacing 1 and extension 1 give a 3x3x3 grid
	n := 27
	z := writeFile(Te, dir, "z.dat", repeat(1, n))
	p := writeFile(Te, dir, "p.dat", repeat(1.5, n))
	m := writeFile(Te, dir, "m.dat", repeat(0.25, n))
	job := fmt.Sprintf("n0: 10\ndensities: {zero: %s, plus: %s, minus: %s}\ncube: \"1,1\"\natoms:\n  - {number: 8, charge: 8, coords: [0, 0, 0]}\nproperty: ff_minus\n", z, p, m)
	J, err := ReadLocalJob(writeFile(Te, dir, "l.yaml", job))
	require.NoError(Te, err)
	assert.Equal(Te, DefaultIsosurface, J.Isosurface)
	assert.Equal(Te, DefaultOutput, J.Output)
	assert.Equal(Te, DefaultModel, J.Model)
	G, L, err := J.Load()
	require.NoError(Te, err)
	assert.Equal(Te, [3]int{3, 3, 3}, G.Shape)
	assert.Equal(Te, n, L.Len())
	P, err := cdft.ParseLocalProperty(J.Property)
	require.NoError(Te, err)
	for _, v := range P.Values(L) {
		assert.InDelta(Te, 0.75, v, 1e-12)
	}

	//wrong number of values for the grid
	short := writeFile(Te, dir, "s.dat", repeat(1, n-1))
	J.Densities.Minus = short
	_, _, err = J.Load()
	assert.Error(Te, err)

	//no atoms to build the grid
	J.Atoms = nil
	assert.Error(Te, J.Validate())
}

func TestLocalJobCube(Te *testing.T) {
	dir := Te.TempDir()
	G, err := cube.NewGrid([3]float64{-1, -1, -1}, [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, [3]int{2, 2, 3},
		[]cube.Atom{{Number: 1, Charge: 1}})
	require.NoError(Te, err)
	names := []string{"z.cube", "p.cube.gz", "m.cube.zst"}
	vals := []float64{1, 1.5, 0.25}
	for i, name := range names {
		v := make([]float64, G.Len())
		for j := range v {
			v[j] = vals[i]
		}
		names[i] = filepath.Join(dir, name)
		require.NoError(Te, G.WriteFile(names[i], v))
	}
	job := fmt.Sprintf("n0: 1\ndensities: {zero: %s, plus: %s, minus: %s}\nisosurface: 0.01\noutput: out\n", names[0], names[1], names[2])
	J, err := ReadLocalJob(writeFile(Te, dir, "l.yaml", job))
	require.NoError(Te, err)
	assert.Equal(Te, DefaultProperty, J.Property)
	G2, L, err := J.Load()
	require.NoError(Te, err)
	assert.Equal(Te, G.Shape, G2.Shape)
	for _, v := range L.FFPlus() {
		assert.InDelta(Te, 0.5, v, 1e-10)
	}

	//same shape on a different grid
	O, err := cube.NewGrid([3]float64{50, 50, 50}, [3][3]float64{{3, 0, 0}, {0, 3, 0}, {0, 0, 3}}, G.Shape, G.Atoms)
	require.NoError(Te, err)
	moved := filepath.Join(dir, "moved.cube")
	require.NoError(Te, O.WriteFile(moved, make([]float64, O.Len())))
	J2 := *J
	J2.Densities.Plus = moved
	_, _, err = J2.Load()
	assert.Error(Te, err)

	//in-code jobs are validated by Load
	_, _, err = (&LocalJob{Model: "quadratic", N0: 1}).Load()
	assert.Error(Te, err)

	//mixing cube and plain files
	J.Densities.Plus = filepath.Join(dir, "p.dat")
	assert.Error(Te, J.Validate())

	bad := []string{
		fmt.Sprintf("n0: 1\ndensities: {zero: %s, plus: %s}\n", names[0], names[1]),
		fmt.Sprintf("n0: 1\ndensities: {zero: %s, plus: %s, minus: %s}\nproperty: softness\n", names[0], names[1], names[2]),
		fmt.Sprintf("n0: 1\ndensities: {zero: %s, plus: %s, minus: %s}\ncube: \"0.2\"\n", names[0], names[1], names[2]),
		fmt.Sprintf("n0: 1\ndensities: {zero: %s, plus: %s, minus: %s}\nisosurface: -1\n", names[0], names[1], names[2]),
	}
	for i, v := range bad {
		_, err := ReadLocalJob(writeFile(Te, dir, "bad.yaml", v))
		assert.Error(Te, err, "case %d", i)
	}
}

const condensedYAML = `n0: 10
numbers: [8, 1, 1]
populations:
  zero: [8.8, 0.6, 0.6]
  plus: [9.4, 0.8, 0.8]
  minus: [8.4, 0.3, 0.3]
`

func TestReadCondensedJob(Te *testing.T) {
	dir := Te.TempDir()
	J, err := ReadCondensedJob(writeFile(Te, dir, "c.yaml", condensedYAML))
	require.NoError(Te, err)
	assert.Equal(Te, DefaultProperty, J.Property)
	L, err := J.Tool()
	require.NoError(Te, err)
	assert.Equal(Te, 3, L.Len())
	assert.InDeltaSlice(Te, []float64{0.6, 0.2, 0.2}, L.FFPlus(), 1e-10)
	assert.InDeltaSlice(Te, []float64{0.4, 0.3, 0.3}, L.FFMinus(), 1e-10)

	bad := []string{
		strings.Replace(condensedYAML, "[8, 1, 1]", "[8, 1]", 1),
		strings.Replace(condensedYAML, "[8, 1, 1]", "[8, 1, 0]", 1),
		strings.Replace(condensedYAML, "minus: [8.4, 0.3, 0.3]", "minus: [8.4, 0.3]", 1),
		strings.Replace(condensedYAML, "n0: 10", "n0: 0", 1),
		condensedYAML + "property: hardness\n",
		"n0: 10\nnumbers: [8]\n",
	}
	for i, v := range bad {
		_, err := ReadCondensedJob(writeFile(Te, dir, "bad.yaml", v))
		assert.Error(Te, err, "case %d", i)
	}
	_, err = (&CondensedJob{Model: "quadratic", N0: 2, Numbers: []int{1}}).Tool()
	assert.Error(Te, err)
}
