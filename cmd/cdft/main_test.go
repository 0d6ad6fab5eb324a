/*
 * main_test.go, part of gocdft.
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

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmera/gocdft/cube"
)

func TestRunGlobal(Te *testing.T) {
	dir := Te.TempDir()
	job := filepath.Join(dir, "g.yaml")
	require.NoError(Te, os.WriteFile(job, []byte("n0: 15\nenergies: {zero: -159, plus: -153, minus: -163}\ndescriptors: [mu, eta]\n"), 0644))
	var b bytes.Buffer
	require.NoError(Te, runGlobal(&b, []string{job}))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(Te, lines, 3)
	assert.Equal(Te, "Energy model: quadratic  N0: 15", lines[0])
	assert.Equal(Te, []string{"Chemical", "Potential", "5.000000"}, strings.Fields(lines[1]))
	assert.Equal(Te, []string{"Chemical", "Hardness", "2.000000"}, strings.Fields(lines[2]))

	//with no descriptors requested, the whole model is printed
	all := filepath.Join(dir, "all.yaml")
	require.NoError(Te, os.WriteFile(all, []byte("n0: 15\nenergies: {zero: -159, plus: -153, minus: -163}\n"), 0644))
	b.Reset()
	require.NoError(Te, runGlobal(&b, []string{all}))
	assert.Contains(Te, b.String(), "Quadratic energy model")
	assert.Contains(Te, b.String(), "N_max")
	assert.Contains(Te, b.String(), "12.500000")

	assert.Error(Te, runGlobal(&b, nil))
	assert.Error(Te, runGlobal(&b, []string{filepath.Join(dir, "none.yaml")}))
}

func TestRunLocal(Te *testing.T) {
	dir := Te.TempDir()
	G, err := cube.NewGrid([3]float64{-1, -1, -1}, [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, [3]int{2, 2, 2},
		[]cube.Atom{{Number: 1, Charge: 1}})
	require.NoError(Te, err)
	names := []string{"z.cube", "p.cube", "m.cube"}
	for i, name := range names {
		v := make([]float64, G.Len())
		for j := range v {
			v[j] = float64(i+1) * 0.5
		}
		names[i] = filepath.Join(dir, name)
		require.NoError(Te, G.WriteFile(names[i], v))
	}
	out := filepath.Join(dir, "out")
	job := filepath.Join(dir, "l.yaml")
	require.NoError(Te, os.WriteFile(job, []byte(fmt.Sprintf("n0: 2\ndensities: {zero: %s, plus: %s, minus: %s}\noutput: %s\n",
		names[0], names[1], names[2], filepath.Join(dir, "ignored"))), 0644))
	var b bytes.Buffer
	require.NoError(Te, runLocal(&b, []string{"-prop", "ff_plus", "-output", out, job}))
	assert.Contains(Te, b.String(), out+".vmd")
	assert.Contains(Te, b.String(), "Largest ff_plus value:  0.500000 at (-1.000000, -1.000000, -1.000000)")
	_, v, err := cube.ReadFile(out + ".cube")
	require.NoError(Te, err)
	for _, x := range v {
		assert.InDelta(Te, 0.5, x, 1e-10)
	}
	script, err := os.ReadFile(out + ".vmd")
	require.NoError(Te, err)
	assert.Contains(Te, string(script), "mol material BlownGlass")
	assert.Contains(Te, string(script), "Isosurface 0.00500 0 0 0 1 1")
	_, err = os.Stat(filepath.Join(dir, "ignored.cube"))
	assert.True(Te, os.IsNotExist(err))

	assert.Error(Te, runLocal(&b, []string{"-prop", "hyper_softness", "-output", out, job}))
	assert.Error(Te, runLocal(&b, []string{"-isosurface", "-1", job}))
}

func TestRunCondensed(Te *testing.T) {
	dir := Te.TempDir()
	job := filepath.Join(dir, "c.yaml")
	require.NoError(Te, os.WriteFile(job, []byte("n0: 10\nnumbers: [8, 1, 1]\npopulations:\n  zero: [8.8, 0.6, 0.6]\n  plus: [9.4, 0.8, 0.8]\n  minus: [8.4, 0.3, 0.3]\n"), 0644))
	var b bytes.Buffer
	require.NoError(Te, runCondensed(&b, []string{"-prop", "ff_minus", job}))
	expected := "\nAtomic contribution of ff_minus:\n" +
		"  0     8     0.400000\n" +
		"  1     1     0.300000\n" +
		"  2     1     0.300000\n\n"
	assert.Equal(Te, expected, b.String())

	b.Reset()
	require.NoError(Te, runCondensed(&b, []string{job}))
	assert.Contains(Te, b.String(), "Atomic contribution of fukui_function:")

	assert.Error(Te, runCondensed(&b, []string{"-prop", "softness", job}))
	assert.Error(Te, runCondensed(&b, nil))
}
