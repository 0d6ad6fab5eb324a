/*
 * cube.go, part of gocdft.
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

//Package cube describes uniform 3D grids of points and writes values evaluated on them
//as Gaussian cube files. Coordinates are in bohr.
package cube

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

//Atom is the information about an atom that goes in a cube file.
type Atom struct {
	Number int //atomic number
	Charge float64
	Coords [3]float64
}

//Grid is a uniform grid of Shape[0]*Shape[1]*Shape[2] points, starting at Origin.
//Point (i,j,k) is at Origin + i*Axes[0] + j*Axes[1] + k*Axes[2].
type Grid struct {
	Origin [3]float64
	Axes   [3][3]float64
	Shape  [3]int
	Atoms  []Atom
}

//NewGrid returns a grid with the given parameters. All the elements of
//shape must be positive.
func NewGrid(origin [3]float64, axes [3][3]float64, shape [3]int, atoms []Atom) (*Grid, error) {
	for i, v := range shape {
		if v < 1 {
			return nil, fmt.Errorf("goCDFT/cube.NewGrid: the number of points along axis %d must be positive, got %d", i, v)
		}
	}
	if _, ok := checkedLen(shape); !ok {
		return nil, fmt.Errorf("goCDFT/cube.NewGrid: grid of %dx%dx%d points is too large", shape[0], shape[1], shape[2])
	}
	G := &Grid{Origin: origin, Axes: axes, Shape: shape}
	G.Atoms = append(G.Atoms, atoms...)
	return G, nil
}

//FromAtoms returns a grid with the given spacing along the cartesian axes, which
//encloses all the atoms, adding extension to each side.
func FromAtoms(atoms []Atom, spacing, extension float64) (*Grid, error) {
	if len(atoms) == 0 {
		return nil, fmt.Errorf("goCDFT/cube.FromAtoms: no atoms given")
	}
	if spacing <= 0 || extension < 0 {
		return nil, fmt.Errorf("goCDFT/cube.FromAtoms: positive spacing and non-negative extension required, got %v and %v", spacing, extension)
	}
	lo := atoms[0].Coords
	hi := atoms[0].Coords
	for _, a := range atoms[1:] {
		for i, c := range a.Coords {
			lo[i] = math.Min(lo[i], c)
			hi[i] = math.Max(hi[i], c)
		}
	}
	var origin [3]float64
	var axes [3][3]float64
	var shape [3]int
	for i := 0; i < 3; i++ {
		origin[i] = lo[i] - extension
		axes[i][i] = spacing
		shape[i] = int(math.Ceil((hi[i]-lo[i]+2*extension)/spacing)) + 1
	}
	return NewGrid(origin, axes, shape, atoms)
}

//ParseSpec parses a string in the format "spacing,extension" (as in "0.2,4.0")
func ParseSpec(spec string) (spacing, extension float64, err error) {
	fields := strings.Split(spec, ",")
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("goCDFT/cube.ParseSpec: expected 'spacing,extension', got %q", spec)
	}
	spacing, err = strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("goCDFT/cube.ParseSpec: spacing: %w", err)
	}
	extension, err = strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("goCDFT/cube.ParseSpec: extension: %w", err)
	}
	return spacing, extension, nil
}

//Len returns the number of points in the grid.
func (G *Grid) Len() int {
	return G.Shape[0] * G.Shape[1] * G.Shape[2]
}

//Points returns a Len()x3 matrix with the coordinates of the grid points, in the
//order used in cube files (the last axis runs fastest).
func (G *Grid) Points() *mat.Dense {
	idx := mat.NewDense(G.Len(), 3, nil)
	row := 0
	for i := 0; i < G.Shape[0]; i++ {
		for j := 0; j < G.Shape[1]; j++ {
			for k := 0; k < G.Shape[2]; k++ {
				idx.SetRow(row, []float64{float64(i), float64(j), float64(k)})
				row++
			}
		}
	}
	P := mat.NewDense(G.Len(), 3, nil)
	P.Mul(idx, G.frame().Slice(1, 4, 0, 3))
	origin := G.Origin
	P.Apply(func(_, c int, v float64) float64 { return v + origin[c] }, P)
	return P
}

//frame returns a 4x3 matrix with the origin in the first row and the axes in the others.
func (G *Grid) frame() *mat.Dense {
	F := mat.NewDense(4, 3, nil)
	F.SetRow(0, G.Origin[:])
	for i := range G.Axes {
		F.SetRow(i+1, G.Axes[i][:])
	}
	return F
}

//Same returns true if O has the same shape as G, and its origin and axes are
//equal to those of G within tol.
func (G *Grid) Same(O *Grid, tol float64) bool {
	if G.Shape != O.Shape {
		return false
	}
	return mat.EqualApprox(G.frame(), O.frame(), tol)
}

//Write writes values in cube format to w. The first element of title, if given,
//replaces the default first comment line.
func (G *Grid) Write(w io.Writer, values []float64, title ...string) error {
	if len(values) != G.Len() {
		return fmt.Errorf("goCDFT/cube.Write: %d values given for a grid of %d points", len(values), G.Len())
	}
	t := "Cubefile created with goCDFT"
	if len(title) > 0 && title[0] != "" {
		t = strings.ReplaceAll(title[0], "\n", " ")
	}
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, " %s\n", t)
	fmt.Fprintf(b, " OUTER LOOP: X, MIDDLE LOOP: Y, INNER LOOP: Z\n")
	fmt.Fprintf(b, "%5d % 11.6f % 11.6f % 11.6f\n", len(G.Atoms), G.Origin[0], G.Origin[1], G.Origin[2])
	for i, a := range G.Axes {
		fmt.Fprintf(b, "%5d % 11.6f % 11.6f % 11.6f\n", G.Shape[i], a[0], a[1], a[2])
	}
	for _, a := range G.Atoms {
		fmt.Fprintf(b, "%5d % 11.6f % 11.6f % 11.6f % 11.6f\n", a.Number, a.Charge, a.Coords[0], a.Coords[1], a.Coords[2])
	}
	nz := G.Shape[2]
	for row := 0; row < len(values)/nz; row++ {
		for k, v := range values[row*nz : (row+1)*nz] {
			fmt.Fprintf(b, " % 12.5E", v)
			if k%6 == 5 || k == nz-1 {
				b.WriteString("\n")
			}
		}
	}
	return b.Flush()
}

//WriteFile writes values to the file name in cube format. The file is compressed
//with gzip if name ends in .gz, or with zstd if it ends in .zst.
func (G *Grid) WriteFile(name string, values []float64, title ...string) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("goCDFT/cube.WriteFile: %w", err)
	}
	defer f.Close()
	w, err := compressor(name, f)
	if err != nil {
		return fmt.Errorf("goCDFT/cube.WriteFile: %s: %w", name, err)
	}
	if err = G.Write(w, values, title...); err != nil {
		w.Close()
		return err
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("goCDFT/cube.WriteFile: %s: %w", name, err)
	}
	return f.Close()
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

//compressor returns a WriteCloser that writes to f, compressing or not depending
//on the extension of name. Closing it doesn't close f.
func compressor(name string, f io.Writer) (io.WriteCloser, error) {
	ext := strings.ToLower(name)
	switch {
	case strings.HasSuffix(ext, ".gz"):
		return gzip.NewWriterLevel(f, gzip.BestCompression)
	case strings.HasSuffix(ext, ".zst"):
		return zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case strings.HasSuffix(ext, ".cube"), strings.HasSuffix(ext, ".cub"):
		return nopCloser{f}, nil
	default:
		log.Printf("goCDFT/cube: extension of %s not recognized. The file will be written uncompressed", name)
		return nopCloser{f}, nil
	}
}
