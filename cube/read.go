/*
 * read.go, part of gocdft.
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

package cube

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//Read reads a cube file from r, and returns the grid and the values in it.
//Cube files with orbital data (negative number of atoms) are not supported.
func Read(r io.Reader) (*Grid, []float64, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	next := func() ([]string, error) {
		if !s.Scan() {
			if err := s.Err(); err != nil {
				return nil, err
			}
			return nil, io.ErrUnexpectedEOF
		}
		line++
		return strings.Fields(s.Text()), nil
	}
	//two comment lines
	for i := 0; i < 2; i++ {
		if _, err := next(); err != nil {
			return nil, nil, fmt.Errorf("goCDFT/cube.Read: header: %w", err)
		}
	}
	G := new(Grid)
	nums, err := floatFields(next, 4)
	if err != nil {
		return nil, nil, fmt.Errorf("goCDFT/cube.Read: line %d: %w", line, err)
	}
	natoms := int(nums[0])
	if natoms < 0 {
		return nil, nil, fmt.Errorf("goCDFT/cube.Read: cube files with orbital data are not supported")
	}
	copy(G.Origin[:], nums[1:])
	for i := 0; i < 3; i++ {
		nums, err = floatFields(next, 4)
		if err != nil {
			return nil, nil, fmt.Errorf("goCDFT/cube.Read: line %d: %w", line, err)
		}
		G.Shape[i] = int(nums[0])
		if G.Shape[i] < 1 {
			return nil, nil, fmt.Errorf("goCDFT/cube.Read: line %d: non-positive number of points", line)
		}
		copy(G.Axes[i][:], nums[1:])
	}
	n, ok := checkedLen(G.Shape)
	if !ok {
		return nil, nil, fmt.Errorf("goCDFT/cube.Read: grid of %dx%dx%d points is too large", G.Shape[0], G.Shape[1], G.Shape[2])
	}
	if natoms > maxAtoms {
		return nil, nil, fmt.Errorf("goCDFT/cube.Read: %d atoms is too many", natoms)
	}
	G.Atoms = make([]Atom, 0, natoms)
	for i := 0; i < natoms; i++ {
		nums, err = floatFields(next, 5)
		if err != nil {
			return nil, nil, fmt.Errorf("goCDFT/cube.Read: line %d: %w", line, err)
		}
		G.Atoms = append(G.Atoms, Atom{Number: int(nums[0]), Charge: nums[1], Coords: [3]float64{nums[2], nums[3], nums[4]}})
	}
	//the header is not trusted for the allocation, the count is checked at the end.
	var values []float64
	for s.Scan() {
		line++
		for _, f := range strings.Fields(s.Text()) {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("goCDFT/cube.Read: line %d: %w", line, err)
			}
			values = append(values, v)
		}
	}
	if err := s.Err(); err != nil {
		return nil, nil, fmt.Errorf("goCDFT/cube.Read: %w", err)
	}
	if len(values) != n {
		return nil, nil, fmt.Errorf("goCDFT/cube.Read: %d values read for a grid of %d points", len(values), n)
	}
	return G, values, nil
}

//maxAtoms is the largest number of atoms accepted in a cube header.
const maxAtoms = 1 << 20

//checkedLen returns the number of points of a grid with the given shape, and false
//if that number overflows an int.
func checkedLen(shape [3]int) (int, bool) {
	n := 1
	for _, v := range shape {
		if v < 1 || n > math.MaxInt/v {
			return 0, false
		}
		n *= v
	}
	return n, true
}

//floatFields reads the next line and parses its first n fields.
func floatFields(next func() ([]string, error), n int) ([]float64, error) {
	fields, err := next()
	if err != nil {
		return nil, err
	}
	if len(fields) < n {
		return nil, fmt.Errorf("expected %d fields, got %d", n, len(fields))
	}
	r := make([]float64, n)
	for i := range r {
		r[i], err = strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

//ReadFile reads the cube file name, decompressing it first if its name ends in .gz or .zst.
func ReadFile(name string) (*Grid, []float64, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("goCDFT/cube.ReadFile: %w", err)
	}
	defer f.Close()
	r, err := Decompressor(name, f)
	if err != nil {
		return nil, nil, fmt.Errorf("goCDFT/cube.ReadFile: %s: %w", name, err)
	}
	defer r.Close()
	return Read(r)
}

type zstdReadCloser struct {
	*zstd.Decoder
}

//*zstd.Decoder's Close doesn't return an error.
func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//Decompressor returns a ReadCloser that reads from f, decompressing with gzip or zstd if name
//ends with .gz or .zst, respectively. Closing it doesn't close f.
func Decompressor(name string, f io.Reader) (io.ReadCloser, error) {
	ext := strings.ToLower(name)
	switch {
	case strings.HasSuffix(ext, ".gz"):
		return gzip.NewReader(f)
	case strings.HasSuffix(ext, ".zst"):
		d, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{d}, nil
	default:
		return io.NopCloser(f), nil
	}
}
