/*
 * values.go, part of gocdft.
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
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/rmera/gocdft/cube"
)

//ReadValues reads the whitespace-separated numbers in the file name, in the order
//of the points of the grid. The file is decompressed first if its name ends in .gz or .zst.
func ReadValues(name string) ([]float64, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("goCDFT/input.ReadValues: %w", err)
	}
	defer f.Close()
	r, err := cube.Decompressor(name, f)
	if err != nil {
		return nil, fmt.Errorf("goCDFT/input.ReadValues: %s: %w", name, err)
	}
	defer r.Close()
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	ret := make([]float64, 0, 1024)
	for s.Scan() {
		v, err := strconv.ParseFloat(s.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("goCDFT/input.ReadValues: %s: value %d: %w", name, len(ret)+1, err)
		}
		ret = append(ret, v)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("goCDFT/input.ReadValues: %s: %w", name, err)
	}
	if len(ret) == 0 {
		return nil, fmt.Errorf("goCDFT/input.ReadValues: %s: no values found", name)
	}
	return ret, nil
}
