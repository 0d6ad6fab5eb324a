/*
 * main.go, part of gocdft.
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

//cdft evaluates conceptual DFT reactivity descriptors from the energies or the
//densities of a system with N0, N0+1 and N0-1 electrons.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"

	"gonum.org/v1/gonum/floats"

	cdft "github.com/rmera/gocdft"
	"github.com/rmera/gocdft/input"
	"github.com/rmera/gocdft/vmd"
)

const usage = `cdft, conceptual DFT reactivity descriptors

Usage:
  cdft global job.yaml
  cdft local [-prop fukui_function] [-isosurface 0.005] [-output name] job.yaml
  cdft condensed [-prop fukui_function] job.yaml
`

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
	var err error
	switch os.Args[1] {
	case "global":
		err = runGlobal(os.Stdout, os.Args[2:])
	case "local":
		err = runLocal(os.Stdout, os.Args[2:])
	case "condensed":
		err = runCondensed(os.Stdout, os.Args[2:])
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n%s", os.Args[1], usage)
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runGlobal(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("global", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("global: expected one job file, got %d", fs.NArg())
	}
	J, err := input.ReadGlobalJob(fs.Arg(0))
	if err != nil {
		return err
	}
	G, err := J.Tool()
	if err != nil {
		return err
	}
	if len(J.Descriptors) == 0 {
		fmt.Fprint(w, G)
		return nil
	}
	D, err := J.GlobalDescriptors()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Energy model: %s  N0: %g\n", strings.ToLower(J.Model), G.N0())
	for _, d := range D {
		fmt.Fprintf(w, "%-24s % 14.6f\n", d.Long(), d.Value(G))
	}
	return nil
}

func runLocal(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("local", flag.ContinueOnError)
	prop := fs.String("prop", input.DefaultProperty, "local property to evaluate")
	iso := fs.Float64("isosurface", input.DefaultIsosurface, "iso value for the VMD script")
	output := fs.String("output", "", "base name of the cube and VMD files written (default: the one in the job)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("local: expected one job file, got %d", fs.NArg())
	}
	J, err := input.ReadLocalJob(fs.Arg(0))
	if err != nil {
		return err
	}
	//flags given explicitly take precedence over the job file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "prop":
			J.Property = *prop
		case "isosurface":
			J.Isosurface = *iso
		case "output":
			J.Output = *output
		}
	})
	if err := J.Validate(); err != nil {
		return err
	}
	P, err := cdft.ParseLocalProperty(J.Property)
	if err != nil {
		return err
	}
	grid, L, err := J.Load()
	if err != nil {
		return err
	}
	cubename := J.Output + ".cube"
	values := P.Values(L)
	if err := grid.WriteFile(cubename, values, "gocdft "+P.String()); err != nil {
		return err
	}
	O := vmd.DefaultIsoOptions()
	O.Value = J.Isosurface
	O.Material = "BlownGlass"
	//the dual descriptor changes sign, so both lobes are shown.
	O.Negative = P == cdft.DualDescriptor
	scriptname := J.Output + ".vmd"
	if err := vmd.WriteIsosurfaceScript(scriptname, cubename, O); err != nil {
		return err
	}
	i := floats.MaxIdx(values)
	if m := floats.MinIdx(values); math.Abs(values[m]) > math.Abs(values[i]) {
		i = m
	}
	r := grid.Points().RawRowView(i)
	fmt.Fprintf(w, "Largest %s value: % .6f at (% .6f, % .6f, % .6f)\n", P, values[i], r[0], r[1], r[2])
	fmt.Fprintf(w, "Wrote %s and %s\n", cubename, scriptname)
	return nil
}

func runCondensed(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("condensed", flag.ContinueOnError)
	prop := fs.String("prop", input.DefaultProperty, "local property to condense to the atoms")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("condensed: expected one job file, got %d", fs.NArg())
	}
	J, err := input.ReadCondensedJob(fs.Arg(0))
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "prop" {
			J.Property = *prop
		}
	})
	//Tool validates the job again, so the flag is checked too.
	L, err := J.Tool()
	if err != nil {
		return err
	}
	P, err := cdft.ParseLocalProperty(J.Property)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nAtomic contribution of %s:\n", P)
	for i, v := range P.Values(L) {
		fmt.Fprintf(w, "% 3d   % 3d   %10.6f\n", i, J.Numbers[i], v)
	}
	fmt.Fprintln(w)
	return nil
}
