/*
 * vmd.go, part of gocdft.
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

//Package vmd writes Tcl scripts for VMD (Visual Molecular Dynamics) that display
//iso-surfaces of properties stored in cube files.
package vmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//MaxColorID is the largest color index accepted by VMD.
const MaxColorID = 1056

const header = `#!/usr/local/bin/vmd
# VMD script written by save_state $Revision: 1.41 $
# VMD version: 1.8.6
set viewplist
set fixedlist
#
# Display settings
display projection Perspective
display nearclip set 0.000000
display shadow off
display rendermode GLSL
color Element {C} gray
color Element {Cl} green
axes location Off
light 2 on
light 3 on
#
`

//Materials are the materials that VMD knows about.
var Materials = []string{"Opaque", "Transparent", "BrushedMetal", "Diffuse", "Ghost", "Glass1",
	"Glass2", "Glass3", "Glossy", "HardPlastic", "MetallicPastel", "Steel", "Translucent", "Edgy",
	"EdgyShiny", "EdgyGlass", "Goodsell", "AOShiny", "AOChalky", "AOEdgy", "BlownGlass",
	"GlassBubble", "RTChrome"}

var showTypes = map[string]int{"isosurface": 0, "box": 1, "box+isosurface": 2}

var drawTypes = map[string]int{"solid surface": 0, "wireframe": 1, "points": 2, "shaded points": 3}

//representations and the parameters used for them
var representations = map[string]string{
	"CPK": "CPK 1.000000 0.300000 118.000000 131.000000",
}

//file types that VMD can load, by extension
var fileTypes = map[string]string{
	".xyz":  "{xyz}",
	".pdb":  "{pdb}",
	".cube": "cube",
}

func isMaterial(m string) bool {
	for _, v := range Materials {
		if v == m {
			return true
		}
	}
	return false
}

func checkColor(c int) error {
	if c < 0 || c > MaxColorID {
		return fmt.Errorf("goCDFT/vmd: color id must be between 0 and %d, got %d", MaxColorID, c)
	}
	return nil
}

//scriptStart returns the header that sets up the display.
func scriptStart() string {
	return header
}

//scriptMolecule returns the script that loads the files given and represents the atoms
//in the first one with the given representation. Only CPK is supported for now.
func scriptMolecule(representation string, files ...string) (string, error) {
	rep, ok := representations[representation]
	if !ok {
		return "", fmt.Errorf("goCDFT/vmd: unsupported representation %q", representation)
	}
	if len(files) == 0 {
		return "", fmt.Errorf("goCDFT/vmd: no files to load")
	}
	var b strings.Builder
	b.WriteString("# load new molecule\n")
	for i, f := range files {
		t, ok := fileTypes[strings.ToLower(filepath.Ext(f))]
		if !ok {
			return "", fmt.Errorf("goCDFT/vmd: unsupported file type for %s", f)
		}
		cmd := "addfile"
		if i == 0 {
			cmd = "new"
		}
		fmt.Fprintf(&b, "mol %s %s type %s first 0 last -1 step 1 filebonds 1 autobonds 1 waitfor all\n", cmd, f, t)
	}
	b.WriteString("#\n")
	b.WriteString("# representation of the atoms\n")
	fmt.Fprintf(&b, "mol representation %s\n", rep)
	b.WriteString("mol delrep 0 top\n")
	b.WriteString("mol color Element\n")
	b.WriteString("mol selection {{all}}\n")
	b.WriteString("mol material Opaque\n")
	b.WriteString("mol addrep top\n")
	b.WriteString("#\n")
	return b.String(), nil
}

//Volume, used as a Surface color, colors the surface with the values
//of the volumetric data.
const Volume = -1

//Surface holds the parameters for the representation of an iso-surface.
type Surface struct {
	Value    float64 //the iso value
	Index    int     //the index of the volumetric data in the loaded files
	Show     string  //isosurface, box or box+isosurface
	Draw     string  //solid surface, wireframe, points or shaded points
	Material string
	ScaleMin float64
	ScaleMax float64
	Color    int //a VMD color id, or Volume
}

//DefaultSurface returns the Surface parameters used unless otherwise requested.
func DefaultSurface() Surface {
	return Surface{
		Value:    0.5,
		Show:     "isosurface",
		Draw:     "solid surface",
		Material: "Opaque",
		ScaleMin: -0.05,
		ScaleMax: 0.05,
		Color:    Volume,
	}
}

//scriptIsosurface returns the script that adds the representation for the iso-surface S.
func scriptIsosurface(S Surface) (string, error) {
	show, ok := showTypes[S.Show]
	if !ok {
		return "", fmt.Errorf("goCDFT/vmd: unknown show type %q", S.Show)
	}
	draw, ok := drawTypes[S.Draw]
	if !ok {
		return "", fmt.Errorf("goCDFT/vmd: unknown draw type %q", S.Draw)
	}
	if !isMaterial(S.Material) {
		return "", fmt.Errorf("goCDFT/vmd: unknown material %q", S.Material)
	}
	if S.Index < 0 {
		return "", fmt.Errorf("goCDFT/vmd: negative volume index %d", S.Index)
	}
	color := "Volume 0"
	if S.Color != Volume {
		if err := checkColor(S.Color); err != nil {
			return "", err
		}
		color = fmt.Sprintf("ColorID %d", S.Color)
	}
	var b strings.Builder
	b.WriteString("# add representation of the surface\n")
	fmt.Fprintf(&b, "mol representation Isosurface %.5f %d %d %d 1 1\n", S.Value, S.Index, show, draw)
	fmt.Fprintf(&b, "mol color %s\n", color)
	b.WriteString("mol selection {all}\n")
	fmt.Fprintf(&b, "mol material %s\n", S.Material)
	b.WriteString("mol addrep top\n")
	b.WriteString("mol selupdate 1 top 0\n")
	b.WriteString("mol colupdate 1 top 0\n")
	fmt.Fprintf(&b, "mol scaleminmax top 1 %.6f %.6f\n", S.ScaleMin, S.ScaleMax)
	b.WriteString("mol smoothrep top 1 0\n")
	b.WriteString("mol drawframes top 1 {now}\n")
	b.WriteString("color scale method RGB\n")
	b.WriteString("color Display Background silver\n")
	b.WriteString("#\n")
	return b.String(), nil
}

//IsoOptions are the options for IsosurfaceScript.
type IsoOptions struct {
	ColorFile string //if not empty, a cube file with the values used to color the surface
	Value     float64
	Material  string
	ScaleMin  float64
	ScaleMax  float64
	Colors    [2]int //color ids of the positive and negative surfaces, ignored if ColorFile is given
	Negative  bool   //also draw the surface for -Value
}

//DefaultIsoOptions returns the options used unless otherwise requested.
func DefaultIsoOptions() IsoOptions {
	return IsoOptions{Value: 0.5, Material: "Opaque", ScaleMin: -0.05, ScaleMax: 0.05, Colors: [2]int{0, 1}}
}

//IsosurfaceScript returns a script that shows the iso-surface of the data in isofile.
func IsosurfaceScript(isofile string, O IsoOptions) (string, error) {
	files := []string{isofile}
	index := 0
	if O.ColorFile != "" {
		files = []string{O.ColorFile, isofile}
		index = 1
	}
	mol, err := scriptMolecule("CPK", files...)
	if err != nil {
		return "", err
	}
	S := DefaultSurface()
	S.Value = O.Value
	S.Index = index
	S.Material = O.Material
	S.ScaleMin = O.ScaleMin
	S.ScaleMax = O.ScaleMax
	S.Color = O.Colors[0]
	if O.ColorFile != "" {
		S.Color = Volume
	}
	surf, err := scriptIsosurface(S)
	if err != nil {
		return "", err
	}
	script := scriptStart() + mol + surf
	if O.Negative {
		S.Value = -O.Value
		if O.ColorFile == "" {
			S.Color = O.Colors[1]
		}
		surf, err = scriptIsosurface(S)
		if err != nil {
			return "", err
		}
		script += surf
	}
	return script, nil
}

//WriteIsosurfaceScript writes the script of IsosurfaceScript to the file fname.
func WriteIsosurfaceScript(fname, isofile string, O IsoOptions) error {
	s, err := IsosurfaceScript(isofile, O)
	if err != nil {
		return err
	}
	return os.WriteFile(fname, []byte(s), 0644)
}

//MultipleCubeScript returns a script that shows one iso-surface for each cube file.
//isosurfs can be nil (0.5 for all), have one value used for all, or one value per cube.
//colors can be nil (the index of each cube) or have one color id per cube.
func MultipleCubeScript(cubes []string, isosurfs []float64, colors []int) (string, error) {
	if len(cubes) == 0 {
		return "", fmt.Errorf("goCDFT/vmd: no cube files given")
	}
	for _, c := range cubes {
		if !strings.HasSuffix(c, ".cube") {
			return "", fmt.Errorf("goCDFT/vmd: %s is not a cube file", c)
		}
	}
	switch len(isosurfs) {
	case 0:
		isosurfs = []float64{0.5}
		fallthrough
	case 1:
		v := isosurfs[0]
		isosurfs = make([]float64, len(cubes))
		for i := range isosurfs {
			isosurfs[i] = v
		}
	case len(cubes):
	default:
		return "", fmt.Errorf("goCDFT/vmd: %d iso values given for %d cube files", len(isosurfs), len(cubes))
	}
	if colors == nil {
		colors = make([]int, len(cubes))
		for i := range colors {
			colors[i] = i
		}
	}
	if len(colors) != len(cubes) {
		return "", fmt.Errorf("goCDFT/vmd: %d colors given for %d cube files", len(colors), len(cubes))
	}
	mol, err := scriptMolecule("CPK", cubes...)
	if err != nil {
		return "", err
	}
	script := scriptStart() + mol
	for i := range cubes {
		S := DefaultSurface()
		S.Value = isosurfs[i]
		S.Index = i
		S.Color = colors[i]
		if err := checkColor(S.Color); err != nil {
			return "", err
		}
		surf, err := scriptIsosurface(S)
		if err != nil {
			return "", err
		}
		script += surf
	}
	return script, nil
}

//WriteMultipleCubeScript writes the script of MultipleCubeScript to fname.
//All the cube files must exist.
func WriteMultipleCubeScript(fname string, cubes []string, isosurfs []float64, colors []int) error {
	for _, c := range cubes {
		if _, err := os.Stat(c); err != nil {
			return fmt.Errorf("goCDFT/vmd: %w", err)
		}
	}
	s, err := MultipleCubeScript(cubes, isosurfs, colors)
	if err != nil {
		return err
	}
	return os.WriteFile(fname, []byte(s), 0644)
}
