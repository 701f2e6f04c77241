// Command gears generates a meshing gear pair from configuration and
// writes a PNG preview, a DXF drawing and optionally an extruded STL mesh
// into the working directory.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/soypat/gears"
	"github.com/soypat/gears/config"
	"github.com/soypat/gears/render"
)

func main() {
	var (
		configPath = flag.String("config", "config.json", "application configuration file")
		outDir     = flag.String("out", "./result", "output directory")
		stl        = flag.Bool("stl", false, "also write extruded STL meshes")
		thickness  = flag.Float64("thickness", 4.0, "STL extrusion thickness [mm]")
	)
	flag.Parse()
	log.SetFlags(0)

	app, err := config.LoadApp(*configPath)
	if err != nil {
		log.Fatalf("reading %s: %v", *configPath, err)
	}
	params, err := app.Params()
	if err != nil {
		log.Fatal(err)
	}
	dir := app.WorkingDir(*outDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal(err)
	}

	res, err := gears.GeneratePair(params)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("contact ratio:   %.4f\n", res.Analysis.ContactRatio)
	fmt.Printf("center distance: %.4f mm\n", res.Analysis.CenterDistance)
	fmt.Printf("gear 1 undercut: %s\n", res.Gear1.Undercut)
	fmt.Printf("gear 2 undercut: %s\n", res.Gear2.Undercut)

	if err := render.SavePNG(filepath.Join(dir, "Result1.png"), res, params.Module, params.Center); err != nil {
		log.Fatal(err)
	}
	if err := render.CreateDXF(filepath.Join(dir, "Result_Gear_Pair.dxf"), res, params.Center); err != nil {
		log.Fatal(err)
	}
	if *stl {
		if err := writeSTL(dir, res, params, *thickness); err != nil {
			log.Fatal(err)
		}
	}
	if err := config.SaveParams(dir, params.ToMap()); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("results saved in %s\n", dir)
}

func writeSTL(dir string, res *gears.PairResult, params gears.PairParameters, thickness float64) error {
	outline1 := render.Outline(res.Gear1.ToothProfile, 0, params.Center)
	model1 := render.Extrude(outline1, params.Center, thickness)
	if err := render.CreateSTL(filepath.Join(dir, "Result_Gear1.stl"), model1); err != nil {
		return err
	}
	center2 := params.Center
	center2.X += res.Analysis.CenterDistance
	outline2 := render.Outline(res.Gear2.ToothProfile, render.MeshRotation(res.Gear2.Teeth), center2)
	model2 := render.Extrude(outline2, center2, thickness)
	return render.CreateSTL(filepath.Join(dir, "Result_Gear2.stl"), model2)
}
