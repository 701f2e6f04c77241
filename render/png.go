package render

import (
	"image/color"

	"github.com/soypat/gears"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SavePNG renders a preview of the meshing pair to path. module is the
// gear module of the pair, used to choose the axis limits the same way the
// legacy preview did.
func SavePNG(path string, res *gears.PairResult, module float64, offset r2.Vec) error {
	p := plot.New()
	p.Title.Text = "Gear Pair Preview"
	p.Add(plotter.NewGrid())

	gear1, gear2 := PairTeeth(res, offset)
	blue := color.RGBA{B: 255, A: 255}
	red := color.RGBA{R: 255, A: 255}
	if err := addTeeth(p, gear1, blue); err != nil {
		return err
	}
	if err := addTeeth(p, gear2, red); err != nil {
		return err
	}

	z1 := float64(res.Gear1.Teeth)
	z2 := float64(res.Gear2.Teeth)
	zMax := z1
	if z2 > zMax {
		zMax = z2
	}
	p.X.Min = offset.X - module*z1/1.5
	p.X.Max = offset.X + res.Analysis.CenterDistance + module*z2/1.5
	p.Y.Min = offset.Y - module*zMax*1.2
	p.Y.Max = offset.Y + module*zMax*1.2

	return p.Save(8*vg.Inch, 8*vg.Inch, path)
}

func addTeeth(p *plot.Plot, teeth [][]r2.Vec, c color.Color) error {
	for _, tooth := range teeth {
		xys := make(plotter.XYs, len(tooth)+1)
		for i, pt := range tooth {
			xys[i].X = pt.X
			xys[i].Y = pt.Y
		}
		// close the tooth loop
		xys[len(tooth)] = xys[0]
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.LineStyle.Color = c
		line.LineStyle.Width = vg.Points(1)
		p.Add(line)
	}
	return nil
}
