package render

import (
	"github.com/soypat/gears"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/table"
	"gonum.org/v1/gonum/spatial/r2"
)

// CreateDXF writes both gears of a result to a DXF file at path, one
// closed LWPOLYLINE per tooth. Gear 1 is drawn on layer GEAR1 in blue,
// gear 2 on layer GEAR2 in red.
func CreateDXF(path string, res *gears.PairResult, offset r2.Vec) error {
	d := dxf.NewDrawing()
	gear1, gear2 := PairTeeth(res, offset)

	if _, err := d.AddLayer("GEAR1", color.Blue, table.LT_CONTINUOUS, true); err != nil {
		return err
	}
	for _, tooth := range gear1 {
		if _, err := d.LwPolyline(true, vertices(tooth)...); err != nil {
			return err
		}
	}
	if _, err := d.AddLayer("GEAR2", color.Red, table.LT_CONTINUOUS, true); err != nil {
		return err
	}
	for _, tooth := range gear2 {
		if _, err := d.LwPolyline(true, vertices(tooth)...); err != nil {
			return err
		}
	}
	return d.SaveAs(path)
}

func vertices(pts []r2.Vec) [][]float64 {
	v := make([][]float64, len(pts))
	for i, p := range pts {
		v[i] = []float64{p.X, p.Y}
	}
	return v
}
