package render

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle is a single triangle of an extruded gear mesh.
type Triangle struct {
	V [3]r3.Vec
}

// Normal returns the unit normal of the triangle.
func (t Triangle) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Extrude converts a closed gear outline (as returned by Outline) into a
// prism mesh of the given thickness centered about z=0. The top and bottom
// faces are fanned from center: a spur gear outline is radial, one radius
// per angle, so every fan triangle lies inside the face.
func Extrude(outline []r2.Vec, center r2.Vec, thickness float64) []Triangle {
	top := thickness / 2
	bot := -top
	n := len(outline)
	model := make([]Triangle, 0, 4*n)
	for i := 0; i < n; i++ {
		a := outline[i]
		b := outline[(i+1)%n]
		model = append(model,
			// side wall, outward facing
			Triangle{V: [3]r3.Vec{{X: a.X, Y: a.Y, Z: bot}, {X: b.X, Y: b.Y, Z: bot}, {X: b.X, Y: b.Y, Z: top}}},
			Triangle{V: [3]r3.Vec{{X: a.X, Y: a.Y, Z: bot}, {X: b.X, Y: b.Y, Z: top}, {X: a.X, Y: a.Y, Z: top}}},
			// caps
			Triangle{V: [3]r3.Vec{{X: center.X, Y: center.Y, Z: top}, {X: a.X, Y: a.Y, Z: top}, {X: b.X, Y: b.Y, Z: top}}},
			Triangle{V: [3]r3.Vec{{X: center.X, Y: center.Y, Z: bot}, {X: b.X, Y: b.Y, Z: bot}, {X: a.X, Y: a.Y, Z: bot}}},
		)
	}
	return model
}

// WriteSTL writes model triangles to a writer in binary STL file format.
func WriteSTL(w io.Writer, model []Triangle) error {
	if len(model) == 0 {
		return errors.New("empty triangle slice")
	}
	header := stlHeader{
		Count: uint32(len(model)),
	}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	var d stlTriangle
	for _, triangle := range model {
		var b [50]byte
		n := triangle.Normal()
		d.Normal[0] = float32(n.X)
		d.Normal[1] = float32(n.Y)
		d.Normal[2] = float32(n.Z)
		d.Vertex1[0] = float32(triangle.V[0].X)
		d.Vertex1[1] = float32(triangle.V[0].Y)
		d.Vertex1[2] = float32(triangle.V[0].Z)
		d.Vertex2[0] = float32(triangle.V[1].X)
		d.Vertex2[1] = float32(triangle.V[1].Y)
		d.Vertex2[2] = float32(triangle.V[1].Z)
		d.Vertex3[0] = float32(triangle.V[2].X)
		d.Vertex3[1] = float32(triangle.V[2].Y)
		d.Vertex3[2] = float32(triangle.V[2].Z)
		if d.degenerate() {
			return errors.New("stl triangle with NaN or Inf component")
		}
		d.put(b[:])
		if _, err := io.Copy(w, bytes.NewReader(b[:])); err != nil {
			return err
		}
	}
	return nil
}

// CreateSTL writes the model to a binary STL file at path.
func CreateSTL(path string, model []Triangle) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteSTL(file, model)
}

// stlHeader defines the STL file header.
type stlHeader struct {
	_     [80]uint8 // Header
	Count uint32    // Number of triangles
}

// stlTriangle is the 50 byte on-disk representation of one triangle.
type stlTriangle struct {
	Normal  [3]float32
	Vertex1 [3]float32
	Vertex2 [3]float32
	Vertex3 [3]float32
}

func (t stlTriangle) put(b []byte) {
	if len(b) < 50 {
		panic("need length 50 to marshal stlTriangle")
	}
	put3F32(b, t.Normal)
	put3F32(b[12:], t.Vertex1)
	put3F32(b[24:], t.Vertex2)
	put3F32(b[36:], t.Vertex3)
	binary.LittleEndian.PutUint16(b[48:], 0)
}

func (t stlTriangle) degenerate() bool {
	return bad3F32(t.Normal) || bad3F32(t.Vertex1) || bad3F32(t.Vertex2) || bad3F32(t.Vertex3)
}

func put3F32(b []byte, f [3]float32) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b, math.Float32bits(f[0]))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(f[1]))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(f[2]))
}

func bad3F32(f [3]float32) bool {
	return math32.IsNaN(f[0]) || math32.IsInf(f[0], 0) ||
		math32.IsNaN(f[1]) || math32.IsInf(f[1], 0) ||
		math32.IsNaN(f[2]) || math32.IsInf(f[2], 0)
}
