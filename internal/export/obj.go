// Package export writes caves and their meshes to files other tools read.
package export

import (
	"bufio"
	"io"
	"strconv"

	"cavegen/internal/contour"
)

// Object is one named mesh in an OBJ file.
type Object struct {
	Name string
	Mesh *contour.Mesh
}

// WriteOBJ writes objs as Wavefront OBJ. Face indices are 1-based and run
// across objects, so several meshes can share one file.
func WriteOBJ(w io.Writer, objs ...Object) error {
	bw := bufio.NewWriter(w)
	base := 1
	for _, o := range objs {
		bw.WriteString("o " + o.Name + "\n")
		for _, v := range o.Mesh.Vertices {
			bw.WriteString("v " + formatFloat(v.X) + " " + formatFloat(v.Y) + " " + formatFloat(v.Z) + "\n")
		}
		for _, t := range o.Mesh.Triangles {
			bw.WriteString("f " + strconv.Itoa(t[0]+base) + " " + strconv.Itoa(t[1]+base) + " " + strconv.Itoa(t[2]+base) + "\n")
		}
		base += len(o.Mesh.Vertices)
	}
	return bw.Flush()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
