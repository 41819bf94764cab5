package contour

// Vec3 is a point in world space. Y is up; the floor plan lies in the
// Y = 0 plane with grid x along X and grid y along Z.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Up is the unit vector walls are extruded against.
var Up = Vec3{Y: 1}

// Triangle holds three vertex indices.
type Triangle [3]int

// Contains reports whether v is one of the triangle's corners.
func (t Triangle) Contains(v int) bool { return t[0] == v || t[1] == v || t[2] == v }

// Mesh is an indexed triangle mesh with per-vertex triangle adjacency.
type Mesh struct {
	Vertices  []Vec3
	Triangles []Triangle
	// Configs counts marching-squares cells by corner configuration.
	// Meshes not built by Extract leave it zero.
	Configs [16]int

	incident [][]int // vertex -> indices into Triangles, in emission order
}

// NewMesh builds a mesh from raw vertices and triangles.
func NewMesh(vertices []Vec3, triangles []Triangle) *Mesh {
	m := &Mesh{Vertices: vertices, incident: make([][]int, len(vertices))}
	for _, t := range triangles {
		m.addTriangle(t)
	}
	return m
}

func (m *Mesh) addVertex(p Vec3) int {
	m.Vertices = append(m.Vertices, p)
	m.incident = append(m.incident, nil)
	return len(m.Vertices) - 1
}

func (m *Mesh) addTriangle(t Triangle) {
	idx := len(m.Triangles)
	m.Triangles = append(m.Triangles, t)
	for _, v := range t {
		m.incident[v] = append(m.incident[v], idx)
	}
}

// TrianglesAt returns the triangles that use vertex v, in emission order.
func (m *Mesh) TrianglesAt(v int) []Triangle {
	if v < 0 || v >= len(m.incident) {
		return nil
	}
	out := make([]Triangle, len(m.incident[v]))
	for i, ti := range m.incident[v] {
		out[i] = m.Triangles[ti]
	}
	return out
}

// Indices flattens the triangle list to three indices per triangle.
func (m *Mesh) Indices() []int {
	out := make([]int, 0, 3*len(m.Triangles))
	for _, t := range m.Triangles {
		out = append(out, t[0], t[1], t[2])
	}
	return out
}

// Empty reports whether the mesh has no triangles.
func (m *Mesh) Empty() bool { return len(m.Triangles) == 0 }
