package export

import (
	"encoding/json"
	"io"

	"cavegen/internal/cavemap"
	"cavegen/internal/contour"
	"cavegen/internal/generate"
)

// Document is the JSON form of a generated cave.
type Document struct {
	Seed      string        `json:"seed"`
	SeedValue int64         `json:"seed_value"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Rows      []string      `json:"rows"`
	Rooms     []RoomJSON    `json:"rooms,omitempty"`
	Passages  []PassageJSON `json:"passages,omitempty"`
	Warnings  []string      `json:"warnings,omitempty"`
	Floor     *MeshJSON     `json:"floor,omitempty"`
	Walls     *MeshJSON     `json:"walls,omitempty"`
}

// RoomJSON summarises one room.
type RoomJSON struct {
	Size        int   `json:"size"`
	Main        bool  `json:"main,omitempty"`
	Accessible  bool  `json:"accessible"`
	Connections []int `json:"connections"`
}

// PassageJSON is a carved corridor between two rooms.
type PassageJSON struct {
	From   int    `json:"from"`
	To     int    `json:"to"`
	Start  [2]int `json:"start"`
	End    [2]int `json:"end"`
	Radius int    `json:"radius"`
	Opened int    `json:"opened"`
}

// MeshJSON is an indexed triangle mesh.
type MeshJSON struct {
	Vertices  [][3]float64 `json:"vertices"`
	Triangles [][3]int     `json:"triangles"`
}

// NewDocument describes res without geometry.
func NewDocument(res *generate.Result) *Document {
	d := &Document{
		Seed:      res.Seed,
		SeedValue: res.SeedValue,
		Width:     res.Grid.Width,
		Height:    res.Grid.Height,
		Rows:      res.Grid.Rows(),
	}
	for i := range res.Rooms {
		r := &res.Rooms[i]
		d.Rooms = append(d.Rooms, RoomJSON{
			Size:        r.Size(),
			Main:        r.Main,
			Accessible:  r.Accessible,
			Connections: r.Connections(),
		})
	}
	for _, p := range res.Passages {
		d.Passages = append(d.Passages, PassageJSON{
			From:   p.From,
			To:     p.To,
			Start:  coord(p.StartTile),
			End:    coord(p.EndTile),
			Radius: p.Radius,
			Opened: len(p.Cells),
		})
	}
	for _, w := range res.Warnings {
		d.Warnings = append(d.Warnings, w.Error())
	}
	return d
}

func coord(c cavemap.Coord) [2]int { return [2]int{c.X, c.Y} }

// NewMeshJSON converts m. A nil mesh gives nil.
func NewMeshJSON(m *contour.Mesh) *MeshJSON {
	if m == nil {
		return nil
	}
	out := &MeshJSON{
		Vertices:  make([][3]float64, len(m.Vertices)),
		Triangles: make([][3]int, len(m.Triangles)),
	}
	for i, v := range m.Vertices {
		out.Vertices[i] = [3]float64{v.X, v.Y, v.Z}
	}
	for i, t := range m.Triangles {
		out.Triangles[i] = [3]int(t)
	}
	return out
}

// WriteJSON writes d as indented JSON.
func WriteJSON(w io.Writer, d *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
