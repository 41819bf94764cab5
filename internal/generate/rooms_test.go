package generate

import (
	"slices"
	"testing"

	"cavegen/internal/cavemap"
)

// fourRooms has a 15-tile room A followed by three 9-tile rooms B, C and D.
// A-B are 3 apart, C-D 4 apart, B-C 10 apart.
func fourRooms(t *testing.T) (*cavemap.Grid, []Room) {
	t.Helper()
	g := mustParse(t,
		"##############################",
		"#.....##...#########...###...#",
		"#.....##...#########...###...#",
		"#.....##...#########...###...#",
		"##############################",
	)
	return g, NewRooms(g, Regions(g, cavemap.Empty))
}

func TestNewRoomsSortsLargestFirst(t *testing.T) {
	_, rooms := fourRooms(t)
	if len(rooms) != 4 {
		t.Fatalf("rooms = %d, want 4", len(rooms))
	}
	if rooms[0].Size() != 15 || !rooms[0].Main || !rooms[0].Accessible {
		t.Errorf("room 0: size %d main=%v accessible=%v, want the 15-tile main room",
			rooms[0].Size(), rooms[0].Main, rooms[0].Accessible)
	}
	// Equal sizes keep discovery order.
	wantX := []int{8, 20, 26}
	for i, x := range wantX {
		r := rooms[i+1]
		if r.Main || r.Accessible {
			t.Errorf("room %d should start neither main nor accessible", i+1)
		}
		if r.Tiles[0].X != x {
			t.Errorf("room %d starts at x=%d, want %d", i+1, r.Tiles[0].X, x)
		}
	}
}

func TestEdgeTiles(t *testing.T) {
	_, rooms := fourRooms(t)
	// The 5x3 room has three interior tiles on its middle row.
	if got := len(rooms[0].EdgeTiles); got != 12 {
		t.Errorf("main room edge tiles = %d, want 12", got)
	}
	// Every tile of a 3x3 room except its centre touches a wall.
	if got := len(rooms[1].EdgeTiles); got != 8 {
		t.Errorf("3x3 room edge tiles = %d, want 8", got)
	}
	for _, e := range rooms[0].EdgeTiles {
		if e == (cavemap.Coord{X: 3, Y: 2}) {
			t.Error("interior tile (3,2) listed as an edge tile")
		}
	}
}

func TestConnectNearestOnly(t *testing.T) {
	g, rooms := fourRooms(t)
	net := Connect(g, rooms, 1, false)

	if len(net.Passages) != 2 {
		t.Fatalf("passages = %d, want 2", len(net.Passages))
	}
	tests := []struct {
		from, to, d2 int
	}{
		{0, 1, 9},
		{2, 3, 16},
	}
	for i, tt := range tests {
		p := net.Passages[i]
		if p.From != tt.from || p.To != tt.to || p.DistanceSq != tt.d2 {
			t.Errorf("passage %d = %d->%d d2=%d, want %d->%d d2=%d",
				i, p.From, p.To, p.DistanceSq, tt.from, tt.to, tt.d2)
		}
	}

	if got := net.Inaccessible(); !slices.Equal(got, []int{2, 3}) {
		t.Errorf("inaccessible = %v, want [2 3]", got)
	}
	if n := len(Regions(net.Grid, cavemap.Empty)); n != 2 {
		t.Errorf("open regions after carving = %d, want 2", n)
	}
}

func TestConnectAllReachesEveryRoom(t *testing.T) {
	g, rooms := fourRooms(t)
	net := Connect(g, rooms, 1, true)

	if len(net.Passages) != 3 {
		t.Fatalf("passages = %d, want 3", len(net.Passages))
	}
	last := net.Passages[2]
	if last.From != 2 || last.To != 1 || last.DistanceSq != 100 {
		t.Errorf("bridging passage = %d->%d d2=%d, want 2->1 d2=100", last.From, last.To, last.DistanceSq)
	}
	if got := net.Inaccessible(); len(got) != 0 {
		t.Errorf("inaccessible = %v, want none", got)
	}
	if n := len(Regions(net.Grid, cavemap.Empty)); n != 1 {
		t.Errorf("open regions after carving = %d, want 1", n)
	}
}

func TestConnectionsAreSymmetric(t *testing.T) {
	g, rooms := fourRooms(t)
	net := Connect(g, rooms, 1, true)

	for i := range net.Rooms {
		for _, j := range net.Rooms[i].Connections() {
			if !net.Rooms[j].ConnectedTo(i) {
				t.Errorf("room %d lists %d but not the reverse", i, j)
			}
		}
	}
	if got := net.Rooms[1].Connections(); !slices.Equal(got, []int{0, 2}) {
		t.Errorf("room 1 connections = %v, want [0 2]", got)
	}
}

func TestConnectDoesNotMutateInput(t *testing.T) {
	g, rooms := fourRooms(t)
	before := g.Clone()
	Connect(g, rooms, 2, true)
	if !g.Equal(before) {
		t.Error("Connect modified its input grid")
	}
	for i := range rooms {
		if rooms[i].HasConnection() {
			t.Errorf("input room %d gained a connection", i)
		}
	}
}

func TestConnectSingleRoom(t *testing.T) {
	g := mustParse(t,
		"#####",
		"#...#",
		"#####",
	)
	net := Connect(g, NewRooms(g, Regions(g, cavemap.Empty)), 1, true)
	if len(net.Passages) != 0 {
		t.Errorf("passages = %d, want 0", len(net.Passages))
	}
	if !net.Rooms[0].Accessible {
		t.Error("lone room should be accessible")
	}
}
