package generate

import (
	"slices"
	"sort"

	"cavegen/internal/cavemap"

	"github.com/zyedidia/generic/mapset"
)

// Room is a surviving open region plus its connection state. Rooms live in
// an indexed slice; connections refer to other rooms by index.
type Room struct {
	Tiles     []cavemap.Coord
	EdgeTiles []cavemap.Coord // tiles 4-adjacent to a wall or the grid edge

	Main       bool
	Accessible bool // reachable from the main room through passages

	connections mapset.Set[int]
}

// NewRooms turns open regions into rooms sorted largest first. Ties keep
// discovery order. The first room is marked main and accessible.
func NewRooms(g *cavemap.Grid, regions []Region) []Room {
	rooms := make([]Room, 0, len(regions))
	for _, r := range regions {
		if !r.IsRoom() {
			continue
		}
		rooms = append(rooms, Room{
			Tiles:       r.Tiles,
			EdgeTiles:   edgeTiles(g, r.Tiles),
			connections: mapset.New[int](),
		})
	}
	sort.SliceStable(rooms, func(i, j int) bool {
		return len(rooms[i].Tiles) > len(rooms[j].Tiles)
	})
	if len(rooms) > 0 {
		rooms[0].Main = true
		rooms[0].Accessible = true
	}
	return rooms
}

func edgeTiles(g *cavemap.Grid, tiles []cavemap.Coord) []cavemap.Coord {
	var edges []cavemap.Coord
	for _, t := range tiles {
		for _, d := range neighbours4 {
			if g.IsWall(t.X+d[0], t.Y+d[1]) {
				edges = append(edges, t)
				break
			}
		}
	}
	return edges
}

// Size returns the room's tile count.
func (r *Room) Size() int { return len(r.Tiles) }

// HasConnection reports whether any passage touches the room.
func (r *Room) HasConnection() bool { return r.connections.Size() > 0 }

// ConnectedTo reports whether a passage joins this room and room i.
func (r *Room) ConnectedTo(i int) bool { return r.connections.Has(i) }

// Connections returns the indices of directly connected rooms, ascending.
func (r *Room) Connections() []int {
	out := make([]int, 0, r.connections.Size())
	r.connections.Each(func(i int) { out = append(out, i) })
	slices.Sort(out)
	return out
}

func (r *Room) translate(dx, dy int) {
	r.Tiles = shift(r.Tiles, dx, dy)
	r.EdgeTiles = shift(r.EdgeTiles, dx, dy)
}

func shift(cs []cavemap.Coord, dx, dy int) []cavemap.Coord {
	out := make([]cavemap.Coord, len(cs))
	for i, c := range cs {
		out[i] = cavemap.Coord{X: c.X + dx, Y: c.Y + dy}
	}
	return out
}

// Network is the outcome of connecting rooms: the carved grid, the rooms
// with their connections, and every passage in carving order.
type Network struct {
	Grid     *cavemap.Grid
	Rooms    []Room
	Passages []Passage
}

// Inaccessible returns the indices of rooms not reachable from the main room.
func (n *Network) Inaccessible() []int {
	var out []int
	for i := range n.Rooms {
		if !n.Rooms[i].Accessible {
			out = append(out, i)
		}
	}
	return out
}

// Connect joins rooms with carved passages and returns a new grid.
//
// Every room without a connection is first joined to its nearest room.
// With connectAll, the closest inaccessible/accessible pair is then joined
// repeatedly until every room is reachable from the main room.
func Connect(g *cavemap.Grid, rooms []Room, radius int, connectAll bool) *Network {
	n := &Network{Grid: g.Clone(), Rooms: make([]Room, len(rooms))}
	for i, r := range rooms {
		r.connections = mapset.New[int]()
		n.Rooms[i] = r
	}
	if len(n.Rooms) < 2 {
		return n
	}

	all := make([]int, len(n.Rooms))
	for i := range all {
		all[i] = i
	}
	for a := range n.Rooms {
		if n.Rooms[a].HasConnection() {
			continue
		}
		if p, ok := n.closest([]int{a}, all); ok {
			n.tunnel(p, radius)
		}
	}

	if !connectAll {
		return n
	}
	for {
		inaccessible, accessible := n.partition()
		if len(inaccessible) == 0 {
			break
		}
		p, ok := n.closest(inaccessible, accessible)
		if !ok {
			break
		}
		n.tunnel(p, radius)
	}
	return n
}

func (n *Network) partition() (inaccessible, accessible []int) {
	for i := range n.Rooms {
		if n.Rooms[i].Accessible {
			accessible = append(accessible, i)
		} else {
			inaccessible = append(inaccessible, i)
		}
	}
	return inaccessible, accessible
}

// closest finds the pair of edge tiles with the smallest squared distance
// between a room in as and a different, unconnected room in bs. The first
// pair found wins ties.
func (n *Network) closest(as, bs []int) (Passage, bool) {
	var best Passage
	found := false
	for _, a := range as {
		roomA := &n.Rooms[a]
		for _, b := range bs {
			if a == b || roomA.ConnectedTo(b) {
				continue
			}
			for _, ta := range roomA.EdgeTiles {
				for _, tb := range n.Rooms[b].EdgeTiles {
					d := ta.DistanceSq(tb)
					if found && d >= best.DistanceSq {
						continue
					}
					best = Passage{From: a, To: b, StartTile: ta, EndTile: tb, DistanceSq: d}
					found = true
				}
			}
		}
	}
	return best, found
}

// tunnel registers the connection, spreads accessibility and carves.
func (n *Network) tunnel(p Passage, radius int) {
	a, b := &n.Rooms[p.From], &n.Rooms[p.To]
	a.connections.Put(p.To)
	b.connections.Put(p.From)
	if a.Accessible != b.Accessible {
		start := p.From
		if a.Accessible {
			start = p.To
		}
		n.markAccessible(start)
	}
	p.Radius = radius
	p.Cells = carvePassage(n.Grid, p.StartTile, p.EndTile, radius)
	n.Passages = append(n.Passages, p)
}

// markAccessible flags start and every room transitively connected to it.
func (n *Network) markAccessible(start int) {
	queue := []int{start}
	n.Rooms[start].Accessible = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		n.Rooms[cur].connections.Each(func(next int) {
			if n.Rooms[next].Accessible {
				return
			}
			n.Rooms[next].Accessible = true
			queue = append(queue, next)
		})
	}
}
