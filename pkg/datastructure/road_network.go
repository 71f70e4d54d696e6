package datastructure

import (
	"fmt"
	"math"
	"sort"

	"delivery-route-optimizer/pkg"
	"delivery-route-optimizer/pkg/util"
)

// IntersectionID builds the canonical id of the intersection at grid
// coordinate (x, y).
func IntersectionID(x, y int) string {
	return fmt.Sprintf("grid_%d_%d", x, y)
}

// Intersection is a node of the road grid. Identity is the integer grid
// coordinate; the pixel position is derived once at construction and used
// only for edge weights and rendering.
type Intersection struct {
	ID       string
	GridX    int
	GridY    int
	PixelX   float64
	PixelY   float64
	Passable bool
}

// Road is a directed edge between two intersections. Every physical road is
// stored as two independent directed edges so directional blocking stays
// possible. Weight is fixed at construction; only Passable mutates.
type Road struct {
	FromID   string
	ToID     string
	Weight   float64
	Passable bool
}

type roadKey struct {
	from string
	to   string
}

// Neighbor is one outgoing passable edge of an intersection.
type Neighbor struct {
	ID     string
	Weight float64
}

// RoadNetwork owns the synthetic rectangular road grid: all intersections,
// all directed roads between axis-adjacent intersections, and the mapping
// from point-of-interest ids to the intersections they are anchored to.
//
// The grid is connected at construction; blocking calls may disconnect
// regions, which shortest-path queries report as "unreachable" rather than
// as an error.
type RoadNetwork struct {
	width    int
	height   int
	cellSize float64

	intersections map[string]*Intersection
	roads         map[roadKey]*Road
	poiMap        map[string]string
}

func NewRoadNetwork(width, height int, cellSize float64) *RoadNetwork {
	rn := &RoadNetwork{
		width:         width,
		height:        height,
		cellSize:      cellSize,
		intersections: make(map[string]*Intersection, width*height),
		roads:         make(map[roadKey]*Road, 4*width*height),
		poiMap:        make(map[string]string),
	}
	rn.buildGrid()
	return rn
}

func (rn *RoadNetwork) buildGrid() {
	for y := 0; y < rn.height; y++ {
		for x := 0; x < rn.width; x++ {
			inter := &Intersection{
				ID:       IntersectionID(x, y),
				GridX:    x,
				GridY:    y,
				PixelX:   float64(x)*rn.cellSize + rn.cellSize/2,
				PixelY:   float64(y)*rn.cellSize + rn.cellSize/2,
				Passable: true,
			}
			rn.intersections[inter.ID] = inter
		}
	}

	for y := 0; y < rn.height; y++ {
		for x := 0; x < rn.width; x++ {
			if x < rn.width-1 {
				rn.addRoadPair(IntersectionID(x, y), IntersectionID(x+1, y))
			}
			if y < rn.height-1 {
				rn.addRoadPair(IntersectionID(x, y), IntersectionID(x, y+1))
			}
		}
	}
}

func (rn *RoadNetwork) addRoadPair(aID, bID string) {
	a := rn.intersections[aID]
	b := rn.intersections[bID]
	weight := euclideanDistance(a, b)
	rn.roads[roadKey{aID, bID}] = &Road{FromID: aID, ToID: bID, Weight: weight, Passable: true}
	rn.roads[roadKey{bID, aID}] = &Road{FromID: bID, ToID: aID, Weight: weight, Passable: true}
}

// euclideanDistance in pixel space. Computed once per road at construction.
func euclideanDistance(a, b *Intersection) float64 {
	dx := a.PixelX - b.PixelX
	dy := a.PixelY - b.PixelY
	return math.Sqrt(dx*dx + dy*dy)
}

// Neighbors returns the outgoing edges of intersectionID whose road and
// destination intersection are both passable. Enumeration follows the fixed
// direction order (east, west, south, north) so path reconstruction is
// deterministic across runs.
func (rn *RoadNetwork) Neighbors(intersectionID string) []Neighbor {
	inter, ok := rn.intersections[intersectionID]
	if !ok {
		return nil
	}

	neighbors := make([]Neighbor, 0, 4)
	for _, offset := range pkg.DirectionOffsets {
		nx, ny := inter.GridX+offset[0], inter.GridY+offset[1]
		if nx < 0 || nx >= rn.width || ny < 0 || ny >= rn.height {
			continue
		}
		toID := IntersectionID(nx, ny)
		road := rn.roads[roadKey{intersectionID, toID}]
		if road == nil || !road.Passable {
			continue
		}
		if !rn.intersections[toID].Passable {
			continue
		}
		neighbors = append(neighbors, Neighbor{ID: toID, Weight: road.Weight})
	}
	return neighbors
}

// BlockRoad marks both directed edges between fromID and toID impassable and
// additionally marks the destination intersection toID impassable, closing
// every path through that point. Note the asymmetry: BlockRoad(a, b) blocks
// intersection b, BlockRoad(b, a) blocks intersection a.
func (rn *RoadNetwork) BlockRoad(fromID, toID string) {
	if road, ok := rn.roads[roadKey{fromID, toID}]; ok {
		road.Passable = false
	}
	if road, ok := rn.roads[roadKey{toID, fromID}]; ok {
		road.Passable = false
	}
	rn.BlockIntersection(toID)
}

// UnblockRoad restores exactly the flags set by the corresponding BlockRoad
// call: both directed edges and the destination intersection.
func (rn *RoadNetwork) UnblockRoad(fromID, toID string) {
	if road, ok := rn.roads[roadKey{fromID, toID}]; ok {
		road.Passable = true
	}
	if road, ok := rn.roads[roadKey{toID, fromID}]; ok {
		road.Passable = true
	}
	rn.UnblockIntersection(toID)
}

func (rn *RoadNetwork) BlockIntersection(intersectionID string) {
	if inter, ok := rn.intersections[intersectionID]; ok {
		inter.Passable = false
	}
}

func (rn *RoadNetwork) UnblockIntersection(intersectionID string) {
	if inter, ok := rn.intersections[intersectionID]; ok {
		inter.Passable = true
	}
}

// AddPointOfInterest anchors poiID to the intersection at (gridX, gridY),
// clamping out-of-bounds coordinates to the nearest valid grid coordinate.
// Clamping is intentional leniency, not an error. Multiple POIs may share
// one intersection. Returns the anchored intersection id.
func (rn *RoadNetwork) AddPointOfInterest(poiID string, gridX, gridY int) string {
	gridX = util.Clamp(gridX, 0, rn.width-1)
	gridY = util.Clamp(gridY, 0, rn.height-1)

	intersectionID := IntersectionID(gridX, gridY)
	rn.poiMap[poiID] = intersectionID
	return intersectionID
}

// PoiAnchor resolves a POI id to its anchored intersection id. Naming a POI
// the network never saw is a caller contract violation and fails fast.
func (rn *RoadNetwork) PoiAnchor(poiID string) (string, error) {
	intersectionID, ok := rn.poiMap[poiID]
	if !ok {
		return "", util.WrapErrorf(nil, util.ErrBadParamInput, "unknown point of interest %q", poiID)
	}
	return intersectionID, nil
}

// PoiIntersection returns the intersection a POI is anchored to.
func (rn *RoadNetwork) PoiIntersection(poiID string) (*Intersection, bool) {
	intersectionID, ok := rn.poiMap[poiID]
	if !ok {
		return nil, false
	}
	inter, ok := rn.intersections[intersectionID]
	return inter, ok
}

func (rn *RoadNetwork) Intersection(intersectionID string) (*Intersection, bool) {
	inter, ok := rn.intersections[intersectionID]
	return inter, ok
}

func (rn *RoadNetwork) Road(fromID, toID string) (*Road, bool) {
	road, ok := rn.roads[roadKey{fromID, toID}]
	return road, ok
}

func (rn *RoadNetwork) Width() int        { return rn.width }
func (rn *RoadNetwork) Height() int       { return rn.height }
func (rn *RoadNetwork) CellSize() float64 { return rn.cellSize }

func (rn *RoadNetwork) NumIntersections() int {
	return len(rn.intersections)
}

// Bounds returns the pixel-space extent of the grid (minX, minY, maxX, maxY).
func (rn *RoadNetwork) Bounds() (float64, float64, float64, float64) {
	return 0, 0, float64(rn.width) * rn.cellSize, float64(rn.height) * rn.cellSize
}

// Intersections returns all intersections ordered by (gridY, gridX), for
// rendering and other full scans that need a stable order.
func (rn *RoadNetwork) Intersections() []*Intersection {
	out := make([]*Intersection, 0, len(rn.intersections))
	for _, inter := range rn.intersections {
		out = append(out, inter)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].GridY != out[j].GridY {
			return out[i].GridY < out[j].GridY
		}
		return out[i].GridX < out[j].GridX
	})
	return out
}

// Roads returns all directed roads ordered by (FromID, ToID).
func (rn *RoadNetwork) Roads() []*Road {
	out := make([]*Road, 0, len(rn.roads))
	for _, road := range rn.roads {
		out = append(out, road)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FromID != out[j].FromID {
			return out[i].FromID < out[j].FromID
		}
		return out[i].ToID < out[j].ToID
	})
	return out
}

// Pois returns the POI ids sorted lexicographically.
func (rn *RoadNetwork) Pois() []string {
	out := make([]string, 0, len(rn.poiMap))
	for poiID := range rn.poiMap {
		out = append(out, poiID)
	}
	sort.Strings(out)
	return out
}
