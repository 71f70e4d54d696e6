package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoadNetworkBuildsFullGrid(t *testing.T) {
	rn := NewRoadNetwork(4, 3, 10)

	assert.Equal(t, 12, rn.NumIntersections())

	inter, ok := rn.Intersection("grid_2_1")
	require.True(t, ok)
	assert.Equal(t, 2, inter.GridX)
	assert.Equal(t, 1, inter.GridY)
	assert.InDelta(t, 25.0, inter.PixelX, 1e-9)
	assert.InDelta(t, 15.0, inter.PixelY, 1e-9)
	assert.True(t, inter.Passable)

	// 4x3 grid: 3 horizontal roads per row * 3 rows + 2 vertical per column * 4
	// columns, each stored as two directed edges
	roads := rn.Roads()
	assert.Len(t, roads, 2*(3*3+2*4))

	road, ok := rn.Road("grid_0_0", "grid_1_0")
	require.True(t, ok)
	assert.InDelta(t, 10.0, road.Weight, 1e-9)
	assert.True(t, road.Passable)

	reverse, ok := rn.Road("grid_1_0", "grid_0_0")
	require.True(t, ok)
	assert.InDelta(t, 10.0, reverse.Weight, 1e-9)

	_, ok = rn.Road("grid_0_0", "grid_1_1")
	assert.False(t, ok, "no diagonal roads")
}

func TestNeighborsDeterministicOrder(t *testing.T) {
	rn := NewRoadNetwork(3, 3, 10)

	// center intersection has all four neighbors, in fixed E, W, S, N order
	neighbors := rn.Neighbors("grid_1_1")
	require.Len(t, neighbors, 4)
	assert.Equal(t, "grid_2_1", neighbors[0].ID)
	assert.Equal(t, "grid_0_1", neighbors[1].ID)
	assert.Equal(t, "grid_1_2", neighbors[2].ID)
	assert.Equal(t, "grid_1_0", neighbors[3].ID)
	for _, n := range neighbors {
		assert.InDelta(t, 10.0, n.Weight, 1e-9)
	}

	// corner intersection only has in-bounds neighbors
	corner := rn.Neighbors("grid_0_0")
	require.Len(t, corner, 2)
	assert.Equal(t, "grid_1_0", corner[0].ID)
	assert.Equal(t, "grid_0_1", corner[1].ID)

	assert.Nil(t, rn.Neighbors("grid_99_99"))
}

func TestBlockRoadBlocksBothDirectionsAndDestination(t *testing.T) {
	rn := NewRoadNetwork(4, 4, 10)

	rn.BlockRoad("grid_1_0", "grid_2_0")

	road, _ := rn.Road("grid_1_0", "grid_2_0")
	assert.False(t, road.Passable)
	reverse, _ := rn.Road("grid_2_0", "grid_1_0")
	assert.False(t, reverse.Passable)

	dest, _ := rn.Intersection("grid_2_0")
	assert.False(t, dest.Passable, "destination intersection must be impassable")
	origin, _ := rn.Intersection("grid_1_0")
	assert.True(t, origin.Passable, "origin intersection stays passable")

	// the blocked intersection must not appear as anyone's neighbor
	for _, n := range rn.Neighbors("grid_2_1") {
		assert.NotEqual(t, "grid_2_0", n.ID)
	}
	for _, n := range rn.Neighbors("grid_3_0") {
		assert.NotEqual(t, "grid_2_0", n.ID)
	}
}

func TestUnblockRoadRestoresExactFlags(t *testing.T) {
	rn := NewRoadNetwork(4, 4, 10)

	rn.BlockRoad("grid_1_0", "grid_2_0")
	rn.UnblockRoad("grid_1_0", "grid_2_0")

	road, _ := rn.Road("grid_1_0", "grid_2_0")
	assert.True(t, road.Passable)
	reverse, _ := rn.Road("grid_2_0", "grid_1_0")
	assert.True(t, reverse.Passable)
	dest, _ := rn.Intersection("grid_2_0")
	assert.True(t, dest.Passable)

	// untouched roads were never affected
	other, _ := rn.Road("grid_2_0", "grid_2_1")
	assert.True(t, other.Passable)
}

func TestBlockUnblockIntersection(t *testing.T) {
	rn := NewRoadNetwork(3, 3, 10)

	rn.BlockIntersection("grid_1_1")
	assert.Empty(t, filterNeighbors(rn.Neighbors("grid_0_1"), "grid_1_1"))

	rn.UnblockIntersection("grid_1_1")
	neighbors := rn.Neighbors("grid_0_1")
	found := false
	for _, n := range neighbors {
		if n.ID == "grid_1_1" {
			found = true
		}
	}
	assert.True(t, found)
}

func filterNeighbors(neighbors []Neighbor, id string) []Neighbor {
	out := []Neighbor{}
	for _, n := range neighbors {
		if n.ID == id {
			out = append(out, n)
		}
	}
	return out
}

func TestAddPointOfInterestClampsToBounds(t *testing.T) {
	rn := NewRoadNetwork(5, 4, 10)

	testCases := []struct {
		name   string
		poiID  string
		x, y   int
		anchor string
	}{
		{name: "inside", poiID: "a", x: 2, y: 3, anchor: "grid_2_3"},
		{name: "negative clamps to zero", poiID: "b", x: -7, y: -1, anchor: "grid_0_0"},
		{name: "overflow clamps to max", poiID: "c", x: 99, y: 99, anchor: "grid_4_3"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := rn.AddPointOfInterest(tt.poiID, tt.x, tt.y)
			assert.Equal(t, tt.anchor, got)

			anchor, err := rn.PoiAnchor(tt.poiID)
			require.NoError(t, err)
			assert.Equal(t, tt.anchor, anchor)
		})
	}

	// several POIs may share one intersection
	rn.AddPointOfInterest("d", 2, 3)
	anchor, err := rn.PoiAnchor("d")
	require.NoError(t, err)
	assert.Equal(t, "grid_2_3", anchor)
}

func TestPoiAnchorUnknownPoiFailsFast(t *testing.T) {
	rn := NewRoadNetwork(3, 3, 10)

	_, err := rn.PoiAnchor("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestBounds(t *testing.T) {
	rn := NewRoadNetwork(15, 12, 50)

	minX, minY, maxX, maxY := rn.Bounds()
	assert.Equal(t, 0.0, minX)
	assert.Equal(t, 0.0, minY)
	assert.Equal(t, 750.0, maxX)
	assert.Equal(t, 600.0, maxY)
}
