package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"delivery-route-optimizer/pkg"
	da "delivery-route-optimizer/pkg/datastructure"
)

func TestBuildDistanceMatrix(t *testing.T) {
	rn := da.NewRoadNetwork(5, 5, 10)
	rn.AddPointOfInterest("depot", 0, 0)
	rn.AddPointOfInterest("home_1", 4, 0)
	rn.AddPointOfInterest("home_2", 0, 4)
	rn.AddPointOfInterest("home_3", 4, 4)

	pois := []string{"depot", "home_1", "home_2", "home_3"}
	matrix, err := BuildDistanceMatrix(rn, pois)
	require.NoError(t, err)
	require.Len(t, matrix, 4)

	d := NewDijkstra(rn)
	for _, from := range pois {
		for _, to := range pois {
			if from == to {
				continue
			}
			fromAnchor, _ := rn.PoiAnchor(from)
			toAnchor, _ := rn.PoiAnchor(to)
			assert.InDelta(t, d.Distance(fromAnchor, toAnchor), matrix.Get(from, to), 1e-9,
				"matrix entry (%s,%s)", from, to)
		}
	}

	// undirected grid: the matrix is symmetric
	for _, from := range pois {
		for _, to := range pois {
			assert.InDelta(t, matrix.Get(from, to), matrix.Get(to, from), 1e-9)
		}
	}
}

func TestBuildDistanceMatrixUnknownPoi(t *testing.T) {
	rn := da.NewRoadNetwork(3, 3, 10)
	rn.AddPointOfInterest("depot", 0, 0)

	_, err := BuildDistanceMatrix(rn, []string{"depot", "ghost"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestDistanceMatrixGetMissingIsUnreachable(t *testing.T) {
	matrix := DistanceMatrix{}
	assert.Equal(t, pkg.INF_DISTANCE, matrix.Get("a", "b"))

	matrix["a"] = map[string]float64{"b": 7}
	assert.Equal(t, 7.0, matrix.Get("a", "b"))
	assert.Equal(t, pkg.INF_DISTANCE, matrix.Get("b", "a"))
}
