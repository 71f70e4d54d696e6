package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"delivery-route-optimizer/pkg"
)

func symmetricMatrix(entries map[[2]string]float64) DistanceMatrix {
	m := DistanceMatrix{}
	add := func(from, to string, dist float64) {
		if _, ok := m[from]; !ok {
			m[from] = map[string]float64{}
		}
		m[from][to] = dist
	}
	for key, dist := range entries {
		add(key[0], key[1], dist)
		add(key[1], key[0], dist)
	}
	return m
}

func TestSolveNearestNeighborGreedyOrder(t *testing.T) {
	matrix := symmetricMatrix(map[[2]string]float64{
		{"s", "a"}: 5, {"s", "b"}: 1, {"s", "c"}: 9,
		{"a", "b"}: 2, {"a", "c"}: 4,
		{"b", "c"}: 7,
	})

	tour, err := SolveNearestNeighbor("s", []string{"a", "b", "c"}, matrix)
	require.NoError(t, err)

	// s -> b (1), b -> a (2), a -> c (4)
	assert.Equal(t, []string{"s", "b", "a", "c"}, tour)
}

func TestSolveNearestNeighborVisitsEachExactlyOnce(t *testing.T) {
	matrix := symmetricMatrix(map[[2]string]float64{
		{"s", "a"}: 1, {"s", "b"}: 2, {"s", "c"}: 3, {"s", "d"}: 4,
		{"a", "b"}: 1, {"a", "c"}: 2, {"a", "d"}: 3,
		{"b", "c"}: 1, {"b", "d"}: 2,
		{"c", "d"}: 1,
	})

	destinations := []string{"d", "c", "b", "a"}
	tour, err := SolveNearestNeighbor("s", destinations, matrix)
	require.NoError(t, err)

	require.Len(t, tour, 5)
	assert.Equal(t, "s", tour[0])

	seen := map[string]int{}
	for _, poiID := range tour {
		seen[poiID]++
	}
	for _, poiID := range append([]string{"s"}, destinations...) {
		assert.Equal(t, 1, seen[poiID], "poi %s visit count", poiID)
	}
}

func TestSolveNearestNeighborTieBreaksByInputOrder(t *testing.T) {
	matrix := symmetricMatrix(map[[2]string]float64{
		{"s", "a"}: 1, {"s", "b"}: 1, {"s", "c"}: 1,
		{"a", "b"}: 1, {"a", "c"}: 1,
		{"b", "c"}: 1,
	})

	tour, err := SolveNearestNeighbor("s", []string{"c", "a", "b"}, matrix)
	require.NoError(t, err)
	assert.Equal(t, []string{"s", "c", "a", "b"}, tour)
}

func TestSolveNearestNeighborNeverPicksUnreachable(t *testing.T) {
	matrix := symmetricMatrix(map[[2]string]float64{
		{"s", "a"}: 1,
		{"a", "b"}: 1,
	})
	matrix["s"]["b"] = pkg.INF_DISTANCE
	matrix["b"]["s"] = pkg.INF_DISTANCE

	// b is unreachable from s directly but reachable from a; greedy must pick
	// a first and only then b
	tour, err := SolveNearestNeighbor("s", []string{"b", "a"}, matrix)
	require.NoError(t, err)
	assert.Equal(t, []string{"s", "a", "b"}, tour)
}

func TestSolveNearestNeighborAllUnreachableFails(t *testing.T) {
	matrix := DistanceMatrix{}

	_, err := SolveNearestNeighbor("s", []string{"a"}, matrix)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no destination reachable")
}
