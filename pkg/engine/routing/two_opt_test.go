package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImproveTwoOptFixesCrossingTour(t *testing.T) {
	// nearest-neighbor greediness yields s,a,b,c here; swapping the middle
	// pair is strictly shorter
	matrix := symmetricMatrix(map[[2]string]float64{
		{"s", "a"}: 1, {"s", "b"}: 1.1, {"s", "c"}: 5,
		{"a", "b"}: 1, {"a", "c"}: 1,
		{"b", "c"}: 3,
	})

	initial := []string{"s", "a", "b", "c"}
	require.InDelta(t, 5.0, tourDistance(initial, matrix), 1e-9)

	improved, iterations := ImproveTwoOpt(initial, matrix, 1000)

	assert.Equal(t, []string{"s", "b", "a", "c"}, improved)
	assert.InDelta(t, 3.1, tourDistance(improved, matrix), 1e-9)
	assert.Equal(t, 1, iterations)

	// the input tour is never mutated
	assert.Equal(t, []string{"s", "a", "b", "c"}, initial)
}

func TestImproveTwoOptLocalOptimumYieldsZeroIterations(t *testing.T) {
	matrix := symmetricMatrix(map[[2]string]float64{
		{"s", "a"}: 1, {"s", "b"}: 10, {"s", "c"}: 10,
		{"a", "b"}: 1, {"a", "c"}: 10,
		{"b", "c"}: 1,
	})

	optimal := []string{"s", "a", "b", "c"}
	improved, iterations := ImproveTwoOpt(optimal, matrix, 1000)

	assert.Equal(t, optimal, improved)
	assert.Equal(t, 0, iterations)

	// and re-applying 2-opt to its own output is always a fixed point
	again, iterations := ImproveTwoOpt(improved, matrix, 1000)
	assert.Equal(t, improved, again)
	assert.Equal(t, 0, iterations)
}

func TestImproveTwoOptMonotoneNonIncreasing(t *testing.T) {
	matrix := symmetricMatrix(map[[2]string]float64{
		{"s", "a"}: 4, {"s", "b"}: 2, {"s", "c"}: 7, {"s", "d"}: 3, {"s", "e"}: 6,
		{"a", "b"}: 5, {"a", "c"}: 1, {"a", "d"}: 8, {"a", "e"}: 2,
		{"b", "c"}: 6, {"b", "d"}: 1, {"b", "e"}: 9,
		{"c", "d"}: 4, {"c", "e"}: 3,
		{"d", "e"}: 5,
	})

	initial := []string{"s", "a", "b", "c", "d", "e"}
	initialDistance := tourDistance(initial, matrix)

	// walk the improvement one pass at a time; each capped run extends the
	// previous one, so distances must never increase
	previous := initialDistance
	for maxPasses := 1; maxPasses <= 10; maxPasses++ {
		improved, iterations := ImproveTwoOpt(initial, matrix, maxPasses)
		dist := tourDistance(improved, matrix)
		assert.LessOrEqual(t, dist, previous+1e-9)
		assert.LessOrEqual(t, iterations, maxPasses)
		previous = dist
	}

	// fully converged result is a 2-opt local optimum: one more run finds
	// nothing
	converged, _ := ImproveTwoOpt(initial, matrix, 1000)
	_, extra := ImproveTwoOpt(converged, matrix, 1000)
	assert.Equal(t, 0, extra)
}

func TestImproveTwoOptKeepsStartFixed(t *testing.T) {
	matrix := symmetricMatrix(map[[2]string]float64{
		{"s", "a"}: 9, {"s", "b"}: 9, {"s", "c"}: 1,
		{"a", "b"}: 1, {"a", "c"}: 9,
		{"b", "c"}: 9,
	})

	improved, _ := ImproveTwoOpt([]string{"s", "a", "b", "c"}, matrix, 1000)
	assert.Equal(t, "s", improved[0])
	assert.Len(t, improved, 4)
}

func TestImproveTwoOptShortTours(t *testing.T) {
	matrix := symmetricMatrix(map[[2]string]float64{{"s", "a"}: 1})

	tour, iterations := ImproveTwoOpt([]string{"s", "a"}, matrix, 1000)
	assert.Equal(t, []string{"s", "a"}, tour)
	assert.Equal(t, 0, iterations)

	tour, iterations = ImproveTwoOpt([]string{"s"}, matrix, 1000)
	assert.Equal(t, []string{"s"}, tour)
	assert.Equal(t, 0, iterations)
}
