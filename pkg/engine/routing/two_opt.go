package routing

// ImproveTwoOpt refines a tour with first-improvement 2-opt local search:
// for every pair of non-adjacent cut positions it reverses the enclosed
// segment and adopts the first candidate that strictly shortens the tour,
// restarting the scan after each adopted move. The start stays fixed at
// index 0. One iteration is one completed pass that adopted at least one
// move; the search stops at a pass with no improvement or at the
// maxIterations cap.
//
// Total distance is monotonically non-increasing across passes, so the
// result is a 2-opt-local optimum unless the cap was hit first. Candidates
// containing an unreachable leg sum to an unreachable total and are never
// adopted.
func ImproveTwoOpt(tour []string, matrix DistanceMatrix, maxIterations int) ([]string, int) {
	best := make([]string, len(tour))
	copy(best, tour)

	if len(best) < 4 {
		// nothing to reverse without touching the fixed start or a single
		// destination
		return best, 0
	}

	iterations := 0
	for iterations < maxIterations {
		improved := false
		bestDistance := tourDistance(best, matrix)

		for i := 1; i < len(best)-2 && !improved; i++ {
			for j := i + 1; j < len(best); j++ {
				if j-i == 1 {
					continue // adjacent cut, reversal is a no-op
				}

				candidate := reverseSegment(best, i, j)
				if tourDistance(candidate, matrix) < bestDistance {
					best = candidate
					improved = true
					break // first improvement: restart the pair scan
				}
			}
		}

		if !improved {
			break
		}
		iterations++
	}

	return best, iterations
}

// reverseSegment returns a copy of tour with positions [i, j) reversed.
func reverseSegment(tour []string, i, j int) []string {
	out := make([]string, len(tour))
	copy(out, tour[:i])
	for k := 0; k < j-i; k++ {
		out[i+k] = tour[j-1-k]
	}
	copy(out[j:], tour[j:])
	return out
}

// tourDistance sums matrix entries along consecutive tour positions.
func tourDistance(tour []string, matrix DistanceMatrix) float64 {
	total := 0.0
	for i := 0; i < len(tour)-1; i++ {
		total += matrix.Get(tour[i], tour[i+1])
	}
	return total
}
