package routing

import (
	"delivery-route-optimizer/pkg"
	"delivery-route-optimizer/pkg/util"
)

// SolveNearestNeighbor builds an initial tour greedily: starting at
// startPoi, it repeatedly appends the unvisited destination with the
// smallest matrix distance from the current tour endpoint. Ties break on
// destination input order, keeping results reproducible. Unreachable
// entries are never selected; a step where every remaining destination is
// unreachable fails fast instead of silently skipping POIs.
//
// Greedy constructive heuristic, no backtracking, no optimality guarantee.
func SolveNearestNeighbor(startPoi string, destinationPois []string, matrix DistanceMatrix) ([]string, error) {
	tour := make([]string, 0, len(destinationPois)+1)
	tour = append(tour, startPoi)

	visited := make(map[string]struct{}, len(destinationPois))
	current := startPoi

	for len(visited) < len(destinationPois) {
		nearest := ""
		nearestDist := pkg.INF_DISTANCE

		for _, candidate := range destinationPois {
			if _, ok := visited[candidate]; ok {
				continue
			}
			if dist := matrix.Get(current, candidate); dist < nearestDist {
				nearestDist = dist
				nearest = candidate
			}
		}

		if nearest == "" {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
				"no destination reachable from %q; roads may be blocked", current)
		}

		tour = append(tour, nearest)
		visited[nearest] = struct{}{}
		current = nearest
	}

	return tour, nil
}
