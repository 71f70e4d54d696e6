package routing

import (
	"delivery-route-optimizer/pkg"
	da "delivery-route-optimizer/pkg/datastructure"
	"delivery-route-optimizer/pkg/util"
)

const (
	AlgorithmNearestNeighbor = "TSP Nearest Neighbor"
	AlgorithmTwoOpt          = "TSP + 2-Opt Local Search"
)

// RouteOptimizer computes delivery routes over one road network. The
// network must not be mutated while an optimization call is running;
// blocking/unblocking happens before, from a single orchestrating caller.
type RouteOptimizer struct {
	network          *da.RoadNetwork
	twoOptIterations int
}

func NewRouteOptimizer(network *da.RoadNetwork) *RouteOptimizer {
	return &RouteOptimizer{
		network:          network,
		twoOptIterations: pkg.DEFAULT_TWO_OPT_MAX_ITERATIONS,
	}
}

// NewRouteOptimizerWithIterationCap overrides the 2-opt improving-pass cap.
func NewRouteOptimizerWithIterationCap(network *da.RoadNetwork, twoOptIterations int) *RouteOptimizer {
	return &RouteOptimizer{
		network:          network,
		twoOptIterations: twoOptIterations,
	}
}

// OptimizeRoute orders the destinations into a tour starting at startPoi,
// expands the tour to a full intersection-level path and returns the
// immutable result. strategy selects nearest-neighbor alone or
// nearest-neighbor refined by 2-opt.
//
// Zero destinations yield the trivial route of just the start with distance
// 0. A POI id missing from the network's mapping is a caller contract
// violation and fails fast.
func (ro *RouteOptimizer) OptimizeRoute(startPoi string, destinationPois []string, strategy pkg.Strategy) (*da.Route, error) {
	algorithm, err := algorithmName(strategy)
	if err != nil {
		return nil, err
	}

	startAnchor, err := ro.network.PoiAnchor(startPoi)
	if err != nil {
		return nil, err
	}

	destinations := dedupe(destinationPois, startPoi)
	for _, poiID := range destinations {
		if _, err := ro.network.PoiAnchor(poiID); err != nil {
			return nil, err
		}
	}

	if len(destinations) == 0 {
		return da.NewRoute([]string{startPoi}, []string{startAnchor}, 0, algorithm, 0), nil
	}

	pois := append([]string{startPoi}, destinations...)
	matrix, err := BuildDistanceMatrix(ro.network, pois)
	if err != nil {
		return nil, err
	}

	tour, err := SolveNearestNeighbor(startPoi, destinations, matrix)
	if err != nil {
		return nil, err
	}

	iterations := 0
	if strategy == pkg.StrategyTwoOpt {
		tour, iterations = ImproveTwoOpt(tour, matrix, ro.twoOptIterations)
	}

	path, err := ro.assemblePath(tour)
	if err != nil {
		return nil, err
	}

	return da.NewRoute(tour, path, tourDistance(tour, matrix), algorithm, iterations), nil
}

// assemblePath expands a POI-level tour into one continuous intersection
// sequence: per-leg shortest paths concatenated, dropping the duplicated
// junction intersection at each boundary.
func (ro *RouteOptimizer) assemblePath(tour []string) ([]string, error) {
	dijkstra := NewDijkstra(ro.network)

	path := make([]string, 0, len(tour)*4)
	for i := 0; i < len(tour)-1; i++ {
		fromAnchor, err := ro.network.PoiAnchor(tour[i])
		if err != nil {
			return nil, err
		}
		toAnchor, err := ro.network.PoiAnchor(tour[i+1])
		if err != nil {
			return nil, err
		}

		leg, dist := dijkstra.Path(fromAnchor, toAnchor)
		if dist >= pkg.INF_DISTANCE {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
				"no path between %q and %q; roads may be blocked", tour[i], tour[i+1])
		}

		if i == 0 {
			path = append(path, leg...)
		} else {
			path = append(path, leg[1:]...)
		}
	}
	return path, nil
}

func algorithmName(strategy pkg.Strategy) (string, error) {
	switch strategy {
	case pkg.StrategyNearestNeighbor:
		return AlgorithmNearestNeighbor, nil
	case pkg.StrategyTwoOpt:
		return AlgorithmTwoOpt, nil
	default:
		return "", util.WrapErrorf(nil, util.ErrBadParamInput,
			"unknown strategy %q, available: %q, %q", strategy,
			pkg.StrategyNearestNeighbor, pkg.StrategyTwoOpt)
	}
}

// dedupe keeps the first occurrence of each destination and drops the start
// POI so the tour invariant (every POI exactly once, start only at index 0)
// holds even for sloppy caller input.
func dedupe(destinationPois []string, startPoi string) []string {
	seen := make(map[string]struct{}, len(destinationPois))
	out := make([]string, 0, len(destinationPois))
	for _, poiID := range destinationPois {
		if poiID == startPoi {
			continue
		}
		if _, ok := seen[poiID]; ok {
			continue
		}
		seen[poiID] = struct{}{}
		out = append(out, poiID)
	}
	return out
}
