package routing

import (
	"runtime"

	"delivery-route-optimizer/pkg"
	"delivery-route-optimizer/pkg/concurrent"
	da "delivery-route-optimizer/pkg/datastructure"
	"delivery-route-optimizer/pkg/util"
)

// DistanceMatrix holds pairwise shortest distances between POIs, keyed by
// POI id. Missing entries read as unreachable.
type DistanceMatrix map[string]map[string]float64

func (m DistanceMatrix) Get(fromPoi, toPoi string) float64 {
	if row, ok := m[fromPoi]; ok {
		if dist, ok := row[toPoi]; ok {
			return dist
		}
	}
	return pkg.INF_DISTANCE
}

type matrixJob struct {
	poiID  string
	anchor string
}

type matrixRow struct {
	poiID string
	row   map[string]float64
}

// BuildDistanceMatrix computes the shortest distance between the anchored
// intersections of every ordered POI pair. It is a pure function of the
// network and the POI set; the network is only read, so rows are computed
// concurrently, one Dijkstra state per worker job.
//
// Fails fast when a POI id is not mapped in the network.
func BuildDistanceMatrix(network *da.RoadNetwork, pois []string) (DistanceMatrix, error) {
	anchors := make(map[string]string, len(pois))
	for _, poiID := range pois {
		anchor, err := network.PoiAnchor(poiID)
		if err != nil {
			return nil, err
		}
		anchors[poiID] = anchor
	}

	numWorkers := util.MinInt(runtime.NumCPU(), len(pois))
	if numWorkers < 1 {
		numWorkers = 1
	}

	pool := concurrent.NewWorkerPool[matrixJob, matrixRow](numWorkers, len(pois))
	pool.Start(func(job matrixJob) matrixRow {
		dijkstra := NewDijkstra(network)
		row := make(map[string]float64, len(pois)-1)
		for _, toPoi := range pois {
			if toPoi == job.poiID {
				continue
			}
			row[toPoi] = dijkstra.Distance(job.anchor, anchors[toPoi])
		}
		return matrixRow{poiID: job.poiID, row: row}
	})

	for _, poiID := range pois {
		pool.AddJob(matrixJob{poiID: poiID, anchor: anchors[poiID]})
	}
	pool.Close()
	pool.Wait()

	matrix := make(DistanceMatrix, len(pois))
	for result := range pool.CollectResults() {
		matrix[result.poiID] = result.row
	}
	return matrix, nil
}
