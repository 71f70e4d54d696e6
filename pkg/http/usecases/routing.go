package usecases

import (
	"github.com/twpayne/go-polyline"
	"go.uber.org/zap"

	"delivery-route-optimizer/pkg"
	da "delivery-route-optimizer/pkg/datastructure"
	"delivery-route-optimizer/pkg/engine/routing"
)

// RouteService exposes route optimization to the HTTP layer. The network is
// built once at startup and treated as read-only afterwards, so concurrent
// requests are safe without further serialization.
type RouteService struct {
	log       *zap.Logger
	network   *da.RoadNetwork
	optimizer *routing.RouteOptimizer
}

func NewRouteService(log *zap.Logger, network *da.RoadNetwork) *RouteService {
	return &RouteService{
		log:       log,
		network:   network,
		optimizer: routing.NewRouteOptimizer(network),
	}
}

// OptimizeRoute runs the optimization and additionally encodes the
// pixel-space intersection path as a polyline for map clients.
func (s *RouteService) OptimizeRoute(startPoi string, destinationPois []string, strategy pkg.Strategy) (*da.Route, string, error) {
	route, err := s.optimizer.OptimizeRoute(startPoi, destinationPois, strategy)
	if err != nil {
		s.log.Warn("route optimization rejected",
			zap.String("start_poi", startPoi),
			zap.Strings("destination_pois", destinationPois),
			zap.Error(err))
		return nil, "", err
	}

	s.log.Info("route optimized",
		zap.String("start_poi", startPoi),
		zap.Int("destinations", len(destinationPois)),
		zap.String("algorithm", route.Algorithm()),
		zap.Float64("total_distance", route.TotalDistance()),
		zap.Int("iterations", route.Iterations()))

	return route, s.encodePathPolyline(route), nil
}

func (s *RouteService) encodePathPolyline(route *da.Route) string {
	path := route.Path()
	coords := make([][]float64, 0, len(path))
	for _, intersectionID := range path {
		inter, ok := s.network.Intersection(intersectionID)
		if !ok {
			continue
		}
		coords = append(coords, []float64{inter.PixelX, inter.PixelY})
	}
	return string(polyline.EncodeCoords(coords))
}
