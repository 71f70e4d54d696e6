package main

import (
	"flag"

	"go.uber.org/zap"

	"delivery-route-optimizer/pkg"
	"delivery-route-optimizer/pkg/config"
	"delivery-route-optimizer/pkg/engine/routing"
	"delivery-route-optimizer/pkg/logger"
	"delivery-route-optimizer/pkg/renderer"
)

var (
	configFile = flag.String("config", "./config.json", "path to the grid/POI configuration file")
	outputFile = flag.String("output", "./output.html", "path of the rendered HTML map")
	strategy   = flag.String("strategy", string(pkg.StrategyTwoOpt), "optimization strategy: nearest_neighbor or 2opt")
)

func main() {
	flag.Parse()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal("load configuration", zap.Error(err))
	}

	startPoi := ""
	for _, node := range cfg.Nodes {
		if node.Type == "distribution_center" {
			startPoi = node.ID
			break
		}
	}
	if startPoi == "" {
		log.Fatal("configuration has no distribution_center node")
	}

	network := cfg.BuildNetwork()

	optimizer := routing.NewRouteOptimizer(network)
	route, err := optimizer.OptimizeRoute(startPoi, cfg.DeliveryAddresses, pkg.Strategy(*strategy))
	if err != nil {
		log.Fatal("optimize route", zap.Error(err))
	}

	htmlRenderer := renderer.NewHTMLRenderer(network, cfg)
	if err := htmlRenderer.RenderRoute(route, *outputFile); err != nil {
		log.Fatal("render route", zap.Error(err))
	}

	log.Info("optimization completed",
		zap.Strings("poi_order", route.PoiOrder()),
		zap.Int("intersections_traversed", len(route.Path())),
		zap.Float64("total_distance_px", route.TotalDistance()),
		zap.String("algorithm", route.Algorithm()),
		zap.Int("iterations", route.Iterations()),
		zap.String("output", *outputFile))
}
