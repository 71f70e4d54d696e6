package main

import (
	"context"
	"flag"

	"go.uber.org/zap"

	"delivery-route-optimizer/pkg/config"
	"delivery-route-optimizer/pkg/http"
	"delivery-route-optimizer/pkg/http/usecases"
	"delivery-route-optimizer/pkg/logger"
)

var (
	configFile = flag.String("config", "./config.json", "path to the grid/POI configuration file")
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

	// the network is mutated only here, before the API starts serving;
	// every optimization call afterwards reads it concurrently
	network := cfg.BuildNetwork()
	log.Info("road network built",
		zap.Int("width", cfg.Grid.Width),
		zap.Int("height", cfg.Grid.Height),
		zap.Int("intersections", network.NumIntersections()),
		zap.Int("pois", len(cfg.Nodes)),
		zap.Int("blocked_roads", len(cfg.Grid.BlockedRoads)))

	routeService := usecases.NewRouteService(log, network)

	api := http.NewServer(log)

	ctx, cancel := context.WithCancel(context.Background())
	if _, err := api.Use(ctx, log, false, routeService); err != nil {
		log.Fatal("start API", zap.Error(err))
	}

	sig := http.GracefulShutdown()
	log.Info("Delivery Route Optimizer Server Stopped", zap.String("signal", sig.String()))
	cancel()
}
