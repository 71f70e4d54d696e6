package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"delivery-route-optimizer/pkg"
	da "delivery-route-optimizer/pkg/datastructure"
	"delivery-route-optimizer/pkg/util"
)

// Grid describes the synthetic road network: dimensions in cells, cell size
// in pixels and the roads closed off at startup.
type Grid struct {
	Width        int         `mapstructure:"width" validate:"gt=0"`
	Height       int         `mapstructure:"height" validate:"gt=0"`
	CellSize     float64     `mapstructure:"cell_size" validate:"gt=0"`
	BlockedRoads [][2]string `mapstructure:"blocked_roads" validate:"dive,dive,required"`
}

// Node is one point of interest anchored onto the grid.
type Node struct {
	ID    string `mapstructure:"id" validate:"required"`
	Name  string `mapstructure:"name"`
	GridX int    `mapstructure:"grid_x"`
	GridY int    `mapstructure:"grid_y"`
	Type  string `mapstructure:"type" validate:"required"`
}

// Config is the already-parsed application configuration: grid parameters,
// POI definitions and the delivery addresses to visit.
type Config struct {
	Grid              Grid     `mapstructure:"grid"`
	Nodes             []Node   `mapstructure:"nodes" validate:"required,min=1,dive"`
	DeliveryAddresses []string `mapstructure:"delivery_addresses" validate:"required,min=1,dive,required"`
}

// Load reads and validates the JSON configuration file at path. Grid
// parameters fall back to the documented defaults when omitted.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetDefault("grid.width", pkg.DEFAULT_GRID_WIDTH)
	v.SetDefault("grid.height", pkg.DEFAULT_GRID_HEIGHT)
	v.SetDefault("grid.cell_size", pkg.DEFAULT_CELL_SIZE)

	if err := v.ReadInConfig(); err != nil {
		return nil, util.WrapErrorf(err, util.ErrNotFound, "read config file %q", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "unmarshal config file %q", path)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "validate config file %q", path)
	}

	return &cfg, nil
}

// NodeByID looks a node up by its POI id.
func (c *Config) NodeByID(nodeID string) (Node, bool) {
	for _, node := range c.Nodes {
		if node.ID == nodeID {
			return node, true
		}
	}
	return Node{}, false
}

// BuildNetwork constructs the road network the configuration describes:
// fresh grid, every node anchored as a POI, every configured road blocked.
func (c *Config) BuildNetwork() *da.RoadNetwork {
	network := da.NewRoadNetwork(c.Grid.Width, c.Grid.Height, c.Grid.CellSize)
	for _, node := range c.Nodes {
		network.AddPointOfInterest(node.ID, node.GridX, node.GridY)
	}
	for _, blocked := range c.Grid.BlockedRoads {
		network.BlockRoad(blocked[0], blocked[1])
	}
	return network
}
