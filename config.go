package main

import (
	"fmt"
	"time"

	"github.com/andareed/memoria/mapview"
	"github.com/caarlos0/env/v11"
)

// Config is read from MEMORIA_* environment variables. Flags and the positional dataset
// argument override it.
type Config struct {
	Dataset  string `env:"MEMORIA_DATASET"`
	DebugLog string `env:"MEMORIA_DEBUG_LOG"`

	CenterLat float64 `env:"MEMORIA_CENTER_LAT" envDefault:"-34.7800"`
	CenterLng float64 `env:"MEMORIA_CENTER_LNG" envDefault:"-58.2650"`
	Zoom      int     `env:"MEMORIA_ZOOM" envDefault:"12"`
	MinZoom   int     `env:"MEMORIA_MIN_ZOOM" envDefault:"9"`
	MaxZoom   int     `env:"MEMORIA_MAX_ZOOM" envDefault:"18"`

	TileURL         string `env:"MEMORIA_TILE_URL" envDefault:"https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png"`
	TileSubdomains  string `env:"MEMORIA_TILE_SUBDOMAINS" envDefault:"abcd"`
	TileMaxZoom     int    `env:"MEMORIA_TILE_MAX_ZOOM" envDefault:"19"`
	TileAttribution string `env:"MEMORIA_TILE_ATTRIBUTION" envDefault:"© OpenStreetMap © CARTO"`

	ImageTimeout time.Duration `env:"MEMORIA_IMAGE_TIMEOUT" envDefault:"3s"`
	Mouse        bool          `env:"MEMORIA_MOUSE" envDefault:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MinZoom > cfg.MaxZoom {
		return Config{}, fmt.Errorf("min zoom %d above max zoom %d", cfg.MinZoom, cfg.MaxZoom)
	}
	return cfg, nil
}

func (c Config) mapConfig() mapview.Config {
	return mapview.Config{
		Center:  mapview.LatLng{Lat: c.CenterLat, Lng: c.CenterLng},
		Zoom:    c.Zoom,
		MinZoom: c.MinZoom,
		MaxZoom: c.MaxZoom,
	}
}

func (c Config) tileSource() mapview.TileSource {
	return mapview.TileSource{
		URL:         c.TileURL,
		Subdomains:  c.TileSubdomains,
		MaxZoom:     c.TileMaxZoom,
		Attribution: c.TileAttribution,
	}
}
