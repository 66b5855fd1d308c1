package main

import (
	"fmt"
	"log"

	"github.com/parcel-comps/internal/config"
	"github.com/parcel-comps/internal/db"
	"github.com/parcel-comps/internal/web"
)

func main() {
	config.LoadEnv()

	fmt.Println("=== Parcel Comparables API ===")

	dbConn, err := db.NewConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	webConfig, err := loadWebConfig()
	if err != nil {
		log.Fatalf("Failed to load server config: %v", err)
	}

	server := web.NewServer(webConfig, dbConn.DB)

	if err := server.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// loadWebConfig builds the server configuration. A WEB_CONFIG env var
// names a JSON config file; otherwise the config is assembled from
// individual environment variables.
func loadWebConfig() (*web.Config, error) {
	if path := config.GetEnv("WEB_CONFIG", ""); path != "" {
		return web.LoadConfig(path)
	}

	return &web.Config{
		Server: web.ServerConfig{
			Port: config.GetEnvInt("WEB_PORT", 8080),
			Host: config.GetEnv("WEB_HOST", "0.0.0.0"),
		},
		Auth: web.AuthConfig{
			Enabled: config.GetEnvBool("AUTH_ENABLED", false),
			APIKey:  config.GetEnv("API_KEY", ""),
		},
		Features: web.FeatureConfig{
			ByAddressEnabled: config.GetEnvBool("ENABLE_BY_ADDRESS", true),
			StatsEnabled:     config.GetEnvBool("ENABLE_STATS", true),
		},
	}, nil
}
