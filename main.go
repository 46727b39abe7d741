package main

import (
	"fmt"
	"os"
	"time"

	"github.com/DefiantLabs/RouteSwap/api"
	"github.com/DefiantLabs/RouteSwap/api/middleware"
	"github.com/DefiantLabs/RouteSwap/catalog"
	"github.com/DefiantLabs/RouteSwap/config"
	"go.uber.org/zap"
)

func main() {
	conf := "config.toml"
	if len(os.Args) > 1 {
		conf = os.Args[1]
	}

	var err error
	config.Conf, err = config.GetConfig(conf)
	if err != nil {
		fmt.Println("Error getting config file. Err: ", err)
		os.Exit(1)
	}

	logLevel := config.Conf.Api.LogLevel
	logPath := config.Conf.Api.LogPath
	config.DoConfigureLogger([]string{logPath, "stdout"}, logLevel)

	//It is insecure to configure a SHA256 key with less than a 32 byte secret key
	if config.Conf.Api.RequireAuth && len(config.Conf.JWT.SecretKey) < 32 {
		config.Logger.Error("Insecure JWT configuration", zap.Int("Secret key length", len(config.Conf.JWT.SecretKey)))
		os.Exit(1)
	}
	api.SetSecretKey(config.Conf.JWT.SecretKey)

	registry, err := buildRegistry()
	if err != nil {
		config.Logger.Error("Catalog initialization", zap.Error(err))
		os.Exit(1)
	}
	api.Pools = registry
	config.Logger.Info("Catalog loaded", zap.Int("pools", registry.Len()))

	//Keep the catalog fresh when an upstream source is configured
	if config.Conf.Catalog.RemoteUrl != "" {
		interval := time.Duration(config.Conf.RefreshInterval()) * time.Second
		go catalog.PollRemote(registry, config.Conf.Catalog.RemoteUrl, interval)
	}

	//Serve the REST API for route swap simulation
	middleware.InitializeRestApi()
}

// buildRegistry loads the initial pool set: a configured pools file wins,
// then a configured remote catalog, then the built-in seed pools.
func buildRegistry() (*catalog.Registry, error) {
	conf := config.Conf.Catalog

	var records []catalog.PoolRecord
	var err error
	switch {
	case conf.PoolsFile != "":
		records, err = catalog.LoadPoolsFile(conf.PoolsFile)
	case conf.RemoteUrl != "":
		records, err = catalog.FetchRemotePools(conf.RemoteUrl)
	default:
		records = catalog.SeedRecords()
	}
	if err != nil {
		return nil, err
	}

	return catalog.NewRegistryFromRecords(records)
}
