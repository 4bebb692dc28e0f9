// Command resetdb rolls every schema migration back and applies them again,
// leaving an empty database. The default user is seeded by the server on its
// next start.
package main

import (
	"context"

	"github.com/MKhiriev/go-address-book/internal/config"
	"github.com/MKhiriev/go-address-book/internal/logger"
	"github.com/MKhiriev/go-address-book/internal/store"
)

func main() {
	log := logger.NewLogger("resetdb")

	cfg, err := config.GetStorageConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting storage config")
	}

	ctx := context.Background()

	db, err := store.NewConnect(ctx, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening database")
	}
	defer db.Close()

	if err = db.Reset(ctx); err != nil {
		log.Fatal().Err(err).Msg("error resetting database")
	}

	log.Info().Str("driver", db.Driver()).Msg("database reset")
}
