package main

import (
	stdContext "context"
	"flag"
	"strings"
	"time"

	"github.com/Favorjs/e-rights-backend/erreg"
	"github.com/Favorjs/e-rights-backend/migration"
	"github.com/Favorjs/e-rights-backend/rest"
	"github.com/Favorjs/e-rights-backend/utils/db"
	"github.com/Favorjs/e-rights-backend/utils/env"
	"github.com/Favorjs/e-rights-backend/utils/initializer"
	"github.com/Favorjs/e-rights-backend/utils/log"
	"github.com/Favorjs/e-rights-backend/utils/signalman"
	"github.com/joho/godotenv"
)

func shutdown() error {
	timeout := time.Second
	ctx, cancel := stdContext.WithTimeout(stdContext.Background(), timeout)
	defer cancel()
	return rest.Shutdown(ctx)
}

func init() {
	// local development convenience; absent .env files are fine
	godotenv.Load()

	// register env defaults
	initializer.Initialize()

	flag.Parse()

	signalman.RegisterFunc("rest_shutdown", shutdown)
}

func main() {
	if err := migration.Migration(db.DB()).Migrate(); err != nil {
		log.Fatal("database migration failed", "error", err)
	}

	log.Info("e-rights is live", "mode", env.GetVar("ERIGHTS_MODE"))

	signalman.Start()

	if err := rest.Start(env.GetVar("ERIGHTS_PORT"), erreg.Services); err != nil {
		if !strings.Contains(err.Error(), "Server closed") {
			log.Fatal("rest server unexpectedly exited", "error", err)
		}
	}

	defer db.DB().Close()

	log.Info("waiting for graceful shutdown")
	signalman.Wait()
}
