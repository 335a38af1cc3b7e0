package main

import (
	"context"
	"log"

	"github.com/projectstage/config-backend/config"
	"github.com/projectstage/config-backend/internal/audit"
	"github.com/projectstage/config-backend/internal/bootstrap"
	cronjob "github.com/projectstage/config-backend/internal/cron"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	deps := bootstrap.RouterDeps{
		ServiceName: "config-backend",
		Cfg:         cfg,
	}

	if cfg.Store.Addr == "" {
		log.Println("REDIS_ADDR not set, persistence disabled")
	} else {
		store, err := bootstrap.OpenStore(ctx, bootstrap.StoreOptions{
			Addr:     cfg.Store.Addr,
			Password: cfg.Store.Password,
			DB:       cfg.Store.DB,
		})
		if err != nil {
			log.Fatalf("open store: %v", err)
		}
		deps.Store = store
	}

	if cfg.Database.DSN == "" {
		log.Println("DB_DSN not set, ingestion audit disabled")
	} else {
		db, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN})
		if err != nil {
			log.Fatalf("open audit db: %v", err)
		}
		defer db.Close()

		if err := audit.NewRepo(db).EnsureSchema(ctx); err != nil {
			log.Fatalf("audit schema: %v", err)
		}
		deps.DB = db
	}

	r, pipeline := bootstrap.BuildRouter(deps)

	if cfg.Ingest.SweepSpec != "" {
		cronjob.NewScheduler(cfg.Ingest.SweepSpec, pipeline).Start()
	}

	log.Printf("Listening on port :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
