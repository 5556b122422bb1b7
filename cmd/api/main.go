package main

import (
	"context"
	"log"

	"github.com/InternFinder-SIH/internfinder-backend/config"
	"github.com/InternFinder-SIH/internfinder-backend/internal/bootstrap"
	"github.com/InternFinder-SIH/internfinder-backend/internal/internships"
)

const serviceName = "internfinder-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	firebaseClients, err := bootstrap.InitFirebase(ctx, &cfg.Firebase)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}
	defer firebaseClients.Close()

	db, err := bootstrap.OpenDB(ctx, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}
	defer db.Close()

	redisClient, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		// Caches degrade to direct reads when Redis is down.
		log.Printf("Redis unavailable, continuing without cache: %v", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	if firebaseClients.RTDB != nil && redisClient != nil {
		scheduler := internships.NewScheduler(
			internships.NewRepo(firebaseClients.RTDB),
			internships.NewCache(redisClient),
		)
		scheduler.Start()
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Cfg:         cfg,
		DB:          db,
		Redis:       redisClient,
		Firebase:    firebaseClients,
	})

	log.Printf("Server listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
