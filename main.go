package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/exclusiveng/360urban-backendmysql/configs"
	"github.com/exclusiveng/360urban-backendmysql/middlewares"
	"github.com/exclusiveng/360urban-backendmysql/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	if err := configs.ConnectDB(cfg); err != nil {
		log.Fatalf("connect database failed: %v", err)
	}
	db := configs.DB()

	// migrate
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedAreas(); err != nil {
		log.Fatalf("seed areas failed: %v", err)
	}

	// upload dirs must exist before the first save
	for _, dir := range []string{"properties", "areas"} {
		if err := os.MkdirAll(filepath.Join("uploads", dir), 0o755); err != nil {
			log.Fatalf("create upload dir failed: %v", err)
		}
	}

	// HTTP
	r := gin.Default()
	r.MaxMultipartMemory = 10 << 20

	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigin))

	// serve uploaded images
	r.Static("/uploads", "./uploads")

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
