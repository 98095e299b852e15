package main

import (
	"log"

	_ "taskcherry/docs"
	"taskcherry/internal/config"
	"taskcherry/internal/server"
)

// @title           TaskCherry API
// @version         1.0
// @description     API for TaskCherry boards, cards, dashboard widgets and reports.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
