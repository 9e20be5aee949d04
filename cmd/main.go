package main

import (
	"log"
	"os"

	"github.com/ankitmgs/Fitness-AI/config"
	"github.com/ankitmgs/Fitness-AI/routes"
)

func main() {
	config.InitDB()

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
