package main

import (
	"log"
	"os"

	"github.com/Danz-MAZ/Club-Jepang/config"
	"github.com/Danz-MAZ/Club-Jepang/middlewares"
	"github.com/Danz-MAZ/Club-Jepang/models"
	"github.com/Danz-MAZ/Club-Jepang/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env opsional, env asli tidak ditimpa
	_ = godotenv.Load()

	config.ConnectDB()

	if config.ShouldAutoMigrate() {
		err := config.DB.AutoMigrate(
			&models.Barang{},
			&models.SubItem{},
			&models.Pemasukan{},
		)
		if err != nil {
			log.Fatalf("❌ Gagal migrasi database: %v", err)
		}
	}

	r := gin.Default()
	r.Use(middlewares.RequestID())
	routes.SetupRoutes(r)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "🚀 Club Jepang API is running"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	_ = r.Run(":" + port)
}
