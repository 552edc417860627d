package routes

import (
	"github.com/Danz-MAZ/Club-Jepang/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	api := r.Group("/api")
	{
		barang := api.Group("/barang")
		{
			barang.GET("", controllers.GetAllBarang)
			barang.POST("", controllers.CreateBarang)
			barang.PUT("/:id", controllers.UpdateBarang)
			barang.DELETE("/:id", controllers.DeleteBarang)
		}

		pemasukan := api.Group("/pemasukan")
		{
			pemasukan.GET("", controllers.GetAllPemasukan)
			pemasukan.POST("", controllers.CreatePemasukan)
			pemasukan.GET("/:id", controllers.GetPemasukanByID)
			pemasukan.PUT("/:id", controllers.UpdatePemasukan)
			pemasukan.DELETE("/:id", controllers.DeletePemasukan)
		}

		api.GET("/dashboard", controllers.Dashboard)
	}
}
