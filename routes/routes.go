package routes

import (
	"github.com/ankitmgs/Fitness-AI/controllers"
	"github.com/ankitmgs/Fitness-AI/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected API routes; every record is scoped to the bearer's user id
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/profile", controllers.GetProfile)
		api.POST("/profile", controllers.SaveProfile)

		api.GET("/meals", controllers.ListMeals)
		api.POST("/meals", controllers.AddMeal)
		api.PUT("/meals/:id", controllers.UpdateMeal)
		api.DELETE("/meals/:id", controllers.DeleteMeal)

		api.GET("/custom-meals", controllers.ListCustomMeals)
		api.POST("/custom-meals", controllers.AddCustomMeal)
		api.PUT("/custom-meals/:id", controllers.UpdateCustomMeal)
		api.DELETE("/custom-meals/:id", controllers.DeleteCustomMeal)

		api.GET("/workouts", controllers.ListWorkouts)
		api.POST("/workouts", controllers.AddWorkout)
		api.PUT("/workouts/:id", controllers.UpdateWorkout)
		api.DELETE("/workouts/:id", controllers.DeleteWorkout)

		api.GET("/weight-logs", controllers.ListWeightLogs)
		api.POST("/weight-logs", controllers.SaveWeightLog)
		api.PUT("/weight-logs/:id", controllers.UpdateWeightLog)
		api.DELETE("/weight-logs/:id", controllers.DeleteWeightLog)

		api.GET("/water-logs", controllers.ListWaterLogs)
		api.POST("/water-logs", controllers.SaveWaterLog)
		api.DELETE("/water-logs/:id", controllers.DeleteWaterLog)
	}

	return r
}
