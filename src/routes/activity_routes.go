package routes

import (
	"Backend-AssocHub-012/src/controllers"
	"Backend-AssocHub-012/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func activityRoutes(router fiber.Router) {
	activities := router.Group("/activities")
	activities.Get("/", controllers.GetAllActivities)
	activities.Get("/:id", controllers.GetActivityByID)

	activities.Use(middleware.AuthJWT)
	activities.Post("/", controllers.CreateActivity)
	activities.Put("/:id", controllers.UpdateActivity) // สร้าง update proposal
}
