package routes

import (
	"Backend-AssocHub-012/src/controllers"
	"Backend-AssocHub-012/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func periodRoutes(router fiber.Router) {
	periods := router.Group("/periods")
	periods.Get("/", controllers.GetPeriods)

	periods.Use(middleware.AuthJWT)
	periods.Post("/", controllers.CreatePeriod)
	periods.Delete("/:id", controllers.DeletePeriod)
	periods.Put("/:id/max/:organId", controllers.SetMaxActivities)
}
