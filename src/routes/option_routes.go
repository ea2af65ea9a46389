package routes

import (
	"Backend-AssocHub-012/src/controllers"
	"Backend-AssocHub-012/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func optionRoutes(router fiber.Router) {
	proposals := router.Group("/option-proposals")
	proposals.Use(middleware.AuthJWT)
	proposals.Get("/", controllers.GetOptionProposals)
	proposals.Post("/", controllers.CreateOptionProposal)
	proposals.Post("/:id/options", controllers.CreateOption)

	opts := router.Group("/options")
	opts.Use(middleware.AuthJWT)
	opts.Post("/:id/approve", controllers.ApproveOption)
	opts.Delete("/:id", controllers.DeleteOption)
}
