package routes

import (
	"Backend-AssocHub-012/src/controllers"
	"Backend-AssocHub-012/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func updateProposalRoutes(router fiber.Router) {
	props := router.Group("/update-proposals")
	props.Use(middleware.AuthJWT)
	props.Get("/", controllers.GetUpdateProposals)
	props.Post("/:id/apply", controllers.ApplyUpdateProposal)
	props.Post("/:id/revoke", controllers.RevokeUpdateProposal)
}
