package controllers

import (
	"Backend-AssocHub-012/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetUpdateProposals godoc
// @Summary      List pending update proposals
// @Tags         update-proposals
// @Produce      json
// @Success      200  {array}   models.UpdateProposal
// @Failure      500  {object}  models.ErrorResponse
// @Router       /update-proposals [get]
func GetUpdateProposals(c *fiber.Ctx) error {
	props, err := updateSvc.List(c.Context())
	if err != nil {
		return utils.RespondError(c, err)
	}
	return c.JSON(props)
}

// ApplyUpdateProposal godoc
// @Summary      Apply a pending update proposal
// @Description  Swaps the candidate in; the old activity is gone afterwards
// @Tags         update-proposals
// @Produce      json
// @Param        id path string true "Proposal ID"
// @Success      200  {object}  models.Activity
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /update-proposals/{id}/apply [post]
func ApplyUpdateProposal(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return utils.RespondError(c, err)
	}
	id, err := parseObjectID(c, "id")
	if err != nil {
		return utils.RespondError(c, err)
	}
	applied, err := updateSvc.Apply(c.Context(), actor, id)
	if err != nil {
		return utils.RespondError(c, err)
	}
	return c.JSON(applied)
}

// RevokeUpdateProposal godoc
// @Summary      Revoke a pending update proposal
// @Description  Deletes the proposal and its candidate; irreversible
// @Tags         update-proposals
// @Produce      json
// @Param        id path string true "Proposal ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /update-proposals/{id}/revoke [post]
func RevokeUpdateProposal(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return utils.RespondError(c, err)
	}
	id, err := parseObjectID(c, "id")
	if err != nil {
		return utils.RespondError(c, err)
	}
	if err := updateSvc.Revoke(c.Context(), actor, id); err != nil {
		return utils.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Update proposal revoked"})
}
