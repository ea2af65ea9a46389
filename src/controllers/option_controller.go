package controllers

import (
	"Backend-AssocHub-012/src/models"
	"Backend-AssocHub-012/src/services/options"
	"Backend-AssocHub-012/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetOptionProposals godoc
// @Summary      List option proposals with their options
// @Tags         option-proposals
// @Produce      json
// @Success      200  {array}   map[string]interface{}
// @Failure      500  {object}  models.ErrorResponse
// @Router       /option-proposals [get]
func GetOptionProposals(c *fiber.Ctx) error {
	props, err := optionSvc.ListProposals(c.Context())
	if err != nil {
		return utils.RespondError(c, err)
	}
	out := make([]fiber.Map, 0, len(props))
	for _, p := range props {
		opts, err := optionSvc.OptionsOf(c.Context(), p.ID)
		if err != nil {
			return utils.RespondError(c, err)
		}
		out = append(out, fiber.Map{"proposal": p, "options": opts})
	}
	return c.JSON(out)
}

// CreateOptionProposal godoc
// @Summary      Propose calendar options
// @Description  Creates a proposal with its candidate time slots; refused when the organ's quota is used up
// @Tags         option-proposals
// @Accept       json
// @Produce      json
// @Param        body body models.OptionProposalCreate true "Proposal with options"
// @Success      201  {object}  models.OptionProposal
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /option-proposals [post]
func CreateOptionProposal(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return utils.RespondError(c, err)
	}

	var req models.OptionProposalCreate
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	prop, err := optionSvc.CreateProposal(c.Context(), actor, &req)
	if err != nil {
		return utils.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(prop)
}

// CreateOption godoc
// @Summary      Add one option to an existing proposal
// @Tags         option-proposals
// @Accept       json
// @Produce      json
// @Param        id path string true "Proposal ID"
// @Param        body body models.CalendarOptionIn true "Time slot"
// @Success      201  {object}  models.CalendarOption
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /option-proposals/{id}/options [post]
func CreateOption(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return utils.RespondError(c, err)
	}
	proposalID, err := parseObjectID(c, "id")
	if err != nil {
		return utils.RespondError(c, err)
	}

	var in models.CalendarOptionIn
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	begin, err := options.ParseOptionTime(in.BeginTime)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid beginTime: "+err.Error())
	}
	end, err := options.ParseOptionTime(in.EndTime)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid endTime: "+err.Error())
	}

	opt, err := optionSvc.CreateOption(c.Context(), actor, proposalID, begin, end, in.Type)
	if err != nil {
		return utils.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(opt)
}

// ApproveOption godoc
// @Summary      Approve one calendar option
// @Description  Retires every still-pending sibling of the same proposal
// @Tags         options
// @Produce      json
// @Param        id path string true "Option ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  models.ErrorResponse
// @Router       /options/{id}/approve [post]
func ApproveOption(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return utils.RespondError(c, err)
	}
	id, err := parseObjectID(c, "id")
	if err != nil {
		return utils.RespondError(c, err)
	}
	if err := optionSvc.ApproveOption(c.Context(), actor, id); err != nil {
		return utils.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Option approved"})
}

// DeleteOption godoc
// @Summary      Soft-delete one calendar option
// @Tags         options
// @Produce      json
// @Param        id path string true "Option ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  models.ErrorResponse
// @Router       /options/{id} [delete]
func DeleteOption(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return utils.RespondError(c, err)
	}
	id, err := parseObjectID(c, "id")
	if err != nil {
		return utils.RespondError(c, err)
	}
	if err := optionSvc.DeleteOption(c.Context(), actor, id); err != nil {
		return utils.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Option deleted"})
}
