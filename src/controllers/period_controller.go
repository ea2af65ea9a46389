package controllers

import (
	"strconv"

	"Backend-AssocHub-012/src/models"
	"Backend-AssocHub-012/src/services/activities"
	"Backend-AssocHub-012/src/services/errs"
	"Backend-AssocHub-012/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetPeriods godoc
// @Summary      List creation periods
// @Tags         periods
// @Produce      json
// @Success      200  {array}   models.CreationPeriod
// @Failure      500  {object}  models.ErrorResponse
// @Router       /periods [get]
func GetPeriods(c *fiber.Ctx) error {
	periods, err := quotaSvc.ListPeriods(c.Context())
	if err != nil {
		return utils.RespondError(c, err)
	}
	return c.JSON(periods)
}

// CreatePeriod godoc
// @Summary      Configure a creation period
// @Tags         periods
// @Accept       json
// @Produce      json
// @Param        body body models.CreationPeriodIn true "Planning and option windows"
// @Success      201  {object}  models.CreationPeriod
// @Failure      400  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Router       /periods [post]
func CreatePeriod(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return utils.RespondError(c, err)
	}
	if actor.Role != models.RoleAdmin {
		return utils.RespondError(c, errs.PermissionDenied("period administration is board-only"))
	}

	var in models.CreationPeriodIn
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	p := models.CreationPeriod{}
	if p.BeginPlanningTime, err = activities.ParseEditTime(in.BeginPlanningTime); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid beginPlanningTime")
	}
	if p.EndPlanningTime, err = activities.ParseEditTime(in.EndPlanningTime); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid endPlanningTime")
	}
	if p.BeginOptionTime, err = activities.ParseEditTime(in.BeginOptionTime); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid beginOptionTime")
	}
	if p.EndOptionTime, err = activities.ParseEditTime(in.EndOptionTime); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid endOptionTime")
	}

	if err := quotaSvc.CreatePeriod(c.Context(), &p); err != nil {
		return utils.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// DeletePeriod godoc
// @Summary      Remove a creation period and its quota rows
// @Tags         periods
// @Produce      json
// @Param        id path string true "Period ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /periods/{id} [delete]
func DeletePeriod(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return utils.RespondError(c, err)
	}
	if actor.Role != models.RoleAdmin {
		return utils.RespondError(c, errs.PermissionDenied("period administration is board-only"))
	}
	id, err := parseObjectID(c, "id")
	if err != nil {
		return utils.RespondError(c, err)
	}
	if err := quotaSvc.DeletePeriod(c.Context(), id); err != nil {
		return utils.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Period deleted"})
}

// SetMaxActivities godoc
// @Summary      Set an organ's proposal quota for a period
// @Tags         periods
// @Produce      json
// @Param        id path string true "Period ID"
// @Param        organId path string true "Organ ID"
// @Param        value query int true "Maximum open proposals"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Router       /periods/{id}/max/{organId} [put]
func SetMaxActivities(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return utils.RespondError(c, err)
	}
	if actor.Role != models.RoleAdmin {
		return utils.RespondError(c, errs.PermissionDenied("quota administration is board-only"))
	}
	periodID, err := parseObjectID(c, "id")
	if err != nil {
		return utils.RespondError(c, err)
	}
	organID, err := parseObjectID(c, "organId")
	if err != nil {
		return utils.RespondError(c, err)
	}
	value, err := strconv.Atoi(c.Query("value"))
	if err != nil || value < 0 {
		return utils.HandleError(c, fiber.StatusBadRequest, "value must be a non-negative integer")
	}
	if err := quotaSvc.SetMax(c.Context(), organID, periodID, value); err != nil {
		return utils.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Quota updated"})
}
