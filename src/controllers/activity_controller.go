package controllers

import (
	"Backend-AssocHub-012/src/models"
	"Backend-AssocHub-012/src/services/errs"
	"Backend-AssocHub-012/src/services/updateproposals"
	"Backend-AssocHub-012/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetAllActivities godoc
// @Summary      List activities
// @Description  All activities except update candidates
// @Tags         activities
// @Produce      json
// @Success      200  {array}   models.Activity
// @Failure      500  {object}  models.ErrorResponse
// @Router       /activities [get]
func GetAllActivities(c *fiber.Ctx) error {
	acts, err := activitySvc.List(c.Context())
	if err != nil {
		return utils.RespondError(c, err)
	}
	return c.JSON(acts)
}

// GetActivityByID godoc
// @Summary      Get one activity
// @Tags         activities
// @Produce      json
// @Param        id path string true "Activity ID"
// @Success      200  {object}  models.Activity
// @Failure      404  {object}  models.ErrorResponse
// @Router       /activities/{id} [get]
func GetActivityByID(c *fiber.Ctx) error {
	id, err := parseObjectID(c, "id")
	if err != nil {
		return utils.RespondError(c, err)
	}
	a, err := activitySvc.Get(c.Context(), id)
	if err != nil {
		return utils.RespondError(c, err)
	}
	return c.JSON(a)
}

// CreateActivity godoc
// @Summary      Create a new activity
// @Description  Creates an activity awaiting board approval
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        body body models.ActivityEdit true "Activity form"
// @Success      201  {object}  models.Activity
// @Failure      400  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Router       /activities [post]
func CreateActivity(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return utils.RespondError(c, err)
	}

	var edit models.ActivityEdit
	if err := c.BodyParser(&edit); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(edit); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	organID, companyID, err := parseRefs(edit)
	if err != nil {
		return utils.RespondError(c, err)
	}

	a, err := activitySvc.Create(c.Context(), actor, &edit, organID, companyID)
	if err != nil {
		return utils.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(a)
}

// UpdateActivity godoc
// @Summary      Propose an update to an activity
// @Description  Diff-classifies the edit; applies it directly when the caller is authorized, otherwise leaves a pending proposal
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        id path string true "Activity ID"
// @Param        body body models.ActivityEdit true "Edited activity form"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /activities/{id} [put]
func UpdateActivity(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return utils.RespondError(c, err)
	}
	id, err := parseObjectID(c, "id")
	if err != nil {
		return utils.RespondError(c, err)
	}

	var edit models.ActivityEdit
	if err := c.BodyParser(&edit); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(edit); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	outcome, activity, err := updateSvc.Create(c.Context(), actor, id, &edit)
	if err != nil {
		return utils.RespondError(c, err)
	}

	switch outcome {
	case updateproposals.OutcomeNoChange:
		return c.JSON(fiber.Map{"outcome": "unchanged", "data": activity})
	case updateproposals.OutcomeApplied:
		return c.JSON(fiber.Map{"outcome": "applied", "data": activity})
	default:
		return c.JSON(fiber.Map{"outcome": "pending", "data": activity})
	}
}

func parseRefs(edit models.ActivityEdit) (organID, companyID *primitive.ObjectID, err error) {
	if edit.OrganID != "" && edit.OrganID != "0" {
		id, err := primitive.ObjectIDFromHex(edit.OrganID)
		if err != nil {
			return nil, nil, errs.NotFound("organ")
		}
		organID = &id
	}
	if edit.CompanyID != "" && edit.CompanyID != "0" {
		id, err := primitive.ObjectIDFromHex(edit.CompanyID)
		if err != nil {
			return nil, nil, errs.NotFound("company")
		}
		companyID = &id
	}
	return organID, companyID, nil
}
