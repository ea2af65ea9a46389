package controllers

import (
	"context"

	"Backend-AssocHub-012/src/models"
	"Backend-AssocHub-012/src/services/auth"
	"Backend-AssocHub-012/src/services/errs"
	"Backend-AssocHub-012/src/services/options"
	"Backend-AssocHub-012/src/services/quota"
	"Backend-AssocHub-012/src/services/updateproposals"

	"Backend-AssocHub-012/src/services/activities"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

type UserFinder interface {
	Find(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// Package-level service handles, wired once from main.
var (
	activitySvc *activities.Service
	updateSvc   *updateproposals.Service
	optionSvc   *options.Service
	quotaSvc    *quota.Service
	authSvc     *auth.Service
	users       UserFinder
)

type Deps struct {
	Activities *activities.Service
	Updates    *updateproposals.Service
	Options    *options.Service
	Quota      *quota.Service
	Auth       *auth.Service
	Users      UserFinder
}

func Init(d Deps) {
	activitySvc = d.Activities
	updateSvc = d.Updates
	optionSvc = d.Options
	quotaSvc = d.Quota
	authSvc = d.Auth
	users = d.Users
}

// currentActor loads the authenticated member from the JWT locals.
func currentActor(c *fiber.Ctx) (*models.User, error) {
	raw, _ := c.Locals("userId").(string)
	if raw == "" {
		return nil, errs.ErrNotAuthenticated
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return nil, errs.ErrNotAuthenticated
	}
	actor, err := users.Find(c.Context(), id)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, errs.ErrNotAuthenticated
	}
	return actor, nil
}

func parseObjectID(c *fiber.Ctx, param string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params(param))
	if err != nil {
		return primitive.NilObjectID, errs.NotFound(param)
	}
	return id, nil
}
