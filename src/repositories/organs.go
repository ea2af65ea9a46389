package repositories

import (
	"context"
	"errors"

	"Backend-AssocHub-012/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrganRepo resolves submitted organ/company ids to entities.
type OrganRepo struct {
	organs    *mongo.Collection
	companies *mongo.Collection
}

func NewOrganRepo(organs, companies *mongo.Collection) *OrganRepo {
	return &OrganRepo{organs: organs, companies: companies}
}

func (r *OrganRepo) ResolveOrgan(ctx context.Context, id primitive.ObjectID) (*models.Organ, error) {
	var o models.Organ
	err := r.organs.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrganRepo) ResolveCompany(ctx context.Context, id primitive.ObjectID) (*models.Company, error) {
	var c models.Company
	err := r.companies.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
