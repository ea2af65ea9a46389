package repositories

import (
	"context"
	"errors"

	"Backend-AssocHub-012/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ActivityRepo struct {
	col *mongo.Collection
}

func NewActivityRepo(col *mongo.Collection) *ActivityRepo {
	return &ActivityRepo{col: col}
}

func (r *ActivityRepo) Find(ctx context.Context, id primitive.ObjectID) (*models.Activity, error) {
	var a models.Activity
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ActivityRepo) All(ctx context.Context) ([]models.Activity, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var out []models.Activity
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ActivityRepo) Insert(ctx context.Context, a *models.Activity) error {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, a)
	return err
}

func (r *ActivityRepo) Save(ctx context.Context, a *models.Activity) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": a.ID}, a)
	return err
}

func (r *ActivityRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
