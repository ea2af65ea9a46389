package repositories

import (
	"context"
	"errors"

	"Backend-AssocHub-012/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateProposalRepo struct {
	col *mongo.Collection
}

func NewUpdateProposalRepo(col *mongo.Collection) *UpdateProposalRepo {
	return &UpdateProposalRepo{col: col}
}

func (r *UpdateProposalRepo) Find(ctx context.Context, id primitive.ObjectID) (*models.UpdateProposal, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByOld returns the live proposal targeting the given activity; there
// is at most one.
func (r *UpdateProposalRepo) FindByOld(ctx context.Context, oldID primitive.ObjectID) (*models.UpdateProposal, error) {
	return r.findOne(ctx, bson.M{"oldId": oldID})
}

func (r *UpdateProposalRepo) findOne(ctx context.Context, filter bson.M) (*models.UpdateProposal, error) {
	var p models.UpdateProposal
	err := r.col.FindOne(ctx, filter).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *UpdateProposalRepo) All(ctx context.Context) ([]models.UpdateProposal, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var out []models.UpdateProposal
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UpdateProposalRepo) Insert(ctx context.Context, p *models.UpdateProposal) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *UpdateProposalRepo) Save(ctx context.Context, p *models.UpdateProposal) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	return err
}

func (r *UpdateProposalRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
