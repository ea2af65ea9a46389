package repositories

import (
	"context"
	"errors"
	"time"

	"Backend-AssocHub-012/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OptionProposalRepo struct {
	proposals *mongo.Collection
	options   *mongo.Collection
}

func NewOptionProposalRepo(proposals, options *mongo.Collection) *OptionProposalRepo {
	return &OptionProposalRepo{proposals: proposals, options: options}
}

func (r *OptionProposalRepo) Find(ctx context.Context, id primitive.ObjectID) (*models.OptionProposal, error) {
	var p models.OptionProposal
	err := r.proposals.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *OptionProposalRepo) All(ctx context.Context) ([]models.OptionProposal, error) {
	cur, err := r.proposals.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var out []models.OptionProposal
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *OptionProposalRepo) Insert(ctx context.Context, p *models.OptionProposal) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	_, err := r.proposals.InsertOne(ctx, p)
	return err
}

// CountOpenProposals counts the organ's proposals created inside
// [from, to) that are not yet closed, i.e. have no approved option.
func (r *OptionProposalRepo) CountOpenProposals(ctx context.Context, organID primitive.ObjectID, from, to time.Time) (int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"organId":   organID,
			"createdAt": bson.M{"$gte": from, "$lt": to},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         r.options.Name(),
			"localField":   "_id",
			"foreignField": "proposalId",
			"as":           "opts",
		}}},
		{{Key: "$match", Value: bson.M{
			"opts": bson.M{"$not": bson.M{"$elemMatch": bson.M{"status": models.OptionApproved}}},
		}}},
		{{Key: "$count", Value: "n"}},
	}

	cur, err := r.proposals.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	var res []struct {
		N int `bson:"n"`
	}
	if err := cur.All(ctx, &res); err != nil {
		return 0, err
	}
	if len(res) == 0 {
		return 0, nil
	}
	return res[0].N, nil
}
