package repositories

import (
	"context"
	"errors"
	"time"

	"Backend-AssocHub-012/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CalendarOptionRepo struct {
	col *mongo.Collection
}

func NewCalendarOptionRepo(col *mongo.Collection) *CalendarOptionRepo {
	return &CalendarOptionRepo{col: col}
}

func (r *CalendarOptionRepo) Find(ctx context.Context, id primitive.ObjectID) (*models.CalendarOption, error) {
	var o models.CalendarOption
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *CalendarOptionRepo) ByProposal(ctx context.Context, proposalID primitive.ObjectID) ([]models.CalendarOption, error) {
	cur, err := r.col.Find(ctx, bson.M{"proposalId": proposalID},
		options.Find().SetSort(bson.M{"beginTime": 1}))
	if err != nil {
		return nil, err
	}
	var out []models.CalendarOption
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CalendarOptionRepo) Insert(ctx context.Context, o *models.CalendarOption) error {
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, o)
	return err
}

func (r *CalendarOptionRepo) Save(ctx context.Context, o *models.CalendarOption) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": o.ID}, o)
	return err
}

// Overdue returns still-pending options beginning before the given instant.
func (r *CalendarOptionRepo) Overdue(ctx context.Context, before time.Time) ([]models.CalendarOption, error) {
	cur, err := r.col.Find(ctx, bson.M{
		"status":    models.OptionPending,
		"beginTime": bson.M{"$lt": before},
	}, options.Find().SetSort(bson.M{"beginTime": 1}))
	if err != nil {
		return nil, err
	}
	var out []models.CalendarOption
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
