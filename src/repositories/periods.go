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

type PeriodRepo struct {
	periods *mongo.Collection
	maxes   *mongo.Collection
}

func NewPeriodRepo(periods, maxes *mongo.Collection) *PeriodRepo {
	return &PeriodRepo{periods: periods, maxes: maxes}
}

func (r *PeriodRepo) Find(ctx context.Context, id primitive.ObjectID) (*models.CreationPeriod, error) {
	var p models.CreationPeriod
	err := r.periods.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PeriodRepo) All(ctx context.Context) ([]models.CreationPeriod, error) {
	cur, err := r.periods.Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"beginPlanningTime": 1}))
	if err != nil {
		return nil, err
	}
	var out []models.CreationPeriod
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Current returns periods whose planning window contains now.
func (r *PeriodRepo) Current(ctx context.Context, now time.Time) ([]models.CreationPeriod, error) {
	cur, err := r.periods.Find(ctx, bson.M{
		"beginPlanningTime": bson.M{"$lte": now},
		"endPlanningTime":   bson.M{"$gt": now},
	})
	if err != nil {
		return nil, err
	}
	var out []models.CreationPeriod
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PeriodRepo) Insert(ctx context.Context, p *models.CreationPeriod) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	_, err := r.periods.InsertOne(ctx, p)
	return err
}

func (r *PeriodRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.periods.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *PeriodRepo) MaxActivities(ctx context.Context, organID, periodID primitive.ObjectID) (*models.MaxActivities, error) {
	var row models.MaxActivities
	err := r.maxes.FindOne(ctx, bson.M{"organId": organID, "periodId": periodID}).Decode(&row)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *PeriodRepo) SetMaxActivities(ctx context.Context, row *models.MaxActivities) error {
	_, err := r.maxes.UpdateOne(ctx,
		bson.M{"organId": row.OrganID, "periodId": row.PeriodID},
		bson.M{"$set": bson.M{"value": row.Value}},
		options.Update().SetUpsert(true),
	)
	return err
}

// DeleteMaxActivities drops every quota row owned by the period.
func (r *PeriodRepo) DeleteMaxActivities(ctx context.Context, periodID primitive.ObjectID) error {
	_, err := r.maxes.DeleteMany(ctx, bson.M{"periodId": periodID})
	return err
}
