package quota

import (
	"context"
	"encoding/json"
	"time"

	"Backend-AssocHub-012/src/models"
	"Backend-AssocHub-012/src/services/errs"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const currentPeriodsCacheKey = "periods:current"
const currentPeriodsCacheTTL = 60 * time.Second

// PeriodStore persists creation periods and their quota rows. Missing ids
// are (nil, nil).
type PeriodStore interface {
	Find(ctx context.Context, id primitive.ObjectID) (*models.CreationPeriod, error)
	All(ctx context.Context) ([]models.CreationPeriod, error)
	Current(ctx context.Context, now time.Time) ([]models.CreationPeriod, error)
	Insert(ctx context.Context, p *models.CreationPeriod) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	MaxActivities(ctx context.Context, organID, periodID primitive.ObjectID) (*models.MaxActivities, error)
	SetMaxActivities(ctx context.Context, row *models.MaxActivities) error
	DeleteMaxActivities(ctx context.Context, periodID primitive.ObjectID) error
}

// ProposalCounter counts an organ's non-closed option proposals created in
// a window. A proposal is closed once one of its options is approved;
// revoked or never-approved proposals still count, which bounds the total
// an organ can keep open.
type ProposalCounter interface {
	CountOpenProposals(ctx context.Context, organID primitive.ObjectID, from, to time.Time) (int, error)
}

// Service is the quota tracker.
type Service struct {
	periods   PeriodStore
	proposals ProposalCounter
	cache     *redis.Client // optional
}

func NewService(periods PeriodStore, proposals ProposalCounter, cache *redis.Client) *Service {
	return &Service{periods: periods, proposals: proposals, cache: cache}
}

// Max returns the configured quota for (organ, period); no row means 0.
func (s *Service) Max(ctx context.Context, organID, periodID primitive.ObjectID) (int, error) {
	row, err := s.periods.MaxActivities(ctx, organID, periodID)
	if err != nil {
		return 0, err
	}
	if row == nil {
		return 0, nil
	}
	return row.Value, nil
}

// CurrentProposalCount counts the organ's open proposals inside the
// period's planning window.
func (s *Service) CurrentProposalCount(ctx context.Context, organID primitive.ObjectID, period models.CreationPeriod) (int, error) {
	return s.proposals.CountOpenProposals(ctx, organID, period.BeginPlanningTime, period.EndPlanningTime)
}

// CurrentPeriods returns every period whose planning window contains now;
// more than one may be active at once. The hot path hits this on every
// proposal submission, so the result is cached briefly.
func (s *Service) CurrentPeriods(ctx context.Context, now time.Time) ([]models.CreationPeriod, error) {
	var cached []models.CreationPeriod
	if s.getCache(ctx, currentPeriodsCacheKey, &cached) {
		out := cached[:0]
		for _, p := range cached {
			if p.PlanningContains(now) {
				out = append(out, p)
			}
		}
		return out, nil
	}

	periods, err := s.periods.Current(ctx, now)
	if err != nil {
		return nil, err
	}
	s.setCache(ctx, currentPeriodsCacheKey, periods, currentPeriodsCacheTTL)
	return periods, nil
}

// --- period administration (board only; checked at the controller) ---

func (s *Service) ListPeriods(ctx context.Context) ([]models.CreationPeriod, error) {
	return s.periods.All(ctx)
}

func (s *Service) CreatePeriod(ctx context.Context, p *models.CreationPeriod) error {
	if p.EndPlanningTime.Before(p.BeginPlanningTime) || p.EndOptionTime.Before(p.BeginOptionTime) {
		return errs.ErrInvalidWindow
	}
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if err := s.periods.Insert(ctx, p); err != nil {
		return err
	}
	s.delCache(ctx, currentPeriodsCacheKey)
	return nil
}

// DeletePeriod removes a period together with its quota rows.
func (s *Service) DeletePeriod(ctx context.Context, id primitive.ObjectID) error {
	p, err := s.periods.Find(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return errs.NotFound("creation period")
	}
	if err := s.periods.DeleteMaxActivities(ctx, id); err != nil {
		return err
	}
	if err := s.periods.Delete(ctx, id); err != nil {
		return err
	}
	s.delCache(ctx, currentPeriodsCacheKey)
	return nil
}

func (s *Service) SetMax(ctx context.Context, organID, periodID primitive.ObjectID, value int) error {
	p, err := s.periods.Find(ctx, periodID)
	if err != nil {
		return err
	}
	if p == nil {
		return errs.NotFound("creation period")
	}
	return s.periods.SetMaxActivities(ctx, &models.MaxActivities{
		PeriodID: periodID,
		OrganID:  organID,
		Value:    value,
	})
}

// --- redis cache helpers, nil-safe ---

func (s *Service) setCache(ctx context.Context, key string, value any, ttl time.Duration) {
	if s.cache == nil {
		return
	}
	b, _ := json.Marshal(value)
	s.cache.Set(ctx, key, b, ttl)
}

func (s *Service) getCache(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	val, err := s.cache.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), dest) == nil
}

func (s *Service) delCache(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	s.cache.Del(ctx, keys...)
}
