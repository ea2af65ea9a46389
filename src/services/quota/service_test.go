package quota

import (
	"context"
	"testing"
	"time"

	"Backend-AssocHub-012/src/models"
	"Backend-AssocHub-012/src/services/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakePeriods struct {
	periods map[primitive.ObjectID]*models.CreationPeriod
	maxes   []models.MaxActivities
}

func newFakePeriods() *fakePeriods {
	return &fakePeriods{periods: map[primitive.ObjectID]*models.CreationPeriod{}}
}

func (f *fakePeriods) Find(_ context.Context, id primitive.ObjectID) (*models.CreationPeriod, error) {
	p, ok := f.periods[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePeriods) All(_ context.Context) ([]models.CreationPeriod, error) {
	out := make([]models.CreationPeriod, 0, len(f.periods))
	for _, p := range f.periods {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePeriods) Current(_ context.Context, now time.Time) ([]models.CreationPeriod, error) {
	var out []models.CreationPeriod
	for _, p := range f.periods {
		if p.PlanningContains(now) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePeriods) Insert(_ context.Context, p *models.CreationPeriod) error {
	cp := *p
	f.periods[p.ID] = &cp
	return nil
}

func (f *fakePeriods) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(f.periods, id)
	return nil
}

func (f *fakePeriods) MaxActivities(_ context.Context, organID, periodID primitive.ObjectID) (*models.MaxActivities, error) {
	for _, row := range f.maxes {
		if row.OrganID == organID && row.PeriodID == periodID {
			cp := row
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakePeriods) SetMaxActivities(_ context.Context, row *models.MaxActivities) error {
	for i := range f.maxes {
		if f.maxes[i].OrganID == row.OrganID && f.maxes[i].PeriodID == row.PeriodID {
			f.maxes[i].Value = row.Value
			return nil
		}
	}
	f.maxes = append(f.maxes, *row)
	return nil
}

func (f *fakePeriods) DeleteMaxActivities(_ context.Context, periodID primitive.ObjectID) error {
	kept := f.maxes[:0]
	for _, row := range f.maxes {
		if row.PeriodID != periodID {
			kept = append(kept, row)
		}
	}
	f.maxes = kept
	return nil
}

type fakeCounter struct {
	counts map[primitive.ObjectID]int // keyed by organ
}

func (f *fakeCounter) CountOpenProposals(_ context.Context, organID primitive.ObjectID, _, _ time.Time) (int, error) {
	return f.counts[organID], nil
}

func day(d int) time.Time {
	return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
}

func periodOn(f *fakePeriods, beginPlan, endPlan int) *models.CreationPeriod {
	p := &models.CreationPeriod{
		ID:                primitive.NewObjectID(),
		BeginPlanningTime: day(beginPlan),
		EndPlanningTime:   day(endPlan),
		BeginOptionTime:   day(100),
		EndOptionTime:     day(200),
	}
	f.periods[p.ID] = p
	return p
}

func TestMax(t *testing.T) {
	ctx := context.Background()
	store := newFakePeriods()
	svc := NewService(store, &fakeCounter{}, nil)

	organID := primitive.NewObjectID()
	p := periodOn(store, 1, 10)

	t.Run("NoRowMeansZero", func(t *testing.T) {
		n, err := svc.Max(ctx, organID, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("ConfiguredRowIsReturned", func(t *testing.T) {
		require.NoError(t, svc.SetMax(ctx, organID, p.ID, 3))
		n, err := svc.Max(ctx, organID, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("SetMaxOnMissingPeriodIsNotFound", func(t *testing.T) {
		err := svc.SetMax(ctx, organID, primitive.NewObjectID(), 3)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestCurrentPeriods(t *testing.T) {
	ctx := context.Background()

	t.Run("OnlyPeriodsContainingNow", func(t *testing.T) {
		store := newFakePeriods()
		svc := NewService(store, &fakeCounter{}, nil)
		active := periodOn(store, 1, 10)
		periodOn(store, 20, 30)

		got, err := svc.CurrentPeriods(ctx, day(5))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, active.ID, got[0].ID)
	})

	t.Run("SeveralPeriodsMayOverlap", func(t *testing.T) {
		store := newFakePeriods()
		svc := NewService(store, &fakeCounter{}, nil)
		periodOn(store, 1, 10)
		periodOn(store, 4, 15)

		got, err := svc.CurrentPeriods(ctx, day(5))
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("PlanningWindowIsHalfOpen", func(t *testing.T) {
		store := newFakePeriods()
		svc := NewService(store, &fakeCounter{}, nil)
		periodOn(store, 1, 10)

		got, err := svc.CurrentPeriods(ctx, day(1))
		require.NoError(t, err)
		assert.Len(t, got, 1)

		got, err = svc.CurrentPeriods(ctx, day(10))
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestPeriodAdministration(t *testing.T) {
	ctx := context.Background()

	t.Run("InvertedWindowIsRejected", func(t *testing.T) {
		svc := NewService(newFakePeriods(), &fakeCounter{}, nil)
		err := svc.CreatePeriod(ctx, &models.CreationPeriod{
			BeginPlanningTime: day(10),
			EndPlanningTime:   day(1),
			BeginOptionTime:   day(100),
			EndOptionTime:     day(200),
		})
		assert.ErrorIs(t, err, errs.ErrInvalidWindow)
	})

	t.Run("CreateAssignsAnID", func(t *testing.T) {
		store := newFakePeriods()
		svc := NewService(store, &fakeCounter{}, nil)
		p := &models.CreationPeriod{
			BeginPlanningTime: day(1),
			EndPlanningTime:   day(10),
			BeginOptionTime:   day(100),
			EndOptionTime:     day(200),
		}
		require.NoError(t, svc.CreatePeriod(ctx, p))
		assert.False(t, p.ID.IsZero())
		assert.Len(t, store.periods, 1)
	})

	t.Run("DeleteCascadesQuotaRows", func(t *testing.T) {
		store := newFakePeriods()
		svc := NewService(store, &fakeCounter{}, nil)
		p := periodOn(store, 1, 10)
		other := periodOn(store, 20, 30)
		organID := primitive.NewObjectID()
		require.NoError(t, svc.SetMax(ctx, organID, p.ID, 2))
		require.NoError(t, svc.SetMax(ctx, organID, other.ID, 1))

		require.NoError(t, svc.DeletePeriod(ctx, p.ID))
		assert.NotContains(t, store.periods, p.ID)
		require.Len(t, store.maxes, 1)
		assert.Equal(t, other.ID, store.maxes[0].PeriodID)
	})

	t.Run("DeleteMissingPeriodIsNotFound", func(t *testing.T) {
		svc := NewService(newFakePeriods(), &fakeCounter{}, nil)
		err := svc.DeletePeriod(ctx, primitive.NewObjectID())
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestCurrentProposalCount(t *testing.T) {
	ctx := context.Background()
	organID := primitive.NewObjectID()
	store := newFakePeriods()
	svc := NewService(store, &fakeCounter{counts: map[primitive.ObjectID]int{organID: 2}}, nil)
	p := periodOn(store, 1, 10)

	n, err := svc.CurrentProposalCount(ctx, organID, *p)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = svc.CurrentProposalCount(ctx, primitive.NewObjectID(), *p)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
