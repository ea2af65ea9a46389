package updateproposals

import (
	"context"
	"testing"

	"Backend-AssocHub-012/src/models"
	"Backend-AssocHub-012/src/services/authz"
	"Backend-AssocHub-012/src/services/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeActivities struct {
	m map[primitive.ObjectID]*models.Activity
}

func newFakeActivities() *fakeActivities {
	return &fakeActivities{m: map[primitive.ObjectID]*models.Activity{}}
}

func (f *fakeActivities) Find(_ context.Context, id primitive.ObjectID) (*models.Activity, error) {
	a, ok := f.m[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeActivities) Insert(_ context.Context, a *models.Activity) error {
	cp := *a
	f.m[a.ID] = &cp
	return nil
}

func (f *fakeActivities) Save(_ context.Context, a *models.Activity) error {
	cp := *a
	f.m[a.ID] = &cp
	return nil
}

func (f *fakeActivities) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(f.m, id)
	return nil
}

type fakeProposals struct {
	m map[primitive.ObjectID]*models.UpdateProposal
}

func newFakeProposals() *fakeProposals {
	return &fakeProposals{m: map[primitive.ObjectID]*models.UpdateProposal{}}
}

func (f *fakeProposals) Find(_ context.Context, id primitive.ObjectID) (*models.UpdateProposal, error) {
	p, ok := f.m[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProposals) FindByOld(_ context.Context, oldID primitive.ObjectID) (*models.UpdateProposal, error) {
	for _, p := range f.m {
		if p.OldID == oldID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProposals) All(_ context.Context) ([]models.UpdateProposal, error) {
	out := make([]models.UpdateProposal, 0, len(f.m))
	for _, p := range f.m {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProposals) Insert(_ context.Context, p *models.UpdateProposal) error {
	cp := *p
	f.m[p.ID] = &cp
	return nil
}

func (f *fakeProposals) Save(_ context.Context, p *models.UpdateProposal) error {
	cp := *p
	f.m[p.ID] = &cp
	return nil
}

func (f *fakeProposals) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(f.m, id)
	return nil
}

type fakeResolvers struct{}

func (fakeResolvers) ResolveOrgan(_ context.Context, id primitive.ObjectID) (*models.Organ, error) {
	return &models.Organ{ID: id, Name: "Activity committee"}, nil
}

func (fakeResolvers) ResolveCompany(_ context.Context, id primitive.ObjectID) (*models.Company, error) {
	return &models.Company{ID: id, Name: "Sponsor BV"}, nil
}

type fakeMailer struct {
	refs []string
}

func (f *fakeMailer) PendingProposal(_, ref string) {
	f.refs = append(f.refs, ref)
}

type fakeTx struct{}

func (fakeTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixture struct {
	svc   *Service
	acts  *fakeActivities
	props *fakeProposals
	mail  *fakeMailer
}

func newFixture() *fixture {
	acts := newFakeActivities()
	props := newFakeProposals()
	mail := &fakeMailer{}
	svc := NewService(authz.RoleOracle{}, acts, props, fakeResolvers{}, fakeResolvers{}, mail, fakeTx{})
	return &fixture{svc: svc, acts: acts, props: props, mail: mail}
}

func strptr(s string) *string { return &s }

func member() *models.User {
	return &models.User{ID: primitive.NewObjectID(), Role: models.RoleMember}
}

func admin() *models.User {
	return &models.User{ID: primitive.NewObjectID(), Role: models.RoleAdmin}
}

// storedActivity seeds an activity whose normalized form an unmodified
// editFor round-trips to.
func storedActivity(f *fixture, creator primitive.ObjectID, status string) *models.Activity {
	a := &models.Activity{
		ID:        primitive.NewObjectID(),
		Name:      models.LocalizedText{EN: "Hackathon"},
		Status:    status,
		CreatorID: creator,
	}
	f.acts.m[a.ID] = a
	return a
}

func editFor(a *models.Activity) *models.ActivityEdit {
	return &models.ActivityEdit{
		NameEN:      strptr(a.Name.EN),
		OnlyMembers: strptr("0"),
		Highlighted: strptr("0"),
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("UnauthenticatedIsDenied", func(t *testing.T) {
		f := newFixture()
		a := storedActivity(f, primitive.NewObjectID(), models.ActivityApproved)
		_, _, err := f.svc.Create(ctx, nil, a.ID, editFor(a))
		assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	})

	t.Run("MissingActivityIsNotFound", func(t *testing.T) {
		f := newFixture()
		_, _, err := f.svc.Create(ctx, member(), primitive.NewObjectID(), &models.ActivityEdit{})
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("UnmodifiedEditIsNoChange", func(t *testing.T) {
		f := newFixture()
		a := storedActivity(f, primitive.NewObjectID(), models.ActivityApproved)
		outcome, got, err := f.svc.Create(ctx, member(), a.ID, editFor(a))
		require.NoError(t, err)
		assert.Equal(t, OutcomeNoChange, outcome)
		assert.Equal(t, a.ID, got.ID)
		assert.Empty(t, f.props.m)
		assert.Len(t, f.acts.m, 1)
	})

	t.Run("MemberEditOnApprovedActivityStaysPending", func(t *testing.T) {
		f := newFixture()
		a := storedActivity(f, primitive.NewObjectID(), models.ActivityApproved)
		e := editFor(a)
		e.NameEN = strptr("Winter hackathon")

		outcome, got, err := f.svc.Create(ctx, member(), a.ID, e)
		require.NoError(t, err)
		assert.Equal(t, OutcomePending, outcome)

		// The live activity is untouched.
		assert.Equal(t, "Hackathon", got.Name.EN)
		assert.Equal(t, "Hackathon", f.acts.m[a.ID].Name.EN)

		require.Len(t, f.props.m, 1)
		for _, p := range f.props.m {
			assert.Equal(t, a.ID, p.OldID)
			assert.NotEmpty(t, p.Ref)
			cand := f.acts.m[p.NewID]
			require.NotNil(t, cand)
			assert.Equal(t, models.ActivityUpdate, cand.Status)
			assert.Equal(t, "Winter hackathon", cand.Name.EN)
		}
		assert.Len(t, f.mail.refs, 1)
	})

	t.Run("CreatorAutoAppliesWhileToApprove", func(t *testing.T) {
		f := newFixture()
		u := member()
		a := storedActivity(f, u.ID, models.ActivityToApprove)
		e := editFor(a)
		e.NameEN = strptr("Winter hackathon")

		outcome, got, err := f.svc.Create(ctx, u, a.ID, e)
		require.NoError(t, err)
		assert.Equal(t, OutcomeApplied, outcome)
		assert.Equal(t, "Winter hackathon", got.Name.EN)
		assert.Equal(t, models.ActivityToApprove, got.Status)
		assert.Nil(t, got.ApproverID)

		// Old activity and proposal are gone; the candidate is canonical.
		assert.Nil(t, f.acts.m[a.ID])
		assert.Empty(t, f.props.m)
		assert.Len(t, f.acts.m, 1)
		assert.Empty(t, f.mail.refs)
	})

	t.Run("AdminAutoApplyPreservesApproval", func(t *testing.T) {
		f := newFixture()
		adm := admin()
		a := storedActivity(f, primitive.NewObjectID(), models.ActivityApproved)
		e := editFor(a)
		e.NameEN = strptr("Winter hackathon")

		outcome, got, err := f.svc.Create(ctx, adm, a.ID, e)
		require.NoError(t, err)
		assert.Equal(t, OutcomeApplied, outcome)
		assert.Equal(t, models.ActivityApproved, got.Status)
		require.NotNil(t, got.ApproverID)
		assert.Equal(t, adm.ID, *got.ApproverID)
	})

	t.Run("ResubmissionReplacesTheCandidate", func(t *testing.T) {
		f := newFixture()
		u := member()
		a := storedActivity(f, primitive.NewObjectID(), models.ActivityApproved)

		e := editFor(a)
		e.NameEN = strptr("First attempt")
		_, _, err := f.svc.Create(ctx, u, a.ID, e)
		require.NoError(t, err)

		var firstRef string
		var firstCand primitive.ObjectID
		for _, p := range f.props.m {
			firstRef = p.Ref
			firstCand = p.NewID
		}

		e2 := editFor(a)
		e2.NameEN = strptr("Second attempt")
		_, _, err = f.svc.Create(ctx, u, a.ID, e2)
		require.NoError(t, err)

		require.Len(t, f.props.m, 1)
		for _, p := range f.props.m {
			assert.Equal(t, firstRef, p.Ref)
			assert.NotEqual(t, firstCand, p.NewID)
			assert.Equal(t, "Second attempt", f.acts.m[p.NewID].Name.EN)
		}
		// The stale candidate is gone: the current activity plus one candidate.
		assert.Nil(t, f.acts.m[firstCand])
		assert.Len(t, f.acts.m, 2)
	})
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	pending := func(f *fixture) (*models.Activity, *models.UpdateProposal) {
		a := storedActivity(f, primitive.NewObjectID(), models.ActivityApproved)
		e := editFor(a)
		e.NameEN = strptr("Winter hackathon")
		_, _, err := f.svc.Create(ctx, member(), a.ID, e)
		if err != nil {
			panic(err)
		}
		for _, p := range f.props.m {
			return a, p
		}
		return a, nil
	}

	t.Run("AdminAppliesPendingProposal", func(t *testing.T) {
		f := newFixture()
		a, p := pending(f)

		got, err := f.svc.Apply(ctx, admin(), p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Winter hackathon", got.Name.EN)
		assert.Equal(t, models.ActivityApproved, got.Status)
		assert.Nil(t, f.acts.m[a.ID])
		assert.Empty(t, f.props.m)
	})

	t.Run("MemberWithoutAuthorityIsDenied", func(t *testing.T) {
		f := newFixture()
		_, p := pending(f)
		_, err := f.svc.Apply(ctx, member(), p.ID)
		assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	})

	t.Run("MissingProposalIsNotFound", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.Apply(ctx, admin(), primitive.NewObjectID())
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestRevoke(t *testing.T) {
	ctx := context.Background()

	t.Run("CreatorRevokesOwnProposal", func(t *testing.T) {
		f := newFixture()
		u := member()
		a := storedActivity(f, primitive.NewObjectID(), models.ActivityApproved)
		e := editFor(a)
		e.NameEN = strptr("Winter hackathon")
		_, _, err := f.svc.Create(ctx, u, a.ID, e)
		require.NoError(t, err)

		var p *models.UpdateProposal
		for _, v := range f.props.m {
			p = v
		}
		require.NoError(t, f.svc.Revoke(ctx, u, p.ID))

		// Candidate and proposal are gone, the live activity survives.
		assert.Empty(t, f.props.m)
		assert.Nil(t, f.acts.m[p.NewID])
		assert.NotNil(t, f.acts.m[a.ID])
	})

	t.Run("StrangerCannotRevoke", func(t *testing.T) {
		f := newFixture()
		a := storedActivity(f, primitive.NewObjectID(), models.ActivityApproved)
		e := editFor(a)
		e.NameEN = strptr("Winter hackathon")
		_, _, err := f.svc.Create(ctx, member(), a.ID, e)
		require.NoError(t, err)

		var p *models.UpdateProposal
		for _, v := range f.props.m {
			p = v
		}
		assert.ErrorIs(t, f.svc.Revoke(ctx, member(), p.ID), errs.ErrPermissionDenied)
		assert.Len(t, f.props.m, 1)
	})

	t.Run("MissingProposalIsNotFound", func(t *testing.T) {
		f := newFixture()
		assert.ErrorIs(t, f.svc.Revoke(ctx, member(), primitive.NewObjectID()), errs.ErrNotFound)
	})
}
