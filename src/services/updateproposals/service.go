package updateproposals

import (
	"context"
	"time"

	"Backend-AssocHub-012/src/models"
	"Backend-AssocHub-012/src/services/activities"
	"Backend-AssocHub-012/src/services/authz"
	"Backend-AssocHub-012/src/services/errs"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Outcome of a proposal submission. A Pending outcome means a proposal now
// exists but the live activity is untouched; Applied means the candidate
// already became canonical.
type Outcome int

const (
	OutcomeNoChange Outcome = iota
	OutcomePending
	OutcomeApplied
)

type ActivityStore interface {
	Find(ctx context.Context, id primitive.ObjectID) (*models.Activity, error)
	Insert(ctx context.Context, a *models.Activity) error
	Save(ctx context.Context, a *models.Activity) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ProposalStore interface {
	Find(ctx context.Context, id primitive.ObjectID) (*models.UpdateProposal, error)
	FindByOld(ctx context.Context, oldID primitive.ObjectID) (*models.UpdateProposal, error)
	All(ctx context.Context) ([]models.UpdateProposal, error)
	Insert(ctx context.Context, p *models.UpdateProposal) error
	Save(ctx context.Context, p *models.UpdateProposal) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type OrganResolver interface {
	ResolveOrgan(ctx context.Context, id primitive.ObjectID) (*models.Organ, error)
}

type CompanyResolver interface {
	ResolveCompany(ctx context.Context, id primitive.ObjectID) (*models.Company, error)
}

// Mailer is what the manager needs from the notifier; nil disables mail.
type Mailer interface {
	PendingProposal(activityName, ref string)
}

type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	oracle     authz.Oracle
	activities ActivityStore
	proposals  ProposalStore
	organs     OrganResolver
	companies  CompanyResolver
	mailer     Mailer
	tx         TxRunner
}

func NewService(oracle authz.Oracle, acts ActivityStore, props ProposalStore,
	organs OrganResolver, companies CompanyResolver, mailer Mailer, tx TxRunner) *Service {
	return &Service{
		oracle:     oracle,
		activities: acts,
		proposals:  props,
		organs:     organs,
		companies:  companies,
		mailer:     mailer,
		tx:         tx,
	}
}

// Create classifies a submitted edit against the current activity and either
// does nothing (no material change), leaves a pending proposal, or applies
// the candidate straight away when the actor is authorized to.
func (s *Service) Create(ctx context.Context, actor *models.User, currentID primitive.ObjectID, edit *models.ActivityEdit) (Outcome, *models.Activity, error) {
	if !s.oracle.IsAllowed(actor, authz.ActivityCreateProposal, nil) {
		return OutcomeNoChange, nil, errs.PermissionDenied("not allowed to propose activity updates")
	}

	current, err := s.activities.Find(ctx, currentID)
	if err != nil {
		return OutcomeNoChange, nil, err
	}
	if current == nil {
		return OutcomeNoChange, nil, errs.NotFound("activity")
	}

	organID, organ, err := s.resolveOrgan(ctx, edit.OrganID)
	if err != nil {
		return OutcomeNoChange, nil, err
	}
	if organ != nil && !s.oracle.IsAllowed(actor, authz.OrganEdit, organ) {
		return OutcomeNoChange, nil, errs.PermissionDenied("not allowed to act for this organ")
	}
	companyID, err := s.resolveCompany(ctx, edit.CompanyID)
	if err != nil {
		return OutcomeNoChange, nil, err
	}

	if !activities.Material(activities.NormalizeActivity(current), activities.NormalizeEdit(edit)) {
		return OutcomeNoChange, current, nil
	}

	cand, err := activities.BuildFromEdit(edit, actor.ID)
	if err != nil {
		return OutcomeNoChange, nil, err
	}
	cand.Status = models.ActivityUpdate
	cand.OrganID = organID
	cand.CompanyID = companyID

	var prop *models.UpdateProposal
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.activities.Insert(ctx, cand); err != nil {
			return err
		}
		existing, err := s.proposals.FindByOld(ctx, current.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			// Resubmission: discard the previous candidate, reuse the record.
			stale := existing.NewID
			existing.NewID = cand.ID
			existing.CreatorID = actor.ID
			existing.CreatedAt = time.Now()
			if err := s.proposals.Save(ctx, existing); err != nil {
				return err
			}
			if err := s.activities.Delete(ctx, stale); err != nil {
				return err
			}
			prop = existing
			return nil
		}
		prop = &models.UpdateProposal{
			ID:        primitive.NewObjectID(),
			OldID:     current.ID,
			NewID:     cand.ID,
			CreatorID: actor.ID,
			Ref:       uuid.NewString(),
			CreatedAt: time.Now(),
		}
		return s.proposals.Insert(ctx, prop)
	})
	if err != nil {
		return OutcomeNoChange, nil, err
	}

	if s.CanApply(actor, current) {
		applied, err := s.apply(ctx, actor, prop)
		if err != nil {
			return OutcomePending, current, err
		}
		return OutcomeApplied, applied, nil
	}

	if s.mailer != nil {
		s.mailer.PendingProposal(current.Name.In("en"), prop.Ref)
	}
	return OutcomePending, current, nil
}

// CanApply reports whether the actor may swap the candidate in immediately:
// global update authority, or authority over this one activity while it has
// not yet gone live (still toApprove).
func (s *Service) CanApply(actor *models.User, current *models.Activity) bool {
	if s.oracle.IsAllowed(actor, authz.ActivityUpdate, nil) {
		return true
	}
	return s.oracle.IsAllowed(actor, authz.ActivityUpdate, current) &&
		current.Status == models.ActivityToApprove
}

// Apply is the administrative path for proposals that could not auto-apply.
func (s *Service) Apply(ctx context.Context, actor *models.User, proposalID primitive.ObjectID) (*models.Activity, error) {
	p, err := s.proposals.Find(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errs.NotFound("update proposal")
	}
	old, err := s.activities.Find(ctx, p.OldID)
	if err != nil {
		return nil, err
	}
	if old == nil {
		return nil, errs.NotFound("activity")
	}
	if !s.CanApply(actor, old) {
		return nil, errs.PermissionDenied("not allowed to apply this proposal")
	}
	return s.apply(ctx, actor, p)
}

// apply swaps the candidate in: approved-ness of the old side is preserved
// onto the new side, the proposal and the old activity are deleted, and the
// candidate becomes the canonical activity under its own identity.
func (s *Service) apply(ctx context.Context, actor *models.User, p *models.UpdateProposal) (*models.Activity, error) {
	old, err := s.activities.Find(ctx, p.OldID)
	if err != nil {
		return nil, err
	}
	if old == nil {
		return nil, errs.NotFound("activity")
	}
	cand, err := s.activities.Find(ctx, p.NewID)
	if err != nil {
		return nil, err
	}
	if cand == nil {
		return nil, errs.NotFound("candidate activity")
	}

	if old.Status == models.ActivityApproved {
		cand.Status = models.ActivityApproved
		cand.ApproverID = &actor.ID
	} else {
		cand.Status = models.ActivityToApprove
		cand.ApproverID = nil
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.activities.Save(ctx, cand); err != nil {
			return err
		}
		if err := s.proposals.Delete(ctx, p.ID); err != nil {
			return err
		}
		return s.activities.Delete(ctx, old.ID)
	})
	if err != nil {
		return nil, err
	}
	return cand, nil
}

// Revoke discards a proposal and its candidate. The old activity is left
// untouched. Irreversible.
func (s *Service) Revoke(ctx context.Context, actor *models.User, proposalID primitive.ObjectID) error {
	p, err := s.proposals.Find(ctx, proposalID)
	if err != nil {
		return err
	}
	if p == nil {
		return errs.NotFound("update proposal")
	}
	if p.CreatorID != actor.ID && !s.oracle.IsAllowed(actor, authz.ActivityUpdate, nil) {
		return errs.PermissionDenied("not allowed to revoke this proposal")
	}
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.activities.Delete(ctx, p.NewID); err != nil {
			return err
		}
		return s.proposals.Delete(ctx, p.ID)
	})
}

// List returns all pending proposals.
func (s *Service) List(ctx context.Context) ([]models.UpdateProposal, error) {
	return s.proposals.All(ctx)
}

func (s *Service) resolveOrgan(ctx context.Context, raw string) (*primitive.ObjectID, *models.Organ, error) {
	if raw == "" || raw == "0" {
		return nil, nil, nil
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return nil, nil, errs.NotFound("organ")
	}
	organ, err := s.organs.ResolveOrgan(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if organ == nil {
		return nil, nil, errs.NotFound("organ")
	}
	return &organ.ID, organ, nil
}

func (s *Service) resolveCompany(ctx context.Context, raw string) (*primitive.ObjectID, error) {
	if raw == "" || raw == "0" {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return nil, errs.NotFound("company")
	}
	company, err := s.companies.ResolveCompany(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, errs.NotFound("company")
	}
	return &company.ID, nil
}
