package options

import (
	"context"
	"sync"
	"time"

	"Backend-AssocHub-012/src/models"
	"Backend-AssocHub-012/src/services/authz"
	"Backend-AssocHub-012/src/services/errs"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProposalStore interface {
	Find(ctx context.Context, id primitive.ObjectID) (*models.OptionProposal, error)
	All(ctx context.Context) ([]models.OptionProposal, error)
	Insert(ctx context.Context, p *models.OptionProposal) error
}

type OptionStore interface {
	Find(ctx context.Context, id primitive.ObjectID) (*models.CalendarOption, error)
	ByProposal(ctx context.Context, proposalID primitive.ObjectID) ([]models.CalendarOption, error)
	Insert(ctx context.Context, o *models.CalendarOption) error
	Save(ctx context.Context, o *models.CalendarOption) error
	// Overdue returns pending options beginning before the given instant.
	Overdue(ctx context.Context, before time.Time) ([]models.CalendarOption, error)
}

// Quota is what the allocator needs from the quota tracker.
type Quota interface {
	CurrentPeriods(ctx context.Context, now time.Time) ([]models.CreationPeriod, error)
	Max(ctx context.Context, organID, periodID primitive.ObjectID) (int, error)
	CurrentProposalCount(ctx context.Context, organID primitive.ObjectID, period models.CreationPeriod) (int, error)
}

type PeriodFinder interface {
	Find(ctx context.Context, id primitive.ObjectID) (*models.CreationPeriod, error)
}

type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service is the option allocator.
type Service struct {
	oracle    authz.Oracle
	proposals ProposalStore
	options   OptionStore
	quota     Quota
	periods   PeriodFinder
	tx        TxRunner
	now       func() time.Time

	// approveOption must run one-at-a-time per proposal to keep the
	// single-approved-option invariant.
	mu    sync.Mutex
	locks map[primitive.ObjectID]*sync.Mutex
}

func NewService(oracle authz.Oracle, proposals ProposalStore, opts OptionStore,
	quota Quota, periods PeriodFinder, tx TxRunner) *Service {
	return &Service{
		oracle:    oracle,
		proposals: proposals,
		options:   opts,
		quota:     quota,
		periods:   periods,
		tx:        tx,
		now:       time.Now,
		locks:     map[primitive.ObjectID]*sync.Mutex{},
	}
}

func (s *Service) proposalLock(id primitive.ObjectID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

// CanOrganCreateProposal aggregates quota across every currently active
// period: the organ is admitted while its summed open-proposal count stays
// under its summed allotment. No active period means no admission. Callers
// with bypass authority skip all of it; they are also the only ones who may
// create proposals without an organ ("Board"/"Other").
func (s *Service) CanOrganCreateProposal(ctx context.Context, actor *models.User, organID *primitive.ObjectID) (bool, error) {
	if s.oracle.IsAllowed(actor, authz.OptionBypass, nil) {
		return true, nil
	}
	if organID == nil {
		return false, nil
	}
	periods, err := s.quota.CurrentPeriods(ctx, s.now())
	if err != nil {
		return false, err
	}
	if len(periods) == 0 {
		return false, nil
	}
	total, count := 0, 0
	for _, p := range periods {
		max, err := s.quota.Max(ctx, *organID, p.ID)
		if err != nil {
			return false, err
		}
		n, err := s.quota.CurrentProposalCount(ctx, *organID, p)
		if err != nil {
			return false, err
		}
		total += max
		count += n
	}
	return count < total, nil
}

// CreateProposal admits a new proposal with its candidate slots. The quota
// gate and every option's window are checked up front; the writes then run
// in one transaction so a failure cannot leave a proposal with fewer
// options than submitted.
func (s *Service) CreateProposal(ctx context.Context, actor *models.User, req *models.OptionProposalCreate) (*models.OptionProposal, error) {
	if !s.oracle.IsAllowed(actor, authz.OptionCreate, nil) {
		return nil, errs.PermissionDenied("not allowed to propose calendar options")
	}

	organID, err := parseOrganRef(req.OrganID)
	if err != nil {
		return nil, err
	}
	ok, err := s.CanOrganCreateProposal(ctx, actor, organID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.ErrQuotaExceeded
	}

	prop := &models.OptionProposal{
		ID:          primitive.NewObjectID(),
		Name:        req.Name,
		Description: req.Description,
		CreatorID:   actor.ID,
		OrganID:     organID,
		OrganAlt:    req.OrganAlt,
		CreatedAt:   s.now(),
	}

	opts := make([]*models.CalendarOption, 0, len(req.Options))
	for _, in := range req.Options {
		begin, err := ParseOptionTime(in.BeginTime)
		if err != nil {
			return nil, err
		}
		end, err := ParseOptionTime(in.EndTime)
		if err != nil {
			return nil, err
		}
		ok, err := s.CanCreateOptionInPeriod(ctx, actor, req.PeriodID, begin, end)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errs.ErrInvalidWindow
		}
		opts = append(opts, &models.CalendarOption{
			ID:         primitive.NewObjectID(),
			ProposalID: prop.ID,
			BeginTime:  begin,
			EndTime:    end,
			Type:       in.Type,
			Status:     models.OptionPending,
		})
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.proposals.Insert(ctx, prop); err != nil {
			return err
		}
		for _, o := range opts {
			if err := s.options.Insert(ctx, o); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return prop, nil
}

// CreateOption attaches one more candidate slot to an existing proposal.
// Quota is per-proposal, not per-option, so there is no quota re-check.
func (s *Service) CreateOption(ctx context.Context, actor *models.User, proposalID primitive.ObjectID, begin, end time.Time, optionType string) (*models.CalendarOption, error) {
	if !s.oracle.IsAllowed(actor, authz.OptionCreate, nil) {
		return nil, errs.PermissionDenied("not allowed to propose calendar options")
	}
	prop, err := s.proposals.Find(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if prop == nil {
		return nil, errs.NotFound("option proposal")
	}
	o := &models.CalendarOption{
		ID:         primitive.NewObjectID(),
		ProposalID: prop.ID,
		BeginTime:  begin,
		EndTime:    end,
		Type:       optionType,
		Status:     models.OptionPending,
	}
	if err := s.options.Insert(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// CanCreateOptionInPeriod is the authoritative window check: it re-verifies
// even when an upstream form already did, since the allocator may be invoked
// programmatically. The period id "-1" means "no specific period" and only
// passes for bypass callers. Both bounds of the option window are inclusive.
func (s *Service) CanCreateOptionInPeriod(ctx context.Context, actor *models.User, periodID string, begin, end time.Time) (bool, error) {
	if s.oracle.IsAllowed(actor, authz.OptionBypass, nil) {
		return true, nil
	}
	if periodID == "" || periodID == "-1" {
		return false, nil
	}
	id, err := primitive.ObjectIDFromHex(periodID)
	if err != nil {
		return false, nil
	}
	p, err := s.periods.Find(ctx, id)
	if err != nil {
		return false, err
	}
	if p == nil {
		return false, nil
	}
	if begin.Before(p.BeginOptionTime) || begin.After(p.EndOptionTime) {
		return false, nil
	}
	if end.Before(p.BeginOptionTime) || end.After(p.EndOptionTime) {
		return false, nil
	}
	return true, nil
}

// ApproveOption marks one option approved and retires every still-pending
// sibling of the same proposal, so at most one ever ends up approved. Approving
// a missing or already-retired id is a successful no-op; re-approving is
// idempotent (already deleted or approved siblings are left untouched).
func (s *Service) ApproveOption(ctx context.Context, actor *models.User, id primitive.ObjectID) error {
	if !s.oracle.IsAllowed(actor, authz.OptionApprove, nil) {
		return errs.PermissionDenied("not allowed to approve calendar options")
	}
	opt, err := s.options.Find(ctx, id)
	if err != nil {
		return err
	}
	if opt == nil {
		return nil
	}

	lock := s.proposalLock(opt.ProposalID)
	lock.Lock()
	defer lock.Unlock()

	// Reload under the lock: a concurrent approval of a sibling may have
	// retired this option between the first read and here.
	opt, err = s.options.Find(ctx, id)
	if err != nil {
		return err
	}
	if opt == nil || opt.Status == models.OptionDeleted {
		return nil
	}

	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		opt.Status = models.OptionApproved
		opt.ModifiedBy = &actor.ID
		if err := s.options.Save(ctx, opt); err != nil {
			return err
		}
		siblings, err := s.options.ByProposal(ctx, opt.ProposalID)
		if err != nil {
			return err
		}
		for i := range siblings {
			sib := &siblings[i]
			if sib.ID == opt.ID || sib.Status != models.OptionPending {
				continue
			}
			sib.Status = models.OptionDeleted
			sib.ModifiedBy = &actor.ID
			if err := s.options.Save(ctx, sib); err != nil {
				return err
			}
		}
		return nil
	})
}

// CanDeleteOption: delete-all authority passes outright; otherwise the
// actor needs delete-own authority and must either be the creator of an
// organ-less proposal or allowed to act for the proposal's organ.
func (s *Service) CanDeleteOption(ctx context.Context, actor *models.User, opt *models.CalendarOption) (bool, error) {
	if s.oracle.IsAllowed(actor, authz.OptionDeleteAll, nil) {
		return true, nil
	}
	if !s.oracle.IsAllowed(actor, authz.OptionDeleteOwn, nil) {
		return false, nil
	}
	prop, err := s.proposals.Find(ctx, opt.ProposalID)
	if err != nil {
		return false, err
	}
	if prop == nil {
		return false, nil
	}
	if prop.OrganID == nil {
		return prop.CreatorID == actor.ID, nil
	}
	return s.oracle.IsAllowed(actor, authz.OrganEdit, *prop.OrganID), nil
}

// DeleteOption soft-deletes one option. Missing id is a successful no-op.
func (s *Service) DeleteOption(ctx context.Context, actor *models.User, id primitive.ObjectID) error {
	opt, err := s.options.Find(ctx, id)
	if err != nil {
		return err
	}
	if opt == nil {
		return nil
	}
	ok, err := s.CanDeleteOption(ctx, actor, opt)
	if err != nil {
		return err
	}
	if !ok {
		return errs.PermissionDenied("not allowed to delete this calendar option")
	}
	opt.Status = models.OptionDeleted
	opt.ModifiedBy = &actor.ID
	return s.options.Save(ctx, opt)
}

// ListProposals returns all option proposals with their options.
func (s *Service) ListProposals(ctx context.Context) ([]models.OptionProposal, error) {
	return s.proposals.All(ctx)
}

func (s *Service) OptionsOf(ctx context.Context, proposalID primitive.ObjectID) ([]models.CalendarOption, error) {
	return s.options.ByProposal(ctx, proposalID)
}

func parseOrganRef(raw string) (*primitive.ObjectID, error) {
	if raw == "" || raw == "0" {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return nil, errs.NotFound("organ")
	}
	return &id, nil
}

func ParseOptionTime(raw string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04", raw)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
