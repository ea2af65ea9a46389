package activities

import (
	"context"
	"fmt"

	"Backend-AssocHub-012/src/models"
	"Backend-AssocHub-012/src/services/authz"
	"Backend-AssocHub-012/src/services/errs"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is the persistence surface this package needs. A missing id is
// reported as (nil, nil), never as an error.
type Store interface {
	Find(ctx context.Context, id primitive.ObjectID) (*models.Activity, error)
	All(ctx context.Context) ([]models.Activity, error)
	Insert(ctx context.Context, a *models.Activity) error
	Save(ctx context.Context, a *models.Activity) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type Service struct {
	store  Store
	oracle authz.Oracle
}

func NewService(store Store, oracle authz.Oracle) *Service {
	return &Service{store: store, oracle: oracle}
}

// BuildFromEdit turns a submitted edit into an activity entity. Both first
// time creation and update proposals use this one construction path, so
// edit-time validation is identical to creation-time validation. Status and
// organ/company references are the caller's business.
func BuildFromEdit(edit *models.ActivityEdit, creator primitive.ObjectID) (*models.Activity, error) {
	a := &models.Activity{
		ID:        primitive.NewObjectID(),
		CreatorID: creator,
		Name:      localized(edit.NameNL, edit.NameEN),
		Location:  localized(edit.LocationNL, edit.LocationEN),
		Costs:     localized(edit.CostsNL, edit.CostsEN),
		Description: localized(
			edit.DescriptionNL, edit.DescriptionEN),
		Categories: edit.Categories,
	}

	if edit.BeginTime != nil {
		t, err := ParseEditTime(*edit.BeginTime)
		if err != nil {
			return nil, fmt.Errorf("invalid beginTime: %w", err)
		}
		a.BeginTime = t
	}
	if edit.EndTime != nil {
		t, err := ParseEditTime(*edit.EndTime)
		if err != nil {
			return nil, fmt.Errorf("invalid endTime: %w", err)
		}
		a.EndTime = t
	}
	if !a.BeginTime.IsZero() && !a.EndTime.IsZero() && a.EndTime.Before(a.BeginTime) {
		return nil, fmt.Errorf("endTime before beginTime")
	}

	if edit.OnlyMembers != nil {
		a.OnlyMembers = CoerceBool(*edit.OnlyMembers)
	}
	if edit.Highlighted != nil {
		a.Highlighted = CoerceBool(*edit.Highlighted)
	}

	for _, l := range edit.SignupLists {
		list := models.SignupList{
			ID:   primitive.NewObjectID(),
			Name: localized(l.NameNL, l.NameEN),
		}
		if l.OpenDate != nil {
			t, err := ParseEditTime(*l.OpenDate)
			if err != nil {
				return nil, fmt.Errorf("invalid signup list openDate: %w", err)
			}
			list.OpenDate = t
		}
		if l.CloseDate != nil {
			t, err := ParseEditTime(*l.CloseDate)
			if err != nil {
				return nil, fmt.Errorf("invalid signup list closeDate: %w", err)
			}
			list.CloseDate = t
		}
		if l.LimitedCapacity != nil {
			list.LimitedCapacity = CoerceBool(*l.LimitedCapacity)
		}
		for _, f := range l.Fields {
			field := models.SignupField{
				Name:     localized(f.NameNL, f.NameEN),
				Type:     models.FieldText,
				MinValue: f.MinValue,
				MaxValue: f.MaxValue,
			}
			if f.Type != nil {
				field.Type = *f.Type
			}
			if f.Options != nil {
				field.Options = SplitOptions(*f.Options)
			}
			list.Fields = append(list.Fields, field)
		}
		a.SignupLists = append(a.SignupLists, list)
	}

	return a, nil
}

func localized(nl, en *string) models.LocalizedText {
	var t models.LocalizedText
	if nl != nil {
		t.NL = *nl
	}
	if en != nil {
		t.EN = *en
	}
	return t
}

// Create persists a brand-new activity awaiting approval.
func (s *Service) Create(ctx context.Context, actor *models.User, edit *models.ActivityEdit, organID, companyID *primitive.ObjectID) (*models.Activity, error) {
	if !s.oracle.IsAllowed(actor, authz.ActivityCreateProposal, nil) {
		return nil, errs.PermissionDenied("not allowed to create activities")
	}
	a, err := BuildFromEdit(edit, actor.ID)
	if err != nil {
		return nil, err
	}
	a.Status = models.ActivityToApprove
	a.OrganID = organID
	a.CompanyID = companyID
	if err := s.store.Insert(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*models.Activity, error) {
	a, err := s.store.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, errs.NotFound("activity")
	}
	return a, nil
}

// List returns the independently visible activities; update candidates only
// exist as the new side of a proposal and are filtered out.
func (s *Service) List(ctx context.Context) ([]models.Activity, error) {
	all, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Activity, 0, len(all))
	for _, a := range all {
		if a.Status != models.ActivityUpdate {
			out = append(out, a)
		}
	}
	return out, nil
}
