package activities

import (
	"testing"
	"time"

	"Backend-AssocHub-012/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strptr(s string) *string { return &s }

func sampleActivity() *models.Activity {
	organID := primitive.NewObjectID()
	return &models.Activity{
		ID:          primitive.NewObjectID(),
		Name:        models.LocalizedText{NL: "Programmeerwedstrijd", EN: "Programming contest"},
		Location:    models.LocalizedText{NL: "Zaal 3", EN: "Room 3"},
		Costs:       models.LocalizedText{NL: "Gratis", EN: "Free"},
		Description: models.LocalizedText{NL: "Een wedstrijd", EN: "A contest"},
		BeginTime:   time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2025, 3, 11, 12, 0, 0, 0, time.UTC),
		Status:      models.ActivityApproved,
		OrganID:     &organID,
		OnlyMembers: true,
		Categories:  []string{"sport", "social"},
		SignupLists: []models.SignupList{{
			ID:        primitive.NewObjectID(),
			Name:      models.LocalizedText{NL: "Deelnemers", EN: "Participants"},
			OpenDate:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			CloseDate: time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC),
			Fields: []models.SignupField{{
				Name:    models.LocalizedText{NL: "Maat", EN: "Size"},
				Type:    models.FieldChoice,
				Options: []string{"S", "M", "L"},
			}},
		}},
	}
}

// editOf lowers a stored activity back into the submitted-form shape, the
// way a browser posting an unmodified edit form would.
func editOf(a *models.Activity) *models.ActivityEdit {
	e := &models.ActivityEdit{
		NameNL:        strptr(a.Name.NL),
		NameEN:        strptr(a.Name.EN),
		LocationNL:    strptr(a.Location.NL),
		LocationEN:    strptr(a.Location.EN),
		CostsNL:       strptr(a.Costs.NL),
		CostsEN:       strptr(a.Costs.EN),
		DescriptionNL: strptr(a.Description.NL),
		DescriptionEN: strptr(a.Description.EN),
		BeginTime:     strptr(a.BeginTime.Format(TimeLayout)),
		EndTime:       strptr(a.EndTime.Format(TimeLayout)),
		OnlyMembers:   strptr("1"),
		Highlighted:   strptr("0"),
		Categories:    a.Categories,
	}
	if a.OrganID != nil {
		e.OrganID = a.OrganID.Hex()
	}
	for _, l := range a.SignupLists {
		le := models.SignupListEdit{
			NameNL:          strptr(l.Name.NL),
			NameEN:          strptr(l.Name.EN),
			OpenDate:        strptr(l.OpenDate.Format(TimeLayout)),
			CloseDate:       strptr(l.CloseDate.Format(TimeLayout)),
			LimitedCapacity: strptr("0"),
		}
		for _, f := range l.Fields {
			fe := models.SignupFieldEdit{
				NameNL: strptr(f.Name.NL),
				NameEN: strptr(f.Name.EN),
				Type:   strptr(f.Type),
			}
			if f.Options != nil {
				fe.Options = strptr("S, M, L")
			}
			le.Fields = append(le.Fields, fe)
		}
		e.SignupLists = append(e.SignupLists, le)
	}
	return e
}

func TestNormalizeRoundTrip(t *testing.T) {
	t.Run("UnmodifiedEditFormIsNotMaterial", func(t *testing.T) {
		a := sampleActivity()
		assert.False(t, Material(NormalizeActivity(a), NormalizeEdit(editOf(a))))
	})

	t.Run("SingleFieldChangeIsMaterial", func(t *testing.T) {
		a := sampleActivity()
		e := editOf(a)
		e.NameEN = strptr("Coding contest")
		assert.True(t, Material(NormalizeActivity(a), NormalizeEdit(e)))
	})

	t.Run("ReorderedCategoriesAreMaterial", func(t *testing.T) {
		a := sampleActivity()
		e := editOf(a)
		e.Categories = []string{"social", "sport"}
		assert.True(t, Material(NormalizeActivity(a), NormalizeEdit(e)))
	})

	t.Run("TransientFieldsAreStripped", func(t *testing.T) {
		a := sampleActivity()
		e := editOf(a)
		e.LanguageDutch = strptr("on")
		e.LanguageEnglish = strptr("on")
		e.Submit = strptr("Save")
		assert.False(t, Material(NormalizeActivity(a), NormalizeEdit(e)))
	})

	t.Run("AbsentFormFieldsCountAsRemovals", func(t *testing.T) {
		a := sampleActivity()
		e := editOf(a)
		e.DescriptionNL = nil
		assert.True(t, Material(NormalizeActivity(a), NormalizeEdit(e)))
	})
}

func TestTimeNormalization(t *testing.T) {
	t.Run("EquivalentLayoutsCompareEqual", func(t *testing.T) {
		a := sampleActivity()
		e := editOf(a)
		// Same instant, submitted in RFC3339 instead of the form layout.
		e.BeginTime = strptr(a.BeginTime.Format(time.RFC3339))
		assert.False(t, Material(NormalizeActivity(a), NormalizeEdit(e)))
	})

	t.Run("MinutePrecisionFormInputMatchesStoredSeconds", func(t *testing.T) {
		a := sampleActivity()
		e := editOf(a)
		e.BeginTime = strptr("2025-03-11 10:00")
		assert.False(t, Material(NormalizeActivity(a), NormalizeEdit(e)))
	})

	t.Run("DifferentInstantIsMaterial", func(t *testing.T) {
		a := sampleActivity()
		e := editOf(a)
		e.BeginTime = strptr("2025-03-11 10:30")
		assert.True(t, Material(NormalizeActivity(a), NormalizeEdit(e)))
	})

	t.Run("ParseEditTimeAcceptsAllLayouts", func(t *testing.T) {
		for _, raw := range []string{
			"2025-03-11 10:00:00",
			"2025-03-11 10:00",
			"2025-03-11T10:00:00Z",
			"2025-03-11",
		} {
			_, err := ParseEditTime(raw)
			require.NoError(t, err, raw)
		}
		_, err := ParseEditTime("11-03-2025")
		assert.Error(t, err)
	})
}

func TestCoerceBool(t *testing.T) {
	for _, raw := range []string{"1", "true", "TRUE", "on", "yes", " yes "} {
		assert.True(t, CoerceBool(raw), raw)
	}
	for _, raw := range []string{"", "0", "false", "off", "no", "2"} {
		assert.False(t, CoerceBool(raw), raw)
	}
}

func TestSplitOptions(t *testing.T) {
	assert.Equal(t, []string{"S", "M", "L"}, SplitOptions("S, M, L"))
	assert.Equal(t, []string{"S", "M"}, SplitOptions("S,,M,"))
	assert.Empty(t, SplitOptions("  ,  "))
}

func TestNormalizeEditRefSentinels(t *testing.T) {
	a := sampleActivity()
	a.OrganID = nil

	for _, raw := range []string{"", "0"} {
		e := editOf(a)
		e.OrganID = raw
		assert.False(t, Material(NormalizeActivity(a), NormalizeEdit(e)), "organId %q", raw)
	}

	e := editOf(a)
	e.OrganID = primitive.NewObjectID().Hex()
	assert.True(t, Material(NormalizeActivity(a), NormalizeEdit(e)))
}
