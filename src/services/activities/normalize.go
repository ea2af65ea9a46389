package activities

import (
	"strconv"
	"strings"
	"time"

	"Backend-AssocHub-012/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TimeLayout is the fixed precision every timestamp is lowered to before
// comparison, so differing in-memory representations of the same instant
// compare equal.
const TimeLayout = "2006-01-02 15:04:05"

var editTimeLayouts = []string{
	TimeLayout,
	"2006-01-02 15:04",
	time.RFC3339,
	"2006-01-02",
}

// ParseEditTime parses a submitted datetime string in any accepted layout.
func ParseEditTime(raw string) (time.Time, error) {
	var err error
	for _, layout := range editTimeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

func timeScalar(t time.Time) Node {
	if t.IsZero() {
		return NullScalar()
	}
	return Scalar(t.Format(TimeLayout))
}

// editTimeScalar keeps unparsable input as-is; a malformed timestamp then
// simply shows up as a change, which is the conservative outcome.
func editTimeScalar(raw string) Node {
	t, err := ParseEditTime(raw)
	if err != nil {
		return Scalar(raw)
	}
	return timeScalar(t)
}

func boolScalar(b bool) Node {
	return Scalar(strconv.FormatBool(b))
}

// CoerceBool turns a bool-like form value into a real boolean.
func CoerceBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

func refScalar(id *primitive.ObjectID) Node {
	if id == nil || id.IsZero() {
		return NullScalar()
	}
	return Scalar(id.Hex())
}

// editRefScalar lowers a submitted reference id; "" and "0" mean none.
func editRefScalar(raw string) Node {
	if raw == "" || raw == "0" {
		return NullScalar()
	}
	return Scalar(raw)
}

func listTree(items []string) Tree {
	t := Tree{}
	for i, v := range items {
		t[strconv.Itoa(i)] = Scalar(v)
	}
	return t
}

func optScalar(p *string) (Node, bool) {
	if p == nil {
		return Node{}, false
	}
	return Scalar(*p), true
}

// NormalizeActivity lowers a stored activity to its comparable tree.
func NormalizeActivity(a *models.Activity) Tree {
	t := Tree{
		"id":            Scalar(a.ID.Hex()),
		"nameNl":        Scalar(a.Name.NL),
		"nameEn":        Scalar(a.Name.EN),
		"locationNl":    Scalar(a.Location.NL),
		"locationEn":    Scalar(a.Location.EN),
		"costsNl":       Scalar(a.Costs.NL),
		"costsEn":       Scalar(a.Costs.EN),
		"descriptionNl": Scalar(a.Description.NL),
		"descriptionEn": Scalar(a.Description.EN),
		"beginTime":     timeScalar(a.BeginTime),
		"endTime":       timeScalar(a.EndTime),
		"organ":         refScalar(a.OrganID),
		"company":       refScalar(a.CompanyID),
		"onlyMembers":   boolScalar(a.OnlyMembers),
		"highlighted":   boolScalar(a.Highlighted),
		"categories":    Subtree(listTree(a.Categories)),
	}

	lists := Tree{}
	for i, l := range a.SignupLists {
		fields := Tree{}
		for j, f := range l.Fields {
			ft := Tree{
				"nameNl": Scalar(f.Name.NL),
				"nameEn": Scalar(f.Name.EN),
				"type":   Scalar(f.Type),
			}
			ft["minValue"] = intScalar(f.MinValue)
			ft["maxValue"] = intScalar(f.MaxValue)
			if f.Options != nil {
				ft["options"] = Subtree(listTree(f.Options))
			}
			fields[strconv.Itoa(j)] = Subtree(ft)
		}
		lists[strconv.Itoa(i)] = Subtree(Tree{
			"id":              Scalar(l.ID.Hex()),
			"nameNl":          Scalar(l.Name.NL),
			"nameEn":          Scalar(l.Name.EN),
			"openDate":        timeScalar(l.OpenDate),
			"closeDate":       timeScalar(l.CloseDate),
			"limitedCapacity": boolScalar(l.LimitedCapacity),
			"fields":          Subtree(fields),
		})
	}
	t["signupLists"] = Subtree(lists)

	return t
}

func intScalar(p *int) Node {
	if p == nil {
		return NullScalar()
	}
	return Scalar(strconv.Itoa(*p))
}

// NormalizeEdit lowers a submitted edit to the same comparable shape.
// Fields the form did not submit stay absent; transient submission fields
// (language checkboxes, submit button) are stripped here by never being
// emitted. Comma separated option lists are exploded into ordered lists,
// but only when present and non-null, to mirror the stored side.
func NormalizeEdit(e *models.ActivityEdit) Tree {
	t := Tree{}

	put := func(key string, p *string) {
		if n, ok := optScalar(p); ok {
			t[key] = n
		}
	}
	put("nameNl", e.NameNL)
	put("nameEn", e.NameEN)
	put("locationNl", e.LocationNL)
	put("locationEn", e.LocationEN)
	put("costsNl", e.CostsNL)
	put("costsEn", e.CostsEN)
	put("descriptionNl", e.DescriptionNL)
	put("descriptionEn", e.DescriptionEN)

	if e.BeginTime != nil {
		t["beginTime"] = editTimeScalar(*e.BeginTime)
	}
	if e.EndTime != nil {
		t["endTime"] = editTimeScalar(*e.EndTime)
	}

	t["organ"] = editRefScalar(e.OrganID)
	t["company"] = editRefScalar(e.CompanyID)

	if e.OnlyMembers != nil {
		t["onlyMembers"] = boolScalar(CoerceBool(*e.OnlyMembers))
	}
	if e.Highlighted != nil {
		t["highlighted"] = boolScalar(CoerceBool(*e.Highlighted))
	}

	if e.Categories != nil {
		t["categories"] = Subtree(listTree(e.Categories))
	}

	if e.SignupLists != nil {
		lists := Tree{}
		for i, l := range e.SignupLists {
			lt := Tree{}
			putIn := func(tr Tree, key string, p *string) {
				if n, ok := optScalar(p); ok {
					tr[key] = n
				}
			}
			putIn(lt, "nameNl", l.NameNL)
			putIn(lt, "nameEn", l.NameEN)
			if l.OpenDate != nil {
				lt["openDate"] = editTimeScalar(*l.OpenDate)
			}
			if l.CloseDate != nil {
				lt["closeDate"] = editTimeScalar(*l.CloseDate)
			}
			if l.LimitedCapacity != nil {
				lt["limitedCapacity"] = boolScalar(CoerceBool(*l.LimitedCapacity))
			}
			fields := Tree{}
			for j, f := range l.Fields {
				ft := Tree{}
				putIn(ft, "nameNl", f.NameNL)
				putIn(ft, "nameEn", f.NameEN)
				putIn(ft, "type", f.Type)
				ft["minValue"] = intScalar(f.MinValue)
				ft["maxValue"] = intScalar(f.MaxValue)
				if f.Options != nil {
					ft["options"] = Subtree(listTree(SplitOptions(*f.Options)))
				}
				fields[strconv.Itoa(j)] = Subtree(ft)
			}
			lt["fields"] = Subtree(fields)
			lists[strconv.Itoa(i)] = Subtree(lt)
		}
		t["signupLists"] = Subtree(lists)
	}

	return t
}

// SplitOptions explodes a comma separated option string into its ordered
// list, trimming whitespace and dropping empty entries.
func SplitOptions(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
