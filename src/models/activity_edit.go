package models

// ActivityEdit is the submitted form of an activity, used both for first
// time creation and for update proposals. Pointer fields are absent when the
// form did not submit them. Organ/company references arrive as hex id
// strings; "" and "0" both mean "none".
type ActivityEdit struct {
	NameNL        *string `json:"nameNl" validate:"omitempty,max=100"`
	NameEN        *string `json:"nameEn" validate:"omitempty,max=100"`
	LocationNL    *string `json:"locationNl" validate:"omitempty,max=100"`
	LocationEN    *string `json:"locationEn" validate:"omitempty,max=100"`
	CostsNL       *string `json:"costsNl" validate:"omitempty,max=100"`
	CostsEN       *string `json:"costsEn" validate:"omitempty,max=100"`
	DescriptionNL *string `json:"descriptionNl" validate:"omitempty,max=10000"`
	DescriptionEN *string `json:"descriptionEn" validate:"omitempty,max=10000"`

	BeginTime *string `json:"beginTime" example:"2025-03-11 10:00"`
	EndTime   *string `json:"endTime" example:"2025-03-11 12:00"`

	OrganID   string `json:"organId" example:"0"`
	CompanyID string `json:"companyId" example:"0"`

	// Bool-like form fields; "1", "true", "on" and "yes" count as true.
	OnlyMembers *string `json:"onlyMembers" example:"1"`
	Highlighted *string `json:"highlighted" example:"0"`

	Categories  []string         `json:"categories"`
	SignupLists []SignupListEdit `json:"signupLists" validate:"dive"`

	// Transient submission fields, never part of the activity itself.
	LanguageDutch   *string `json:"language_dutch,omitempty"`
	LanguageEnglish *string `json:"language_english,omitempty"`
	Submit          *string `json:"submit,omitempty"`
}

type SignupListEdit struct {
	NameNL          *string           `json:"nameNl" validate:"omitempty,max=100"`
	NameEN          *string           `json:"nameEn" validate:"omitempty,max=100"`
	OpenDate        *string           `json:"openDate" example:"2025-03-01 00:00"`
	CloseDate       *string           `json:"closeDate" example:"2025-03-10 23:59"`
	LimitedCapacity *string           `json:"limitedCapacity" example:"0"`
	Fields          []SignupFieldEdit `json:"fields" validate:"dive"`
}

type SignupFieldEdit struct {
	NameNL   *string `json:"nameNl" validate:"omitempty,max=100"`
	NameEN   *string `json:"nameEn" validate:"omitempty,max=100"`
	Type     *string `json:"type" validate:"omitempty,oneof=text number choice checkbox"`
	MinValue *int    `json:"minValue"`
	MaxValue *int    `json:"maxValue"`
	// Comma separated list for choice fields, e.g. "S,M,L".
	Options *string `json:"options"`
}
