package format

import "github.com/go-playground/validator/v10"

// Presentation controls how exporters render a quiz: branding, result
// visibility, shuffle, timer, pass threshold. It travels with each export
// call and is never stored on the quiz itself.
type Presentation struct {
	Author    string `json:"author,omitempty"`
	Company   string `json:"company,omitempty"`
	Copyright string `json:"copyright,omitempty"`

	ShowResults       bool `json:"show_results"`
	ShowExplanations  bool `json:"show_explanations"`
	AllowReview       bool `json:"allow_review"`
	Randomize         bool `json:"randomize"`
	TimerMinutes      int  `json:"timer_minutes" validate:"gte=0"`
	PassThreshold     int  `json:"pass_threshold" validate:"gte=0,lte=100"`
	EnableCertificate bool `json:"enable_certificate"`

	// LogoDataURI is an optional data: URI embedded in rendered documents.
	// Empty falls back to the built-in placeholder. Runtime-only.
	LogoDataURI string `json:"-"`
}

var validate = validator.New()

// DefaultPresentation is what exporters get when the caller configures
// nothing: results, explanations and review on, no shuffle, no timer,
// 70% pass threshold, certificates off.
func DefaultPresentation() Presentation {
	return Presentation{
		ShowResults:      true,
		ShowExplanations: true,
		AllowReview:      true,
		PassThreshold:    70,
	}
}

// Validate runs the struct tags: a negative timer or a threshold outside
// 0-100 is rejected before any exporter sees it.
func (p Presentation) Validate() error {
	return validate.Struct(p)
}

// CopyrightLine is the notice stamped on rendered documents. An explicit
// Copyright wins; otherwise one is derived from Company; otherwise empty.
func (p Presentation) CopyrightLine() string {
	if p.Copyright != "" {
		return p.Copyright
	}
	if p.Company != "" {
		return "© " + p.Company + ". All rights reserved"
	}
	return ""
}
