// Package types provides the request shapes accepted by the HTTP API and
// their validation rules. Malformed enum values are rejected here, before a
// request ever reaches the analysis engine.
package types

import (
	"github.com/go-playground/validator/v10"

	"github.com/minji/glowup-backend/internal/analysis"
)

// PersonalColorRequest is the body of POST /api/v1/analysis/personal-color.
// Every field is optional; an empty string means "not provided".
type PersonalColorRequest struct {
	UserID            string `json:"user_id,omitempty"`
	SkinTone          string `json:"skin_tone,omitempty" validate:"omitempty,oneof=fair light medium tan deep"`
	VeinColor         string `json:"vein_color,omitempty" validate:"omitempty,oneof=blue green mixed"`
	JewelryPreference string `json:"jewelry_preference,omitempty" validate:"omitempty,oneof=silver gold both"`
	UndertoneHint     string `json:"undertone_hint,omitempty" validate:"omitempty,oneof=cool warm neutral"`
}

// SensitivityRequest is the body of POST /api/v1/analysis/sensitivity.
type SensitivityRequest struct {
	UserID               string   `json:"user_id,omitempty"`
	SkinType             string   `json:"skin_type,omitempty" validate:"omitempty,oneof=dry oily combination sensitive normal"`
	IngredientsReactions []string `json:"ingredients_reactions" validate:"omitempty,dive,min=1"`
	FragranceSensitive   bool     `json:"fragrance_sensitive"`
	AcneProne            bool     `json:"acne_prone"`
}

// ComprehensiveRequest is the body of POST /api/v1/analysis/comprehensive.
// A nil sub-block skips that analysis; a present-but-empty block runs it
// with default values.
type ComprehensiveRequest struct {
	UserID      string                `json:"user_id,omitempty"`
	Personal    *PersonalColorRequest `json:"personal,omitempty"`
	Sensitivity *SensitivityRequest   `json:"sensitivity,omitempty"`
}

// Validate validates the PersonalColorRequest using the validator.
func (r *PersonalColorRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SensitivityRequest using the validator.
func (r *SensitivityRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ComprehensiveRequest, including any sub-blocks
// that are present.
func (r *ComprehensiveRequest) Validate() error {
	if r.Personal != nil {
		if err := r.Personal.Validate(); err != nil {
			return err
		}
	}
	if r.Sensitivity != nil {
		if err := r.Sensitivity.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ToInput converts a validated request into engine input.
func (r *PersonalColorRequest) ToInput() analysis.PersonalColorInput {
	return analysis.PersonalColorInput{
		SkinTone:          analysis.SkinTone(r.SkinTone),
		VeinColor:         analysis.VeinColor(r.VeinColor),
		JewelryPreference: analysis.JewelryPreference(r.JewelryPreference),
		UndertoneHint:     analysis.Undertone(r.UndertoneHint),
	}
}

// ToInput converts a validated request into engine input.
func (r *SensitivityRequest) ToInput() analysis.SensitivityInput {
	return analysis.SensitivityInput{
		SkinType:             analysis.SkinType(r.SkinType),
		IngredientsReactions: r.IngredientsReactions,
		FragranceSensitive:   r.FragranceSensitive,
		AcneProne:            r.AcneProne,
	}
}

// ToInput converts a validated request into engine input, preserving the
// present/absent distinction of the sub-blocks.
func (r *ComprehensiveRequest) ToInput() analysis.ComprehensiveInput {
	in := analysis.ComprehensiveInput{UserID: r.UserID}
	if r.Personal != nil {
		personal := r.Personal.ToInput()
		in.Personal = &personal
	}
	if r.Sensitivity != nil {
		sensitivity := r.Sensitivity.ToInput()
		in.Sensitivity = &sensitivity
	}
	return in
}
