package httpapi

import (
	"github.com/go-playground/validator/v10"

	"github.com/denisok6893-rgb/red-flag-checker/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("level", validateLevel)
}

// validateLevel accepts the five rating values.
func validateLevel(fl validator.FieldLevel) bool {
	return domain.Level(fl.Field().String()).Valid()
}

type ScoreRequest struct {
	Selections domain.Selections `json:"selections" validate:"dive,keys,required,endkeys,level"`
}

type ProfileNameRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type RenameRequest struct {
	DisplayName string `json:"display_name" validate:"required,max=100"`
}

type SelectionUpdateRequest struct {
	TraitID string       `json:"trait_id" validate:"required"`
	Value   domain.Level `json:"value" validate:"omitempty,level"`
}

type CustomTraitRequest struct {
	Category string `json:"category" validate:"required,max=100"`
	Trait    string `json:"trait" validate:"required,max=100"`
}

type ShareRequest struct {
	Name       string            `json:"name" validate:"max=100"`
	Selections domain.Selections `json:"selections" validate:"dive,keys,required,endkeys,level"`
}

type ComputeRequest struct {
	Seeking    string            `json:"seeking" validate:"omitempty,oneof=male female"`
	Region     string            `json:"region"`
	Selections map[string]string `json:"selections"`
}
