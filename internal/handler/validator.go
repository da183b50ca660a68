package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/HealingGarden_Go/internal/catalog"
	"github.com/osse101/HealingGarden_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator whose plant_type and animal_type tags accept
// only species known to cat
func NewValidator(cat *catalog.Catalog) *Validator {
	v := validator.New()

	_ = v.RegisterValidation("plant_type", func(fl validator.FieldLevel) bool {
		_, ok := cat.Plant(domain.PlantType(fl.Field().String()))
		return ok
	})
	_ = v.RegisterValidation("animal_type", func(fl validator.FieldLevel) bool {
		_, ok := cat.Animal(domain.AnimalType(fl.Field().String()))
		return ok
	})

	return &Validator{validate: v}
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// without leaking internal struct names
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "plant_type":
			errs[field] = "Unknown plant"
		case "animal_type":
			errs[field] = "Unknown animal"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}
