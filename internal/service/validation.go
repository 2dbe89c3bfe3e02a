package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"address-book-api/internal/models"

	"github.com/go-playground/validator/v10"
)

var cityPattern = regexp.MustCompile(`^[A-Za-z\s]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	if err := v.RegisterValidation("cityname", func(fl validator.FieldLevel) bool {
		return cityPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// NormalizeAddressInput trims text fields and validates the result.
func NormalizeAddressInput(in models.AddressInput) (models.AddressInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Street = strings.TrimSpace(in.Street)
	in.City = strings.TrimSpace(in.City)

	for _, f := range []struct{ field, value string }{
		{"name", in.Name}, {"street", in.Street}, {"city", in.City},
	} {
		if f.value == "" {
			return in, emptyField(f.field)
		}
	}

	if err := validate.Struct(in); err != nil {
		return in, translate(err)
	}
	return in, nil
}

// NormalizeAddressPatch trims and validates every field present in the patch.
func NormalizeAddressPatch(p models.AddressPatch) (models.AddressPatch, error) {
	if p.Empty() {
		return p, models.NewValidationError("", "at least one field must be provided")
	}

	checks := []struct {
		field string
		set   bool
		null  bool
		value any
		tag   string
	}{
		{"name", p.Name.Set, p.Name.Null, &p.Name.Value, "min=2,max=100"},
		{"street", p.Street.Set, p.Street.Null, &p.Street.Value, "min=2,max=150"},
		{"city", p.City.Set, p.City.Null, &p.City.Value, "min=2,max=100,cityname"},
		{"latitude", p.Latitude.Set, p.Latitude.Null, p.Latitude.Value, "gte=-90,lte=90"},
		{"longitude", p.Longitude.Set, p.Longitude.Null, p.Longitude.Value, "gte=-180,lte=180"},
	}

	for _, c := range checks {
		if !c.set {
			continue
		}
		if c.null {
			return p, models.NewValidationError(c.field, fmt.Sprintf("%s cannot be null", c.field))
		}

		value := c.value
		if s, ok := value.(*string); ok {
			*s = strings.TrimSpace(*s)
			if *s == "" {
				return p, emptyField(c.field)
			}
			value = *s
		}

		if err := validate.Var(value, c.tag); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				return p, fieldError(c.field, verrs[0])
			}
			return p, models.NewValidationError(c.field, err.Error())
		}
	}

	return p, nil
}

// ValidateNearbyQuery checks the radius first, then latitude, then longitude.
func ValidateNearbyQuery(q models.NearbyQuery) error {
	if !(q.Distance > 0) {
		return models.NewValidationError("distance", "distance must be greater than 0")
	}
	if !(q.Latitude >= -90 && q.Latitude <= 90) {
		return models.NewValidationError("lat", "latitude out of range")
	}
	if !(q.Longitude >= -180 && q.Longitude <= 180) {
		return models.NewValidationError("lon", "longitude out of range")
	}
	return nil
}

func emptyField(field string) *models.ValidationError {
	return models.NewValidationError(field, fmt.Sprintf("%s cannot be empty or whitespace", field))
}

func translate(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fieldError(verrs[0].Field(), verrs[0])
	}
	return models.NewValidationError("", err.Error())
}

func fieldError(field string, fe validator.FieldError) *models.ValidationError {
	var msg string
	switch fe.Tag() {
	case "required":
		msg = fmt.Sprintf("%s is required", field)
	case "min":
		msg = fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		msg = fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gte", "lte":
		msg = fmt.Sprintf("%s out of range", field)
	case "cityname":
		msg = fmt.Sprintf("%s must contain only letters and spaces", field)
	default:
		msg = fmt.Sprintf("%s is invalid", field)
	}
	return models.NewValidationError(field, msg)
}
