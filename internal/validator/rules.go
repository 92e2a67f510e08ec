package validator

import (
	"log"
	"regexp"

	"travel_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// a broken rule set is a programming error; refuse to start
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// Enum rules accept any casing; services normalise before storing.
	mustRegister("is-review-status", enumRule(func(s string) bool { _, ok := models.ParseReviewStatus(s); return ok }))
	mustRegister("is-listing-status", enumRule(func(s string) bool { _, ok := models.ParseListingStatus(s); return ok }))
	mustRegister("is-region", enumRule(func(s string) bool { _, ok := models.ParseRegion(s); return ok }))
	mustRegister("is-post-status", enumRule(func(s string) bool { _, ok := models.ParsePostStatus(s); return ok }))
	mustRegister("is-enquiry-type", enumRule(func(s string) bool { _, ok := models.ParseEnquiryType(s); return ok }))
	mustRegister("is-enquiry-status", enumRule(func(s string) bool { _, ok := models.ParseEnquiryStatus(s); return ok }))

	mustRegister("slug", validateSlug)
}

// enumRule skips empty values; 'required' covers those.
func enumRule(valid func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		return valid(value)
	}
}

func validateSlug(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return len(value) <= 200 && slugPattern.MatchString(value)
}
