package utils

import (
	"errors"
	"regexp"
)

// Output and input identifiers: alphanumeric, underscore, hyphen, dot.
var validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

const (
	maxIDLength   = 100
	maxSiteLength = 100
)

// ValidateID validates that an ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > maxIDLength {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateSite checks a launch site selection value. Any characters are
// allowed and the site need not exist; unknown sites produce empty charts.
func ValidateSite(site string) error {
	if site == "" {
		return errors.New("site cannot be empty")
	}

	if len(site) > maxSiteLength {
		return errors.New("site too long (max 100 characters)")
	}

	return nil
}
