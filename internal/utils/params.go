package utils

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
)

// ParseFloatParam retrieves a float64 value from the provided URL query parameters.
// If the key is not present it returns def. An invalid value yields 0 and
// an entry in fieldErrors.
func ParseFloatParam(params url.Values, key string, def float64, fieldErrors map[string][]string) (float64, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return def, fieldErrors
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return 0, fieldErrors
	}
	return f, fieldErrors
}

// ParseStringParam returns the query value for key unchanged, or def when
// absent. Site selections match exactly, so nothing is trimmed.
func ParseStringParam(params url.Values, key, def string) string {
	if !params.Has(key) {
		return def
	}
	return params.Get(key)
}
