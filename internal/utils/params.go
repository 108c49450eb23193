package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ParseMultiSelectParam reads a comma-separated multi-select query parameter.
// It distinguishes an absent parameter (nil, false: the caller should treat
// the dimension as all-inclusive) from a present-but-empty one ([], true: an
// explicit empty selection).
func ParseMultiSelectParam(params url.Values, key string) ([]string, bool) {
	if _, present := params[key]; !present {
		return nil, false
	}

	raw := params.Get(key)
	if raw == "" {
		return []string{}, true
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values, true
}

// ParseLimitParam retrieves a positive integer limit from the query, bounded
// by maxLimit. A missing key returns defaultLimit; an invalid value records a
// field error.
func ParseLimitParam(params url.Values, key string, defaultLimit, maxLimit int, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return defaultLimit, fieldErrors
	}

	limit, err := strconv.Atoi(val)
	if err != nil || limit < 0 {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return defaultLimit, fieldErrors
	}
	if limit == 0 || limit > maxLimit {
		limit = maxLimit
	}
	return limit, fieldErrors
}
