package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMultiSelectParam(t *testing.T) {
	t.Run("absent key", func(t *testing.T) {
		values, present := ParseMultiSelectParam(url.Values{}, "genders")
		assert.False(t, present)
		assert.Nil(t, values)
	})

	t.Run("present but empty", func(t *testing.T) {
		params, _ := url.ParseQuery("genders=")
		values, present := ParseMultiSelectParam(params, "genders")
		assert.True(t, present)
		assert.Empty(t, values)
	})

	t.Run("comma separated values", func(t *testing.T) {
		params, _ := url.ParseQuery("ageGroups=20-39,40-49")
		values, present := ParseMultiSelectParam(params, "ageGroups")
		assert.True(t, present)
		assert.Equal(t, []string{"20-39", "40-49"}, values)
	})

	t.Run("whitespace and empty segments are dropped", func(t *testing.T) {
		params, _ := url.ParseQuery("educationLevels=Graduate, Doctorate,,")
		values, _ := ParseMultiSelectParam(params, "educationLevels")
		assert.Equal(t, []string{"Graduate", "Doctorate"}, values)
	})
}

func TestParseLimitParam(t *testing.T) {
	t.Run("missing uses default", func(t *testing.T) {
		limit, fieldErrors := ParseLimitParam(url.Values{}, "limit", 100, 500, nil)
		assert.Equal(t, 100, limit)
		assert.Empty(t, fieldErrors)
	})

	t.Run("valid value", func(t *testing.T) {
		params, _ := url.ParseQuery("limit=25")
		limit, fieldErrors := ParseLimitParam(params, "limit", 100, 500, nil)
		assert.Equal(t, 25, limit)
		assert.Empty(t, fieldErrors)
	})

	t.Run("caps at max", func(t *testing.T) {
		params, _ := url.ParseQuery("limit=9999")
		limit, _ := ParseLimitParam(params, "limit", 100, 500, nil)
		assert.Equal(t, 500, limit)
	})

	t.Run("invalid value records field error", func(t *testing.T) {
		params, _ := url.ParseQuery("limit=lots")
		limit, fieldErrors := ParseLimitParam(params, "limit", 100, 500, nil)
		assert.Equal(t, 100, limit)
		assert.Contains(t, fieldErrors, "limit")
	})
}
