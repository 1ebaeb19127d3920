package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterDefaults(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{})

	assert.Equal(t, DefaultLimit, filter.Limit)
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 0, filter.Offset)
	assert.True(t, filter.WithPagination)
}

func TestParseFilterClampsLimit(t *testing.T) {
	values := url.Values{}
	values.Set("limit", "99999")

	filter := ParseFilterFromQuery(values)
	assert.Equal(t, MaxLimit, filter.Limit)
}

func TestParseFilterComputesOffsetFromPage(t *testing.T) {
	values := url.Values{}
	values.Set("limit", "50")
	values.Set("page", "3")

	filter := ParseFilterFromQuery(values)
	assert.Equal(t, 100, filter.Offset)
}

func TestParseFilterSortAndFilterParams(t *testing.T) {
	values := url.Values{}
	values.Set("sort[created_at]", "desc")
	values.Set("sort[bogus]", "sideways")
	values.Set("filter[status]", "pending")
	values.Set("search", "SN-001")

	filter := ParseFilterFromQuery(values)
	assert.Equal(t, map[string]string{"created_at": "desc"}, filter.Sort)
	assert.Equal(t, "pending", filter.Filter["status"])
	assert.Equal(t, "SN-001", filter.Search)
}
