package activities

import (
	"testing"

	"Backend-ClubHub/src/models"
	"Backend-ClubHub/src/services/listing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestNormalizeSchedule(t *testing.T) {
	t.Run("FillsInclusiveSpan", func(t *testing.T) {
		activity := &models.Activity{Date: "2025-06-01", EndDate: strPtr("2025-06-03")}
		normalizeSchedule(activity)

		assert.Len(t, activity.Schedule, 3)
		assert.Equal(t, models.ScheduleDay{Day: 1, Date: "2025-06-01"}, activity.Schedule[0])
		assert.Equal(t, models.ScheduleDay{Day: 3, Date: "2025-06-03"}, activity.Schedule[2])
	})

	t.Run("SingleDayHasNoSchedule", func(t *testing.T) {
		activity := &models.Activity{Date: "2025-06-01", Schedule: []models.ScheduleDay{{Day: 1}}}
		normalizeSchedule(activity)
		assert.Nil(t, activity.Schedule)
	})

	t.Run("KeepsMatchingSchedule", func(t *testing.T) {
		existing := []models.ScheduleDay{
			{Day: 1, Date: "2025-06-01"},
			{Day: 2, Date: "2025-06-02"},
		}
		activity := &models.Activity{Date: "2025-06-01", EndDate: strPtr("2025-06-02"), Schedule: existing}
		normalizeSchedule(activity)
		assert.Equal(t, existing, activity.Schedule)
	})

	t.Run("InvertedRangeLeftAlone", func(t *testing.T) {
		activity := &models.Activity{Date: "2025-06-05", EndDate: strPtr("2025-06-01")}
		normalizeSchedule(activity)
		assert.Nil(t, activity.Schedule)
	})
}

func TestPaginateEntries(t *testing.T) {
	entries := make([]listing.Entry, 5)

	t.Run("NegativeLimitFallsBackToDefault", func(t *testing.T) {
		params := models.PaginationParams{Page: 1, Limit: -1}
		assert.NotPanics(t, func() {
			data, totalPages := paginateEntries(entries, params)
			assert.Len(t, data, 5)
			assert.Equal(t, 1, totalPages)
		})
	})

	t.Run("ZeroLimitFallsBackToDefault", func(t *testing.T) {
		params := models.PaginationParams{Page: 1, Limit: 0}
		data, totalPages := paginateEntries(entries, params)
		assert.Len(t, data, 5)
		assert.Equal(t, 1, totalPages)
	})

	t.Run("ZeroPageStartsAtFirstPage", func(t *testing.T) {
		params := models.PaginationParams{Page: 0, Limit: 2}
		params.Normalize()
		data, totalPages := paginateEntries(entries, params)
		assert.Len(t, data, 2)
		assert.Equal(t, 3, totalPages)
	})

	t.Run("PageBeyondRangeIsEmpty", func(t *testing.T) {
		params := models.PaginationParams{Page: 9, Limit: 2}
		data, _ := paginateEntries(entries, params)
		assert.Empty(t, data)
	})

	t.Run("LastPartialPage", func(t *testing.T) {
		params := models.PaginationParams{Page: 3, Limit: 2}
		data, totalPages := paginateEntries(entries, params)
		assert.Len(t, data, 1)
		assert.Equal(t, 3, totalPages)
	})
}

func TestBuildActivitiesFilter(t *testing.T) {
	params := models.DefaultPagination()
	params.Search = "football"

	filter := buildActivitiesFilter(params, []string{"open", "planning"})
	assert.Contains(t, filter, "$or")
	assert.Contains(t, filter, "activityState")

	empty := buildActivitiesFilter(models.DefaultPagination(), []string{""})
	assert.Empty(t, empty)
}

func TestGetSortFieldAndOrder(t *testing.T) {
	field, order := getSortFieldAndOrder("", "desc")
	assert.Equal(t, "date", field)
	assert.Equal(t, -1, order)

	field, order = getSortFieldAndOrder("name", "ASC")
	assert.Equal(t, "name", field)
	assert.Equal(t, 1, order)
}

func TestBuildListCacheKey(t *testing.T) {
	params := models.DefaultPagination()
	a := buildListCacheKey(params, []string{"open"}, "upcoming")
	b := buildListCacheKey(params, []string{"open"}, "past")
	assert.NotEqual(t, a, b)

	params.Page = 2
	c := buildListCacheKey(params, []string{"open"}, "upcoming")
	assert.NotEqual(t, a, c)
}
