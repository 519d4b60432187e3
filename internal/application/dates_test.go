package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferEducationStart(t *testing.T) {
	end := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		degree string
		years  int
	}{
		{"Bachelor of Science", 4},
		{"B.A. in History", 4},
		{"Master of Science", 2},
		{"M.S. Computer Science", 2},
		{"M.A. Linguistics", 2},
		{"PhD in Physics", 5},
		{"Doctorate of Philosophy", 5},
	}
	for _, tt := range tests {
		t.Run(tt.degree, func(t *testing.T) {
			got := inferEducationStart(end, tt.degree)
			assert.Equal(t, end.AddDate(-tt.years, 0, 0), got)
		})
	}
}

func TestInferExperienceStart(t *testing.T) {
	end := time.Date(2024, time.August, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, end.AddDate(0, -4, 0), inferExperienceStart(end, "internship"))
	assert.Equal(t, end.AddDate(0, -4, 0), inferExperienceStart(end, "Summer Internship"))
	assert.Equal(t, end.AddDate(0, -6, 0), inferExperienceStart(end, "full-time"))
	assert.Equal(t, end.AddDate(0, -6, 0), inferExperienceStart(end, ""))
}

func TestResolveDates(t *testing.T) {
	infer := func(e time.Time) time.Time { return e.AddDate(0, -3, 0) }

	t.Run("both present", func(t *testing.T) {
		start, end, ok := resolveDates("2023-01-15", "2023-06-30", infer)
		require.True(t, ok)
		assert.Equal(t, time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC), start)
		require.NotNil(t, end)
		assert.Equal(t, time.Date(2023, time.June, 30, 0, 0, 0, 0, time.UTC), *end)
	})

	t.Run("start only means ongoing", func(t *testing.T) {
		start, end, ok := resolveDates("2023-01-15", "", infer)
		require.True(t, ok)
		assert.Equal(t, time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC), start)
		assert.Nil(t, end)
	})

	t.Run("end only infers start", func(t *testing.T) {
		start, end, ok := resolveDates("", "2023-06-30", infer)
		require.True(t, ok)
		assert.Equal(t, time.Date(2023, time.March, 30, 0, 0, 0, 0, time.UTC), start)
		require.NotNil(t, end)
	})

	t.Run("neither date skips", func(t *testing.T) {
		_, _, ok := resolveDates("", "", infer)
		assert.False(t, ok)
	})

	t.Run("garbage dates skip", func(t *testing.T) {
		_, _, ok := resolveDates("soon", "later", infer)
		assert.False(t, ok)
	})
}
