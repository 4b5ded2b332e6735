package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetting_SkipToday(t *testing.T) {
	saturday := time.Date(2024, 1, 6, 9, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 1, 7, 9, 0, 0, 0, time.UTC)
	monday := time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)

	withSkip := &Setting{SkipWeekends: true}
	assert.True(t, withSkip.SkipToday(saturday))
	assert.True(t, withSkip.SkipToday(sunday))
	assert.False(t, withSkip.SkipToday(monday))

	withoutSkip := &Setting{SkipWeekends: false}
	assert.False(t, withoutSkip.SkipToday(saturday))
	assert.False(t, withoutSkip.SkipToday(sunday))
}
