package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextOccurrence(t *testing.T) {
	from := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		frequency Frequency
		want      time.Time
		interval  int
	}{
		{name: "daily", frequency: FrequencyDaily, interval: 1, want: from.AddDate(0, 0, 1)},
		{name: "every 3 days", frequency: FrequencyDaily, interval: 3, want: from.AddDate(0, 0, 3)},
		{name: "weekly", frequency: FrequencyWeekly, interval: 1, want: from.AddDate(0, 0, 7)},
		{name: "biweekly", frequency: FrequencyWeekly, interval: 2, want: from.AddDate(0, 0, 14)},
		{name: "monthly", frequency: FrequencyMonthly, interval: 1, want: from.AddDate(0, 1, 0)},
		{name: "yearly", frequency: FrequencyYearly, interval: 1, want: from.AddDate(1, 0, 0)},
		{name: "zero interval clamps to one", frequency: FrequencyDaily, interval: 0, want: from.AddDate(0, 0, 1)},
		{name: "unknown frequency steps daily", frequency: Frequency("bogus"), interval: 1, want: from.AddDate(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := RecurringTransaction{Frequency: tt.frequency, Interval: tt.interval}
			assert.Equal(t, tt.want, def.NextOccurrence(from))
		})
	}
}

func TestNextOccurrenceMonthEndNormalizes(t *testing.T) {
	def := RecurringTransaction{Frequency: FrequencyMonthly, Interval: 1}
	jan31 := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	// time.AddDate normalization: Jan 31 + 1 month = Mar 3.
	assert.Equal(t, time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), def.NextOccurrence(jan31))
}

func TestRecurringEnded(t *testing.T) {
	now := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)

	open := RecurringTransaction{}
	assert.False(t, open.Ended(now))

	past := now.AddDate(0, 0, -1)
	ended := RecurringTransaction{EndDate: &past}
	assert.True(t, ended.Ended(now))

	future := now.AddDate(0, 0, 1)
	running := RecurringTransaction{EndDate: &future}
	assert.False(t, running.Ended(now))
}
