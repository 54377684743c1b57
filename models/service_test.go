package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func price(v float64) *float64 { return &v }

func TestDurationHoursParsesNumericString(t *testing.T) {
	assert.Equal(t, 6, (&Service{Duration: "6"}).DurationHours())
	assert.Equal(t, 8, (&Service{Duration: "8.0"}).DurationHours())
}

func TestDurationHoursDefaultsFromPrice(t *testing.T) {
	assert.Equal(t, 8, (&Service{Price: price(350)}).DurationHours())
	assert.Equal(t, 6, (&Service{Price: price(200)}).DurationHours())
	assert.Equal(t, 4, (&Service{Price: price(150)}).DurationHours())
}

func TestDurationHoursFallsBackOnGarbage(t *testing.T) {
	assert.Equal(t, 4, (&Service{Duration: "meio período"}).DurationHours())
	assert.Equal(t, 4, (&Service{}).DurationHours())
	// Price-derived default still applies when the string is unparseable.
	assert.Equal(t, 8, (&Service{Duration: "um dia", Price: price(400)}).DurationHours())
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCanceled.IsTerminal())
	assert.False(t, StatusScheduled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
}
