package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRates(t *testing.T) {
	st := Statistics{TotalSent: 200, TotalDelivered: 180, TotalOpened: 60, TotalClicked: 7}.WithRates()
	assert.Equal(t, 90.0, st.DeliveryRate)
	assert.Equal(t, 33.3, st.OpenRate)
	assert.Equal(t, 3.9, st.ClickRate)

	empty := Statistics{TotalSent: 4}.WithRates()
	assert.Zero(t, empty.DeliveryRate)
	assert.Zero(t, empty.OpenRate)
	assert.Zero(t, empty.ClickRate)
}

func TestTransitions(t *testing.T) {
	assert.True(t, StatusPending.Cancellable())
	assert.True(t, StatusFailed.Cancellable())
	assert.False(t, StatusSent.Cancellable())
	assert.False(t, StatusProcessing.Cancellable())

	assert.True(t, StatusFailed.Retryable())
	assert.True(t, StatusCancelled.Retryable())
	assert.False(t, StatusPending.Retryable())
	assert.False(t, StatusSent.Retryable())
}

func TestPreferencesUpdateIsEmpty(t *testing.T) {
	assert.True(t, PreferencesUpdate{}.IsEmpty())
	off := false
	assert.False(t, PreferencesUpdate{AllEmails: &off}.IsEmpty())
}

func TestTestSubject(t *testing.T) {
	assert.Equal(t, "[TEST] welcome template", TestSubject("welcome"))
}
