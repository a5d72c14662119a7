package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionTimeoutValue_Sentinels(t *testing.T) {
	assert.True(t, TimeoutNever.IsSentinel())
	assert.True(t, TimeoutOnAppRestart.IsSentinel())
	assert.False(t, SessionTimeoutValue(0).IsSentinel())
	assert.False(t, SessionTimeoutValue(15).IsSentinel())
}

func TestSessionTimeoutValue_Minutes(t *testing.T) {
	m, ok := SessionTimeoutValue(30).Minutes()
	assert.True(t, ok)
	assert.Equal(t, 30, m)

	_, ok = TimeoutNever.Minutes()
	assert.False(t, ok)

	_, ok = TimeoutOnAppRestart.Minutes()
	assert.False(t, ok)
}

func TestSessionTimeoutValue_Duration(t *testing.T) {
	d, ok := SessionTimeoutValue(15).Duration()
	assert.True(t, ok)
	assert.Equal(t, 15*time.Minute, d)

	// Zero minutes is a literal value: locks immediately.
	d, ok = SessionTimeoutValue(0).Duration()
	assert.True(t, ok)
	assert.Equal(t, time.Duration(0), d)

	_, ok = TimeoutNever.Duration()
	assert.False(t, ok)
}
