package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimeForDB(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	assert.Equal(t, "2026-03-14T09:26:53Z", FormatTimeForDB(ts))
}

func TestParseTimeFromDB(t *testing.T) {
	parsed, err := ParseTimeFromDB("2026-03-14T09:26:53Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC), parsed)
}

func TestParseTimeFromDB_Invalid(t *testing.T) {
	_, err := ParseTimeFromDB("not a time")
	assert.Error(t, err)
}
