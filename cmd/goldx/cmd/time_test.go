package cmd

import (
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldenacre/extensions/core/errors"
)

func TestNiceDate(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"date only", []string{"nice-date", "2015-01-01T13:34:00Z"}, "Thu 1st Jan 2015\n"},
		{"with time", []string{"nice-date", "--time", "2015-01-22T13:34:00Z"}, "Thu 22nd Jan 2015 13:34\n"},
		{"teens", []string{"nice-date", "2015-01-13"}, "Tue 13th Jan 2015\n"},
		{"to utc", []string{"nice-date", "--utc", "--time", "2015-01-02T08:00:00+10:00"}, "Thu 1st Jan 2015 22:00\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, "", tt.args...)
			require.NoError(t, res.err)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestNiceDateInvalid(t *testing.T) {
	res := run(t, "", "nice-date", "not a date")
	require.Error(t, res.err)
	assert.True(t, errors.IsInvalidFormat(res.err))
}

func TestUnix(t *testing.T) {
	res := run(t, "", "unix", "1420119240")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "2015-01-01T13:34:00Z")
	assert.Contains(t, res.stdout, "Thu 1st Jan 2015 13:34")

	res = run(t, "", "unix", "2015-01-01T13:34:00Z")
	require.NoError(t, res.err)
	assert.Regexp(t, `unix\s+1420119240`, res.stdout)
	assert.Regexp(t, `kind\s+utc`, res.stdout)

	res = run(t, "", "unix", "2015-01-01 13:34:00")
	require.NoError(t, res.err)
	assert.Regexp(t, `unix\s+1420119240`, res.stdout)
	assert.Regexp(t, `kind\s+unspecified`, res.stdout)
}

func TestWeekend(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"saturday", []string{"weekend", "2015-01-03", "--zone", "UTC"}, "weekend\n"},
		{"monday", []string{"weekend", "2015-01-05", "--zone", "UTC"}, "weekday\n"},
		{"friday night utc is saturday in sydney", []string{"weekend", "2015-01-02T20:00:00Z", "--zone", "Australia/Sydney"}, "weekend\n"},
		{"friday night utc", []string{"weekend", "2015-01-02T20:00:00Z", "--zone", "UTC"}, "weekday\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, "", tt.args...)
			require.NoError(t, res.err)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestWeekendUnknownZone(t *testing.T) {
	res := run(t, "", "weekend", "2015-01-03", "--zone", "Mars/Olympus")
	require.Error(t, res.err)
	assert.True(t, errors.IsNotFound(res.err))
}
