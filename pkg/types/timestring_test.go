package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid midday", input: "12:00", want: "12:00"},
		{name: "valid evening", input: "22:30", want: "22:30"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "hour out of range", input: "25:99", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "missing leading zero", input: "9:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 5, 10, 19, 30, 45, 0, time.UTC)
	assert.Equal(t, TimeString("19:30"), NewTimeString(moment))
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
	}{
		{name: "half hour step", start: "12:00", minutes: 30, want: "12:30"},
		{name: "across the hour", start: "12:45", minutes: 30, want: "13:15"},
		{name: "wraps past midnight", start: "23:45", minutes: 30, want: "00:15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("malformed value", func(t *testing.T) {
		_, err := TimeString("bad").AddMinutes(30)
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("12:00").IsBefore("12:30"))
	assert.False(t, TimeString("12:30").IsBefore("12:00"))
	assert.True(t, TimeString("22:30").IsAfter("22:00"))
	assert.False(t, TimeString("12:00").IsAfter("12:00"))
	assert.False(t, TimeString("12:00").IsBefore("12:00"))
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("12:00").IsZero())
}
