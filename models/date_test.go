package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseDate verifies that both plain dates and RFC 3339 timestamps are
// accepted and reduced to a UTC calendar day.
func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain date", input: "2024-03-15", want: "2024-03-15"},
		{name: "rfc3339 utc", input: "2024-03-15T10:20:30Z", want: "2024-03-15"},
		{name: "rfc3339 with offset crosses day", input: "2024-03-15T23:30:00-02:00", want: "2024-03-16"},
		{name: "surrounding spaces", input: " 2024-03-15 ", want: "2024-03-15"},
		{name: "garbage", input: "yesterday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

// TestDate_JSONRoundTrip verifies the wire format of a date.
func TestDate_JSONRoundTrip(t *testing.T) {
	var payload struct {
		D Date `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"d":"2025-01-02T05:00:00Z"}`), &payload))
	assert.Equal(t, "2025-01-02", payload.D.String())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"2025-01-02"}`, string(out))
}

// TestDate_UnmarshalJSON_NullAndEmpty verifies that missing values leave a zero date.
func TestDate_UnmarshalJSON_NullAndEmpty(t *testing.T) {
	for _, raw := range []string{`null`, `""`, `"  "`} {
		var d Date
		require.NoError(t, d.UnmarshalJSON([]byte(raw)), raw)
		assert.True(t, d.IsZero(), raw)
	}

	var d Date
	assert.ErrorIs(t, d.UnmarshalJSON([]byte(`12`)), ErrInvalidDate)
}

// TestDate_Scan verifies every driver representation the stores produce.
func TestDate_Scan(t *testing.T) {
	ts := time.Date(2023, 7, 4, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		src     any
		want    string
		wantErr bool
	}{
		{name: "time", src: ts, want: "2023-07-04"},
		{name: "string", src: "2023-07-04", want: "2023-07-04"},
		{name: "bytes", src: []byte("2023-07-04"), want: "2023-07-04"},
		{name: "nil", src: nil, want: ""},
		{name: "int", src: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := d.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

// TestDate_Value verifies the driver value of zero and non-zero dates.
func TestDate_Value(t *testing.T) {
	v, err := Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = NewDate(time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC)).Value()
	require.NoError(t, err)
	assert.Equal(t, "2020-02-29", v)
}

// TestDate_After verifies day-level comparison ignores time of day.
func TestDate_After(t *testing.T) {
	today := Today(time.Date(2024, 5, 10, 23, 59, 0, 0, time.UTC))
	morning := NewDate(time.Date(2024, 5, 10, 0, 1, 0, 0, time.UTC))
	tomorrow := NewDate(time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC))

	assert.False(t, morning.After(today))
	assert.True(t, tomorrow.After(today))
}
