package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Date
	}{
		{"iso date", `"2024-03-01"`, NewDate(2024, time.March, 1)},
		{"null is no date", `null`, Date{}},
		{"empty string is no date", `""`, Date{}},
		{"garbage is no date", `"not-a-date"`, Date{}},
		{"rfc3339 timestamp tolerated", `"2024-03-01T12:30:00Z"`, Date{time.Date(2024, time.March, 1, 12, 30, 0, 0, time.UTC)}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(tt.in), &d))
			assert.True(t, d.Equal(tt.want.Time), "got %v want %v", d, tt.want)
		})
	}
}

func TestDate_UnmarshalJSON_InsideStruct(t *testing.T) {
	var row struct {
		DateIntroduced Date `json:"date_introduced"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date_introduced":"2024-03-01"}`), &row))
	assert.Equal(t, NewDate(2024, time.March, 1), row.DateIntroduced)

	require.NoError(t, json.Unmarshal([]byte(`{"date_introduced":null}`), &row))
	assert.True(t, row.DateIntroduced.IsZero())
}

func TestDate_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewDate(2024, time.March, 1))
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-01"`, string(b))

	b, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(b))
}

func TestDate_String(t *testing.T) {
	assert.Equal(t, "2024-03-01", NewDate(2024, time.March, 1).String())
	assert.Equal(t, "", Date{}.String())
}
