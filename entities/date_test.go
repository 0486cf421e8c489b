package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	type row struct {
		Plant    Date  `json:"plant"`
		Harvest  *Date `json:"harvest"`
		Optional *Date `json:"optional"`
	}
	in := row{Plant: NewDate(2024, time.April, 15), Harvest: DatePtr(NewDate(2024, time.September, 18))}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"plant":"2024-04-15","harvest":"2024-09-18","optional":null}`, string(b))

	var out row
	require.NoError(t, json.Unmarshal(b, &out))
	assert.True(t, out.Plant.Equal(in.Plant.Time))
	assert.Nil(t, out.Optional)
}

func TestDateAcceptsTimestamps(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-06-05T10:30:00+08:00"`), &d))
	assert.Equal(t, "2024-06-05", d.String())

	assert.Error(t, json.Unmarshal([]byte(`"05/06/2024"`), &d))
}

func TestDateScan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want string
	}{
		{"text", "2024-03-20", "2024-03-20"},
		{"bytes", []byte("2024-03-20"), "2024-03-20"},
		{"datetime text", "2024-03-20 00:00:00+00:00", "2024-03-20"},
		{"time", time.Date(2024, 3, 20, 13, 0, 0, 0, time.UTC), "2024-03-20"},
		{"null", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.src))
			assert.Equal(t, tt.want, d.String())
		})
	}
}
