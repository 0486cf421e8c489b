package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dalu/pkg/schema"
)

func TestReadPayload(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
		check   func(t *testing.T, in schema.CropCreate)
	}{
		{
			name: "plain json",
			body: `{"name":"Rice","variety":"Shanyou 63","area":2,"plant_date":"2024-04-15"}`,
			check: func(t *testing.T, in schema.CropCreate) {
				assert.Equal(t, "Rice", in.Name)
				assert.Equal(t, "2024-04-15", in.PlantDate.String())
			},
		},
		{
			name: "comments and trailing commas",
			body: `{
				// east field
				"name": "Corn",
				"variety": "Zhengdan 958", /* hybrid */
				"area": 18,
				"plant_date": "2024-05-20",
			}`,
			check: func(t *testing.T, in schema.CropCreate) {
				assert.Equal(t, "Corn", in.Name)
				assert.Equal(t, 18.0, in.Area)
			},
		},
		{name: "unknown field", body: `{"nmae":"Rice"}`, wantErr: "unknown field"},
		{name: "broken", body: `{"name":`, wantErr: "parse payload"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "crop.jsonc")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o600))

			var in schema.CropCreate
			err := readPayload(path, nil, &in)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, in)
		})
	}
}

func TestReadPayloadStdin(t *testing.T) {
	var in schema.AnimalUpdate
	require.NoError(t, readPayload("-", strings.NewReader(`{"quantity": 3, /* more */}`), &in))
	require.NotNil(t, in.Quantity)
	assert.Equal(t, 3, *in.Quantity)
}

func TestReadPayloadMissingFile(t *testing.T) {
	var in schema.CropCreate
	err := readPayload(filepath.Join(t.TempDir(), "nope.json"), nil, &in)
	assert.ErrorContains(t, err, "read payload")
}
