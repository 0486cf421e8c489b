package schema

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCropListParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  CropListParams
	}{
		{
			name:  "defaults",
			query: "",
			want:  CropListParams{ListParams: ListParams{Limit: DefaultLimit}, SortBy: "plant_date", SortOrder: SortDesc},
		},
		{
			name:  "known status and column",
			query: "status=harvested&sort_by=total_yield&sort_order=asc&skip=5&limit=10",
			want:  CropListParams{ListParams: ListParams{Skip: 5, Limit: 10}, Status: "harvested", SortBy: "total_yield", SortOrder: SortAsc},
		},
		{
			name:  "unknown status is ignored",
			query: "status=rotten",
			want:  CropListParams{ListParams: ListParams{Limit: DefaultLimit}, SortBy: "plant_date", SortOrder: SortDesc},
		},
		{
			name:  "unknown column falls back to plant_date",
			query: "sort_by=password_hash",
			want:  CropListParams{ListParams: ListParams{Limit: DefaultLimit}, SortBy: "plant_date", SortOrder: SortDesc},
		},
		{
			name:  "anything but desc sorts ascending",
			query: "sort_order=sideways",
			want:  CropListParams{ListParams: ListParams{Limit: DefaultLimit}, SortBy: "plant_date", SortOrder: SortAsc},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			got, err := ParseCropListParams(q)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseListParamsBounds(t *testing.T) {
	for _, query := range []string{"skip=-1", "limit=0", "limit=101", "limit=abc"} {
		t.Run(query, func(t *testing.T) {
			q, _ := url.ParseQuery(query)
			_, err := ParseListParams(q)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestListParamsValuesOmitsDefaults(t *testing.T) {
	assert.Empty(t, ListParams{}.Values().Encode())

	p := CropListParams{ListParams: ListParams{Skip: 20, Limit: 20}, Status: "growing", SortBy: "plant_date", SortOrder: "desc"}
	assert.Equal(t, "limit=20&skip=20&sort_by=plant_date&sort_order=desc&status=growing", p.Values().Encode())
}
