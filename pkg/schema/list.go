package schema

import (
	"net/url"
	"strconv"
	"strings"

	"dalu/entities"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100

	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListParams pages a collection. A zero Limit means "server default".
type ListParams struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

func (p ListParams) Values() url.Values {
	v := url.Values{}
	if p.Skip > 0 {
		v.Set("skip", strconv.Itoa(p.Skip))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	return v
}

type CropListParams struct {
	ListParams
	Status    string `json:"status,omitempty"`
	SortBy    string `json:"sort_by,omitempty"`
	SortOrder string `json:"sort_order,omitempty"`
}

func (p CropListParams) Values() url.Values {
	v := p.ListParams.Values()
	if p.Status != "" {
		v.Set("status", p.Status)
	}
	if p.SortBy != "" {
		v.Set("sort_by", p.SortBy)
	}
	if p.SortOrder != "" {
		v.Set("sort_order", p.SortOrder)
	}
	return v
}

type ListResponse[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Skip  int   `json:"skip"`
	Limit int   `json:"limit"`
}

// ParseListParams reads skip/limit from a query string, applying defaults
// and bounds (skip >= 0, 1 <= limit <= MaxLimit).
func ParseListParams(q url.Values) (ListParams, error) {
	p := ListParams{Limit: DefaultLimit}
	if s := q.Get("skip"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return p, invalid("skip", "must be an integer >= 0")
		}
		p.Skip = n
	}
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > MaxLimit {
			return p, invalid("limit", "must be an integer between 1 and %d", MaxLimit)
		}
		p.Limit = n
	}
	return p, nil
}

// cropSortColumns whitelists sortable crop columns.
var cropSortColumns = map[string]bool{
	"id": true, "name": true, "variety": true, "area": true,
	"plant_date": true, "expected_harvest_date": true, "actual_harvest_date": true,
	"total_yield": true, "unit": true, "status": true,
	"created_at": true, "updated_at": true,
}

// ParseCropListParams normalizes the crop list query: an unknown status is
// dropped, an unknown sort column falls back to plant_date and any order
// other than "desc" sorts ascending.
func ParseCropListParams(q url.Values) (CropListParams, error) {
	lp, err := ParseListParams(q)
	if err != nil {
		return CropListParams{}, err
	}
	p := CropListParams{ListParams: lp, SortBy: "plant_date", SortOrder: SortDesc}
	if s := entities.CropStatus(q.Get("status")); s.Valid() {
		p.Status = string(s)
	}
	if col := q.Get("sort_by"); cropSortColumns[col] {
		p.SortBy = col
	}
	if o := q.Get("sort_order"); o != "" {
		if strings.EqualFold(o, SortDesc) {
			p.SortOrder = SortDesc
		} else {
			p.SortOrder = SortAsc
		}
	}
	return p, nil
}
