package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name string
		in   Params
		want Params
	}{
		{"defaults applied", Params{Page: 0, PerPage: -1}, Params{Page: 1, PerPage: 10}},
		{"negative page clamped", Params{Page: -5, PerPage: 25}, Params{Page: 1, PerPage: 25}},
		{"valid kept", Params{Page: 3, PerPage: 50}, Params{Page: 3, PerPage: 50}},
		{"zero per_page honored", Params{Page: 2, PerPage: 0}, Params{Page: 2, PerPage: 0}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Normalize())
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, PerPage: 10}.Offset())
	assert.Equal(t, 20, Params{Page: 3, PerPage: 10}.Offset())
	assert.Equal(t, 0, Params{Page: 4, PerPage: 0}.Offset())
}

func TestLastPage(t *testing.T) {
	testCases := []struct {
		name    string
		total   int64
		perPage int
		want    int
	}{
		{"exact division", 100, 10, 10},
		{"rounds up", 101, 10, 11},
		{"single partial page", 3, 10, 1},
		{"empty table", 0, 10, 0},
		{"zero per_page sentinel", 42, 0, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LastPage(tc.total, tc.perPage))
		})
	}
}

func TestNewPageNilData(t *testing.T) {
	page := NewPage[int](nil, 0, Params{Page: 1, PerPage: 10})
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
}

func TestNewLegacy(t *testing.T) {
	page := NewLegacy([]string{"a", "b"}, 21, Params{Page: 2, PerPage: 10})
	assert.Equal(t, int64(21), page.Total)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 3, page.LastPage)

	empty := NewLegacy[string](nil, 5, Params{Page: 1, PerPage: 0})
	assert.NotNil(t, empty.Data)
	assert.Equal(t, 0, empty.LastPage)
}
