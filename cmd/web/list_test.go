package main

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nameSorters = map[string]func(a, b string) bool{
	"name": func(a, b string) bool { return a < b },
}

func matchContains(s, q string) bool {
	return strings.Contains(s, q)
}

func TestPaginateSort(t *testing.T) {
	rows := []string{"cherry", "apple", "banana"}

	req := httptest.NewRequest("GET", "/dashboard/x?sort=name&dir=asc", nil)
	page, st := paginate(rows, req, matchContains, nameSorters)
	assert.Equal(t, []string{"apple", "banana", "cherry"}, page)
	assert.Equal(t, "name", st.Sort)
	assert.Equal(t, "asc", st.Dir)

	req = httptest.NewRequest("GET", "/dashboard/x?sort=name&dir=desc", nil)
	page, st = paginate(rows, req, matchContains, nameSorters)
	assert.Equal(t, []string{"cherry", "banana", "apple"}, page)
	assert.Equal(t, "desc", st.Dir)

	// The input slice may back the listing cache and must not be reordered.
	assert.Equal(t, []string{"cherry", "apple", "banana"}, rows)
}

func TestPaginateUnknownSortKey(t *testing.T) {
	rows := []string{"cherry", "apple", "banana"}

	req := httptest.NewRequest("GET", "/dashboard/x?sort=bogus&dir=desc", nil)
	page, st := paginate(rows, req, matchContains, nameSorters)
	assert.Equal(t, rows, page)
	assert.Equal(t, "", st.Sort)
}

func TestPaginateFilter(t *testing.T) {
	rows := []string{"cherry", "apple", "banana"}

	req := httptest.NewRequest("GET", "/dashboard/x?q=an", nil)
	page, st := paginate(rows, req, matchContains, nil)
	assert.Equal(t, []string{"banana"}, page)
	assert.Equal(t, "an", st.Query)
	assert.Equal(t, 1, st.Total)
}

func TestPaginateSlicesAndClamps(t *testing.T) {
	rows := make([]string, 0, 60)
	for i := 0; i < 60; i++ {
		rows = append(rows, fmt.Sprintf("row-%02d", i))
	}

	req := httptest.NewRequest("GET", "/dashboard/x?page=2", nil)
	page, st := paginate(rows, req, matchContains, nil)
	require.Len(t, page, pageSize)
	assert.Equal(t, "row-25", page[0])
	assert.Equal(t, 2, st.Page)
	assert.Equal(t, 3, st.Pages)
	assert.Equal(t, 60, st.Total)

	// Out-of-range pages clamp to the last one.
	req = httptest.NewRequest("GET", "/dashboard/x?page=99", nil)
	page, st = paginate(rows, req, matchContains, nil)
	assert.Len(t, page, 10)
	assert.Equal(t, 3, st.Page)
}
