package main

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/allinlistings/admin/views"
)

const pageSize = 25

// paginate applies the ?q= filter, ?sort=/?dir= ordering and ?page= slicing
// shared by every listing page. sorters maps a sort key to a less function;
// an unknown key leaves the incoming order untouched. Rows are copied before
// sorting because the input slice may be shared with the listing cache.
func paginate[T any](rows []T, r *http.Request, match func(T, string) bool, sorters map[string]func(a, b T) bool) ([]T, views.ListState) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query != "" {
		lowered := strings.ToLower(query)
		filtered := make([]T, 0, len(rows))
		for _, row := range rows {
			if match(row, lowered) {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	sortKey := r.URL.Query().Get("sort")
	dir := r.URL.Query().Get("dir")
	if dir != "desc" {
		dir = "asc"
	}
	if less, ok := sorters[sortKey]; ok {
		sorted := make([]T, len(rows))
		copy(sorted, rows)
		sort.SliceStable(sorted, func(i, j int) bool {
			if dir == "desc" {
				return less(sorted[j], sorted[i])
			}
			return less(sorted[i], sorted[j])
		})
		rows = sorted
	} else {
		sortKey = ""
	}

	total := len(rows)
	pages := (total + pageSize - 1) / pageSize
	if pages == 0 {
		pages = 1
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}

	return rows[start:end], views.ListState{Query: query, Sort: sortKey, Dir: dir, Page: page, Pages: pages, Total: total}
}

func containsFold(haystack, loweredNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), loweredNeedle)
}
