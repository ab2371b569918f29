// File: internal/api/list_params.go
package api

import (
	"net/url"
	"strconv"
	"strings"
)

// ListParams is the generic selection/filtering/sorting/pagination contract
// shared by the list endpoints. Reserved query keys (select, sort, page,
// limit) control shape; every other key is an exact-match filter candidate,
// validated against a per-resource column whitelist in the store.
type ListParams struct {
	Select  []string          // json field names to project; empty keeps all
	Sort    []string          // column names, "-" prefix sorts descending
	Page    int               // 1-based
	Limit   int
	Filters map[string]string
}

const (
	defaultLimit = 25
	maxLimit     = 100
)

func ParseListParams(q url.Values) ListParams {
	p := ListParams{Page: 1, Limit: defaultLimit, Filters: map[string]string{}}

	if sel := q.Get("select"); sel != "" {
		for _, field := range strings.Split(sel, ",") {
			if field = strings.TrimSpace(field); field != "" {
				p.Select = append(p.Select, field)
			}
		}
	}
	if sort := q.Get("sort"); sort != "" {
		for _, field := range strings.Split(sort, ",") {
			if field = strings.TrimSpace(field); field != "" {
				p.Sort = append(p.Sort, field)
			}
		}
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 0 {
		p.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		p.Limit = limit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}

	for key, values := range q {
		switch key {
		case "select", "sort", "page", "limit":
			continue
		}
		if len(values) > 0 && values[0] != "" {
			p.Filters[key] = values[0]
		}
	}
	return p
}

func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
