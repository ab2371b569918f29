// File: internal/store/query.go
package store

import (
	"fmt"
	"strings"

	"bootcampdir/internal/api"
)

// buildListQuery appends WHERE/ORDER BY/LIMIT/OFFSET clauses for the generic
// list contract to a base SELECT. Filter and sort columns are validated
// against the per-resource whitelist; anything outside it is ignored, never
// interpolated. The "careers" filter matches array membership.
func buildListQuery(baseSelect string, allowed map[string]bool, p api.ListParams) (string, []any) {
	var sb strings.Builder
	sb.WriteString(baseSelect)

	var args []any
	var conds []string
	for column, value := range p.Filters {
		if !allowed[column] {
			continue
		}
		args = append(args, value)
		if column == "careers" {
			conds = append(conds, fmt.Sprintf("$%d = ANY(careers)", len(args)))
		} else {
			conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
		}
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	var orders []string
	for _, field := range p.Sort {
		dir := "ASC"
		if strings.HasPrefix(field, "-") {
			field = field[1:]
			dir = "DESC"
		}
		if !allowed[field] {
			continue
		}
		orders = append(orders, field+" "+dir)
	}
	if len(orders) == 0 {
		orders = []string{"id ASC"}
	}
	sb.WriteString(" ORDER BY ")
	sb.WriteString(strings.Join(orders, ", "))

	args = append(args, p.Limit)
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	args = append(args, p.Offset())
	sb.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))

	return sb.String(), args
}
