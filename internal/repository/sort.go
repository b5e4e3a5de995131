package repository

import "strings"

// orderClause builds an ORDER BY expression from a caller-supplied sort field
// and direction token. Sort fields are matched against a per-entity whitelist
// (request name → column); anything not whitelisted falls back to the default
// last-update ordering, and an unrecognized direction token silently falls
// back to DESC. This keeps free-form sort parameters out of the SQL.
func orderClause(allowed map[string]string, sort, order string) string {
	col, ok := allowed[sort]
	if !ok {
		if def, has := allowed["updatedAt"]; has {
			return def + " DESC"
		}
		return "updated_at DESC"
	}
	dir := "DESC"
	if strings.EqualFold(order, "ASC") {
		dir = "ASC"
	}
	return col + " " + dir
}
