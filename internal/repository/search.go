package repository

// Helpers shared by the repositories that build WHERE clauses dynamically
// from optional filters. Postgres placeholders are positional, so every
// fragment takes the index of the argument it binds to.

import (
	"fmt"
	"strings"
)

// textMatch builds a case-insensitive substring predicate across several
// column expressions, all bound to the same LIKE argument. The argument is
// expected to be "%"+strings.ToLower(term)+"%".
func textMatch(argPos int, cols ...string) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = fmt.Sprintf("LOWER(%s) LIKE $%d", col, argPos)
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

// cond substitutes the argument position into a predicate template such as
// "status = $%d".
func cond(tmpl string, argPos int) string {
	return fmt.Sprintf(tmpl, argPos)
}
