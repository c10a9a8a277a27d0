package repository

import "strings"

// likeEscaper neutralizes the LIKE metacharacters so user input only
// ever matches literally. MySQL's default escape character is the
// backslash.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likeTerm lowers the query, escapes LIKE wildcards and wraps the
// result in `%` for case-insensitive substring matching.
func likeTerm(query string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
}
