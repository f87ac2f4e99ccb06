package postgres

import (
	"slices"
	"strings"

	domainerrors "planner/internal/domain/errors"
)

// searchColumns maps the searchable JSON field names to their columns.
var searchColumns = map[string]string{
	"title":       "title",
	"description": "description",
	"place":       "place",
	"startTime":   "start_time",
	"endTime":     "end_time",
	"repeating":   "repeating",
	"text":        "text",
	"_createdBy":  "created_by",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsClause builds a case-insensitive substring condition on field.
// allowed limits the fields valid for the calling repository.
func containsClause(field, value string, allowed []string) (query string, arg string, err error) {
	column, ok := searchColumns[field]
	if !ok || !slices.Contains(allowed, field) {
		return "", "", domainerrors.ErrUnsupportedQueryField.WithDetails(field)
	}

	return column + " ILIKE ?", "%" + likeEscaper.Replace(value) + "%", nil
}
