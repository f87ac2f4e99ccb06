package mongodb

import (
	"regexp"
	"slices"

	domainerrors "planner/internal/domain/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseID converts a hex id into an ObjectID. ok is false for malformed ids,
// which callers report as not found.
func parseID(id string) (oid primitive.ObjectID, ok bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}

	return oid, true
}

// containsFilter matches documents whose field contains value, ignoring case.
// value is matched literally.
func containsFilter(field, value string) bson.M {
	return bson.M{field: primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}}
}

func checkSearchField(field string, allowed []string) error {
	if !slices.Contains(allowed, field) {
		return domainerrors.ErrUnsupportedQueryField.WithDetails(field)
	}

	return nil
}
