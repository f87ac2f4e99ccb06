package repository

import (
	"context"
	"errors"

	"planner/internal/domain/entity"
)

// ErrActivityNotFound is returned when no activity matches the given ID.
var ErrActivityNotFound = errors.New("activity not found")

// ActivityRepository defines the persistence operations for activities.
type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	List(ctx context.Context) ([]*entity.Activity, error)
	FindByID(ctx context.Context, id string) (*entity.Activity, error)

	// Search returns activities whose field contains value, ignoring case.
	// field is one of the names in ActivitySearchFields.
	Search(ctx context.Context, field, value string) ([]*entity.Activity, error)

	Update(ctx context.Context, activity *entity.Activity) error
	Delete(ctx context.Context, id string) error
}

// ActivitySearchFields lists the JSON field names an activity can be searched by.
var ActivitySearchFields = []string{"title", "description", "place", "startTime", "endTime", "repeating", "_createdBy"}
