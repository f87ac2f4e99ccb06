package usecase

import (
	"context"
	"time"

	"planner/internal/domain/entity"
)

// ActivityInput defines an activity for creation and full replacement.
type ActivityInput struct {
	Title       string    `json:"title" validate:"required,max=255"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date" validate:"required"`
	StartTime   string    `json:"startTime" validate:"required"`
	EndTime     string    `json:"endTime" validate:"required"`
	Place       string    `json:"place,omitempty"`
	IsRepeating bool      `json:"isRepeating"`
	Repeating   string    `json:"repeating,omitempty" validate:"omitempty,oneof=None Daily Weekly Monthly"`
	CreatedBy   string    `json:"_createdBy" validate:"required"`
}

// ToEntity builds the activity described by the input. Repeating defaults to None.
func (in *ActivityInput) ToEntity() *entity.Activity {
	repeating := entity.RepeatingType(in.Repeating)
	if repeating == "" {
		repeating = entity.RepeatingNone
	}

	return &entity.Activity{
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Place:       in.Place,
		IsRepeating: in.IsRepeating,
		Repeating:   repeating,
		CreatedBy:   in.CreatedBy,
	}
}

// ActivityUsecase manages scheduled activities.
type ActivityUsecase interface {
	Create(ctx context.Context, input *ActivityInput) (*entity.Activity, error)
	List(ctx context.Context) ([]*entity.Activity, error)
	Get(ctx context.Context, id string) (*entity.Activity, error)
	// Search matches value case-insensitively as a substring of field.
	Search(ctx context.Context, field, value string) ([]*entity.Activity, error)
	Update(ctx context.Context, id string, input *ActivityInput) error
	Delete(ctx context.Context, id string) error
}
