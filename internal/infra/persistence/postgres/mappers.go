package postgres

import (
	"planner/internal/domain/entity"
	"planner/internal/infra/persistence/model"

	"github.com/google/uuid"
)

// parseID converts a string id into a uuid. ok is false for malformed ids,
// which callers report as not found.
func parseID(id string) (uuid.UUID, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, false
	}

	return parsed, true
}

func toAccountDomain(m *model.AccountModel) *entity.Account {
	return &entity.Account{
		ID:           m.ID.String(),
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.Password,
		CreatedAt:    m.CreatedAt,
	}
}

func fromTaskDomain(t *entity.Task) *model.TaskModel {
	return &model.TaskModel{
		Title:        t.Title,
		IsCompleted:  t.IsCompleted,
		HighPriority: t.HighPriority,
		CreatedBy:    t.CreatedBy,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func toTaskDomain(m *model.TaskModel) *entity.Task {
	return &entity.Task{
		ID:           m.ID.String(),
		Title:        m.Title,
		IsCompleted:  m.IsCompleted,
		HighPriority: m.HighPriority,
		CreatedBy:    m.CreatedBy,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromActivityDomain(a *entity.Activity) *model.ActivityModel {
	return &model.ActivityModel{
		Title:       a.Title,
		Description: a.Description,
		Date:        a.Date,
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
		Place:       a.Place,
		IsRepeating: a.IsRepeating,
		Repeating:   a.Repeating.String(),
		CreatedBy:   a.CreatedBy,
	}
}

func toActivityDomain(m *model.ActivityModel) *entity.Activity {
	return &entity.Activity{
		ID:          m.ID.String(),
		Title:       m.Title,
		Description: m.Description,
		Date:        m.Date,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		Place:       m.Place,
		IsRepeating: m.IsRepeating,
		Repeating:   entity.RepeatingType(m.Repeating),
		CreatedBy:   m.CreatedBy,
	}
}

func fromNoteDomain(n *entity.Note) *model.NoteModel {
	return &model.NoteModel{
		Text:      n.Text,
		Date:      n.Date,
		CreatedBy: n.CreatedBy,
	}
}

func toNoteDomain(m *model.NoteModel) *entity.Note {
	return &entity.Note{
		ID:        m.ID.String(),
		Text:      m.Text,
		Date:      m.Date,
		CreatedBy: m.CreatedBy,
	}
}
