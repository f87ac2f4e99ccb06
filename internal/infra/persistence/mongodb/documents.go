package mongodb

import (
	"time"

	"planner/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type accountDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d *accountDocument) toEntity() *entity.Account {
	return &entity.Account{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.Password,
		CreatedAt:    d.CreatedAt,
	}
}

type taskDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	IsCompleted  bool               `bson:"isCompleted"`
	HighPriority bool               `bson:"highPriority"`
	CreatedBy    string             `bson:"_createdBy"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func newTaskDocument(t *entity.Task) *taskDocument {
	return &taskDocument{
		Title:        t.Title,
		IsCompleted:  t.IsCompleted,
		HighPriority: t.HighPriority,
		CreatedBy:    t.CreatedBy,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (d *taskDocument) toEntity() *entity.Task {
	return &entity.Task{
		ID:           d.ID.Hex(),
		Title:        d.Title,
		IsCompleted:  d.IsCompleted,
		HighPriority: d.HighPriority,
		CreatedBy:    d.CreatedBy,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type activityDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Date        time.Time          `bson:"date"`
	StartTime   string             `bson:"startTime"`
	EndTime     string             `bson:"endTime"`
	Place       string             `bson:"place,omitempty"`
	IsRepeating bool               `bson:"isRepeating"`
	Repeating   string             `bson:"repeating"`
	CreatedBy   string             `bson:"_createdBy"`
}

func newActivityDocument(a *entity.Activity) *activityDocument {
	return &activityDocument{
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

func (d *activityDocument) toEntity() *entity.Activity {
	return &entity.Activity{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Date:        d.Date,
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
		Place:       d.Place,
		IsRepeating: d.IsRepeating,
		Repeating:   entity.RepeatingType(d.Repeating),
		CreatedBy:   d.CreatedBy,
	}
}

type noteDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Text      string             `bson:"text"`
	Date      time.Time          `bson:"date"`
	CreatedBy string             `bson:"_createdBy"`
}

func newNoteDocument(n *entity.Note) *noteDocument {
	return &noteDocument{
		Text:      n.Text,
		Date:      n.Date,
		CreatedBy: n.CreatedBy,
	}
}

func (d *noteDocument) toEntity() *entity.Note {
	return &entity.Note{
		ID:        d.ID.Hex(),
		Text:      d.Text,
		Date:      d.Date,
		CreatedBy: d.CreatedBy,
	}
}
