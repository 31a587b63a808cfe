package ports

import (
	"context"

	"github.com/Zenin-Doffy/AfterSchoolBack/internal/domain"
)

type LessonRepo interface {
	List(ctx context.Context, page, limit int) ([]*domain.Lesson, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Lesson, error)
	Search(ctx context.Context, query string) ([]*domain.Lesson, error)
	Update(ctx context.Context, id string, in domain.UpdateLessonInput) (*domain.Lesson, error)
	DecrementSpaces(ctx context.Context, id string, quantity int) error
	IncrementSpaces(ctx context.Context, id string, quantity int) error
}
