package service

import (
	"context"
	"fmt"

	"github.com/Zenin-Doffy/AfterSchoolBack/internal/domain"
	"github.com/Zenin-Doffy/AfterSchoolBack/internal/service/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type LessonService struct {
	repo ports.LessonRepo
}

func NewLessonService(repo ports.LessonRepo) *LessonService {
	return &LessonService{repo: repo}
}

// List возвращает страницу занятий. Отсутствующие или некорректные
// page/limit заменяются значениями по умолчанию; верхней границы
// limit нет.
func (s *LessonService) List(ctx context.Context, page, limit int) ([]*domain.Lesson, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	return s.repo.List(ctx, page, limit)
}

func (s *LessonService) Search(ctx context.Context, query string) ([]*domain.Lesson, error) {
	return s.repo.Search(ctx, query)
}

func (s *LessonService) Update(ctx context.Context, id string, in domain.UpdateLessonInput) (*domain.Lesson, error) {
	if in.Empty() {
		return nil, fmt.Errorf("%w: no fields to update", domain.ErrValidation)
	}
	if in.Spaces != nil && *in.Spaces < 0 {
		return nil, fmt.Errorf("%w: spaces must be >= 0", domain.ErrValidation)
	}
	if in.Price != nil && *in.Price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", domain.ErrValidation)
	}

	return s.repo.Update(ctx, id, in)
}
