package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Zenin-Doffy/AfterSchoolBack/internal/domain"
	"github.com/Zenin-Doffy/AfterSchoolBack/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLessonService_List_Defaults(t *testing.T) {
	repo := mocks.NewMockLessonRepo(t)
	svc := NewLessonService(repo)

	repo.EXPECT().List(mock.Anything, defaultPage, defaultLimit).Return(nil, nil)

	_, err := svc.List(context.Background(), 0, 0)

	require.NoError(t, err)
}

func TestLessonService_List_NegativeValuesDefaulted(t *testing.T) {
	repo := mocks.NewMockLessonRepo(t)
	svc := NewLessonService(repo)

	repo.EXPECT().List(mock.Anything, defaultPage, defaultLimit).Return(nil, nil)

	_, err := svc.List(context.Background(), -3, -1)

	require.NoError(t, err)
}

func TestLessonService_List_Paging(t *testing.T) {
	repo := mocks.NewMockLessonRepo(t)
	svc := NewLessonService(repo)

	lessons := []*domain.Lesson{
		{ID: "l1", Subject: "Math"},
		{ID: "l2", Subject: "Art"},
	}
	repo.EXPECT().List(mock.Anything, 2, 5).Return(lessons, nil)

	result, err := svc.List(context.Background(), 2, 5)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestLessonService_List_RepoError(t *testing.T) {
	repo := mocks.NewMockLessonRepo(t)
	svc := NewLessonService(repo)

	repo.EXPECT().List(mock.Anything, 1, 10).Return(nil, errors.New("db error"))

	_, err := svc.List(context.Background(), 1, 10)

	require.Error(t, err)
}

func TestLessonService_Update_Success(t *testing.T) {
	repo := mocks.NewMockLessonRepo(t)
	svc := NewLessonService(repo)

	spaces := 3
	input := domain.UpdateLessonInput{Spaces: &spaces}
	updated := &domain.Lesson{ID: "l1", Subject: "Math", Spaces: 3}

	repo.EXPECT().Update(mock.Anything, "l1", input).Return(updated, nil)

	lesson, err := svc.Update(context.Background(), "l1", input)

	require.NoError(t, err)
	assert.Equal(t, 3, lesson.Spaces)
}

func TestLessonService_Update_NoFields(t *testing.T) {
	svc := NewLessonService(nil)

	_, err := svc.Update(context.Background(), "l1", domain.UpdateLessonInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLessonService_Update_NegativeSpaces(t *testing.T) {
	svc := NewLessonService(nil)

	spaces := -1
	_, err := svc.Update(context.Background(), "l1", domain.UpdateLessonInput{Spaces: &spaces})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLessonService_Update_NegativePrice(t *testing.T) {
	svc := NewLessonService(nil)

	price := -10.0
	_, err := svc.Update(context.Background(), "l1", domain.UpdateLessonInput{Price: &price})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLessonService_Update_NotFound(t *testing.T) {
	repo := mocks.NewMockLessonRepo(t)
	svc := NewLessonService(repo)

	subject := "Chess"
	repo.EXPECT().Update(mock.Anything, "missing", mock.Anything).Return(nil, domain.ErrLessonNotFound)

	_, err := svc.Update(context.Background(), "missing", domain.UpdateLessonInput{Subject: &subject})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLessonNotFound)
}

func TestLessonService_Search_Delegates(t *testing.T) {
	repo := mocks.NewMockLessonRepo(t)
	svc := NewLessonService(repo)

	lessons := []*domain.Lesson{{ID: "l1", Subject: "Art"}}
	repo.EXPECT().Search(mock.Anything, "art").Return(lessons, nil)

	result, err := svc.Search(context.Background(), "art")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestLessonService_Search_InvalidQuery(t *testing.T) {
	repo := mocks.NewMockLessonRepo(t)
	svc := NewLessonService(repo)

	repo.EXPECT().Search(mock.Anything, "").Return(nil, domain.ErrValidation)

	_, err := svc.Search(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
