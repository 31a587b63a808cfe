package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Zenin-Doffy/AfterSchoolBack/internal/domain"
	"github.com/Zenin-Doffy/AfterSchoolBack/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

var (
	nameRe     = regexp.MustCompile(`^[A-Za-z\s'-]{2,}$`)
	nonDigitRe = regexp.MustCompile(`\D`)
)

const minPhoneDigits = 8

type OrderService struct {
	orderRepo  ports.OrderRepo
	lessonRepo ports.LessonRepo
	notifier   ports.OrderNotifier
	logger     logger.Logger
}

func NewOrderService(
	orderRepo ports.OrderRepo,
	lessonRepo ports.LessonRepo,
	notifier ports.OrderNotifier,
	logger logger.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:  orderRepo,
		lessonRepo: lessonRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

// Place проводит заказ: валидация, условное списание мест по каждой
// позиции, запись заказа. Списание идет одним атомарным условным
// обновлением на позицию, поэтому два конкурентных заказа не могут
// увести spaces в минус. Если какая-то позиция не прошла, уже
// списанные места возвращаются и заказ не создается.
func (s *OrderService) Place(ctx context.Context, in domain.PlaceOrderInput) (string, error) {
	name := strings.TrimSpace(in.Name)
	if !nameRe.MatchString(name) {
		return "", fmt.Errorf("%w: letters, spaces, hyphens and apostrophes only, at least 2 characters", domain.ErrInvalidName)
	}

	phone := nonDigitRe.ReplaceAllString(in.Phone, "")
	if len(phone) < minPhoneDigits {
		return "", fmt.Errorf("%w: at least %d digits required", domain.ErrInvalidPhone, minPhoneDigits)
	}

	if len(in.Lessons) == 0 {
		return "", domain.ErrNoLessonsSelected
	}
	for _, line := range in.Lessons {
		if line.Quantity < 1 {
			return "", fmt.Errorf("%w: quantity must be at least 1 (lesson %s)", domain.ErrValidation, line.LessonID)
		}
	}

	ids := make([]string, 0, len(in.Lessons))
	for _, line := range in.Lessons {
		ids = append(ids, line.LessonID)
	}

	lessons, err := s.lessonRepo.FindByIDs(ctx, ids)
	if err != nil {
		return "", fmt.Errorf("find lessons: %w", err)
	}
	if len(lessons) != len(ids) {
		return "", fmt.Errorf("%w: %s", domain.ErrLessonNotFound, firstMissingID(ids, lessons))
	}

	var applied []domain.OrderLine
	for _, line := range in.Lessons {
		if err := s.lessonRepo.DecrementSpaces(ctx, line.LessonID, line.Quantity); err != nil {
			s.compensate(ctx, applied)
			return "", err
		}
		applied = append(applied, line)
	}

	order := &domain.Order{
		Name:      name,
		Phone:     phone,
		Lessons:   in.Lessons,
		Status:    domain.OrderStatusConfirmed,
		CreatedAt: time.Now().UTC(),
	}

	orderID, err := s.orderRepo.Insert(ctx, order)
	if err != nil {
		s.compensate(ctx, applied)
		return "", fmt.Errorf("insert order: %w", err)
	}
	order.ID = orderID

	s.logger.Info("order placed",
		logger.String("order_id", orderID),
		logger.Int("lessons", len(order.Lessons)),
	)

	go s.notifier.NotifyOrderPlaced(context.WithoutCancel(ctx), order)

	return orderID, nil
}

func (s *OrderService) List(ctx context.Context, page, limit int) ([]*domain.Order, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	return s.orderRepo.List(ctx, page, limit)
}

// compensate возвращает уже списанные места, когда заказ не прошел
// целиком. Неудача компенсации только логируется: повторять нечем,
// а заказ в любом случае не создан.
func (s *OrderService) compensate(ctx context.Context, applied []domain.OrderLine) {
	for _, line := range applied {
		if err := s.lessonRepo.IncrementSpaces(ctx, line.LessonID, line.Quantity); err != nil {
			s.logger.Error("failed to restore spaces",
				logger.String("lesson_id", line.LessonID),
				logger.Int("quantity", line.Quantity),
				logger.String("error", err.Error()),
			)
		}
	}
}

func firstMissingID(requested []string, found []*domain.Lesson) string {
	known := make(map[string]struct{}, len(found))
	for _, l := range found {
		known[l.ID] = struct{}{}
	}
	for _, id := range requested {
		if _, ok := known[id]; !ok {
			return id
		}
	}
	return requested[0]
}
