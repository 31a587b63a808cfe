package ports

import (
	"context"

	"github.com/Zenin-Doffy/AfterSchoolBack/internal/domain"
)

type OrderRepo interface {
	Insert(ctx context.Context, o *domain.Order) (string, error)
	List(ctx context.Context, page, limit int) ([]*domain.Order, error)
}
