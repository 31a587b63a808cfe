package ports

import (
	"context"

	"github.com/Zenin-Doffy/AfterSchoolBack/internal/domain"
)

type OrderNotifier interface {
	NotifyOrderPlaced(ctx context.Context, order *domain.Order)
}
