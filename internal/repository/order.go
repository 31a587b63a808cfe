package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Zenin-Doffy/AfterSchoolBack/internal/domain"
	"github.com/wb-go/wbf/retry"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ordersCollection = "orders"

type OrderRepository struct {
	col      *mongo.Collection
	strategy retry.Strategy
}

func NewOrderRepo(db *mongo.Database, strategy retry.Strategy) *OrderRepository {
	return &OrderRepository{
		col:      db.Collection(ordersCollection),
		strategy: strategy,
	}
}

type orderDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Phone     string             `bson:"phone"`
	Lessons   []orderLineDoc     `bson:"lessons"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
}

type orderLineDoc struct {
	LessonID string `bson:"lesson_id"`
	Quantity int    `bson:"quantity"`
}

func (d orderDoc) toDomain() *domain.Order {
	lines := make([]domain.OrderLine, 0, len(d.Lessons))
	for _, l := range d.Lessons {
		lines = append(lines, domain.OrderLine{LessonID: l.LessonID, Quantity: l.Quantity})
	}
	return &domain.Order{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Phone:     d.Phone,
		Lessons:   lines,
		Status:    domain.OrderStatus(d.Status),
		CreatedAt: d.CreatedAt,
	}
}

// Insert сохраняет заказ и возвращает сгенерированный идентификатор.
// Никакой валидации здесь нет, это зона ответственности сервиса.
func (r *OrderRepository) Insert(ctx context.Context, o *domain.Order) (string, error) {
	lines := make([]orderLineDoc, 0, len(o.Lessons))
	for _, l := range o.Lessons {
		lines = append(lines, orderLineDoc{LessonID: l.LessonID, Quantity: l.Quantity})
	}
	doc := orderDoc{
		Name:      o.Name,
		Phone:     o.Phone,
		Lessons:   lines,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
	}

	var id string
	err := retry.Do(func() error {
		res, err := r.col.InsertOne(ctx, doc)
		if err != nil {
			return err
		}
		oid, ok := res.InsertedID.(primitive.ObjectID)
		if !ok {
			return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
		}
		id = oid.Hex()
		return nil
	}, r.strategy)
	if err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}

	return id, nil
}

func (r *OrderRepository) List(ctx context.Context, page, limit int) ([]*domain.Order, error) {
	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	var docs []orderDoc
	err := retry.Do(func() error {
		docs = docs[:0]
		cur, err := r.col.Find(ctx, bson.M{}, opts)
		if err != nil {
			return err
		}
		return cur.All(ctx, &docs)
	}, r.strategy)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	res := make([]*domain.Order, 0, len(docs))
	for _, d := range docs {
		res = append(res, d.toDomain())
	}
	return res, nil
}
