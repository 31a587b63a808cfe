package domain

import "time"

type OrderStatus string

// Orders are immutable once created, so "confirmed" is the only status
// an order ever carries.
const OrderStatusConfirmed OrderStatus = "confirmed"

type Order struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Phone     string      `json:"phone"`
	Lessons   []OrderLine `json:"lessons"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderLine references a lesson by id; it does not own the lesson.
// The lesson's spaces are decremented as a side effect of order creation,
// never recomputed from orders.
type OrderLine struct {
	LessonID string `json:"lessonId"`
	Quantity int    `json:"quantity"`
}

type PlaceOrderInput struct {
	Name    string
	Phone   string
	Lessons []OrderLine
}
