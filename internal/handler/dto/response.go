package dto

import (
	"time"

	"github.com/Zenin-Doffy/AfterSchoolBack/internal/domain"
)

type LessonResponse struct {
	ID       string  `json:"id"`
	Subject  string  `json:"subject"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
	Spaces   int     `json:"spaces"`
}

type OrderResponse struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Phone     string              `json:"phone"`
	Lessons   []OrderLineResponse `json:"lessons"`
	Status    string              `json:"status"`
	CreatedAt string              `json:"created_at"`
}

type OrderLineResponse struct {
	LessonID string `json:"lessonId"`
	Quantity int    `json:"quantity"`
}

type PlaceOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToLessonResponse(l *domain.Lesson) LessonResponse {
	return LessonResponse{
		ID:       l.ID,
		Subject:  l.Subject,
		Location: l.Location,
		Price:    l.Price,
		Spaces:   l.Spaces,
	}
}

func ToLessonResponses(lessons []*domain.Lesson) []LessonResponse {
	res := make([]LessonResponse, 0, len(lessons))
	for _, l := range lessons {
		res = append(res, ToLessonResponse(l))
	}
	return res
}

func ToOrderResponse(o *domain.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lessons))
	for _, l := range o.Lessons {
		lines = append(lines, OrderLineResponse{LessonID: l.LessonID, Quantity: l.Quantity})
	}
	return OrderResponse{
		ID:        o.ID,
		Name:      o.Name,
		Phone:     o.Phone,
		Lessons:   lines,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
	}
}
