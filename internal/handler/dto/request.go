package dto

type UpdateLessonRequest struct {
	Subject  *string  `json:"subject"`
	Location *string  `json:"location"`
	Price    *float64 `json:"price"`
	Spaces   *int     `json:"spaces"`
}

// PlaceOrderRequest намеренно без binding-тегов: правила валидации
// заказа принадлежат сервису, который отвечает конкретной причиной
// отказа, а не общим сообщением биндинга.
type PlaceOrderRequest struct {
	Name    string             `json:"name"`
	Phone   string             `json:"phone"`
	Lessons []OrderLineRequest `json:"lessons"`
}

type OrderLineRequest struct {
	LessonID string `json:"lessonId"`
	Quantity int    `json:"quantity"`
}
