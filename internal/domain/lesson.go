package domain

type Lesson struct {
	ID       string  `json:"id"`
	Subject  string  `json:"subject"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
	Spaces   int     `json:"spaces"`
}

// UpdateLessonInput carries the fields an admin update may overwrite.
// Nil means "leave as is". The identifier itself is never overwritable.
type UpdateLessonInput struct {
	Subject  *string
	Location *string
	Price    *float64
	Spaces   *int
}

func (in UpdateLessonInput) Empty() bool {
	return in.Subject == nil && in.Location == nil && in.Price == nil && in.Spaces == nil
}
