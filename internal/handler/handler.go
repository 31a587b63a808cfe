package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/Zenin-Doffy/AfterSchoolBack/internal/domain"
	"github.com/Zenin-Doffy/AfterSchoolBack/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LessonSvc interface {
	List(ctx context.Context, page, limit int) ([]*domain.Lesson, error)
	Search(ctx context.Context, query string) ([]*domain.Lesson, error)
	Update(ctx context.Context, id string, in domain.UpdateLessonInput) (*domain.Lesson, error)
}

type OrderSvc interface {
	Place(ctx context.Context, in domain.PlaceOrderInput) (string, error)
	List(ctx context.Context, page, limit int) ([]*domain.Order, error)
}

type Handler struct {
	lessonService LessonSvc
	orderService  OrderSvc
}

func NewHandler(lessonService LessonSvc, orderService OrderSvc) *Handler {
	return &Handler{
		lessonService: lessonService,
		orderService:  orderService,
	}
}

// Lessons

func (h *Handler) ListLessons(c *ginext.Context) {
	page, limit := paging(c)

	lessons, err := h.lessonService.List(c.Request.Context(), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLessonResponses(lessons))
}

func (h *Handler) UpdateLesson(c *ginext.Context) {
	id := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid lesson id"})
		return
	}

	var req dto.UpdateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateLessonInput{
		Subject:  req.Subject,
		Location: req.Location,
		Price:    req.Price,
		Spaces:   req.Spaces,
	}

	lesson, err := h.lessonService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLessonResponse(lesson))
}

func (h *Handler) SearchLessons(c *ginext.Context) {
	lessons, err := h.lessonService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLessonResponses(lessons))
}

// Orders

func (h *Handler) PlaceOrder(c *ginext.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	lines := make([]domain.OrderLine, 0, len(req.Lessons))
	for _, l := range req.Lessons {
		lines = append(lines, domain.OrderLine{LessonID: l.LessonID, Quantity: l.Quantity})
	}

	orderID, err := h.orderService.Place(c.Request.Context(), domain.PlaceOrderInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Lessons: lines,
	})
	if err != nil {
		// Для заказа отсутствующее занятие — ошибка запроса, а не 404:
		// ресурсом здесь является /orders.
		if errors.Is(err, domain.ErrLessonNotFound) {
			c.Set("error", err.Error())
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.PlaceOrderResponse{
		Message: "order placed",
		OrderID: orderID,
	})
}

func (h *Handler) ListOrders(c *ginext.Context) {
	page, limit := paging(c)

	orders, err := h.orderService.List(c.Request.Context(), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, dto.ToOrderResponse(o))
	}

	c.JSON(http.StatusOK, resp)
}

// paging разбирает page/limit; нечисловые значения отдаются сервису
// нулями и заменяются там значениями по умолчанию.
func paging(c *ginext.Context) (int, int) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return page, limit
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrLessonNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrInvalidPhone),
		errors.Is(err, domain.ErrNoLessonsSelected),
		errors.Is(err, domain.ErrInsufficientSpaces),
		errors.Is(err, domain.ErrInvalidLessonID):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
