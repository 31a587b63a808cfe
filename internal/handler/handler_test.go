package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Zenin-Doffy/AfterSchoolBack/internal/domain"
	"github.com/Zenin-Doffy/AfterSchoolBack/internal/handler/dto"
	hmocks "github.com/Zenin-Doffy/AfterSchoolBack/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupRouter(t *testing.T) (*hmocks.MockLessonSvc, *hmocks.MockOrderSvc, http.Handler) {
	t.Helper()
	lessonSvc := hmocks.NewMockLessonSvc(t)
	orderSvc := hmocks.NewMockOrderSvc(t)

	h := NewHandler(lessonSvc, orderSvc)

	r := ginext.New("test")
	r.GET("/lessons", h.ListLessons)
	r.PUT("/lessons/:id", h.UpdateLesson)
	r.GET("/search", h.SearchLessons)
	r.POST("/orders", h.PlaceOrder)
	r.GET("/orders", h.ListOrders)

	return lessonSvc, orderSvc, r
}

// --- Lessons ---

func TestHandler_ListLessons_Success(t *testing.T) {
	lessonSvc, _, r := setupRouter(t)

	lessons := []*domain.Lesson{
		{ID: "l1", Subject: "Math", Location: "Hendon", Price: 100, Spaces: 5},
		{ID: "l2", Subject: "Art", Location: "Colindale", Price: 80, Spaces: 3},
	}
	lessonSvc.EXPECT().List(mock.Anything, 0, 0).Return(lessons, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/lessons", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.LessonResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "Math", resp[0].Subject)
}

func TestHandler_ListLessons_Paging(t *testing.T) {
	lessonSvc, _, r := setupRouter(t)

	lessonSvc.EXPECT().List(mock.Anything, 2, 5).Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/lessons?page=2&limit=5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListLessons_BadPagingIgnored(t *testing.T) {
	lessonSvc, _, r := setupRouter(t)

	// нечисловые значения уходят нулями, сервис подставит умолчания
	lessonSvc.EXPECT().List(mock.Anything, 0, 0).Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/lessons?page=abc&limit=xyz", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListLessons_InternalError(t *testing.T) {
	lessonSvc, _, r := setupRouter(t)

	lessonSvc.EXPECT().List(mock.Anything, 0, 0).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/lessons", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_UpdateLesson_Success(t *testing.T) {
	lessonSvc, _, r := setupRouter(t)

	id := primitive.NewObjectID().Hex()
	updated := &domain.Lesson{ID: id, Subject: "Math", Location: "Hendon", Price: 100, Spaces: 3}

	lessonSvc.EXPECT().Update(mock.Anything, id, mock.Anything).Return(updated, nil)

	body := []byte(`{"spaces": 3}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/lessons/"+id, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.LessonResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Spaces)
}

func TestHandler_UpdateLesson_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"spaces": 3}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/lessons/not-an-id", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateLesson_ValidationError(t *testing.T) {
	lessonSvc, _, r := setupRouter(t)

	id := primitive.NewObjectID().Hex()
	lessonSvc.EXPECT().Update(mock.Anything, id, mock.Anything).
		Return(nil, fmt.Errorf("%w: spaces cannot be negative", domain.ErrValidation))

	body := []byte(`{"spaces": -1}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/lessons/"+id, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateLesson_NotFound(t *testing.T) {
	lessonSvc, _, r := setupRouter(t)

	id := primitive.NewObjectID().Hex()
	lessonSvc.EXPECT().Update(mock.Anything, id, mock.Anything).Return(nil, domain.ErrLessonNotFound)

	body := []byte(`{"spaces": 3}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/lessons/"+id, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_SearchLessons_Success(t *testing.T) {
	lessonSvc, _, r := setupRouter(t)

	lessons := []*domain.Lesson{{ID: "l1", Subject: "Art", Location: "Hendon"}}
	lessonSvc.EXPECT().Search(mock.Anything, "art").Return(lessons, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/search?q=art", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.LessonResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_SearchLessons_MissingQuery(t *testing.T) {
	lessonSvc, _, r := setupRouter(t)

	lessonSvc.EXPECT().Search(mock.Anything, "").
		Return(nil, fmt.Errorf("%w: search query is required", domain.ErrValidation))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Orders ---

func TestHandler_PlaceOrder_Success(t *testing.T) {
	_, orderSvc, r := setupRouter(t)

	orderSvc.EXPECT().Place(mock.Anything, mock.Anything).Return("o1", nil)

	body, _ := json.Marshal(dto.PlaceOrderRequest{
		Name:  "John Smith",
		Phone: "02079460958",
		Lessons: []dto.OrderLineRequest{
			{LessonID: "l1", Quantity: 2},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.PlaceOrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "o1", resp.OrderID)
	assert.NotEmpty(t, resp.Message)
}

func TestHandler_PlaceOrder_BadJSON(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader([]byte(`{not json`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PlaceOrder_InvalidName(t *testing.T) {
	_, orderSvc, r := setupRouter(t)

	orderSvc.EXPECT().Place(mock.Anything, mock.Anything).Return("", domain.ErrInvalidName)

	body, _ := json.Marshal(dto.PlaceOrderRequest{Name: "J", Phone: "02079460958"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PlaceOrder_LessonNotFound(t *testing.T) {
	_, orderSvc, r := setupRouter(t)

	// отсутствующее занятие в заказе — 400, а не 404
	orderSvc.EXPECT().Place(mock.Anything, mock.Anything).
		Return("", fmt.Errorf("%w: missing", domain.ErrLessonNotFound))

	body, _ := json.Marshal(dto.PlaceOrderRequest{
		Name:  "John Smith",
		Phone: "02079460958",
		Lessons: []dto.OrderLineRequest{
			{LessonID: "missing", Quantity: 1},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PlaceOrder_InsufficientSpaces(t *testing.T) {
	_, orderSvc, r := setupRouter(t)

	orderSvc.EXPECT().Place(mock.Anything, mock.Anything).
		Return("", fmt.Errorf("%w: lesson l1", domain.ErrInsufficientSpaces))

	body, _ := json.Marshal(dto.PlaceOrderRequest{
		Name:  "John Smith",
		Phone: "02079460958",
		Lessons: []dto.OrderLineRequest{
			{LessonID: "l1", Quantity: 10},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PlaceOrder_InternalError(t *testing.T) {
	_, orderSvc, r := setupRouter(t)

	orderSvc.EXPECT().Place(mock.Anything, mock.Anything).Return("", assert.AnError)

	body, _ := json.Marshal(dto.PlaceOrderRequest{
		Name:  "John Smith",
		Phone: "02079460958",
		Lessons: []dto.OrderLineRequest{
			{LessonID: "l1", Quantity: 1},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_ListOrders_Success(t *testing.T) {
	_, orderSvc, r := setupRouter(t)

	orders := []*domain.Order{
		{
			ID:        "o1",
			Name:      "John Smith",
			Phone:     "02079460958",
			Lessons:   []domain.OrderLine{{LessonID: "l1", Quantity: 2}},
			Status:    domain.OrderStatusConfirmed,
			CreatedAt: time.Now().UTC(),
		},
	}
	orderSvc.EXPECT().List(mock.Anything, 0, 0).Return(orders, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "confirmed", resp[0].Status)
	assert.Len(t, resp[0].Lessons, 1)
}

func TestHandler_ListOrders_InternalError(t *testing.T) {
	_, orderSvc, r := setupRouter(t)

	orderSvc.EXPECT().List(mock.Anything, 0, 0).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
