package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListLessons(c *ginext.Context)
	UpdateLesson(c *ginext.Context)
	SearchLessons(c *ginext.Context)
	PlaceOrder(c *ginext.Context)
	ListOrders(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	// Lessons
	router.GET("/lessons", h.ListLessons)
	router.PUT("/lessons/:id", h.UpdateLesson)
	router.GET("/search", h.SearchLessons)

	// Orders
	router.POST("/orders", h.PlaceOrder)
	router.GET("/orders", h.ListOrders)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
