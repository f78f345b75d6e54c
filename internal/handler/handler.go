package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"curavital-api/internal/service"
	"curavital-api/internal/store"
)

// Pinger is what the health endpoint needs from the store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	appointments *service.AppointmentService
	articles     *service.ArticleService
	testimonials *service.TestimonialService
	db           Pinger
}

func New(appts *service.AppointmentService, arts *service.ArticleService,
	tests *service.TestimonialService, db Pinger) *Handler {
	return &Handler{
		appointments: appts,
		articles:     arts,
		testimonials: tests,
		db:           db,
	}
}

// Register wires all routes under /api. limit is the intake rate-limit
// middleware; it guards the anonymous write paths and the chat.
func (h *Handler) Register(r *gin.Engine, limit gin.HandlerFunc) {
	api := r.Group("/api")

	api.GET("/health", h.Health)
	api.POST("/chat", limit, h.Chat)

	a := api.Group("/appointments")
	a.POST("", limit, h.CreateAppointment)
	a.GET("", h.ListAppointments)
	a.GET("/slots", h.AvailableSlots)
	a.GET("/:id", h.GetAppointment)
	a.PATCH("/:id", h.UpdateAppointment)
	a.DELETE("/:id", h.DeleteAppointment)

	ar := api.Group("/articles")
	ar.GET("", h.ListArticles)
	ar.GET("/featured", h.FeaturedArticles)
	ar.GET("/:id", h.GetArticle)
	ar.POST("", h.CreateArticle)
	ar.PATCH("/:id", h.UpdateArticle)
	ar.DELETE("/:id", h.DeleteArticle)

	ts := api.Group("/testimonials")
	ts.GET("", h.ListTestimonials)
	ts.POST("", limit, h.CreateTestimonial)
	ts.POST("/:id/approve", h.ApproveTestimonial)
	ts.PATCH("/:id", h.UpdateTestimonial)
	ts.DELETE("/:id", h.DeleteTestimonial)
}

// respondErr maps a service error to an HTTP status and surfaces its
// user-facing message.
func respondErr(c *gin.Context, err error) {
	msg := "Ocurrió un error inesperado."
	var se *service.Error
	if errors.As(err, &se) {
		msg = se.Message
	}

	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, store.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, service.ErrInvalid):
		code = http.StatusBadRequest
	}
	c.JSON(code, gin.H{"error": msg})
}
