package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"curavital-api/internal/model"
	"curavital-api/internal/service"
	"curavital-api/internal/store"
)

type createAppointmentRequest struct {
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	Age           int    `json:"age" binding:"required,gte=1,lte=120"`
	Condition     string `json:"condition" binding:"required"`
	Urgency       string `json:"urgency" binding:"required"`
	PreferredDate string `json:"preferredDate" binding:"required"`
	PreferredTime string `json:"preferredTime" binding:"required"`
	Notes         string `json:"notes"`
	// a status field in the payload is ignored; creation always starts
	// at pending
	Status string `json:"status"`
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := h.appointments.Create(c.Request.Context(), &model.Appointment{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Age:           req.Age,
		Condition:     req.Condition,
		Urgency:       req.Urgency,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Notes:         req.Notes,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *Handler) ListAppointments(c *gin.Context) {
	f := store.AppointmentFilter{
		Date:   c.Query("date"),
		Status: c.Query("status"),
	}
	if f.Status != "" && !model.ValidStatus(f.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "estado desconocido"})
		return
	}

	out, err := h.appointments.List(c.Request.Context(), f)
	if err != nil {
		respondErr(c, err)
		return
	}
	if out == nil {
		out = []model.Appointment{}
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetAppointment(c *gin.Context) {
	a, err := h.appointments.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	var p service.AppointmentPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := h.appointments.Update(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	if err := h.appointments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// AvailableSlots lists the bookable times for a date. Always 200: a
// store failure shows up as an empty list, not an error.
func (h *Handler) AvailableSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "falta el parámetro date"})
		return
	}
	slots := h.appointments.AvailableSlots(c.Request.Context(), date)
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}
