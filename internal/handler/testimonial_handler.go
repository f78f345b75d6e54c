package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"curavital-api/internal/model"
	"curavital-api/internal/service"
)

// ListTestimonials returns approved testimonials; ?all=true includes the
// pending ones for the review screen.
func (h *Handler) ListTestimonials(c *gin.Context) {
	var (
		out []model.Testimonial
		err error
	)
	if c.Query("all") == "true" {
		out, err = h.testimonials.ListAll(c.Request.Context())
	} else {
		out, err = h.testimonials.ListApproved(c.Request.Context())
	}
	if err != nil {
		respondErr(c, err)
		return
	}
	if out == nil {
		out = []model.Testimonial{}
	}
	c.JSON(http.StatusOK, out)
}

type createTestimonialRequest struct {
	PatientName       string `json:"patientName" binding:"required"`
	PatientAge        int    `json:"patientAge" binding:"required,gte=1,lte=120"`
	Condition         string `json:"condition" binding:"required"`
	TestimonialText   string `json:"testimonialText" binding:"required"`
	Rating            int    `json:"rating" binding:"required"`
	TreatmentDuration string `json:"treatmentDuration"`
	PatientImage      string `json:"patientImage"`
	CaseImage         string `json:"caseImage"`
	// ignored on create; approval happens out of band
	IsApproved bool `json:"isApproved"`
}

func (h *Handler) CreateTestimonial(c *gin.Context) {
	var req createTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.testimonials.Create(c.Request.Context(), &model.Testimonial{
		PatientName:       req.PatientName,
		PatientAge:        req.PatientAge,
		Condition:         req.Condition,
		TestimonialText:   req.TestimonialText,
		Rating:            req.Rating,
		TreatmentDuration: req.TreatmentDuration,
		PatientImage:      req.PatientImage,
		CaseImage:         req.CaseImage,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *Handler) ApproveTestimonial(c *gin.Context) {
	t, err := h.testimonials.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) UpdateTestimonial(c *gin.Context) {
	var p service.TestimonialPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.testimonials.Update(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) DeleteTestimonial(c *gin.Context) {
	if err := h.testimonials.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
