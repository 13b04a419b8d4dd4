package handler

import (
	"errors"
	"net/http"

	"bloodlink/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AppointmentHandler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	UpdateStatus(c *gin.Context)
	Delete(c *gin.Context)
}

type appointmentHandler struct {
	appointmentService service.AppointmentService
	log                *zap.Logger
}

func NewAppointmentHandler(appointmentService service.AppointmentService, log *zap.Logger) AppointmentHandler {
	return &appointmentHandler{appointmentService: appointmentService, log: log}
}

type CreateAppointmentRequest struct {
	DonorName    string `json:"donor_name"`
	DonorContact string `json:"donor_contact"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	Location     string `json:"location"`
	Notes        string `json:"notes"`
}

// UpdateAppointmentRequest is fully optional; absent fields keep their
// stored values. Status is only honoured for admin callers.
type UpdateAppointmentRequest struct {
	DonorName    string `json:"donor_name"`
	DonorContact string `json:"donor_contact"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Location     string `json:"location"`
	Notes        string `json:"notes"`
	Status       string `json:"status"`
}

func (h *appointmentHandler) Create(c *gin.Context) {
	ident, ok := callerIdentity(c)
	if !ok {
		return
	}
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date and time required"})
		return
	}

	appt, err := h.appointmentService.Create(ident, service.AppointmentInput{
		DonorName:    req.DonorName,
		DonorContact: req.DonorContact,
		Date:         req.Date,
		Time:         req.Time,
		Location:     req.Location,
		Notes:        req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		default:
			h.log.Error("Failed to create appointment", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, appt)
}

func (h *appointmentHandler) List(c *gin.Context) {
	ident, ok := callerIdentity(c)
	if !ok {
		return
	}
	appts, err := h.appointmentService.List(ident)
	if err != nil {
		h.log.Error("Failed to list appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, appts)
}

func (h *appointmentHandler) Get(c *gin.Context) {
	ident, ok := callerIdentity(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	appt, err := h.appointmentService.Get(ident, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		default:
			h.log.Error("Failed to get appointment", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *appointmentHandler) Update(c *gin.Context) {
	ident, ok := callerIdentity(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return
	}

	appt, err := h.appointmentService.Update(ident, id, service.AppointmentInput{
		DonorName:    req.DonorName,
		DonorContact: req.DonorContact,
		Date:         req.Date,
		Time:         req.Time,
		Location:     req.Location,
		Notes:        req.Notes,
		Status:       req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		case errors.Is(err, service.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		default:
			h.log.Error("Failed to update appointment", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *appointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	appt, err := h.appointmentService.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		default:
			h.log.Error("Failed to update appointment status", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *appointmentHandler) Delete(c *gin.Context) {
	ident, ok := callerIdentity(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.appointmentService.Delete(ident, id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		default:
			h.log.Error("Failed to delete appointment", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
