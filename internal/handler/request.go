package handler

import (
	"errors"
	"net/http"

	"bloodlink/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RequestHandler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Get(c *gin.Context)
	UpdateStatus(c *gin.Context)
	Delete(c *gin.Context)
}

type requestHandler struct {
	requestService service.RequestService
	log            *zap.Logger
}

func NewRequestHandler(requestService service.RequestService, log *zap.Logger) RequestHandler {
	return &requestHandler{requestService: requestService, log: log}
}

type CreateRequestRequest struct {
	PatientName        string `json:"patient_name" binding:"required"`
	RequiredBloodGroup string `json:"required_blood_group" binding:"required"`
	Hospital           string `json:"hospital" binding:"required"`
	Location           string `json:"location"`
	ContactNumber      string `json:"contact_number"`
	Urgency            string `json:"urgency"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *requestHandler) Create(c *gin.Context) {
	ident, ok := callerIdentity(c)
	if !ok {
		return
	}
	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "patient_name, required_blood_group and hospital are required"})
		return
	}

	request, err := h.requestService.Create(ident, service.RequestInput{
		PatientName:        req.PatientName,
		RequiredBloodGroup: req.RequiredBloodGroup,
		Hospital:           req.Hospital,
		Location:           req.Location,
		ContactNumber:      req.ContactNumber,
		Urgency:            req.Urgency,
	})
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		h.log.Error("Failed to create request", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusCreated, request)
}

func (h *requestHandler) List(c *gin.Context) {
	ident, ok := callerIdentity(c)
	if !ok {
		return
	}
	requests, err := h.requestService.List(ident)
	if err != nil {
		h.log.Error("Failed to list requests", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *requestHandler) Get(c *gin.Context) {
	ident, ok := callerIdentity(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	request, err := h.requestService.Get(ident, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		default:
			h.log.Error("Failed to get request", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}
	c.JSON(http.StatusOK, request)
}

func (h *requestHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	request, err := h.requestService.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		default:
			h.log.Error("Failed to update request status", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}
	c.JSON(http.StatusOK, request)
}

func (h *requestHandler) Delete(c *gin.Context) {
	ident, ok := callerIdentity(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.requestService.Delete(ident, id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		default:
			h.log.Error("Failed to delete request", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request deleted"})
}
