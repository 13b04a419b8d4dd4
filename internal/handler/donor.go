package handler

import (
	"errors"
	"net/http"

	"bloodlink/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DonorHandler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type donorHandler struct {
	donorService service.DonorService
	log          *zap.Logger
}

func NewDonorHandler(donorService service.DonorService, log *zap.Logger) DonorHandler {
	return &donorHandler{donorService: donorService, log: log}
}

type DonorRequest struct {
	Name       string `json:"name" binding:"required"`
	BloodGroup string `json:"bloodgroup" binding:"required"`
	Location   string `json:"location"`
	Phone      string `json:"phone"`
}

func (h *donorHandler) Create(c *gin.Context) {
	ident, ok := callerIdentity(c)
	if !ok {
		return
	}
	var req DonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and bloodgroup are required"})
		return
	}

	donor, err := h.donorService.Create(ident, service.DonorInput{
		Name:       req.Name,
		BloodGroup: req.BloodGroup,
		Location:   req.Location,
		Phone:      req.Phone,
	})
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		h.log.Error("Failed to create donor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusCreated, donor)
}

func (h *donorHandler) List(c *gin.Context) {
	donors, err := h.donorService.List()
	if err != nil {
		h.log.Error("Failed to list donors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, donors)
}

func (h *donorHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	donor, err := h.donorService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Donor not found"})
			return
		}
		h.log.Error("Failed to get donor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, donor)
}

func (h *donorHandler) Update(c *gin.Context) {
	ident, ok := callerIdentity(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req DonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and bloodgroup are required"})
		return
	}

	donor, err := h.donorService.Update(ident, id, service.DonorInput{
		Name:       req.Name,
		BloodGroup: req.BloodGroup,
		Location:   req.Location,
		Phone:      req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Donor not found"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		default:
			h.log.Error("Failed to update donor", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}
	c.JSON(http.StatusOK, donor)
}

func (h *donorHandler) Delete(c *gin.Context) {
	ident, ok := callerIdentity(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.donorService.Delete(ident, id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Donor not found"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		default:
			h.log.Error("Failed to delete donor", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Donor deleted successfully"})
}
