// api/controller/validation_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	planweave_errors "github.com/planweave/api/errors"
	"github.com/planweave/api/model"
	"github.com/planweave/api/service"
	"github.com/planweave/api/util"
)

type ValidationController struct {
	validationService service.IValidationService
}

func NewValidationController(validationService service.IValidationService) *ValidationController {
	return &ValidationController{
		validationService: validationService,
	}
}

// RegisterRoutes registers the API routes
func (vc *ValidationController) RegisterRoutes(r *gin.RouterGroup) {
	validations := r.Group("/validations")
	{
		validations.POST("/allocations", vc.ValidateAllocation)
		validations.POST("/availability", vc.CheckAvailability)
		validations.POST("/skills", vc.CheckSkillMatch)
		validations.POST("/capacity", vc.CheckCapacity)
		validations.POST("/workload", vc.CheckWorkload)
		validations.GET("/reports/:id", vc.GetValidationReport)
	}
}

// ValidateAllocation endpoint runs the full pipeline for a candidate
// allocation.
func (vc *ValidationController) ValidateAllocation(c *gin.Context) {
	var request model.AllocationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid allocation request", planweave_errors.ErrInvalidAllocationData)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", planweave_errors.ErrUnauthorized)
		return
	}

	results, err := vc.validationService.ValidateAllocation(c, request, userID)
	if err != nil {
		switch {
		case errors.Is(err, planweave_errors.ErrInvalidAllocationData):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid allocation request", err)
		case errors.Is(err, planweave_errors.ErrDatabaseOperation):
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to validate allocation", planweave_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

type availabilityRequest struct {
	ResourceID string `json:"resource_id" binding:"required"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

// CheckAvailability endpoint
func (vc *ValidationController) CheckAvailability(c *gin.Context) {
	var request availabilityRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid availability request", err)
		return
	}

	result, err := vc.validationService.CheckAvailability(c, request.ResourceID,
		model.DateRange{StartDate: request.StartDate, EndDate: request.EndDate})
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to check availability", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

type skillMatchRequest struct {
	ResourceID     string   `json:"resource_id" binding:"required"`
	RequiredSkills []string `json:"required_skills"`
	Complexity     string   `json:"complexity"`
}

// CheckSkillMatch endpoint
func (vc *ValidationController) CheckSkillMatch(c *gin.Context) {
	var request skillMatchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid skill match request", err)
		return
	}

	result, err := vc.validationService.CheckSkillMatch(c, request.ResourceID, request.RequiredSkills, request.Complexity)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to check skill match", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

type capacityRequest struct {
	ResourceID          string  `json:"resource_id" binding:"required"`
	RequestedPercentage float64 `json:"requested_percentage"`
}

// CheckCapacity endpoint
func (vc *ValidationController) CheckCapacity(c *gin.Context) {
	var request capacityRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid capacity request", err)
		return
	}

	result, err := vc.validationService.CheckCapacity(c, request.ResourceID, request.RequestedPercentage)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to check capacity", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CheckWorkload endpoint
func (vc *ValidationController) CheckWorkload(c *gin.Context) {
	var request model.AllocationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid workload request", err)
		return
	}

	result, err := vc.validationService.CheckWorkload(c, request)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to check workload", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetValidationReport endpoint re-fetches a cached validation report.
func (vc *ValidationController) GetValidationReport(c *gin.Context) {
	reportID := c.Param("id")

	results, err := vc.validationService.GetValidationReport(c, reportID)
	if err != nil {
		if errors.Is(err, planweave_errors.ErrReportNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Validation report not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch validation report", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}
