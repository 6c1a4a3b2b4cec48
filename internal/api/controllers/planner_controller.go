package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/request_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlannerController(plannerService services.PlannerServiceInterface) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
	}
}

func (p *PlannerController) CreatePlanHandler(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := p.plannerService.GeneratePlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Travel plan created successfully")
}

// DiagnosticsHandler runs the API self-test. Failures come back as ready=false
// with HTTP 200, so the UI can show a status line instead of an error page.
func (p *PlannerController) DiagnosticsHandler(c *gin.Context) {
	ready := p.plannerService.SelfTest(c.Request.Context())
	utils.RespondSuccess(c, response_models.DiagnosticsResponse{
		Ready:    ready,
		Provider: p.plannerService.Provider(),
	}, "Diagnostics completed")
}
