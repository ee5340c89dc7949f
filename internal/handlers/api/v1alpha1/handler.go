// Package v1alpha1 handles the HTTP JSON service interface
package v1alpha1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rollmath/odds-api/internal/engine"
	"github.com/rollmath/odds-api/internal/errors"
	"github.com/rollmath/odds-api/internal/orchestrators/distribution"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	DistributionService distribution.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.DistributionService == nil {
		return errors.InvalidArgument("distribution service is required")
	}
	return nil
}

// Handler implements the dice probability HTTP service
type Handler struct {
	distributionService distribution.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		distributionService: cfg.DistributionService,
	}, nil
}

// RegisterRoutes attaches the v1alpha1 routes to the router
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	v1 := router.Group("/v1alpha1")
	v1.POST("/distributions", h.GetDistribution)
	v1.POST("/distributions/goal", h.EvaluateGoal)
}

// GoalRequest is the optional goal query carried by a distribution request
type GoalRequest struct {
	Threshold int    `json:"threshold"`
	Operator  string `json:"operator"`
}

// DistributionRequest is the body for POST /v1alpha1/distributions
type DistributionRequest struct {
	DiceCount int          `json:"dice_count"`
	Sides     int          `json:"sides"`
	Modifier  int          `json:"modifier"`
	Mode      string       `json:"mode,omitempty"`
	Goal      *GoalRequest `json:"goal,omitempty"`

	// FullTable includes outcomes below the display floor
	FullTable bool `json:"full_table,omitempty"`
}

// DistributionResponse is the body returned for a distribution request
type DistributionResponse struct {
	Rows      []engine.Row       `json:"rows"`
	Goal      *engine.GoalAnswer `json:"goal,omitempty"`
	FromCache bool               `json:"from_cache"`
}

// GoalRequestBody is the body for POST /v1alpha1/distributions/goal
type GoalRequestBody struct {
	DiceCount int    `json:"dice_count"`
	Sides     int    `json:"sides"`
	Modifier  int    `json:"modifier"`
	Mode      string `json:"mode,omitempty"`
	Threshold int    `json:"threshold"`
	Operator  string `json:"operator"`
}

// GoalResponse is the body returned for a goal request
type GoalResponse struct {
	Answer    *engine.GoalAnswer `json:"answer"`
	FromCache bool               `json:"from_cache"`
}

// GetDistribution computes the exact distribution for a dice pool
func (h *Handler) GetDistribution(c *gin.Context) {
	var req DistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.InvalidArgumentf("invalid request body: %v", err))
		return
	}

	input := &distribution.GetDistributionInput{
		DiceCount: req.DiceCount,
		Sides:     req.Sides,
		Modifier:  req.Modifier,
		Mode:      engine.RollMode(req.Mode),
	}
	if req.Goal != nil {
		input.Goal = &distribution.GoalQuery{
			Threshold: req.Goal.Threshold,
			Operator:  engine.GoalOperator(req.Goal.Operator),
		}
	}

	output, err := h.distributionService.GetDistribution(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}

	rows := output.Rows
	if !req.FullTable {
		rows = engine.VisibleRows(rows)
	}

	c.JSON(http.StatusOK, DistributionResponse{
		Rows:      rows,
		Goal:      output.Goal,
		FromCache: output.FromCache,
	})
}

// EvaluateGoal answers a goal query without returning the full table
func (h *Handler) EvaluateGoal(c *gin.Context) {
	var req GoalRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.InvalidArgumentf("invalid request body: %v", err))
		return
	}

	output, err := h.distributionService.EvaluateGoal(c.Request.Context(), &distribution.EvaluateGoalInput{
		DiceCount: req.DiceCount,
		Sides:     req.Sides,
		Modifier:  req.Modifier,
		Mode:      engine.RollMode(req.Mode),
		Threshold: req.Threshold,
		Operator:  engine.GoalOperator(req.Operator),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, GoalResponse{
		Answer:    output.Answer,
		FromCache: output.FromCache,
	})
}

func writeError(c *gin.Context, err error) {
	status, body := errors.ToHTTP(err)
	c.AbortWithStatusJSON(status, body)
}
