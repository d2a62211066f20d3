package rest

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"distql/scheduler/internal/plan"
	"distql/scheduler/internal/scheduler"
)

// healthCheck handles GET /health.
func (s *Server) healthCheck(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// submitAttempt handles POST /api/v1/attempts.
func (s *Server) submitAttempt(c *fiber.Ctx) error {
	var req SubmitAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "failed to parse request body: " + err.Error(),
		})
	}
	if req.Plan == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "plan is required",
		})
	}

	file, graph, err := plan.NewParser().Parse([]byte(req.Plan))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_plan",
			Message: err.Error(),
		})
	}

	opts := scheduler.SubmitOptions{
		Strategy:     req.Strategy,
		PrimaryTxnID: req.PrimaryTxnID,
	}
	if req.MaxExecutionTime != "" {
		d, err := time.ParseDuration(req.MaxExecutionTime)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_request",
				Message: "invalid max_execution_time: " + err.Error(),
			})
		}
		opts.MaxExecutionTime = d
	}

	attemptID, err := s.coordinator.SubmitPlan(context.Background(), file.QueryID, graph, opts)
	if err != nil {
		status := fiber.StatusInternalServerError
		if strings.Contains(err.Error(), "max concurrent") {
			status = fiber.StatusTooManyRequests
		}
		return c.Status(status).JSON(ErrorResponse{
			Error:   "submit_failed",
			Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusAccepted).JSON(SubmitAttemptResponse{
		AttemptID: attemptID,
		QueryID:   file.QueryID,
	})
}

// listAttempts handles GET /api/v1/attempts.
func (s *Server) listAttempts(c *fiber.Ctx) error {
	attempts := s.coordinator.ListAttempts()
	return c.JSON(AttemptListResponse{
		Attempts: attempts,
		Count:    len(attempts),
	})
}

// getAttempt handles GET /api/v1/attempts/:id.
func (s *Server) getAttempt(c *fiber.Ctx) error {
	status, err := s.coordinator.GetAttempt(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	}
	return c.JSON(status)
}

// getAttemptMetrics handles GET /api/v1/attempts/:id/metrics.
func (s *Server) getAttemptMetrics(c *fiber.Ctx) error {
	status, err := s.coordinator.GetAttempt(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	}
	return c.JSON(MetricsResponse{
		AttemptID: status.AttemptID,
		Metrics:   status.Metrics,
	})
}

// cancelAttempt handles POST /api/v1/attempts/:id/cancel.
func (s *Server) cancelAttempt(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := s.coordinator.CancelAttempt(id); err != nil {
		status := fiber.StatusNotFound
		if strings.Contains(err.Error(), "already finished") {
			status = fiber.StatusConflict
		}
		return c.Status(status).JSON(ErrorResponse{
			Error:   "cancel_failed",
			Message: err.Error(),
		})
	}
	return c.JSON(fiber.Map{"attempt_id": id, "cancelled": true})
}

// listWorkers handles GET /api/v1/workers.
func (s *Server) listWorkers(c *fiber.Ctx) error {
	workers := s.coordinator.Workers()
	return c.JSON(WorkerListResponse{
		Workers: workers,
		Count:   len(workers),
	})
}
