package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"wayfarer/internal/models/request_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/pkg/utils"
)

const (
	maxTripDays       = 30
	planMaxTokens     = 2200
	selfTestMaxTokens = 10
	completionTimeout = 60 * time.Second
)

type PlannerServiceInterface interface {
	GeneratePlan(ctx context.Context, req request_models.TripRequest) (response_models.ItineraryResponse, error)
	SelfTest(ctx context.Context) bool
	Provider() string
}

type PlannerService struct {
	client utils.CompletionClientInterface
}

func NewPlannerService(client utils.CompletionClientInterface) PlannerServiceInterface {
	return &PlannerService{client: client}
}

// GeneratePlan validates the request, builds the prompt and walks the model
// fallback chain until one model returns non-empty text. There is no retry
// beyond the chain itself; a failed submission is simply resubmitted by the
// user.
func (s *PlannerService) GeneratePlan(ctx context.Context, req request_models.TripRequest) (response_models.ItineraryResponse, error) {
	var out response_models.ItineraryResponse

	if strings.TrimSpace(req.Destination) == "" {
		return out, utils.ErrMissingDestination
	}
	if req.Days < 1 || req.Days > maxTripDays {
		return out, utils.ErrInvalidDayCount
	}

	userPrompt := BuildUserPrompt(req)

	var lastErr error
	for _, model := range s.client.Models() {
		callCtx, cancel := context.WithTimeout(ctx, completionTimeout)
		text, err := s.client.Complete(callCtx, model, SystemPrompt, userPrompt, planMaxTokens)
		cancel()
		if err != nil {
			log.Printf("Plan generation with model %s failed: %v", model, err)
			lastErr = err
			continue
		}
		return response_models.ItineraryResponse{
			Itinerary:   text,
			Model:       model,
			GeneratedAt: time.Now().UTC(),
		}, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("%w: no models configured", utils.ErrUpstream)
	}
	return out, lastErr
}

// SelfTest performs one minimal completion to confirm key and connectivity.
// Diagnostics only: it reports false on any failure and never raises.
func (s *PlannerService) SelfTest(ctx context.Context) bool {
	models := s.client.Models()
	if len(models) == 0 {
		return false
	}
	callCtx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	text, err := s.client.Complete(callCtx, models[0],
		"You are a connectivity probe.",
		"Reply with the single word: READY",
		selfTestMaxTokens)
	if err != nil {
		log.Printf("Self-test failed: %v", err)
		return false
	}
	return text != ""
}

func (s *PlannerService) Provider() string { return s.client.Provider() }
