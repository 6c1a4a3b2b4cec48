package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfarer/internal/models/request_models"
	"wayfarer/pkg/utils"
)

// fakeCompletionClient scripts per-model outcomes, in the same shape the real
// clients use: empty content and transport failures both come back as errors.
type fakeCompletionClient struct {
	models      []string
	responses   map[string]string
	errs        map[string]error
	calls       []string
	lastPrompts []string
}

func (f *fakeCompletionClient) Complete(_ context.Context, model, _, userPrompt string, _ int) (string, error) {
	f.calls = append(f.calls, model)
	f.lastPrompts = append(f.lastPrompts, userPrompt)
	if err, ok := f.errs[model]; ok {
		return "", fmt.Errorf("%w: model %s: %v", utils.ErrUpstream, model, err)
	}
	text := f.responses[model]
	if text == "" {
		return "", fmt.Errorf("%w: model %s", utils.ErrEmptyCompletion, model)
	}
	return text, nil
}

func (f *fakeCompletionClient) Models() []string { return f.models }
func (f *fakeCompletionClient) Provider() string { return "fake" }
func (f *fakeCompletionClient) Close() error     { return nil }

func validRequest() request_models.TripRequest {
	return request_models.TripRequest{
		Destination: "Paris",
		Days:        3,
		Interests:   "art museums",
		Constraints: "vegetarian food only",
	}
}

func TestGeneratePlanReturnsItinerary(t *testing.T) {
	client := &fakeCompletionClient{
		models:    []string{"model-a"},
		responses: map[string]string{"model-a": "## Day-by-Day Plan\n### Day 1\nMorning: Louvre"},
	}
	svc := NewPlannerService(client)

	plan, err := svc.GeneratePlan(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "model-a", plan.Model)
	assert.Contains(t, plan.Itinerary, "Day 1")
	assert.False(t, plan.GeneratedAt.IsZero())
}

func TestGeneratePlanRejectsZeroDaysBeforePromptIsBuilt(t *testing.T) {
	client := &fakeCompletionClient{models: []string{"model-a"}}
	svc := NewPlannerService(client)

	req := validRequest()
	req.Days = 0

	_, err := svc.GeneratePlan(context.Background(), req)

	assert.ErrorIs(t, err, utils.ErrInvalidDayCount)
	assert.Empty(t, client.calls, "no API call should happen for an invalid request")
}

func TestGeneratePlanRejectsBlankDestination(t *testing.T) {
	client := &fakeCompletionClient{models: []string{"model-a"}}
	svc := NewPlannerService(client)

	req := validRequest()
	req.Destination = "   "

	_, err := svc.GeneratePlan(context.Background(), req)

	assert.ErrorIs(t, err, utils.ErrMissingDestination)
	assert.Empty(t, client.calls)
}

func TestGeneratePlanFallsBackAcrossModels(t *testing.T) {
	client := &fakeCompletionClient{
		models:    []string{"model-a", "model-b", "model-c"},
		errs:      map[string]error{"model-a": errors.New("quota exceeded")},
		responses: map[string]string{"model-c": "### Day 1\nMorning: walk"},
		// model-b scripted to return empty content
	}
	svc := NewPlannerService(client)

	plan, err := svc.GeneratePlan(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "model-c", plan.Model)
	assert.Equal(t, []string{"model-a", "model-b", "model-c"}, client.calls)
}

func TestGeneratePlanAllModelsFail(t *testing.T) {
	client := &fakeCompletionClient{
		models: []string{"model-a", "model-b"},
		errs: map[string]error{
			"model-a": errors.New("network down"),
			"model-b": errors.New("auth failed"),
		},
	}
	svc := NewPlannerService(client)

	_, err := svc.GeneratePlan(context.Background(), validRequest())

	assert.ErrorIs(t, err, utils.ErrUpstream)
}

func TestGeneratePlanAllModelsEmpty(t *testing.T) {
	client := &fakeCompletionClient{models: []string{"model-a", "model-b"}}
	svc := NewPlannerService(client)

	_, err := svc.GeneratePlan(context.Background(), validRequest())

	assert.ErrorIs(t, err, utils.ErrEmptyCompletion)
}

func TestGeneratePlanSendsFieldsInPrompt(t *testing.T) {
	client := &fakeCompletionClient{
		models:    []string{"model-a"},
		responses: map[string]string{"model-a": "plan"},
	}
	svc := NewPlannerService(client)

	_, err := svc.GeneratePlan(context.Background(), validRequest())

	require.NoError(t, err)
	require.Len(t, client.lastPrompts, 1)
	prompt := client.lastPrompts[0]
	assert.Contains(t, prompt, "Paris")
	assert.Contains(t, prompt, "3")
	assert.Contains(t, prompt, "art museums")
	assert.Contains(t, prompt, "vegetarian food only")
}

func TestSelfTestTrueOnSuccess(t *testing.T) {
	client := &fakeCompletionClient{
		models:    []string{"model-a"},
		responses: map[string]string{"model-a": "READY"},
	}
	svc := NewPlannerService(client)

	assert.True(t, svc.SelfTest(context.Background()))
}

func TestSelfTestFalseOnAuthFailure(t *testing.T) {
	client := &fakeCompletionClient{
		models: []string{"model-a"},
		errs:   map[string]error{"model-a": errors.New("401 invalid api key")},
	}
	svc := NewPlannerService(client)

	assert.False(t, svc.SelfTest(context.Background()))
}
