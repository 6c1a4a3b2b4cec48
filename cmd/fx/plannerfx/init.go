package plannerfx

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"wayfarer/internal/api/controllers"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

var Module = fx.Provide(
	ProvideCompletionClient,
	ProvidePlannerService,
	ProvidePlannerController)

// PlannerConfig holds configuration for completion clients
type PlannerConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideCompletionClient creates a completion client based on environment
// variables. A missing API key is a startup error: the app refuses to run
// rather than failing on the first generation attempt. The client is closed
// on shutdown (the Gemini client holds a live connection).
func ProvideCompletionClient(lc fx.Lifecycle) (utils.CompletionClientInterface, error) {
	config, err := getPlannerConfig()
	if err != nil {
		return nil, err
	}

	log.Printf("Initializing %s completion client (model override: %q)", config.Provider, config.Model)

	client, err := utils.NewCompletionClient(config.Provider, config.APIKey, config.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create completion client: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func ProvidePlannerService(client utils.CompletionClientInterface) services.PlannerServiceInterface {
	return services.NewPlannerService(client)
}

func ProvidePlannerController(plannerService services.PlannerServiceInterface) *controllers.PlannerController {
	return controllers.NewPlannerController(plannerService)
}

// getPlannerConfig reads provider selection and credentials from environment variables
func getPlannerConfig() (PlannerConfig, error) {
	provider := getEnvWithDefault("PLANNER_PROVIDER", "openai")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = os.Getenv("OPENAI_MODEL")
		if apiKey == "" {
			return PlannerConfig{}, fmt.Errorf("%w: OPENAI_API_KEY is required when using the OpenAI provider", utils.ErrMissingAPIKey)
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = os.Getenv("GEMINI_MODEL")
		if apiKey == "" {
			return PlannerConfig{}, fmt.Errorf("%w: GEMINI_API_KEY is required when using the Gemini provider", utils.ErrMissingAPIKey)
		}
	}

	return PlannerConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}, nil
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
