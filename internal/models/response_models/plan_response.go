package response_models

import "time"

// ItineraryResponse is the generated day-by-day plan returned to the UI.
type ItineraryResponse struct {
	Itinerary   string    `json:"itinerary"`
	Model       string    `json:"model"`
	GeneratedAt time.Time `json:"generated_at"`
}

type DiagnosticsResponse struct {
	Ready    bool   `json:"ready"`
	Provider string `json:"provider"`
}
