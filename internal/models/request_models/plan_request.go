package request_models

// TripRequest carries the four trip inputs collected by the form.
// It is immutable once bound; nothing here is persisted.
type TripRequest struct {
	// Days carries no binding rule: the planner service owns the range
	// check so every out-of-range value, zero included, gets the same
	// inline message.
	Destination string `json:"destination" binding:"required"`
	Days        int    `json:"days"`
	Interests   string `json:"interests"`
	Constraints string `json:"constraints"`
}

// ExportRequest asks for a PDF rendering of an already generated itinerary.
type ExportRequest struct {
	Destination string `json:"destination"`
	Itinerary   string `json:"itinerary" binding:"required"`
}
