package services

import (
	"fmt"
	"strings"

	"wayfarer/internal/models/request_models"
)

// SystemPrompt pins the planner persona and the output shape: one block per
// day split into Morning / Afternoon / Evening, markdown sections throughout.
const SystemPrompt = `You are a precise travel planner.
Rules:
- You MUST respect the user's constraints. If something conflicts, replace it with an alternative.
- Do not include unsafe or illegal activities.
- Provide practical details: timing blocks (morning/afternoon/evening), transit style,
  and a short reason why each stop matches the interests.
- Keep it realistic for the number of days.
Output format MUST be Markdown with these sections:
## Trip Summary
## Day-by-Day Plan
(Use H3 headings like: ### Day 1, ### Day 2, etc. Split each day into Morning / Afternoon / Evening.)
## Food Suggestions
## Tips & Notes`

// BuildUserPrompt renders a TripRequest into the user prompt. Pure function,
// all four fields are embedded verbatim.
func BuildUserPrompt(req request_models.TripRequest) string {
	interests := req.Interests
	if strings.TrimSpace(interests) == "" {
		interests = "No special interests provided"
	}
	constraints := req.Constraints
	if strings.TrimSpace(constraints) == "" {
		constraints = "None"
	}

	var b strings.Builder
	b.WriteString("TRIP INPUTS\n")
	fmt.Fprintf(&b, "- Destination: %s\n", req.Destination)
	fmt.Fprintf(&b, "- Number of days: %d\n", req.Days)
	fmt.Fprintf(&b, "- Special interests: %s\n", interests)
	fmt.Fprintf(&b, "- Constraints: %s\n", constraints)
	b.WriteString("\nREQUIREMENTS\n")
	fmt.Fprintf(&b, "- Create a complete plan for all %d days.\n", req.Days)
	b.WriteString("- Divide each day into Morning / Afternoon / Evening.\n")
	b.WriteString("- For each activity, give a short reason why it fits the interests.\n")
	b.WriteString("- Make sure every item respects the constraints.\n")
	return b.String()
}
