package request_models

// PlanRequest is the body of POST /plan-trip. Locations is a comma-separated
// list of cities; when empty the model picks cities itself.
type PlanRequest struct {
	Country           string `json:"country" binding:"required"`
	Locations         string `json:"locations,omitempty"`
	Days              int    `json:"days"`
	Origin            string `json:"origin,omitempty"`
	AdditionalDetails string `json:"additionalDetails,omitempty"`
}
