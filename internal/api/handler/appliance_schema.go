package handler

// --- Request / Response types ---

type createApplianceRequest struct {
	Name          string  `json:"name"            validate:"required,min=1,max=100"`
	Type          string  `json:"type"            validate:"required"`
	PowerRatingKW float64 `json:"power_rating_kw" validate:"gte=0"`
}

type controlApplianceRequest struct {
	Action string `json:"action" validate:"required"`
}

type controlApplianceResponse struct {
	Success     bool   `json:"success"`
	ApplianceID int64  `json:"appliance_id"`
	NewStatus   bool   `json:"new_status"`
	AIMessage   string `json:"ai_message"`
}
