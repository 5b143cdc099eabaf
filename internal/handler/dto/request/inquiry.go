package request

type ContactRequest struct {
	Website string `json:"website"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message" binding:"max=5000"`
}

type NewsletterRequest struct {
	Website string `json:"website"`
	Email   string `json:"email"`
}

type AnalyticsRequest struct {
	Event string `json:"event"`
	Path  string `json:"path" binding:"max=512"`
	Label string `json:"label" binding:"max=256"`
}
