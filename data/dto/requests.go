package dto

// CreateRequestRequestBody defines a request body for CreateRequest service.
// A nil Urgency means the field was omitted.
type CreateRequestRequestBody struct {
	Title     string `json:"title"`
	Requester string `json:"requester"`
	Urgency   *int   `json:"urgency"`
}
