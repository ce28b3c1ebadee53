package dto

type HealthResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	DataSource   string `json:"data_source,omitempty"`
	TotalDoctors *int   `json:"total_doctors,omitempty"`
	Timestamp    string `json:"timestamp"`
}
