package dto

type ErrorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

type ProductCreatedResponse struct {
	ProductID string `json:"productId"`
}

type RunAdResponse struct {
	CampaignID string `json:"campaignId"`
	Message    string `json:"message"`
}

type DashboardStatsResponse struct {
	TotalProducts  int `json:"totalProducts"`
	TotalViews     int `json:"totalViews"`
	RecentProducts any `json:"recentProducts"`
}
