package handlers

import (
	"github.com/artisanhub/backend/internal/http/dto"
	"github.com/gofiber/fiber/v2"
)

// AnalyticsHandler serves sample analytics. Real delivery telemetry is a
// future integration; until then the dashboard charts render this fixture.
type AnalyticsHandler struct{}

func NewAnalyticsHandler() *AnalyticsHandler {
	return &AnalyticsHandler{}
}

type ReachPoint struct {
	Name   string `json:"name"`
	Reach  int    `json:"reach"`
	Clicks int    `json:"clicks"`
	Sales  int    `json:"sales"`
}

type AnalyticsStats struct {
	TotalReach  string `json:"totalReach"`
	TotalClicks string `json:"totalClicks"`
	TotalSales  string `json:"totalSales"`
	Engagement  string `json:"engagement"`
}

type AnalyticsData struct {
	Reach []ReachPoint   `json:"reach"`
	Stats AnalyticsStats `json:"stats"`
}

var sampleAnalytics = AnalyticsData{
	Reach: []ReachPoint{
		{Name: "Mon", Reach: 1200, Clicks: 45, Sales: 3},
		{Name: "Tue", Reach: 1800, Clicks: 62, Sales: 5},
		{Name: "Wed", Reach: 2200, Clicks: 78, Sales: 8},
		{Name: "Thu", Reach: 1900, Clicks: 55, Sales: 4},
		{Name: "Fri", Reach: 2800, Clicks: 95, Sales: 12},
		{Name: "Sat", Reach: 3200, Clicks: 120, Sales: 15},
		{Name: "Sun", Reach: 2600, Clicks: 85, Sales: 9},
	},
	Stats: AnalyticsStats{
		TotalReach:  "15.8K",
		TotalClicks: "540",
		TotalSales:  "56",
		Engagement:  "7.2%",
	},
}

func (h *AnalyticsHandler) GetAnalytics(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: sampleAnalytics})
}
