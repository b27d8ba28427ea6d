package backend

import (
	"context"
	"net/url"

	"github.com/pizzariapopovici/orderapi/internal/domain"
)

// DashboardStats fetches aggregate order statistics. startDate and endDate
// are optional YYYY-MM-DD strings; when both are empty the backend reports
// today's numbers.
func (c *Client) DashboardStats(ctx context.Context, startDate, endDate string) (*domain.DashboardStats, error) {
	path := "/dashboard/stats"
	query := url.Values{}
	if startDate != "" {
		query.Set("startDate", startDate)
	}
	if endDate != "" {
		query.Set("endDate", endDate)
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var stats domain.DashboardStats
	if err := c.get(ctx, path, "dashboard stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
