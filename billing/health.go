package billing

import (
	"context"
	"time"

	"encore.dev/rlog"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Expiry    bool      `json:"bill_expiry"`
	CheckedAt time.Time `json:"checked_at"`
}

//encore:api public path=/v1/billing/health method=GET
func (s *Service) Health(ctx context.Context) (*HealthResponse, error) {
	resp := &HealthResponse{
		Status:    "UP",
		Database:  "UP",
		Expiry:    s.temporal != nil,
		CheckedAt: time.Now().UTC(),
	}
	if err := s.db.Ping(ctx); err != nil {
		rlog.Warn("database ping failed", "error", err)
		resp.Status = "DEGRADED"
		resp.Database = "DOWN"
	}
	return resp, nil
}
