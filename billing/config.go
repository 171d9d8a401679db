package billing

import (
	"time"

	"encore.dev/config"
)

type TemporalConfig struct {
	HostPort  string
	Namespace string
	TaskQueue string
}

type BillExpiryConfig struct {
	// Enabled starts a BillExpiry workflow for every created bill.
	Enabled     bool
	WindowHours int
}

type Config struct {
	CustomerServiceURL string
	ProductServiceURL  string
	LookupTimeoutMs    int

	Temporal   TemporalConfig
	BillExpiry BillExpiryConfig
}

var cfg = config.Load[*Config]()

func (c *Config) lookupTimeout() time.Duration {
	return time.Duration(c.LookupTimeoutMs) * time.Millisecond
}

func (c *Config) expiryWindow() time.Duration {
	return time.Duration(c.BillExpiry.WindowHours) * time.Hour
}
