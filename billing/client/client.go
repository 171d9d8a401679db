// Package client looks up customers and products in the catalog services.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jewelcraft/jewel-billing/billing/fault"
	"github.com/jewelcraft/jewel-billing/billing/model"
)

const DefaultTimeout = 5 * time.Second

type CustomerClient interface {
	LookupCustomer(ctx context.Context, customerID int64) (*model.Customer, error)
}

type ProductClient interface {
	LookupProduct(ctx context.Context, productID int64) (*model.Product, error)
}

type Config struct {
	CustomerBaseURL string
	ProductBaseURL  string
	Timeout         time.Duration
}

// Catalog talks to the customer and product services over HTTP. Lookups
// are not retried: a failed lookup aborts the calling operation.
type Catalog struct {
	customerBaseURL string
	productBaseURL  string
	httpClient      *http.Client
}

func NewCatalog(cfg Config) *Catalog {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Catalog{
		customerBaseURL: strings.TrimRight(cfg.CustomerBaseURL, "/"),
		productBaseURL:  strings.TrimRight(cfg.ProductBaseURL, "/"),
		httpClient:      &http.Client{Timeout: timeout},
	}
}

var (
	_ CustomerClient = (*Catalog)(nil)
	_ ProductClient  = (*Catalog)(nil)
)

func (c *Catalog) LookupCustomer(ctx context.Context, customerID int64) (*model.Customer, error) {
	var customer model.Customer
	url := fmt.Sprintf("%s/api/customers/%d", c.customerBaseURL, customerID)
	if err := c.get(ctx, url, &customer); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, fault.NotFound(fault.ResourceCustomer, "customer not found with ID: %d", customerID)
		}
		return nil, fault.ProcessingFailure(err, "failed to look up customer %d", customerID)
	}
	if customer.ID == 0 {
		customer.ID = customerID
	}
	return &customer, nil
}

func (c *Catalog) LookupProduct(ctx context.Context, productID int64) (*model.Product, error) {
	var product model.Product
	url := fmt.Sprintf("%s/api/products/%d", c.productBaseURL, productID)
	if err := c.get(ctx, url, &product); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, fault.NotFound(fault.ResourceProduct, "product not found with ID: %d", productID)
		}
		return nil, fault.ProcessingFailure(err, "failed to look up product %d", productID)
	}
	if product.ID == 0 {
		product.ID = productID
	}
	return &product, nil
}

type statusError int

func (e statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", int(e))
}

const errNotFound = statusError(http.StatusNotFound)

func (c *Catalog) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
