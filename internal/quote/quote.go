// Package quote prices a draft bill offline, with the same rules the
// billing service applies when a bill is created.
package quote

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jewelcraft/jewel-billing/billing/model"
	"github.com/jewelcraft/jewel-billing/billing/pricing"
)

// File is the YAML shape of a draft bill.
type File struct {
	Customer string `yaml:"customer"`
	Items    []Item `yaml:"items"`
}

type Item struct {
	Name        string           `yaml:"name"`
	Material    string           `yaml:"material"`
	Weight      float64          `yaml:"weight"`
	GmPerWeight float64          `yaml:"gm_per_weight"`
	Quantity    int32            `yaml:"quantity"`
	UnitPrice   *decimal.Decimal `yaml:"unit_price"`
}

type Line struct {
	Name       string
	Material   string
	Quantity   int32
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

type Quote struct {
	Customer string
	Lines    []Line
	Totals   pricing.Totals
	TaxRate  decimal.Decimal
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading quote file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing quote file: %w", err)
	}
	return &f, nil
}

// Price resolves each item's unit price and prices the whole draft.
func Price(f *File) (*Quote, error) {
	if len(f.Items) == 0 {
		return nil, fmt.Errorf("quote has no items")
	}

	q := &Quote{Customer: f.Customer, Lines: make([]Line, len(f.Items))}
	pricingLines := make([]pricing.Line, len(f.Items))
	for i, item := range f.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("items[%d]: quantity must be positive", i)
		}

		unitPrice := pricing.CatalogUnitPrice(item.Material, item.Weight, item.GmPerWeight)
		if item.UnitPrice != nil {
			unitPrice = *item.UnitPrice
		}
		unitPrice = pricing.Round2(unitPrice)
		if !unitPrice.IsPositive() {
			return nil, fmt.Errorf("items[%d]: unit price must be positive", i)
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			name = model.Product{Material: item.Material, Weight: item.Weight}.DisplayName()
		}

		total := pricing.ExtendLine(unitPrice, item.Quantity)
		q.Lines[i] = Line{
			Name:       name,
			Material:   item.Material,
			Quantity:   item.Quantity,
			UnitPrice:  unitPrice,
			TotalPrice: total,
		}
		pricingLines[i] = pricing.Line{TotalPrice: total, Quantity: item.Quantity, Material: item.Material}
	}

	q.Totals = pricing.Calculate(pricingLines)
	q.TaxRate = pricing.TaxRate(pricingLines)
	return q, nil
}
