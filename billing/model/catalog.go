package model

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID        int64  `json:"customerId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"emailId"`
	Phone     string `json:"phoneNo"`
}

type Product struct {
	ID          int64            `json:"productId"`
	Name        string           `json:"productName"`
	Material    string           `json:"productMaterial"`
	Weight      float64          `json:"productWeight"`
	GmPerWeight float64          `json:"productGmPerWeight"`
	UnitPrice   *decimal.Decimal `json:"unitPrice,omitempty"`
	VendorID    int64            `json:"vendorId"`
}

// DisplayName falls back to a name derived from material and weight.
func (p Product) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("%s Jewelry (%sg)", p.Material, strconv.FormatFloat(p.Weight, 'f', -1, 64))
}
