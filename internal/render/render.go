package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/jewelcraft/jewel-billing/internal/quote"
)

var (
	accent = lipgloss.Color("#D4AF37") // gold
	fg     = lipgloss.Color("#E8E6E3")
	dim    = lipgloss.Color("#6B7280")
	faint  = lipgloss.Color("#3F3F46")
	good   = lipgloss.Color("#22C55E")
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	labelStyle    = lipgloss.NewStyle().Foreground(dim)
	valueStyle    = lipgloss.NewStyle().Foreground(fg)
	totalStyle    = lipgloss.NewStyle().Bold(true).Foreground(good)
	separatorLine = lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("─", 56))
)

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Quote renders a priced draft bill.
func Quote(q *quote.Quote) string {
	var b strings.Builder

	title := "Quote"
	if q.Customer != "" {
		title += " for " + q.Customer
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(separatorLine)
	b.WriteString("\n")

	for _, l := range q.Lines {
		b.WriteString(fmt.Sprintf("%-28s %3d x %12s %14s\n",
			valueStyle.Render(l.Name), l.Quantity, money(l.UnitPrice), money(l.TotalPrice)))
	}

	b.WriteString(separatorLine)
	b.WriteString("\n")
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-20s", label)))
		b.WriteString(fmt.Sprintf("%36s\n", value))
	}
	row("Subtotal", money(q.Totals.Subtotal))
	row(fmt.Sprintf("Tax (%s%%)", q.TaxRate.Shift(2).String()), money(q.Totals.Tax))
	row("Discount", "-"+money(q.Totals.Discount))
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-20s", "Total")))
	b.WriteString(totalStyle.Render(fmt.Sprintf("%36s", money(q.Totals.Total))))

	return boxStyle.Render(b.String())
}

// PriceTable renders the per-gram material prices, sorted by material.
func PriceTable(prices map[string]decimal.Decimal, fallback decimal.Decimal) string {
	names := make([]string, 0, len(prices))
	for name := range prices {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Material prices per gram"))
	b.WriteString("\n")
	for _, name := range names {
		b.WriteString(fmt.Sprintf("%-12s %12s\n", valueStyle.Render(name), money(prices[name])))
	}
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-12s %12s", "other", money(fallback))))

	return boxStyle.Render(b.String())
}
