// Package ui implements the interactive terminal client: a product table
// with stock badges plus a modal create/edit form.
package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// StockTier buckets a quantity for badge coloring. Thresholds are fixed:
// more than 10 units is high, 1-10 is low, 0 is out of stock.
type StockTier int

const (
	TierOutOfStock StockTier = iota
	TierLowStock
	TierHighStock
)

func TierFor(quantity int) StockTier {
	switch {
	case quantity > 10:
		return TierHighStock
	case quantity > 0:
		return TierLowStock
	default:
		return TierOutOfStock
	}
}

var (
	colorSuccess = lipgloss.Color("#8BC34A")
	colorWarning = lipgloss.Color("#FFC107")
	colorDanger  = lipgloss.Color("#e53935")
	colorInfo    = lipgloss.Color("#2196F3")
	colorMuted   = lipgloss.Color("#6c7a89")
)

// Styles holds every lipgloss style the client renders with.
type Styles struct {
	Title        lipgloss.Style
	Help         lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style
	FieldLabel   lipgloss.Style
	FieldError   lipgloss.Style
	EmptyTitle   lipgloss.Style
	EmptyHint    lipgloss.Style
	Dialog       lipgloss.Style
	BadgeHigh    lipgloss.Style
	BadgeLow     lipgloss.Style
	BadgeOut     lipgloss.Style
	SubmitActive lipgloss.Style
	SubmitBusy   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(colorInfo),
		Help:         lipgloss.NewStyle().Foreground(colorMuted),
		Success:      lipgloss.NewStyle().Foreground(colorSuccess),
		Failure:      lipgloss.NewStyle().Foreground(colorDanger),
		FieldLabel:   lipgloss.NewStyle().Bold(true),
		FieldError:   lipgloss.NewStyle().Foreground(colorDanger),
		EmptyTitle:   lipgloss.NewStyle().Bold(true),
		EmptyHint:    lipgloss.NewStyle().Foreground(colorMuted),
		Dialog:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		BadgeHigh:    lipgloss.NewStyle().Foreground(colorSuccess),
		BadgeLow:     lipgloss.NewStyle().Foreground(colorWarning),
		BadgeOut:     lipgloss.NewStyle().Foreground(colorDanger),
		SubmitActive: lipgloss.NewStyle().Bold(true).Foreground(colorInfo),
		SubmitBusy:   lipgloss.NewStyle().Foreground(colorMuted),
	}
}

// Badge renders the quantity with its tier color.
func (s Styles) Badge(quantity int) string {
	label := fmt.Sprintf("%d units", quantity)
	switch TierFor(quantity) {
	case TierHighStock:
		return s.BadgeHigh.Render(label)
	case TierLowStock:
		return s.BadgeLow.Render(label)
	default:
		return s.BadgeOut.Render(label)
	}
}

func FormatPrice(price decimal.Decimal) string {
	return "$" + price.StringFixed(2)
}

func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
