package service

import (
	"fmt"

	"github.com/runwaydesk/sponsorhub/internal/domain"
	"github.com/runwaydesk/sponsorhub/internal/dto"
)

// Inventory status labels
const (
	LabelSoldOut  = "Sold Out"
	LabelLowStock = "Low Stock"
)

// lowStockThreshold is the remaining count at or below which a package
// is labelled Low Stock.
const lowStockThreshold = 2

// InventoryLedger computes per-package inventory for an event from live
// deal rows. It never caches a counter; sold is always a recount of the
// deals passed in.
type InventoryLedger struct {
	reserving    map[domain.DealStatus]bool
	defaultSlots int
}

// NewInventoryLedger creates a ledger that treats the given statuses as
// slot-reserving.
func NewInventoryLedger(reservingStatuses []string, defaultSlots int) *InventoryLedger {
	reserving := make(map[domain.DealStatus]bool, len(reservingStatuses))
	for _, s := range reservingStatuses {
		reserving[domain.DealStatus(s)] = true
	}
	return &InventoryLedger{reserving: reserving, defaultSlots: defaultSlots}
}

// Reserving reports whether a deal in the given status occupies a slot
func (l *InventoryLedger) Reserving(status domain.DealStatus) bool {
	return l.reserving[status]
}

// ReservingStatuses returns the reserving statuses as strings, in no
// particular order. Used to parameterize the submit transaction's count.
func (l *InventoryLedger) ReservingStatuses() []string {
	statuses := make([]string, 0, len(l.reserving))
	for s := range l.reserving {
		statuses = append(statuses, string(s))
	}
	return statuses
}

// Sold counts deals on the package's level in a reserving status
func (l *InventoryLedger) Sold(pkg *domain.Package, deals []*domain.Deal) int {
	sold := 0
	for _, d := range deals {
		if d.Level == pkg.Name && l.reserving[d.Status] {
			sold++
		}
	}
	return sold
}

// Remaining returns the open slot count, floored at zero so a
// best-effort oversell never reports negative inventory.
func (l *InventoryLedger) Remaining(pkg *domain.Package, sold int) int {
	remaining := pkg.SlotsOrDefault(l.defaultSlots) - sold
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Label returns the UI status label for a remaining count
func Label(remaining int) string {
	switch {
	case remaining == 0:
		return LabelSoldOut
	case remaining <= lowStockThreshold:
		return LabelLowStock
	default:
		return fmt.Sprintf("%d Left", remaining)
	}
}

// Compute builds the full inventory view for an event: one row per
// catalog package, computed against the event's deals. An empty catalog
// yields an empty list, never an error.
func (l *InventoryLedger) Compute(packages []*domain.Package, deals []*domain.Deal) []dto.PackageInventory {
	inventory := make([]dto.PackageInventory, 0, len(packages))
	for _, pkg := range packages {
		sold := l.Sold(pkg, deals)
		remaining := l.Remaining(pkg, sold)
		inventory = append(inventory, dto.PackageInventory{
			PackageID:    pkg.ID,
			Name:         pkg.Name,
			DefaultPrice: pkg.DefaultPrice,
			TotalSlots:   pkg.SlotsOrDefault(l.defaultSlots),
			Sold:         sold,
			Remaining:    remaining,
			Label:        Label(remaining),
		})
	}
	return inventory
}
