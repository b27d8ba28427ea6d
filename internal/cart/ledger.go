package cart

import (
	"github.com/pizzariapopovici/orderapi/internal/domain"
)

// Pricer resolves an item id to its unit price in cents. The second return
// reports whether the item is known.
type Pricer interface {
	PriceInCents(itemID int64) (int64, bool)
}

// Ledger holds the selected items of one checkout session, in the order they
// were first added. There is at most one line per item id. Ledger is not
// safe for concurrent use; callers serialize access per session.
type Ledger struct {
	lines []domain.CartLine
}

// Add increments the line for itemID, creating it with quantity 1 if absent.
// Unknown item ids are accepted; they contribute nothing to totals until the
// catalog knows them.
func (l *Ledger) Add(itemID int64) {
	for i := range l.lines {
		if l.lines[i].ItemID == itemID {
			l.lines[i].Quantity++
			return
		}
	}
	l.lines = append(l.lines, domain.CartLine{ItemID: itemID, Quantity: 1})
}

// Remove decrements the line for itemID. A line at quantity 1 is deleted
// entirely, so decrementing is also how a product leaves the cart. Absent
// ids are a no-op.
func (l *Ledger) Remove(itemID int64) {
	for i := range l.lines {
		if l.lines[i].ItemID != itemID {
			continue
		}
		if l.lines[i].Quantity > 1 {
			l.lines[i].Quantity--
		} else {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
		}
		return
	}
}

// RemoveLine deletes the line for itemID regardless of quantity
func (l *Ledger) RemoveLine(itemID int64) {
	for i := range l.lines {
		if l.lines[i].ItemID == itemID {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			return
		}
	}
}

// Total returns the cart total in cents. Lines whose item the pricer does
// not know are skipped; the cart and the catalog are kept referentially
// consistent within a session, so a miss means the line is worthless, not
// broken.
func (l *Ledger) Total(p Pricer) int64 {
	var total int64
	for _, line := range l.lines {
		price, ok := p.PriceInCents(line.ItemID)
		if !ok {
			continue
		}
		total += price * int64(line.Quantity)
	}
	return total
}

// ItemCount returns the sum of all line quantities (the badge count)
func (l *Ledger) ItemCount() int {
	count := 0
	for _, line := range l.lines {
		count += line.Quantity
	}
	return count
}

// Clear empties the ledger. Called only after a confirmed order.
func (l *Ledger) Clear() {
	l.lines = nil
}

// Empty reports whether the ledger has no lines
func (l *Ledger) Empty() bool {
	return len(l.lines) == 0
}

// Lines returns a copy of the current lines
func (l *Ledger) Lines() []domain.CartLine {
	lines := make([]domain.CartLine, len(l.lines))
	copy(lines, l.lines)
	return lines
}
