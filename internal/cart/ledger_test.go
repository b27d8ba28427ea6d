package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mapPricer map[int64]int64

func (m mapPricer) PriceInCents(itemID int64) (int64, bool) {
	price, ok := m[itemID]
	return price, ok
}

func TestLedgerAddCreatesAndIncrements(t *testing.T) {
	var l Ledger

	l.Add(1)
	l.Add(1)
	l.Add(2)

	lines := l.Lines()
	assert.Len(t, lines, 2)
	assert.Equal(t, int64(1), lines[0].ItemID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, int64(2), lines[1].ItemID)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.Equal(t, 3, l.ItemCount())
}

func TestLedgerRemoveDecrementsAndDeletesAtOne(t *testing.T) {
	var l Ledger

	l.Add(1)
	l.Add(1)

	l.Remove(1)
	assert.Equal(t, 1, l.ItemCount())

	l.Remove(1)
	assert.True(t, l.Empty())
	assert.Equal(t, 0, l.ItemCount())
}

func TestLedgerRemoveAbsentIsNoop(t *testing.T) {
	var l Ledger

	l.Add(1)
	l.Remove(99)
	l.RemoveLine(99)

	assert.Equal(t, 1, l.ItemCount())
}

func TestLedgerRemoveLineDropsWholeLine(t *testing.T) {
	var l Ledger

	l.Add(1)
	l.Add(1)
	l.Add(1)
	l.Add(2)

	l.RemoveLine(1)

	lines := l.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, int64(2), lines[0].ItemID)
}

func TestLedgerTotal(t *testing.T) {
	prices := mapPricer{1: 1500, 2: 800}
	var l Ledger

	l.Add(1)
	l.Add(1)
	l.Add(2)

	assert.Equal(t, int64(3800), l.Total(prices))
}

func TestLedgerTotalSkipsUnknownItems(t *testing.T) {
	prices := mapPricer{1: 1500}
	var l Ledger

	l.Add(1)
	l.Add(77) // not in the catalog

	assert.Equal(t, int64(1500), l.Total(prices))
	assert.Equal(t, 2, l.ItemCount())
}

func TestLedgerTotalExcludesDeletedLines(t *testing.T) {
	prices := mapPricer{1: 1500, 2: 800}
	var l Ledger

	l.Add(1)
	l.Add(2)
	l.Remove(2)

	assert.Equal(t, int64(1500), l.Total(prices))
}

func TestLedgerItemCountNeverNegative(t *testing.T) {
	var l Ledger

	l.Add(1)
	for i := 0; i < 10; i++ {
		l.Remove(1)
	}

	assert.Equal(t, 0, l.ItemCount())
	assert.True(t, l.Empty())
}

func TestLedgerClear(t *testing.T) {
	var l Ledger

	l.Add(1)
	l.Add(2)
	l.Clear()

	assert.True(t, l.Empty())
	assert.Empty(t, l.Lines())
}

func TestLedgerLinesReturnsCopy(t *testing.T) {
	var l Ledger

	l.Add(1)
	lines := l.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, l.ItemCount())
}
