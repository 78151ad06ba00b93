package cart

import (
	"testing"

	"github.com/booknest/storefront/internal/catalog/catalogtest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedger(t *testing.T) *Ledger {
	t.Helper()
	return NewLedger(catalogtest.Source(t,
		catalogtest.Book(1, "Ten", "10.00"),
		catalogtest.Book(2, "Five", "5.00"),
		catalogtest.Book(3, "Dune", "19.99"),
	))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAddUnknownBookLeavesLedgerUnchanged(t *testing.T) {
	l := newLedger(t)
	require.True(t, l.Add(1))
	before := l.Snapshot()

	for _, id := range []int{0, -1, 99, 1000} {
		assert.False(t, l.Add(id))
	}
	after := l.Snapshot()
	assert.Equal(t, before.Lines, after.Lines)
	assert.Equal(t, before.ItemCount, after.ItemCount)
	assert.True(t, before.Total.Equal(after.Total))
}

func TestAddSameBookIncrementsSingleLine(t *testing.T) {
	l := newLedger(t)
	const n = 4
	for i := 0; i < n; i++ {
		require.True(t, l.Add(3))
	}

	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, n, lines[0].Quantity)
	assert.True(t, l.Total().Equal(dec("19.99").Mul(decimal.NewFromInt(n))))
	assert.Equal(t, n, l.ItemCount())
}

func TestTotalTwoLines(t *testing.T) {
	l := newLedger(t)
	l.Add(1)
	l.Add(1)
	l.Add(2)

	assert.True(t, l.Total().Equal(dec("25.00")), "got %s", l.Total())
	assert.Equal(t, 3, l.ItemCount())
	assert.Len(t, l.Lines(), 2)
}

func TestSetQuantity(t *testing.T) {
	l := newLedger(t)
	l.Add(1)

	assert.True(t, l.SetQuantity(1, 5))
	line, ok := l.Line(1)
	require.True(t, ok)
	assert.Equal(t, 5, line.Quantity)

	// Decrement below one is a no-op, not a removal.
	assert.False(t, l.SetQuantity(1, 0))
	assert.False(t, l.SetQuantity(1, -3))
	line, _ = l.Line(1)
	assert.Equal(t, 5, line.Quantity)

	assert.False(t, l.SetQuantity(2, 3), "no line for book 2")
	_, ok = l.Line(2)
	assert.False(t, ok)
}

func TestRemoveAndClear(t *testing.T) {
	l := newLedger(t)
	l.Add(1)
	l.Add(2)
	l.Add(3)

	assert.True(t, l.Remove(2))
	assert.False(t, l.Remove(2))
	assert.Equal(t, []int{1, 3}, bookIDs(l.Lines()))

	l.Clear()
	assert.True(t, l.IsEmpty())
	assert.True(t, l.Total().IsZero())
	assert.Equal(t, 0, l.ItemCount())
}

func TestDeductRemovesOnlyPurchasedQuantities(t *testing.T) {
	l := newLedger(t)
	l.Add(1)
	l.Add(2)
	purchased := l.Lines()

	l.Add(2)
	l.Add(3)
	l.Deduct(purchased)

	assert.Equal(t, []int{2, 3}, bookIDs(l.Lines()))
	line, ok := l.Line(2)
	require.True(t, ok)
	assert.Equal(t, 1, line.Quantity)
	assert.True(t, dec("24.99").Equal(l.Total()))

	l.Deduct([]Line{{BookID: 99, Quantity: 1}})
	assert.Equal(t, 2, l.ItemCount())
}

func TestTotalMatchesLinesAcrossOperations(t *testing.T) {
	l := newLedger(t)
	ops := []func(){
		func() { l.Add(1) },
		func() { l.Add(2) },
		func() { l.SetQuantity(2, 7) },
		func() { l.Add(3) },
		func() { l.Remove(1) },
		func() { l.Add(1) },
		func() { l.SetQuantity(3, 0) },
		func() { l.Add(42) },
	}
	for _, op := range ops {
		op()
		want := decimal.Zero
		for _, line := range l.Lines() {
			want = want.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
			assert.GreaterOrEqual(t, line.Quantity, 1)
		}
		assert.True(t, l.Total().Equal(want))
	}
}

func TestLinesSnapshotIsDetached(t *testing.T) {
	l := newLedger(t)
	l.Add(1)

	snap := l.Snapshot()
	l.Add(1)
	l.Add(2)

	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 1, snap.Lines[0].Quantity)
	assert.True(t, snap.Total.Equal(dec("10")))
}

func TestLineCapturesBookAtAddTime(t *testing.T) {
	l := newLedger(t)
	l.Add(3)

	line, ok := l.Line(3)
	require.True(t, ok)
	assert.Equal(t, "Dune", line.Title)
	assert.Equal(t, "Test Author", line.Author)
	assert.True(t, line.Price.Equal(dec("19.99")))
	assert.True(t, line.Subtotal().Equal(dec("19.99")))
}

func bookIDs(lines []Line) []int {
	out := make([]int, 0, len(lines))
	for _, line := range lines {
		out = append(out, line.BookID)
	}
	return out
}
