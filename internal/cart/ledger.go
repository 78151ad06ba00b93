package cart

import (
	"github.com/booknest/storefront/internal/catalog"
	"github.com/shopspring/decimal"
)

// BookFinder resolves catalog ids; *catalog.Source satisfies it.
type BookFinder interface {
	FindByID(id int) (catalog.Book, bool)
}

// Line is one cart entry. Title, author, image and price are captured when
// the book is first added.
type Line struct {
	BookID   int             `json:"book_id"`
	Title    string          `json:"title"`
	Author   string          `json:"author"`
	ImageRef string          `json:"image_ref"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Subtotal is price times quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Ledger is the authoritative in-memory cart. It holds at most one line per
// book id, every line has quantity >= 1, and lines keep insertion order.
// A Ledger is not safe for concurrent use; its owner serializes access.
type Ledger struct {
	books BookFinder
	lines []Line
}

func NewLedger(books BookFinder) *Ledger {
	return &Ledger{books: books}
}

func (l *Ledger) indexOf(bookID int) int {
	for i := range l.lines {
		if l.lines[i].BookID == bookID {
			return i
		}
	}
	return -1
}

// Add increments the line for bookID or creates it with quantity 1. Unknown
// ids leave the ledger unchanged and report false.
func (l *Ledger) Add(bookID int) bool {
	book, ok := l.books.FindByID(bookID)
	if !ok {
		return false
	}
	if i := l.indexOf(bookID); i >= 0 {
		l.lines[i].Quantity++
		return true
	}
	l.lines = append(l.lines, Line{
		BookID:   book.ID,
		Title:    book.Title,
		Author:   book.Author,
		ImageRef: book.ImageRef,
		Price:    book.Price,
		Quantity: 1,
	})
	return true
}

// SetQuantity overwrites the quantity of an existing line. Quantities below 1
// and unknown lines are ignored; a decrement never removes a line.
func (l *Ledger) SetQuantity(bookID, quantity int) bool {
	if quantity < 1 {
		return false
	}
	i := l.indexOf(bookID)
	if i < 0 {
		return false
	}
	l.lines[i].Quantity = quantity
	return true
}

// Remove deletes the line for bookID if present.
func (l *Ledger) Remove(bookID int) bool {
	i := l.indexOf(bookID)
	if i < 0 {
		return false
	}
	l.lines = append(l.lines[:i], l.lines[i+1:]...)
	return true
}

func (l *Ledger) Clear() {
	l.lines = nil
}

// Deduct takes purchased quantities off the ledger. A line whose quantity
// drops below 1 is removed; books added after the purchase was frozen stay.
func (l *Ledger) Deduct(purchased []Line) {
	for _, bought := range purchased {
		i := l.indexOf(bought.BookID)
		if i < 0 {
			continue
		}
		if l.lines[i].Quantity <= bought.Quantity {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			continue
		}
		l.lines[i].Quantity -= bought.Quantity
	}
}

// Total sums price times quantity over all lines.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range l.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// ItemCount sums quantities; it differs from the number of lines.
func (l *Ledger) ItemCount() int {
	count := 0
	for _, line := range l.lines {
		count += line.Quantity
	}
	return count
}

// Lines returns a copy of the lines in insertion order.
func (l *Ledger) Lines() []Line {
	out := make([]Line, len(l.lines))
	copy(out, l.lines)
	return out
}

func (l *Ledger) Line(bookID int) (Line, bool) {
	i := l.indexOf(bookID)
	if i < 0 {
		return Line{}, false
	}
	return l.lines[i], true
}

func (l *Ledger) IsEmpty() bool {
	return len(l.lines) == 0
}

// Snapshot captures the ledger as observed right now.
func (l *Ledger) Snapshot() Snapshot {
	return Snapshot{
		Lines:     l.Lines(),
		ItemCount: l.ItemCount(),
		Total:     l.Total(),
	}
}

// Snapshot is a detached view of the ledger suitable for rendering or for
// freezing a checkout subject.
type Snapshot struct {
	Lines     []Line          `json:"lines"`
	ItemCount int             `json:"item_count"`
	Total     decimal.Decimal `json:"total"`
}
