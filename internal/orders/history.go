package orders

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/booknest/storefront/pkg/enums"
	"github.com/booknest/storefront/pkg/pagination"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// History lists a shopper's orders, newest first. It is not safe for
// concurrent use.
type History struct {
	orders []Order
}

// NewHistory copies seed, which must already be newest first.
func NewHistory(seed []Order) *History {
	h := &History{orders: make([]Order, 0, len(seed))}
	for _, o := range seed {
		h.orders = append(h.orders, o.Clone())
	}
	return h
}

// Record prepends a completed order.
func (h *History) Record(o Order) {
	h.orders = append([]Order{o.Clone()}, h.orders...)
}

func (h *History) List() []Order {
	out := make([]Order, 0, len(h.orders))
	for _, o := range h.orders {
		out = append(out, o.Clone())
	}
	return out
}

func (h *History) Find(id string) (Order, bool) {
	for _, o := range h.orders {
		if o.ID == id {
			return o.Clone(), true
		}
	}
	return Order{}, false
}

func (h *History) Len() int {
	return len(h.orders)
}

// Page is one slice of the history plus the cursor for the next slice.
type Page struct {
	Orders     []Order `json:"orders"`
	Count      int     `json:"count"`
	Total      int     `json:"total"`
	NextCursor string  `json:"next_cursor,omitempty"`
}

// Page returns up to params.Limit orders after the cursor, newest first. A
// cursor that names no order in the history is rejected, which also covers
// cursors issued to another session.
func (h *History) Page(params pagination.Params) (Page, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return Page{}, err
	}
	start := 0
	if cursor != nil {
		start = -1
		for i, o := range h.orders {
			if o.ID == cursor.ID && o.PlacedAt.Equal(cursor.PlacedAt) {
				start = i + 1
				break
			}
		}
		if start < 0 {
			return Page{}, fmt.Errorf("cursor does not match an order")
		}
	}

	end := min(start+pagination.NormalizeLimit(params.Limit), len(h.orders))
	page := Page{Orders: make([]Order, 0, end-start), Total: len(h.orders)}
	for _, o := range h.orders[start:end] {
		page.Orders = append(page.Orders, o.Clone())
	}
	page.Count = len(page.Orders)
	if end < len(h.orders) {
		last := h.orders[end-1]
		page.NextCursor = pagination.EncodeCursor(pagination.Cursor{PlacedAt: last.PlacedAt, ID: last.ID})
	}
	return page, nil
}

//go:embed data/sample_orders.yaml
var sampleData []byte

type historyRecord struct {
	Orders []orderRecord `yaml:"orders"`
}

type orderRecord struct {
	ID     string       `yaml:"id"`
	Date   string       `yaml:"date"`
	Status string       `yaml:"status"`
	Total  string       `yaml:"total"`
	Items  []itemRecord `yaml:"items"`
}

type itemRecord struct {
	ID       int    `yaml:"id"`
	Title    string `yaml:"title"`
	Author   string `yaml:"author"`
	Price    string `yaml:"price"`
	Image    string `yaml:"image"`
	Quantity int    `yaml:"quantity"`
}

// SampleHistory returns the embedded seed orders.
func SampleHistory() ([]Order, error) {
	return DecodeHistory(bytes.NewReader(sampleData))
}

func LoadHistoryFile(path string) ([]Order, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open order history file: %w", err)
	}
	defer f.Close()
	return DecodeHistory(f)
}

func DecodeHistory(r io.Reader) ([]Order, error) {
	var doc historyRecord
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse order history: %w", err)
	}

	out := make([]Order, 0, len(doc.Orders))
	seen := map[string]struct{}{}
	var errs error
	for _, rec := range doc.Orders {
		if rec.ID == "" {
			errs = multierr.Append(errs, fmt.Errorf("order id is required"))
			continue
		}
		if _, dup := seen[rec.ID]; dup {
			errs = multierr.Append(errs, fmt.Errorf("duplicate order id %q", rec.ID))
			continue
		}
		seen[rec.ID] = struct{}{}

		order, err := rec.toOrder()
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		out = append(out, order)
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

// toOrder reports every invalid field of the record.
func (rec orderRecord) toOrder() (Order, error) {
	var errs error
	status, err := enums.ParseOrderStatus(rec.Status)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("order %s: %w", rec.ID, err))
	}
	total, err := decimal.NewFromString(rec.Total)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("order %s: invalid total %q: %w", rec.ID, rec.Total, err))
	}

	items := make([]Item, 0, len(rec.Items))
	for _, it := range rec.Items {
		price, err := decimal.NewFromString(it.Price)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("order %s: invalid price %q: %w", rec.ID, it.Price, err))
		}
		if it.Quantity < 1 {
			errs = multierr.Append(errs, fmt.Errorf("order %s: item %d quantity must be at least 1", rec.ID, it.ID))
		}
		items = append(items, Item{
			BookID:   it.ID,
			Title:    it.Title,
			Author:   it.Author,
			ImageRef: it.Image,
			Price:    price,
			Quantity: it.Quantity,
		})
	}
	if errs != nil {
		return Order{}, errs
	}

	return Order{
		ID:        rec.ID,
		Items:     items,
		OrderDate: rec.Date,
		Total:     total,
		Status:    status,
	}, nil
}
