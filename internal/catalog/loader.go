package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed data/books.yaml
var defaultData []byte

type fileRecord struct {
	Categories []categoryRecord `yaml:"categories"`
	Books      []bookRecord     `yaml:"books"`
}

type categoryRecord struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
	Color string `yaml:"color"`
}

type bookRecord struct {
	ID            int     `yaml:"id"`
	Title         string  `yaml:"title"`
	Author        string  `yaml:"author"`
	Price         string  `yaml:"price"`
	OriginalPrice string  `yaml:"original_price"`
	Rating        float64 `yaml:"rating"`
	Reviews       int     `yaml:"reviews"`
	Category      string  `yaml:"category"`
	Image         string  `yaml:"image"`
	Description   string  `yaml:"description"`
	IsNew         bool    `yaml:"is_new"`
	IsBestseller  bool    `yaml:"is_bestseller"`
	ISBN          string  `yaml:"isbn"`
	PublishedDate string  `yaml:"published_date"`
	Publisher     string  `yaml:"publisher"`
	Pages         int     `yaml:"pages"`
	Language      string  `yaml:"language"`
}

func (r bookRecord) toBook() (Book, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return Book{}, fmt.Errorf("book %d: invalid price %q: %w", r.ID, r.Price, err)
	}
	original := price
	if r.OriginalPrice != "" {
		original, err = decimal.NewFromString(r.OriginalPrice)
		if err != nil {
			return Book{}, fmt.Errorf("book %d: invalid original price %q: %w", r.ID, r.OriginalPrice, err)
		}
	}
	return Book{
		ID:            r.ID,
		Title:         r.Title,
		Author:        r.Author,
		Price:         price,
		OriginalPrice: original,
		Rating:        r.Rating,
		ReviewCount:   r.Reviews,
		Category:      r.Category,
		ImageRef:      r.Image,
		Description:   r.Description,
		IsNew:         r.IsNew,
		IsBestseller:  r.IsBestseller,
		ISBN:          r.ISBN,
		PublishedDate: r.PublishedDate,
		Publisher:     r.Publisher,
		Pages:         r.Pages,
		Language:      r.Language,
	}, nil
}

// Default builds the Source from the embedded sample catalog.
func Default() (*Source, error) {
	return Decode(bytes.NewReader(defaultData))
}

// LoadFile builds the Source from a YAML file with the embedded schema.
func LoadFile(path string) (*Source, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a YAML catalog document and validates it.
func Decode(r io.Reader) (*Source, error) {
	var doc fileRecord
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	categories := make([]Category, 0, len(doc.Categories))
	for _, c := range doc.Categories {
		categories = append(categories, Category{Name: c.Name, Count: c.Count, ColorTag: c.Color})
	}

	books := make([]Book, 0, len(doc.Books))
	for _, rec := range doc.Books {
		b, err := rec.toBook()
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}

	return New(books, categories)
}
