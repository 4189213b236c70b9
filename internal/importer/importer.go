package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"coffeestore/internal/domain"
	"github.com/shopspring/decimal"
)

type ProductWriter interface {
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
}

// CSVImporter bulk-loads catalog products from a CSV export. Expected
// header columns: name, description, price, image, stock, category,
// sub_category. Only name, price and category are required per row.
type CSVImporter struct {
	reader   *csv.Reader
	products ProductWriter
}

func NewCSVImporter(r io.Reader, products ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:   csvr,
		products: products,
	}
}

// Run parses CSV rows and creates one product per row, returning how many
// were imported. The first invalid row aborts the run.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	var imported int
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		p, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if p == nil {
			continue
		}

		if _, err := i.products.Create(ctx, *p); err != nil {
			return imported, fmt.Errorf("create product %q: %w", p.Name, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (*domain.Product, error) {
	name := pick(record, index, "name")
	priceStr := pick(record, index, "price")
	category := pick(record, index, "category")

	// Blank padding rows are common in spreadsheet exports.
	if name == "" && priceStr == "" && category == "" {
		return nil, nil
	}
	if name == "" || priceStr == "" || category == "" {
		return nil, fmt.Errorf("invalid product row (missing required fields) for name %q", name)
	}
	if !domain.ValidCategory(category) {
		return nil, fmt.Errorf("invalid category %q for product %q", category, name)
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q for product %q", priceStr, name)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("negative price %q for product %q", priceStr, name)
	}

	stock := 1
	if s := pick(record, index, "stock"); s != "" {
		stock, err = strconv.Atoi(s)
		if err != nil || stock < 0 {
			return nil, fmt.Errorf("invalid stock %q for product %q", s, name)
		}
	}

	return &domain.Product{
		Name:        name,
		Description: pick(record, index, "description"),
		Price:       price,
		Image:       pick(record, index, "image"),
		Stock:       stock,
		Category:    category,
		SubCategory: pick(record, index, "sub_category"),
	}, nil
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
