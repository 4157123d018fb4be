package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zamanlab/bank-advisor-be/internal/models"
)

// Catalog is the process-wide, read-only product set. It is safe for
// unsynchronized concurrent reads; all accessors return copies.
type Catalog struct {
	products   []models.Product
	index      map[string]int // id -> position in products
	categories []string
	types      []string
}

// New builds the catalog from the bank's default product lineup.
// Seed data is validated at construction; a broken lineup is a programmer
// error, so New panics rather than returning it.
func New() *Catalog {
	c, err := NewWithProducts(defaultProducts)
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid seed data: %v", err))
	}
	return c
}

// NewWithProducts builds a catalog from an explicit product list,
// preserving order. Products must have unique ids; priced products must
// have MinAmount <= MaxAmount when bounded, and a ceiling requires a floor.
func NewWithProducts(products []models.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]models.Product, len(products)),
		index:    make(map[string]int, len(products)),
	}
	copy(c.products, products)

	seenCategories := map[string]bool{}
	seenTypes := map[string]bool{}
	for i, p := range c.products {
		if p.ID == "" {
			return nil, fmt.Errorf("product at position %d has empty id", i)
		}
		if _, dup := c.index[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		if p.MinAmount == nil && p.MaxAmount != nil {
			return nil, fmt.Errorf("product %q: max amount set without a min amount", p.ID)
		}
		if p.MinAmount != nil && p.MaxAmount != nil && *p.MinAmount > *p.MaxAmount {
			return nil, fmt.Errorf("product %q: min amount %d exceeds max amount %d", p.ID, *p.MinAmount, *p.MaxAmount)
		}
		c.index[p.ID] = i
		if !seenCategories[p.Category] {
			seenCategories[p.Category] = true
			c.categories = append(c.categories, p.Category)
		}
		if !seenTypes[p.Type] {
			seenTypes[p.Type] = true
			c.types = append(c.types, p.Type)
		}
	}
	return c, nil
}

// AllProducts returns every product in stable catalog order.
func (c *Catalog) AllProducts() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Search filters the catalog by a free-text query and a set of filters.
// The query matches name, description, type or category (case-insensitive
// substring, OR across fields); filters are conjunctive and compose with
// the query.
func (c *Catalog) Search(query string, filter models.SearchFilter) []models.Product {
	var results []models.Product
	q := strings.ToLower(query)
	for _, p := range c.products {
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		if !matchesFilter(p, filter) {
			continue
		}
		results = append(results, p)
	}
	return results
}

func matchesQuery(p models.Product, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Type), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}

func matchesFilter(p models.Product, f models.SearchFilter) bool {
	if f.Category != "" && !strings.Contains(strings.ToLower(p.Category), strings.ToLower(f.Category)) {
		return false
	}
	if f.Type != "" && !strings.Contains(strings.ToLower(p.Type), strings.ToLower(f.Type)) {
		return false
	}
	if f.Islamic != nil && p.Islamic != *f.Islamic {
		return false
	}
	if f.Target != "" && p.Target != f.Target {
		return false
	}
	// Affordability checks, intentionally not a range intersection: the
	// requested min amount must be reachable from the product floor, and
	// the requested max amount must fit under the product ceiling.
	// Unpriced products fail any amount check.
	if f.MinAmount != nil && (p.MinAmount == nil || *p.MinAmount > *f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil {
		if p.MinAmount == nil {
			return false
		}
		if p.MaxAmount != nil && *p.MaxAmount < *f.MaxAmount {
			return false
		}
	}
	return true
}

// ByID looks up a product. The boolean reports whether it exists.
func (c *Catalog) ByID(id string) (models.Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i], true
}

// ByCategory returns products whose category contains the given value,
// case-insensitive.
func (c *Catalog) ByCategory(category string) []models.Product {
	return c.Search("", models.SearchFilter{Category: category})
}

// ByType returns products whose type contains the given value,
// case-insensitive.
func (c *Catalog) ByType(productType string) []models.Product {
	return c.Search("", models.SearchFilter{Type: productType})
}

// ByAmount returns priced products whose [min, max] range contains amount.
// A nil MaxAmount counts as unbounded; unpriced products never match.
func (c *Catalog) ByAmount(amount int) []models.Product {
	var results []models.Product
	for _, p := range c.products {
		if p.MinAmount == nil {
			continue
		}
		if amount >= *p.MinAmount && (p.MaxAmount == nil || amount <= *p.MaxAmount) {
			results = append(results, p)
		}
	}
	return results
}

// ByAge returns products available at the given age. Products without an
// age range always match; a malformed range never does.
func (c *Catalog) ByAge(age int) []models.Product {
	var results []models.Product
	for _, p := range c.products {
		if p.AgeRange == "" {
			results = append(results, p)
			continue
		}
		min, max, ok := parseAgeRange(p.AgeRange)
		if ok && age >= min && age <= max {
			results = append(results, p)
		}
	}
	return results
}

// parseAgeRange parses an inclusive "18-63" style range.
func parseAgeRange(ageRange string) (int, int, bool) {
	parts := strings.SplitN(ageRange, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	max, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return min, max, true
}

// IslamicProducts returns the Sharia-compliant subset.
func (c *Catalog) IslamicProducts() []models.Product {
	islamic := true
	return c.Search("", models.SearchFilter{Islamic: &islamic})
}

// RetailProducts returns products targeted at retail customers.
func (c *Catalog) RetailProducts() []models.Product {
	return c.Search("", models.SearchFilter{Target: models.TargetRetail})
}

// SMEProducts returns products targeted at business customers.
func (c *Catalog) SMEProducts() []models.Product {
	return c.Search("", models.SearchFilter{Target: models.TargetSME})
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Types returns the distinct product types in first-seen order.
func (c *Catalog) Types() []string {
	out := make([]string, len(c.types))
	copy(out, c.types)
	return out
}

// Stats computes derived counts fresh on every call; the catalog is static
// so no caching is needed.
func (c *Catalog) Stats() models.CatalogStats {
	stats := models.CatalogStats{
		TotalProducts: len(c.products),
		Categories:    len(c.categories),
		Types:         len(c.types),
	}
	for _, p := range c.products {
		if p.Islamic {
			stats.IslamicProducts++
		} else {
			stats.RegularProducts++
		}
		switch p.Target {
		case models.TargetRetail:
			stats.RetailProducts++
		case models.TargetSME:
			stats.SMEProducts++
		}
	}
	return stats
}
