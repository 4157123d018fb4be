package models

// Product categories
const (
	CategoryRetail = "Retail"
	CategorySME    = "SME"
)

// Target audiences
const (
	TargetRetail = "retail"
	TargetSME    = "sme"
)

// Product is a single catalog entry. Catalog entries are immutable after
// construction. MinAmount nil marks an unpriced product (fee-based services
// like payment cards); unpriced products never match a numeric comparison.
// MaxAmount nil on a priced product means no upper limit.
type Product struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	Type           string `json:"type"`
	MinAmount      *int   `json:"min_amount,omitempty"`
	MaxAmount      *int   `json:"max_amount,omitempty"`
	Term           string `json:"term,omitempty"`
	AgeRange       string `json:"age_range,omitempty"`
	Fee            string `json:"fee,omitempty"`
	ExpectedReturn string `json:"expected_return,omitempty"`
	Islamic        bool   `json:"islamic"`
	Target         string `json:"target"`
	Description    string `json:"description"`
}

// SearchFilter narrows a catalog search. All set fields are AND'd together.
// Pointer fields distinguish "not supplied" from a zero value.
//
// MinAmount selects products whose floor is at or below the requested amount;
// MaxAmount selects products whose ceiling is at or above it (or unbounded).
// These are affordability checks, not range intersection. Unpriced products
// fail both.
type SearchFilter struct {
	Category  string `json:"category,omitempty"`
	Type      string `json:"type,omitempty"`
	Islamic   *bool  `json:"islamic,omitempty"`
	Target    string `json:"target,omitempty"`
	MinAmount *int   `json:"min_amount,omitempty"`
	MaxAmount *int   `json:"max_amount,omitempty"`
}

type CatalogStats struct {
	TotalProducts   int `json:"total_products"`
	Categories      int `json:"categories"`
	Types           int `json:"types"`
	IslamicProducts int `json:"islamic_products"`
	RegularProducts int `json:"regular_products"`
	RetailProducts  int `json:"retail_products"`
	SMEProducts     int `json:"sme_products"`
}
