package domain

import "time"

// PriceRange is one quantity tier of a product's pricing. Tiers are kept
// ordered by initial quantity.
type PriceRange struct {
	ID              int64 `json:"id" db:"id"`
	ProductID       int64 `json:"-" db:"product_id"`
	InitialQuantity int64 `json:"initialQuantity" db:"initial_quantity"`
	FinalQuantity   int64 `json:"finalQuantity" db:"final_quantity"`
	PricePerRange   int64 `json:"pricePerRange" db:"price_per_range"`
}

// ProductDetails holds the physical attributes of a product. A product has
// at most one details record.
type ProductDetails struct {
	ID                     int64  `json:"id" db:"id"`
	ProductID              int64  `json:"-" db:"product_id"`
	Size                   string `json:"size" db:"size"`
	Weight                 string `json:"weight" db:"weight"`
	MinimumOrderStartsFrom int64  `json:"minimumOrderStartsFrom" db:"minimum_order_starts_from"`
	Material               string `json:"material" db:"material"`
	Color                  string `json:"color" db:"color"`
	LoadCapacity           string `json:"loadCapacity" db:"load_capacity"`
}

// Product belongs to exactly one seller. Rating and review counters are
// owned by the server and start at zero.
type Product struct {
	ID                  int64           `json:"id" db:"id"`
	SellerID            int64           `json:"sellerId" db:"seller_id"`
	Name                string          `json:"name" db:"name"`
	AverageRating       float32         `json:"averageRating" db:"average_rating"`
	NumberOfReviews     int64           `json:"numberOfReviews" db:"number_of_reviews"`
	Availability        int64           `json:"availability" db:"availability"`
	Description         string          `json:"description" db:"description"`
	DetailedDescription string          `json:"detailedDescription" db:"detailed_description"`
	PriceRanges         []PriceRange    `json:"productPriceRanges" db:"-"`
	Details             *ProductDetails `json:"productDetails,omitempty" db:"-"`
	CreatedAt           time.Time       `json:"createdAt" db:"created_at"`
}
