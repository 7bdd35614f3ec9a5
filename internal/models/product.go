package models

import "github.com/shopspring/decimal"

// Product represents a grocery item in the storefront catalog
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Weight   string          `json:"weight"`
	Category string          `json:"category"`
	Image    string          `json:"image"`
}

// Category groups products on the storefront filter bar
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
