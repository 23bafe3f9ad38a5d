package domain

import "time"

// Product is a catalog entry. Image URLs point at object storage; any of them
// may be empty when fewer than four images were uploaded.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       int64
	Category    string
	SubCategory string
	Sizes       []string
	Bestseller  bool
	Image1      string
	Image2      string
	Image3      string
	Image4      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
