package dto

import (
	"time"

	"github.com/Aadi-1821/RustynKart-backend/internal/domain"
)

// ProductResponse is the public view of a catalog entry.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Category    string    `json:"category"`
	SubCategory string    `json:"subCategory"`
	Sizes       []string  `json:"sizes"`
	Bestseller  bool      `json:"bestseller"`
	Image1      string    `json:"image1,omitempty"`
	Image2      string    `json:"image2,omitempty"`
	Image3      string    `json:"image3,omitempty"`
	Image4      string    `json:"image4,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewProductResponse maps a domain product.
func NewProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		SubCategory: p.SubCategory,
		Sizes:       p.Sizes,
		Bestseller:  p.Bestseller,
		Image1:      p.Image1,
		Image2:      p.Image2,
		Image3:      p.Image3,
		Image4:      p.Image4,
		CreatedAt:   p.CreatedAt,
	}
}
