package service

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/jackc/pgx/v5"

	"github.com/Aadi-1821/RustynKart-backend/internal/domain"
	"github.com/Aadi-1821/RustynKart-backend/internal/media"
	"github.com/Aadi-1821/RustynKart-backend/internal/repository"
	util "github.com/Aadi-1821/RustynKart-backend/pkg/util"
)

// ProductService coordinates catalog workflows.
type ProductService struct {
	products repository.ProductRepository
	uploader *media.Uploader
}

// NewProductService builds the service. uploader may be nil when no object
// storage is configured; products are then created without images.
func NewProductService(products repository.ProductRepository, uploader *media.Uploader) *ProductService {
	return &ProductService{products: products, uploader: uploader}
}

// ProductCreateInput describes a new catalog entry. Images holds up to four
// optional uploads in display order.
type ProductCreateInput struct {
	Name        string
	Description string
	Price       int64
	Category    string
	SubCategory string
	Sizes       []string
	Bestseller  bool
	Images      []*multipart.FileHeader
}

// AddProduct uploads images and persists the product.
func (s *ProductService) AddProduct(ctx context.Context, input ProductCreateInput) (*domain.Product, error) {
	if input.Name == "" {
		return nil, util.NewValidationError("name is required")
	}
	if input.Price < 0 {
		return nil, util.NewValidationError("price must be non-negative")
	}

	urls := make([]string, 4)
	for i, file := range input.Images {
		if i >= len(urls) {
			break
		}
		url, err := s.uploader.UploadImage(ctx, file)
		if err != nil {
			return nil, util.NewStorageError(err)
		}
		urls[i] = url
	}

	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		SubCategory: input.SubCategory,
		Sizes:       input.Sizes,
		Bestseller:  input.Bestseller,
		Image1:      urls[0],
		Image2:      urls[1],
		Image3:      urls[2],
		Image4:      urls[3],
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// ListProducts returns the full catalog.
func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

// RemoveProduct deletes a catalog entry.
func (s *ProductService) RemoveProduct(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("product not found")
		}
		return err
	}
	return nil
}
