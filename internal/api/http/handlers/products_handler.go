package handlers

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Aadi-1821/RustynKart-backend/internal/api/dto"
	"github.com/Aadi-1821/RustynKart-backend/internal/service"
	util "github.com/Aadi-1821/RustynKart-backend/pkg/util"
)

// ProductsHandler exposes catalog endpoints. Listing is public; mutation sits
// behind the admin guard.
type ProductsHandler struct {
	products *service.ProductService
}

// NewProductsHandler constructs the handler.
func NewProductsHandler(productService *service.ProductService) *ProductsHandler {
	return &ProductsHandler{products: productService}
}

// imageFields are the multipart file slots on product creation.
var imageFields = []string{"image1", "image2", "image3", "image4"}

// Add handles POST /api/product/addproduct (multipart form).
func (h *ProductsHandler) Add(c *fiber.Ctx) error {
	name := c.FormValue("name")
	if name == "" {
		return util.NewValidationError("name is required")
	}
	price, err := strconv.ParseInt(c.FormValue("price", "0"), 10, 64)
	if err != nil {
		return util.NewValidationError("price must be a number")
	}

	var sizes []string
	if raw := c.FormValue("sizes"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &sizes); err != nil {
			return util.NewValidationError("sizes must be a JSON array of strings")
		}
	}

	images := make([]*multipart.FileHeader, 0, len(imageFields))
	for _, field := range imageFields {
		file, err := c.FormFile(field)
		if err != nil {
			images = append(images, nil)
			continue
		}
		images = append(images, file)
	}

	product, err := h.products.AddProduct(c.Context(), service.ProductCreateInput{
		Name:        name,
		Description: c.FormValue("description"),
		Price:       price,
		Category:    c.FormValue("category"),
		SubCategory: c.FormValue("subCategory"),
		Sizes:       sizes,
		Bestseller:  c.FormValue("bestseller") == "true",
		Images:      images,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewProductResponse(product))
}

// List handles GET /api/product/list.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	products, err := h.products.ListProducts(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, dto.NewProductResponse(&products[i]))
	}
	return c.JSON(items)
}

// Remove handles POST /api/product/remove/:id.
func (h *ProductsHandler) Remove(c *fiber.Ctx) error {
	if err := h.products.RemoveProduct(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Product removed"})
}
