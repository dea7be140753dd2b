package products

import (
	"github.com/loyaltyworks/rewards-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// ProductDTO is the wire representation of a catalog product.
type ProductDTO struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     *string         `json:"image_url,omitempty"`
	CategoryID   *uint           `json:"category_id,omitempty"`
	CategoryName *string         `json:"category_name,omitempty"`
}

// NewProductDTO maps a product model onto its DTO.
func NewProductDTO(product *models.Product) *ProductDTO {
	if product == nil {
		return nil
	}
	dto := &ProductDTO{
		ID:         product.ID,
		Name:       product.Name,
		Price:      product.Price,
		ImageURL:   product.ImageURL,
		CategoryID: product.CategoryID,
	}
	if product.Category != nil {
		name := product.Category.Name
		dto.CategoryName = &name
	}
	return dto
}

// NewProductDTOs maps a slice of product models.
func NewProductDTOs(rows []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewProductDTO(&rows[i]))
	}
	return out
}
