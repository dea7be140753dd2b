package cart

import "github.com/loyaltyworks/rewards-backend/pkg/db/models"

// CartItemDTO is the wire representation of one cart line item.
type CartItemDTO struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// CartDTO is the wire representation of a shopping cart.
type CartDTO struct {
	ID         uint          `json:"id"`
	CustomerID uint          `json:"customer_id"`
	Items      []CartItemDTO `json:"items"`
}

// NewCartDTO maps a cart model onto its DTO.
func NewCartDTO(cart *models.ShoppingCart) *CartDTO {
	if cart == nil {
		return nil
	}
	items := make([]CartItemDTO, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, CartItemDTO{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return &CartDTO{
		ID:         cart.ID,
		CustomerID: cart.CustomerID,
		Items:      items,
	}
}
