package customers

import "github.com/loyaltyworks/rewards-backend/pkg/db/models"

// CustomerDTO is the wire representation of a customer.
type CustomerDTO struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Points *int   `json:"points,omitempty"`
}

// NewCustomerDTO maps a customer model onto its DTO.
func NewCustomerDTO(customer *models.Customer) *CustomerDTO {
	if customer == nil {
		return nil
	}
	dto := &CustomerDTO{
		ID:    customer.ID,
		Name:  customer.Name,
		Email: customer.Email,
	}
	if customer.LoyaltyAccount != nil {
		points := customer.LoyaltyAccount.Points
		dto.Points = &points
	}
	return dto
}

// NewCustomerDTOs maps a slice of customer models.
func NewCustomerDTOs(rows []models.Customer) []CustomerDTO {
	out := make([]CustomerDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewCustomerDTO(&rows[i]))
	}
	return out
}
