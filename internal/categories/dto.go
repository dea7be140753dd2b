package categories

import "github.com/loyaltyworks/rewards-backend/pkg/db/models"

// CategoryDTO is the wire representation of a category.
type CategoryDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// NewCategoryDTO maps a category model onto its DTO.
func NewCategoryDTO(category *models.Category) *CategoryDTO {
	if category == nil {
		return nil
	}
	return &CategoryDTO{
		ID:   category.ID,
		Name: category.Name,
	}
}

// NewCategoryDTOs maps a slice of category models.
func NewCategoryDTOs(rows []models.Category) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewCategoryDTO(&rows[i]))
	}
	return out
}
