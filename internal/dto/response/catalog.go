package response

import (
	"event-booking/internal/data/entity"
)

type ServiceItemResponse struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Category       entity.ServiceCategory `json:"category"`
	Description    *string                `json:"description,omitempty"`
	UnitPrice      float64                `json:"unit_price"`
	Customizations map[string]string      `json:"customizations,omitempty"`
}

func ServiceItemToResponse(item *entity.ServiceItem) ServiceItemResponse {
	return ServiceItemResponse{
		ID:             item.ID.String(),
		Name:           item.Name,
		Category:       item.Category,
		Description:    item.Description,
		UnitPrice:      item.UnitPrice,
		Customizations: item.Customizations,
	}
}
