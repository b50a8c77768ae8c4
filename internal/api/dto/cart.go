package dto

import "github.com/sara/shopease/internal/api/validation"

type CartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (r CartItemRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.ProductID == "" {
		errors["product_id"] = "Product ID is required"
	} else if !validation.IsValidUUID(r.ProductID) {
		errors["product_id"] = "Product ID is invalid"
	}

	return errors
}
