package dto

type ProductRequest struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Image        string  `json:"image"`
	Category     string  `json:"category"`
	CountInStock int     `json:"count_in_stock"`
	Brand        string  `json:"brand"`
}

func (r ProductRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Name == "" {
		errors["name"] = "Name is required"
	}
	if r.Price < 0 {
		errors["price"] = "Price must not be negative"
	}
	if r.CountInStock < 0 {
		errors["count_in_stock"] = "Stock count must not be negative"
	}

	return errors
}
