package models

type Product struct {
	Base
	Name         string  `gorm:"not null;index" json:"name"`
	Description  string  `json:"description"`
	Price        float64 `gorm:"not null;index" json:"price"`
	Image        string  `json:"image"`
	Category     string  `gorm:"default:'general';index" json:"category"`
	CountInStock int     `gorm:"default:0" json:"count_in_stock"`
	Brand        string  `json:"brand"`
	Rating       float64 `gorm:"default:0" json:"rating"`
	NumReviews   int     `gorm:"default:0" json:"num_reviews"`
}

func (Product) TableName() string {
	return "products"
}
