package models

import "github.com/google/uuid"

type Cart struct {
	Base
	UserID uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Items  []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
}

func (Cart) TableName() string {
	return "carts"
}

type CartItem struct {
	Base
	CartID    uuid.UUID `gorm:"type:uuid;index:idx_cart_product,unique;not null" json:"cart_id"`
	ProductID uuid.UUID `gorm:"type:uuid;index:idx_cart_product,unique;not null" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
