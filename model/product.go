package model

type Product struct {
	DTO
	Name        string  `gorm:"not null" validate:"required" json:"name"`
	Slug        string  `gorm:"uniqueIndex" json:"slug"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"type:decimal(12,2);not null" json:"price"`
	Quantity    int     `gorm:"not null;default:0" json:"quantity"`
	SoldCount   int     `gorm:"not null;default:0" json:"soldCount"`
	ImageUrl    *string `json:"imageUrl"`
	Active      bool    `gorm:"not null;default:true" json:"active"`
}

type Products []Product

type CreateProductInput struct {
	Name        string  `validate:"required" json:"name"`
	Description string  `json:"description"`
	Price       float64 `validate:"required,gt=0" json:"price"`
	Quantity    int     `validate:"gte=0" json:"quantity"`
	ImageUrl    *string `json:"imageUrl"`
}

type EditProductInput struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Quantity    *int     `json:"quantity,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

type FilterProduct struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Active    *bool  `json:"active"`
}
