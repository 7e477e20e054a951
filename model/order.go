package model

type Order struct {
	DTO
	PublicCode      string     `gorm:"unique;size:20" json:"publicCode"`
	UserId          uint       `gorm:"not null;index" json:"iduser"`
	User            *User      `gorm:"foreignKey:UserId" json:"user,omitempty"`
	PromotionId     *uint      `json:"idpromotion"`
	Promotion       *Promotion `gorm:"foreignKey:PromotionId" json:"promotion,omitempty"`
	Status          string     `gorm:"default:'pending';not null" json:"status"` // pending, confirmed, delivered, cancelled
	OriginalPrice   float64    `gorm:"type:decimal(12,2)" json:"originalPrice"`
	DiscountedPrice *float64   `gorm:"type:decimal(12,2)" json:"discountedPrice"`
}

type Orders []Order

// SubOrder là một dòng sản phẩm trong đơn hàng, giá được chụp tại thời điểm mua.
type SubOrder struct {
	DTO
	OrderId   uint     `gorm:"not null;index" json:"idorder"`
	ProductId uint     `gorm:"not null;index" json:"idproduct"`
	Product   *Product `gorm:"foreignKey:ProductId" json:"product,omitempty"`
	Price     float64  `gorm:"type:decimal(12,2);not null" json:"price"`
	Quantity  int      `gorm:"not null" json:"quantity"`
	Size      string   `json:"size"`
}

type SubOrders []SubOrder

type OrderItemInput struct {
	ProductId uint   `validate:"required" json:"idproduct"`
	Quantity  int    `validate:"required,gt=0" json:"quantity"`
	Size      string `json:"size"`
}

type CreateOrderInput struct {
	UserId      uint             `validate:"required" json:"iduser"`
	PromotionId *uint            `json:"idpromotion"`
	Products    []OrderItemInput `validate:"required,min=1,dive" json:"products"`
}

type UpdateOrderStatusInput struct {
	Status string `validate:"required,oneof=pending confirmed delivered cancelled" json:"status"`
}

type RevenueRangeInput struct {
	FromDate string `validate:"required" json:"fromDate"`
	ToDate   string `validate:"required" json:"toDate"`
}
