package model

import "time"

type Promotion struct {
	DTO
	Name                string     `gorm:"not null" validate:"required" json:"name"`
	DiscountType        string     `gorm:"not null" json:"discountType"` //'percent','fixed'
	DiscountValue       float64    `gorm:"type:decimal(12,2);not null" json:"discountValue"`
	OrderValueCondition float64    `gorm:"type:decimal(12,2);not null;default:0" json:"orderValueCondition"`
	StartDate           *time.Time `json:"startDate"`
	EndDate             *time.Time `json:"endDate"`
	Status              string     `gorm:"default:'active';not null" json:"status"` //'active','expired'
}

type Promotions []Promotion

type CreatePromotionInput struct {
	Name                string     `validate:"required" json:"name"`
	DiscountType        string     `validate:"required,oneof=percent fixed" json:"discountType"`
	DiscountValue       float64    `validate:"required,gt=0" json:"discountValue"`
	OrderValueCondition float64    `validate:"gte=0" json:"orderValueCondition"`
	StartDate           *time.Time `json:"startDate"`
	EndDate             *time.Time `json:"endDate"`
}

type EditPromotionInput struct {
	Name                *string    `json:"name,omitempty"`
	DiscountType        *string    `json:"discountType,omitempty" validate:"omitempty,oneof=percent fixed"`
	DiscountValue       *float64   `json:"discountValue,omitempty" validate:"omitempty,gt=0"`
	OrderValueCondition *float64   `json:"orderValueCondition,omitempty" validate:"omitempty,gte=0"`
	EndDate             *time.Time `json:"endDate,omitempty"`
}
