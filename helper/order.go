package helper

import (
	"strings"

	"shop_manager/constants"
	"shop_manager/model"

	"github.com/google/uuid"
)

// ApplyPromotion tính giá sau giảm cho một đơn hàng từ tổng tiền gốc.
// Trả về giá đã giảm và true nếu khuyến mãi được áp dụng (tổng tiền đạt
// điều kiện tối thiểu). Giá sau giảm không chặn dưới 0: khuyến mãi fixed
// lớn hơn tổng tiền sẽ cho giá âm.
func ApplyPromotion(originalPrice float64, promotion *model.Promotion) (float64, bool) {
	if promotion == nil || originalPrice < promotion.OrderValueCondition {
		return originalPrice, false
	}
	if promotion.DiscountType == constants.DISCOUNT_TYPE_PERCENT {
		return originalPrice - originalPrice*promotion.DiscountValue/100, true
	}
	return originalPrice - promotion.DiscountValue, true
}

// GenerateOrderCode sinh mã đơn hàng công khai (ví dụ: ORD-1A2B3C4D5E6F)
func GenerateOrderCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ORD-" + raw[:12]
}
