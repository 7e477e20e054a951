package helper

import (
	"strings"
	"testing"

	"shop_manager/constants"
	"shop_manager/model"

	"github.com/stretchr/testify/assert"
)

func Test_ApplyPromotion_NoPromotion(t *testing.T) {
	price, applied := ApplyPromotion(200, nil)

	assert.Equal(t, float64(200), price)
	assert.False(t, applied)
}

func Test_ApplyPromotion_Percent(t *testing.T) {
	promotion := &model.Promotion{
		DiscountType:        constants.DISCOUNT_TYPE_PERCENT,
		DiscountValue:       10,
		OrderValueCondition: 100,
	}

	// 3 sản phẩm giá 100 → tổng 300 ≥ 100 → giảm 10%
	price, applied := ApplyPromotion(300, promotion)

	assert.Equal(t, float64(270), price)
	assert.True(t, applied)
}

func Test_ApplyPromotion_Fixed(t *testing.T) {
	promotion := &model.Promotion{
		DiscountType:        constants.DISCOUNT_TYPE_FIXED,
		DiscountValue:       50,
		OrderValueCondition: 100,
	}

	price, applied := ApplyPromotion(300, promotion)

	assert.Equal(t, float64(250), price)
	assert.True(t, applied)
}

func Test_ApplyPromotion_FixedCanGoNegative(t *testing.T) {
	// khuyến mãi fixed lớn hơn tổng tiền: giá âm được giữ nguyên, không chặn về 0
	promotion := &model.Promotion{
		DiscountType:        constants.DISCOUNT_TYPE_FIXED,
		DiscountValue:       500,
		OrderValueCondition: 100,
	}

	price, applied := ApplyPromotion(300, promotion)

	assert.Equal(t, float64(-200), price)
	assert.True(t, applied)
}

func Test_ApplyPromotion_BelowCondition(t *testing.T) {
	promotion := &model.Promotion{
		DiscountType:        constants.DISCOUNT_TYPE_PERCENT,
		DiscountValue:       10,
		OrderValueCondition: 500,
	}

	price, applied := ApplyPromotion(300, promotion)

	assert.Equal(t, float64(300), price)
	assert.False(t, applied)
}

func Test_ApplyPromotion_ExactCondition(t *testing.T) {
	promotion := &model.Promotion{
		DiscountType:        constants.DISCOUNT_TYPE_PERCENT,
		DiscountValue:       10,
		OrderValueCondition: 300,
	}

	// điều kiện là >=, không phải >
	price, applied := ApplyPromotion(300, promotion)

	assert.Equal(t, float64(270), price)
	assert.True(t, applied)
}

func Test_ApplyPromotion_UnknownTypeFallsBackToFixed(t *testing.T) {
	// mọi loại khác 'percent' được trừ thẳng như 'fixed'
	promotion := &model.Promotion{
		DiscountType:        "special",
		DiscountValue:       30,
		OrderValueCondition: 0,
	}

	price, applied := ApplyPromotion(200, promotion)

	assert.Equal(t, float64(170), price)
	assert.True(t, applied)
}

func Test_GenerateOrderCode(t *testing.T) {
	code := GenerateOrderCode()
	other := GenerateOrderCode()

	assert.True(t, strings.HasPrefix(code, "ORD-"))
	assert.Len(t, code, 16)
	assert.NotEqual(t, code, other)
}
