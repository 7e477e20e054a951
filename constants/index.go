package constants

const (
	ERROR_INTERNAL_ERROR       = "Đã có lỗi xảy ra"
	ERROR_INPUT                = "Dữ liệu đầu vào không hợp lệ"
	ERROR_CREATE               = "Tạo mới thất bại"
	ERROR_PARSE_DATA_TO_LOCALS = "Lỗi parse dữ liệu"
	CAN_NOT_HASH_PASSWORD      = "Không thể mã hoá mật khẩu"
	NOT_FOUND_RECORDS          = "Không tìm thấy dữ liệu"
	DATA_INPUT_IS_NOT_NUMBER   = "Tham số phải là số"

	MISSING_LOGIN_INPUT = "Thiếu tên đăng nhập hoặc mật khẩu"
	USERNAME_EXISTS     = "Tên người dùng đã tồn tại"
	USERNAME_NOT_EXISTS = "Tên người dùng không tồn tại"
	INVALID_PASSWORD    = "Mật khẩu không chính xác"
	INVALID_OLD_PASSWORD = "Mật khẩu cũ không chính xác"

	REGISTER_SUCCESS        = "Đăng ký thành công"
	LOGIN_SUCCESS           = "Đăng nhập thành công"
	CHANGE_PASSWORD_SUCCESS = "Đổi mật khẩu thành công"
	CHANGE_INFO_SUCCESS     = "Đổi thông tin người dùng thành công"

	NOT_FOUND_PROMOTION = "Không tìm thấy khuyến mãi"
	NOT_FOUND_ORDER     = "Không tìm thấy đơn hàng"
	NOT_FOUND_PRODUCT   = "Không tìm thấy sản phẩm"
	ORDER_CREATED       = "Đơn hàng đã được tạo thành công"
	ORDER_STATUS_UPDATED = "Trạng thái đơn hàng đã được cập nhật"
)

const (
	ORDER_STATUS_PENDING   = "pending"
	ORDER_STATUS_CONFIRMED = "confirmed"
	ORDER_STATUS_DELIVERED = "delivered"
	ORDER_STATUS_CANCELLED = "cancelled"
)

var ORDER_STATUS = []string{
	ORDER_STATUS_PENDING,
	ORDER_STATUS_CONFIRMED,
	ORDER_STATUS_DELIVERED,
	ORDER_STATUS_CANCELLED,
}

const (
	DISCOUNT_TYPE_PERCENT = "percent"
	DISCOUNT_TYPE_FIXED   = "fixed"
)

const (
	PROMOTION_STATUS_ACTIVE  = "active"
	PROMOTION_STATUS_EXPIRED = "expired"
)
