package model

type User struct {
	DTO
	Username    string `gorm:"uniqueIndex;not null" validate:"required,min=3,max=50" json:"username"`
	Password    string `gorm:"not null" json:"-"`
	Email       string `json:"email"`
	Fullname    string `json:"fullname"`
	Numberphone string `json:"numberphone"`
}

type Users []User

type RegisterInput struct {
	Username    string `validate:"required,min=3,max=50" json:"username"`
	Password    string `validate:"required,min=6,max=50" json:"password"`
	Email       string `validate:"omitempty,email" json:"email"`
	Fullname    string `json:"fullname"`
	Numberphone string `json:"numberphone"`
}

type LoginInput struct {
	Username string `validate:"required" json:"username"`
	Password string `validate:"required" json:"password"`
}

type ChangePasswordInput struct {
	Username    string `validate:"required" json:"username"`
	OldPassword string `validate:"required" json:"oldPassword"`
	NewPassword string `validate:"required,min=6,max=50" json:"newPassword"`
}

type ChangeInfoInput struct {
	Username    string `validate:"required" json:"username"`
	Password    string `validate:"required" json:"password"`
	Email       string `validate:"omitempty,email" json:"email"`
	Fullname    string `json:"fullname"`
	Numberphone string `json:"numberphone"`
}
