package transport

import "time"

type RegisterRequest struct {
	Username string `json:"username" form:"username" validate:"required,max=100"`
	Email    string `json:"email"    form:"email"    validate:"required,email,max=256"`
	Password string `json:"password" form:"password" validate:"required,min=6,max=100"`
}

// LoginRequest takes a username or an email in the same field.
type LoginRequest struct {
	Identifier string `json:"identifier" form:"identifier" validate:"required"`
	Password   string `json:"password"   form:"password"   validate:"required"`
}

type AuthResponse struct {
	Token    string `json:"token"`
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

type AdminCreateUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email,max=256"`
	Password string `json:"password" validate:"required,min=6"`
	IsAdmin  bool   `json:"is_admin"`
}

type AdminUpdateUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email,max=256"`
	IsAdmin  bool   `json:"is_admin"`
}

type UpdateUserRoleRequest struct {
	IsAdmin bool `json:"is_admin"`
}

// UserView is the admin projection of a user, without the password hash.
type UserView struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileUpdateRequest is bound from a multipart form; the avatar file
// travels separately.
type ProfileUpdateRequest struct {
	Username    string `form:"username"     validate:"required,max=100"`
	Email       string `form:"email"        validate:"required,email,max=256"`
	NewPassword string `form:"new_password" validate:"omitempty,min=6,max=100"`
}

// Product requests are bound from multipart forms. IsActive is a pointer so
// an absent field keeps the default (active) instead of collapsing to false.
type CreateProductRequest struct {
	Name          string   `form:"name"           validate:"required,max=120"`
	Description   string   `form:"description"    validate:"max=1000"`
	Price         float64  `form:"price"          validate:"gte=0"`
	DiscountPrice *float64 `form:"discount_price" validate:"omitempty,gte=0"`
	Sku           string   `form:"sku"            validate:"required,max=50"`
	Stock         int      `form:"stock"          validate:"gte=0"`
	IsActive      *bool    `form:"is_active"`
	Slug          string   `form:"slug"           validate:"max=160"`
}

type UpdateProductRequest struct {
	Name          string   `form:"name"           validate:"required,max=120"`
	Description   string   `form:"description"    validate:"max=1000"`
	Price         float64  `form:"price"          validate:"gte=0"`
	DiscountPrice *float64 `form:"discount_price" validate:"omitempty,gte=0"`
	Sku           string   `form:"sku"            validate:"required,max=50"`
	Stock         int      `form:"stock"          validate:"gte=0"`
	IsActive      *bool    `form:"is_active"`
	Slug          string   `form:"slug"           validate:"max=160"`
}
