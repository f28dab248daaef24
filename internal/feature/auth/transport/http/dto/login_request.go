package dto

// LoginReq represents the request body for the /login endpoint.
// It requires a syntactically valid email and a non-empty password.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
