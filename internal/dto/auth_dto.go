package dto

type RegisterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// RegisterResponse matches the wire shape the frontend stores in
// sessionStorage: the token plus the registered email.
type RegisterResponse struct {
	AuthToken string `json:"authtoken"`
	Email     string `json:"email"`
}

type LoginResponse struct {
	AuthToken string `json:"authtoken"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

type UpdateProfileResponse struct {
	AuthToken string `json:"authtoken"`
}

// ErrorResponse is the single-message error body used by the auth and
// catalog routes, e.g. {"error": "Email already exists"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldError mirrors one entry of a validator error list.
type FieldError struct {
	Msg  string `json:"msg"`
	Path string `json:"path"`
}

type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
