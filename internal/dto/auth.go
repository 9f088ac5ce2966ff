package dto

// RegisterRequest is the JSON body for POST /api/register. Field presence is
// checked in the service layer, not by binding tags, so the error message
// stays the wire-contract "Missing fields".
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body for POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
