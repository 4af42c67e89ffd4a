package api

// CreateAccountRequest links a terminal account to the authenticated user.
type CreateAccountRequest struct {
	Login  int64  `json:"login" binding:"required"`
	Server string `json:"server" binding:"required"`
	Label  string `json:"label"`
}

// TerminalAccountResponse is one linked terminal account.
type TerminalAccountResponse struct {
	ID     uint   `json:"id"`
	Login  int64  `json:"login"`
	Server string `json:"server"`
	Label  string `json:"label"`
}
