package domain

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

type AuthResponse struct {
	Authenticated bool   `json:"authenticated"`
	Token         string `json:"token,omitempty"`
	UserID        int    `json:"user_id,omitempty"`
	ErrorMessage  string `json:"error_message,omitempty"`
}

type UserRepository interface {
	CreateUser(user *User) (*User, error)
	GetUserByUsername(username string) (*User, error)
}
