package models

// Credentials is the body of the register and login requests.
type Credentials struct {
	Account  string `json:"account"`
	Password string `json:"password"`
}

// User is a registered account as kept by the blob server. Only the bcrypt
// hash of the password is stored.
type User struct {
	Account      string `json:"account"`
	PasswordHash string `json:"passwordHash"`
	CreatedAt    int64  `json:"createdAt"`
}
