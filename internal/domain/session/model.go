package session

import "time"

// Role is the permission level attached to a session
type Role string

// RoleAdmin is granted to every login.
const RoleAdmin Role = "Admin"

// Session is the single signed-in identity. Its token is opaque and is not
// verified anywhere in the core.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}
