package domain

// RoleRef identifies the position a principal holds, projected as its
// access-control role.
type RoleRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Principal is the authenticated identity attached to a request after
// token verification. It is built once per request by the authentication
// middleware and passed by value; nothing downstream mutates it.
type Principal struct {
	UserID    uint    `json:"user_id"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Role      RoleRef `json:"role"`
}
