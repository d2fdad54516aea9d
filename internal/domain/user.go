package domain

// Roles issued by the campus SSO
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// UserProfile is the validated identity extracted from an SSO token.
// The platform never stores users; it only consumes this by reference.
type UserProfile struct {
	Sub        string `json:"sub"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
	Year       string `json:"year,omitempty"`
	RollNumber string `json:"roll_number,omitempty"`
}

// IsAdmin reports whether the profile carries the admin role
func (p *UserProfile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
