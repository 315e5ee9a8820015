package models

// User types recognised by the platform.
const (
	UserTypeInvestor     = "investor"
	UserTypeEntrepreneur = "entrepreneur"
)

// User represents an account record in the VentureBridge record store.
type User struct {
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	UserType  string `json:"userType"`
	ProfileID int64  `json:"profileId"`
}

// PublicUser is the representation of a user safe to return to clients.
type PublicUser struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	UserType  string `json:"userType"`
	ProfileID int64  `json:"profileId"`
}

// Public strips the password from a user record.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		UserType:  u.UserType,
		ProfileID: u.ProfileID,
	}
}

// Identity is the resolved acting user, established at login and passed
// explicitly into every operation that needs one. There is no ambient
// "current user" lookup anywhere below the handler layer.
type Identity struct {
	UserID    int64
	Name      string
	Email     string
	UserType  string
	ProfileID int64
}
