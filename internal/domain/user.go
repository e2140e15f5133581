package domain

// User represents a marketplace account holder
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	// Password is write-only: the server never returns it once stored.
	Password string `json:"-"`
}

// UserDraft is the wire shape for creating or updating a user.
// An empty Password on update means "keep the stored credential".
type UserDraft struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// Draft converts a read model into an editable draft. The password
// starts empty so editing never round-trips the stored credential.
func (u User) Draft() UserDraft {
	return UserDraft{
		Name:  u.Name,
		Email: u.Email,
	}
}

// UserGateway defines the remote interface for user records
type UserGateway interface {
	Gateway[User, UserDraft]
}
