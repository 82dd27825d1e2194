package domain

// User is a portal account; it exists only for authentication and is not part
// of any cascade.
type User struct {
	ID       int
	Username string
	Password string
	Fullname string
	Email    string
	Role     string
}

func (u User) Validate() error {
	if u.Username == "" {
		return ErrUsernameRequired
	}
	return nil
}
