package models

// User represents a registered collector.
type User struct {
	// ID is assigned by the store on insert.
	ID int64 `json:"id"`

	// Username is the display name of the user.
	Username string `json:"username"`

	// Email is the user's contact address.
	Email string `json:"email"`
}

// UserRow mirrors a row of the users table.
type UserRow struct {
	ID       int64
	Username string
	Email    string
}

// UserFromRow converts a stored row into a User.
func UserFromRow(row UserRow) User {
	return User{
		ID:       row.ID,
		Username: row.Username,
		Email:    row.Email,
	}
}

// UserInput is a user payload as sent by a client.
type UserInput struct {
	ID       ID      `json:"id"`
	Username *string `json:"username" validate:"required,min=1"`
	Email    *string `json:"email" validate:"required,min=1"`
}

// UserPatch carries a coalescing update: nil fields keep their stored value.
type UserPatch struct {
	ID       int64
	Username *string
	Email    *string
}

// NewUser builds the create shape of a user from input. The identity is
// always left unset.
func NewUser(in UserInput) User {
	return User{
		Username: deref(in.Username),
		Email:    deref(in.Email),
	}
}

// NewUserPatch builds a coalescing update for the user with the given id.
func NewUserPatch(id int64, in UserInput) UserPatch {
	return UserPatch{
		ID:       id,
		Username: in.Username,
		Email:    in.Email,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
