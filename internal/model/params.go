package model

import "io"

// CreateUserParams carries validated input for account creation.
type CreateUserParams struct {
	Name     string
	Email    string
	Password string
}

// UpdateUserParams carries optional account changes. Nil fields are left
// untouched.
type UpdateUserParams struct {
	Name     *string
	Password *string
}

// PictureUpload describes an already validated picture upload. The
// extension comes from the original file name, lowercased.
type PictureUpload struct {
	Reader      io.Reader
	Size        int64
	Extension   string
	ContentType string
}

// CreateMessageParams carries validated input for message creation. The
// sender is never part of the params; it is always the authenticated
// identity.
type CreateMessageParams struct {
	Text string
	ToID int64
}

// UpdateMessageParams carries optional message changes. Nil fields are
// left untouched.
type UpdateMessageParams struct {
	Text *string
	Read *bool
}
