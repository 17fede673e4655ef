// File: internal/api/validation.go
package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Legacy client-facing messages. Existing consumers match on these strings,
// so they must not change.
const (
	MsgFillAllFields      = "You must fill all the fields."
	MsgInvalidEmail       = "You must enter a valid email."
	MsgPasswordTooShort   = "Password should be min 6 character."
	MsgUserAlreadyExists  = "User already exists with this email."
	MsgInvalidCredentials = "Invalid credentials please try again."
	MsgLoggedOut          = "Logged out successfully."
	MsgInvalidPageNo      = "The page no must be an integer."
	MsgPageNoTooSmall     = "The page no must be at least 1."
)

// tag priority: presence checks win over format checks, format checks win
// over business rules, regardless of field declaration order.
var tagPriority = []string{"required", "email", "min"}

// ValidationMessage maps a validator error to the single legacy message the
// client expects. Unknown tags fall back to the validator's own message.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	for _, tag := range tagPriority {
		for _, fe := range verrs {
			if fe.Tag() != tag {
				continue
			}
			switch tag {
			case "required":
				return MsgFillAllFields
			case "email":
				return MsgInvalidEmail
			case "min":
				return MsgPasswordTooShort
			}
		}
	}
	return verrs.Error()
}
