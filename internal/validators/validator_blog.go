package validators

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-blog/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername  = "username"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldIdentity  = "identity"
	FieldTitle     = "title"
	FieldContent   = "content"
)

const (
	// bcrypt ignores input past 72 bytes
	maxPasswordBytes = 72
	maxNameLength    = 100
	maxTitleLength   = 200
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{3,30}$`)

// BlogValidator implements [Validator] for the account and post models.
type BlogValidator struct {
}

// NewValidator constructs a new BlogValidator and returns it as the
// Validator interface.
func NewValidator() Validator {
	return &BlogValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted.
//
// Supported types:
//   - models.User: registration form
//   - models.Credentials: login form
//   - models.ProfileUpdate: edit-profile form
//   - models.Post / models.PostUpdate: post forms
//
// Returns ErrUnsupportedType for anything else.
func (v *BlogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)
	case models.Credentials:
		return v.validateCredentials(value)
	case *models.Credentials:
		return v.validateCredentials(*value)
	case models.ProfileUpdate:
		return v.validateProfileUpdate(value)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(*value)
	case models.Post:
		return v.validatePost(value)
	case *models.Post:
		return v.validatePost(*value)
	case models.PostUpdate:
		return v.validatePostUpdate(value)
	case *models.PostUpdate:
		return v.validatePostUpdate(*value)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *BlogValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword, FieldFirstName, FieldLastName}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldUsername:
			err = validateUsername(user.Username)
		case FieldEmail:
			err = validateEmail(user.Email)
		case FieldPassword:
			err = validatePassword(user.Password)
		case FieldFirstName:
			err = validateName(user.FirstName)
		case FieldLastName:
			err = validateName(user.LastName)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *BlogValidator) validateCredentials(credentials models.Credentials) error {
	if strings.TrimSpace(credentials.Identity) == "" {
		return ErrEmptyIdentity
	}
	if credentials.Password == "" {
		return ErrEmptyPassword
	}

	return nil
}

func (v *BlogValidator) validateProfileUpdate(update models.ProfileUpdate) error {
	if update.FirstName == nil && update.LastName == nil && update.Email == nil && update.NewPassword == nil {
		return ErrNoFieldsToUpdate
	}
	if update.Email != nil {
		if err := validateEmail(*update.Email); err != nil {
			return err
		}
	}
	if update.NewPassword != nil {
		if err := validatePassword(*update.NewPassword); err != nil {
			return err
		}
	}
	if update.FirstName != nil {
		if err := validateName(*update.FirstName); err != nil {
			return err
		}
	}
	if update.LastName != nil {
		if err := validateName(*update.LastName); err != nil {
			return err
		}
	}

	return nil
}

func (v *BlogValidator) validatePost(post models.Post) error {
	if err := validateTitle(post.Title); err != nil {
		return err
	}
	if strings.TrimSpace(post.Content) == "" {
		return ErrEmptyContent
	}

	return nil
}

func (v *BlogValidator) validatePostUpdate(update models.PostUpdate) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if update.Title != nil {
		if err := validateTitle(*update.Title); err != nil {
			return err
		}
	}
	if update.Content != nil && strings.TrimSpace(*update.Content) == "" {
		return ErrEmptyContent
	}

	return nil
}

func validateUsername(username string) error {
	if username == "" {
		return ErrEmptyUsername
	}
	if !usernamePattern.MatchString(username) {
		return ErrInvalidUsername
	}

	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}

	address, err := mail.ParseAddress(email)
	if err != nil || address.Address != email {
		return ErrInvalidEmail
	}

	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}

	return nil
}

func validateName(name string) error {
	if utf8.RuneCountInString(name) > maxNameLength {
		return ErrNameTooLong
	}

	return nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return ErrTitleTooLong
	}

	return nil
}
