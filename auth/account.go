package auth

import (
	"errors"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rs/xid"
)

//Account is a credential record usable to obtain a token. Password
// holds the bcrypt hash, never the plaintext, and is excluded from
// JSON so no response can leak it.
type Account struct {
	ID        ID        `json:"id" bson:"_id"`
	Email     string    `json:"email" bson:"email"`
	Password  string    `json:"-" bson:"password"`
	CreatedAt time.Time `json:"createdAt" bson:"createdat"`
}

type ID string

var (
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrExistingEmail      = errors.New("email in use")
	ErrNotFound           = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

//NewAccount validates the email and returns a new Account if it is valid
func NewAccount(email string) (*Account, error) {
	r := regexp.MustCompile(`^\S+@\S+\.\S+$`)
	if !r.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	return &Account{Email: email}, nil
}

func NewID() ID {
	return ID(xid.New().String())
}

func isValidID(id string) bool {
	if _, err := xid.FromString(id); err != nil {
		return false
	}
	return true
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return "", errors.New("error hashing password")
	}
	return string(hash), nil
}

func hashMatchesPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
