package auth

import (
	"fmt"
	"time"
)

type Service interface {
	RegisterAccount(r signupRequest) (*Account, error)
	ValidateCredentials(r loginRequest) (ID, error)
}

type Repository interface {
	FindByID(id ID) (*Account, error)
	FindByEmail(email string) (*Account, error)
	Store(acc *Account) error
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type service struct {
	accounts Repository
}

func NewService(accounts Repository) Service {
	return &service{accounts: accounts}
}

//RegisterAccount rejects an email already in use before inserting. The
// pre-check and the insert are not atomic; two concurrent signups with
// the same email can both succeed.
func (svc *service) RegisterAccount(r signupRequest) (*Account, error) {
	acc, err := NewAccount(r.Email)
	if err != nil {
		return nil, err
	}

	if len(r.Password) < 8 {
		return nil, ErrInvalidPassword
	}

	if existing, err := svc.accounts.FindByEmail(r.Email); existing != nil && err == nil {
		return nil, ErrExistingEmail
	}

	acc.ID = NewID()
	if hash, err := hashPassword(r.Password); err == nil {
		acc.Password = hash
	}

	acc.CreatedAt = time.Now().UTC()
	if err = svc.accounts.Store(acc); err != nil {
		return nil, fmt.Errorf("error saving account: %s ", err)
	}

	return acc, nil
}

//ValidateCredentials reports the same error for an unknown email and a
// wrong password, so a caller cannot tell which one failed.
func (svc *service) ValidateCredentials(r loginRequest) (ID, error) {
	acc, err := svc.accounts.FindByEmail(r.Email)
	if err == ErrNotFound {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if !hashMatchesPassword(acc.Password, r.Password) {
		return "", ErrInvalidCredentials
	}

	return acc.ID, nil
}
