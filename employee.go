package employees

import (
	"errors"
	"regexp"

	"github.com/rs/xid"
)

type Repository interface {
	Store(e *Employee) error
	FindByID(id ID) (*Employee, error)
	FindByEmail(email string) (*Employee, error)
	FindAll() ([]Employee, error)
	FindPage(skip, limit int64) ([]Employee, error)
	FindByDepartment(department string) ([]Employee, error)
	FindBySalaryOrder(descending bool) ([]Employee, error)
	FindByFirstnameSubstring(q string) ([]Employee, error)
	Update(id ID, up EmployeeUpdate) (*Employee, error)
	Delete(id ID) (*Employee, error)
	Count() (int64, error)
}

type ID string

type Employee struct {
	ID         ID      `json:"id" bson:"_id"`
	Firstname  string  `json:"firstname" bson:"firstname"`
	Lastname   string  `json:"lastname" bson:"lastname"`
	Email      string  `json:"email" bson:"email"`
	Department string  `json:"department" bson:"department"`
	Salary     float64 `json:"salary" bson:"salary"`
}

//EmployeeUpdate carries the fields of a partial update. A nil field
// means "leave unchanged"; only non-nil fields are applied.
type EmployeeUpdate struct {
	Firstname  *string  `json:"firstname"`
	Lastname   *string  `json:"lastname"`
	Email      *string  `json:"email"`
	Department *string  `json:"department"`
	Salary     *float64 `json:"salary"`
}

var (
	ErrInvalidFirstname = errors.New("firstname is required")
	ErrInvalidLastname  = errors.New("lastname is required")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrExistingEmail    = errors.New("employee with the same email already exists")
	ErrNotFound         = errors.New("employee not found")
)

var emailRegexp = regexp.MustCompile(`^\S+@\S+\.\S+$`)

//NewEmployee validates the required fields and returns a new Employee
// if arguments are valid
func NewEmployee(firstname, lastname, email, department string, salary float64) (*Employee, error) {
	if firstname == "" {
		return nil, ErrInvalidFirstname
	}

	if lastname == "" {
		return nil, ErrInvalidLastname
	}

	if !emailRegexp.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	return &Employee{
		Firstname:  firstname,
		Lastname:   lastname,
		Email:      email,
		Department: department,
		Salary:     salary,
	}, nil
}

func nextID() ID {
	return ID(xid.New().String())
}

//IsValidID checks if a given id is valid based on the xid library definition of a valid id
// this method should change if we ever change our uid generation library
func IsValidID(id string) bool {
	if _, err := xid.FromString(id); err != nil {
		return false
	}
	return true
}
