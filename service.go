package employees

import (
	"fmt"
	"strings"
)

const pageSize = 5

type Service interface {
	CreateEmployee(req createEmployeeRequest) (*Employee, error)
	ListEmployees() ([]Employee, error)
	ListEmployeePage(page int) (*EmployeePage, error)
	FilterByDepartment(department string) ([]Employee, error)
	SortBySalary(order string) ([]Employee, error)
	SearchByFirstname(q string) ([]Employee, error)
	EditEmployee(id string, up EmployeeUpdate) (*Employee, error)
	RemoveEmployee(id string) (*Employee, error)
}

type service struct {
	employees Repository
}

func NewService(employees Repository) Service {
	return &service{employees: employees}
}

type createEmployeeRequest struct {
	Firstname  string  `json:"firstname"`
	Lastname   string  `json:"lastname"`
	Email      string  `json:"email"`
	Department string  `json:"department"`
	Salary     float64 `json:"salary"`
}

type EmployeePage struct {
	Employees  []Employee `json:"employees"`
	TotalPages int        `json:"totalPages"`
}

//CreateEmployee rejects an email already in use before inserting. The
// check and the insert are two store round trips, so two concurrent
// creates with the same email can both succeed.
func (svc *service) CreateEmployee(req createEmployeeRequest) (*Employee, error) {
	e, err := NewEmployee(req.Firstname, req.Lastname, req.Email, req.Department, req.Salary)
	if err != nil {
		return nil, err
	}

	if existing, err := svc.employees.FindByEmail(req.Email); existing != nil && err == nil {
		return nil, ErrExistingEmail
	}

	e.ID = nextID()
	if err := svc.employees.Store(e); err != nil {
		return nil, fmt.Errorf("error saving employee: %s ", err)
	}

	return e, nil
}

func (svc *service) ListEmployees() ([]Employee, error) {
	return svc.employees.FindAll()
}

//ListEmployeePage returns the 1-based page of a fixed size of 5 records.
// totalPages is computed from the full count, so a page past the end
// yields an empty list with the correct totalPages.
func (svc *service) ListEmployeePage(page int) (*EmployeePage, error) {
	if page < 1 {
		page = 1
	}

	total, err := svc.employees.Count()
	if err != nil {
		return nil, err
	}

	emps, err := svc.employees.FindPage(int64(page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + pageSize - 1) / pageSize)
	return &EmployeePage{Employees: emps, TotalPages: totalPages}, nil
}

func (svc *service) FilterByDepartment(department string) ([]Employee, error) {
	return svc.employees.FindByDepartment(department)
}

//SortBySalary sorts descending only for the literal "desc" (compared
// case-insensitively); any other order token sorts ascending.
func (svc *service) SortBySalary(order string) ([]Employee, error) {
	return svc.employees.FindBySalaryOrder(strings.EqualFold(order, "desc"))
}

func (svc *service) SearchByFirstname(q string) ([]Employee, error) {
	return svc.employees.FindByFirstnameSubstring(q)
}

func (svc *service) EditEmployee(id string, up EmployeeUpdate) (*Employee, error) {
	if !IsValidID(id) {
		return nil, ErrNotFound
	}
	return svc.employees.Update(ID(id), up)
}

func (svc *service) RemoveEmployee(id string) (*Employee, error) {
	if !IsValidID(id) {
		return nil, ErrNotFound
	}
	return svc.employees.Delete(ID(id))
}
