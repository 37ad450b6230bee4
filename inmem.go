package employees

import (
	"sort"
	"strings"
)

type employeeRepository struct {
	employees map[ID]*Employee
	ids       []ID
}

func NewEmployeeRepository() Repository {
	return &employeeRepository{employees: map[ID]*Employee{}}
}

func (repo *employeeRepository) Store(e *Employee) error {
	if _, ok := repo.employees[e.ID]; !ok {
		repo.ids = append(repo.ids, e.ID)
	}
	repo.employees[e.ID] = e
	return nil
}

func (repo *employeeRepository) FindByID(id ID) (*Employee, error) {
	if e, ok := repo.employees[id]; ok {
		return e, nil
	}
	return nil, ErrNotFound
}

func (repo *employeeRepository) FindByEmail(email string) (*Employee, error) {
	for _, id := range repo.ids {
		if repo.employees[id].Email == email {
			return repo.employees[id], nil
		}
	}
	return nil, ErrNotFound
}

func (repo *employeeRepository) FindAll() ([]Employee, error) {
	all := []Employee{}
	for _, id := range repo.ids {
		all = append(all, *repo.employees[id])
	}
	return all, nil
}

func (repo *employeeRepository) FindPage(skip, limit int64) ([]Employee, error) {
	all, _ := repo.FindAll()

	if skip >= int64(len(all)) {
		return []Employee{}, nil
	}

	all = all[skip:]
	if limit < int64(len(all)) {
		all = all[:limit]
	}
	return all, nil
}

func (repo *employeeRepository) FindByDepartment(department string) ([]Employee, error) {
	matches := []Employee{}
	for _, id := range repo.ids {
		if repo.employees[id].Department == department {
			matches = append(matches, *repo.employees[id])
		}
	}
	return matches, nil
}

func (repo *employeeRepository) FindBySalaryOrder(descending bool) ([]Employee, error) {
	all, _ := repo.FindAll()
	sort.SliceStable(all, func(i, j int) bool {
		if descending {
			return all[i].Salary > all[j].Salary
		}
		return all[i].Salary < all[j].Salary
	})
	return all, nil
}

func (repo *employeeRepository) FindByFirstnameSubstring(q string) ([]Employee, error) {
	q = strings.ToLower(q)
	matches := []Employee{}
	for _, id := range repo.ids {
		if strings.Contains(strings.ToLower(repo.employees[id].Firstname), q) {
			matches = append(matches, *repo.employees[id])
		}
	}
	return matches, nil
}

func (repo *employeeRepository) Update(id ID, up EmployeeUpdate) (*Employee, error) {
	e, ok := repo.employees[id]
	if !ok {
		return nil, ErrNotFound
	}

	if up.Firstname != nil {
		e.Firstname = *up.Firstname
	}
	if up.Lastname != nil {
		e.Lastname = *up.Lastname
	}
	if up.Email != nil {
		e.Email = *up.Email
	}
	if up.Department != nil {
		e.Department = *up.Department
	}
	if up.Salary != nil {
		e.Salary = *up.Salary
	}

	return e, nil
}

func (repo *employeeRepository) Delete(id ID) (*Employee, error) {
	e, ok := repo.employees[id]
	if !ok {
		return nil, ErrNotFound
	}

	delete(repo.employees, id)
	for i, v := range repo.ids {
		if v == id {
			repo.ids = append(repo.ids[:i], repo.ids[i+1:]...)
			break
		}
	}

	return e, nil
}

func (repo *employeeRepository) Count() (int64, error) {
	return int64(len(repo.ids)), nil
}
