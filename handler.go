package employees

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
)

func CreateEmployeeHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		var req createEmployeeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		e, err := svc.CreateEmployee(req)
		if err != nil {
			encodeError(err, w)
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message":     "New Employee added",
			"newEmployee": e,
		})
	})
}

func ListEmployeesHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		emps, err := svc.ListEmployees()
		if err != nil {
			encodeError(err, w)
			return
		}

		json.NewEncoder(w).Encode(emps)
	})
}

//ListEmployeePageHandler reads the 1-based "page" query parameter. A
// missing or non-numeric value is coerced to page 1 rather than fed
// into the skip computation.
func ListEmployeePageHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil {
			page = 1
		}

		p, err := svc.ListEmployeePage(page)
		if err != nil {
			encodeError(err, w)
			return
		}

		json.NewEncoder(w).Encode(p)
	})
}

func FilterEmployeesHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		department := httprouter.ParamsFromContext(r.Context()).ByName("department")

		emps, err := svc.FilterByDepartment(department)
		if err != nil {
			encodeError(err, w)
			return
		}

		json.NewEncoder(w).Encode(emps)
	})
}

func SortEmployeesHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		order := httprouter.ParamsFromContext(r.Context()).ByName("order")

		emps, err := svc.SortBySalary(order)
		if err != nil {
			encodeError(err, w)
			return
		}

		json.NewEncoder(w).Encode(emps)
	})
}

func SearchEmployeesHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		firstName := httprouter.ParamsFromContext(r.Context()).ByName("firstName")

		emps, err := svc.SearchByFirstname(firstName)
		if err != nil {
			encodeError(err, w)
			return
		}

		json.NewEncoder(w).Encode(emps)
	})
}

func UpdateEmployeeHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var up EmployeeUpdate
		if err := json.NewDecoder(r.Body).Decode(&up); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		e, err := svc.EditEmployee(id, up)
		if err != nil {
			encodeError(err, w)
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"message":         "Employee updated successfully",
			"updatedEmployee": e,
		})
	})
}

func DeleteEmployeeHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		e, err := svc.RemoveEmployee(id)
		if err != nil {
			encodeError(err, w)
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"message":         "Employee deleted",
			"deletedEmployee": e,
		})
	})
}

func encodeError(err error, w http.ResponseWriter) {
	switch err {
	case ErrExistingEmail:
		w.WriteHeader(http.StatusBadRequest)
	case ErrInvalidFirstname, ErrInvalidLastname, ErrInvalidEmail:
		w.WriteHeader(http.StatusUnprocessableEntity)
	case ErrNotFound:
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": err.Error(),
	})
}
