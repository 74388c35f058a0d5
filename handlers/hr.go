package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"hrassist/config"
	"hrassist/middleware"
	"hrassist/models"
	"hrassist/store"
)

type HRHandler struct {
	config    *config.Config
	templates map[string]*template.Template
	chat      *ChatHandler
}

func NewHRHandler(cfg *config.Config, templates map[string]*template.Template, chat *ChatHandler) *HRHandler {
	return &HRHandler{
		config:    cfg,
		templates: templates,
		chat:      chat,
	}
}

// EmployeeRecord is an employee plus their leave history for the listing.
type EmployeeRecord struct {
	models.Employee
	Leaves []models.Leave
}

// Dashboard re-reads everything from storage and renders the whole page.
func (h *HRHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	employees, err := store.ListEmployees()
	if err != nil {
		http.Error(w, "Failed to load employees", http.StatusInternalServerError)
		return
	}

	records := make([]EmployeeRecord, 0, len(employees))
	for _, emp := range employees {
		leaves, err := store.LeavesByEmployee(emp.ID)
		if err != nil {
			http.Error(w, "Failed to load leave history", http.StatusInternalServerError)
			return
		}
		records = append(records, EmployeeRecord{Employee: emp, Leaves: leaves})
	}

	leaves, err := store.ListLeaves()
	if err != nil {
		http.Error(w, "Failed to load leaves", http.StatusInternalServerError)
		return
	}

	attendance, _ := store.ListAttendance()
	promotions, _ := store.ListPromotions()

	data := map[string]interface{}{
		"Theme":         h.config.Theme,
		"User":          user,
		"Employees":     records,
		"PendingLeaves": store.PendingLeaves(leaves),
		"Attendance":    attendance,
		"Promotions":    promotions,
		"ChatMessages":  h.chat.Transcript(),
		"Today":         time.Now().Format(store.DateFormat),
		"Error":         r.URL.Query().Get("error"),
		"Success":       r.URL.Query().Get("success"),
	}
	h.templates["dashboard"].ExecuteTemplate(w, "base", data)
}

func (h *HRHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "Invalid form data")
		return
	}

	salary := 0.0
	if salaryStr := r.FormValue("salary"); salaryStr != "" {
		parsed, err := strconv.ParseFloat(salaryStr, 64)
		if err != nil || parsed < 0 {
			redirectError(w, r, "Salary must be a non-negative number")
			return
		}
		salary = parsed
	}

	employee := models.Employee{
		FirstName:  r.FormValue("first_name"),
		LastName:   r.FormValue("last_name"),
		Email:      r.FormValue("email"),
		Phone:      r.FormValue("phone"),
		Department: r.FormValue("department"),
		Position:   r.FormValue("position"),
		DateOfHire: r.FormValue("date_of_hire"),
		Salary:     salary,
		Address:    r.FormValue("address"),
	}

	if err := store.AddEmployee(&employee); err != nil {
		redirectError(w, r, err.Error())
		return
	}

	redirectSuccess(w, r, "Employee added")
}

func (h *HRHandler) ApplyLeave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "Invalid form data")
		return
	}

	employeeID, err := formID(r, "employee_id")
	if err != nil {
		redirectError(w, r, "Invalid employee")
		return
	}

	err = store.ApplyLeave(employeeID, r.FormValue("start_date"), r.FormValue("end_date"), r.FormValue("reason"))
	if err != nil {
		redirectError(w, r, "Failed to apply leave")
		return
	}

	redirectSuccess(w, r, "Leave applied")
}

// DecideLeave approves or rejects a pending leave. The form only ever sends
// those two statuses and anything else is rejected here.
func (h *HRHandler) DecideLeave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "Invalid form data")
		return
	}

	leaveID, err := formID(r, "leave_id")
	if err != nil {
		redirectError(w, r, "Invalid leave ID")
		return
	}

	status := r.FormValue("status")
	if status != models.LeaveApproved && status != models.LeaveRejected {
		redirectError(w, r, "Invalid leave status")
		return
	}

	if err := store.SetLeaveStatus(leaveID, status); err != nil {
		redirectError(w, r, err.Error())
		return
	}

	redirectSuccess(w, r, "Leave "+status)
}

func (h *HRHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "Invalid form data")
		return
	}

	employeeID, err := formID(r, "employee_id")
	if err != nil {
		redirectError(w, r, "Invalid employee")
		return
	}

	if err := store.CheckIn(employeeID, time.Now()); err != nil {
		redirectError(w, r, "Failed to check in")
		return
	}

	redirectSuccess(w, r, "Checked in")
}

func (h *HRHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "Invalid form data")
		return
	}

	employeeID, err := formID(r, "employee_id")
	if err != nil {
		redirectError(w, r, "Invalid employee")
		return
	}

	if err := store.CheckOut(employeeID, time.Now()); err != nil {
		if errors.Is(err, store.ErrNoOpenAttendance) {
			redirectError(w, r, err.Error())
			return
		}
		redirectError(w, r, "Failed to check out")
		return
	}

	redirectSuccess(w, r, "Checked out")
}

func (h *HRHandler) CreatePromotion(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "Invalid form data")
		return
	}

	employeeID, err := formID(r, "employee_id")
	if err != nil {
		redirectError(w, r, "Invalid employee")
		return
	}

	newSalary, err := strconv.ParseFloat(r.FormValue("new_salary"), 64)
	if err != nil || newSalary < 0 {
		redirectError(w, r, "Salary must be a non-negative number")
		return
	}

	newPosition := r.FormValue("new_position")
	date := r.FormValue("promotion_date")
	if date == "" {
		date = time.Now().Format(store.DateFormat)
	}

	if err := store.Promote(employeeID, date, newPosition, newSalary); err != nil {
		redirectError(w, r, err.Error())
		return
	}

	redirectSuccess(w, r, "Promotion recorded")
}

func formID(r *http.Request, field string) (uint, error) {
	id, err := strconv.ParseUint(r.FormValue(field), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func redirectError(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, fmt.Sprintf("/dashboard?error=%s", url.QueryEscape(msg)), http.StatusSeeOther)
}

func redirectSuccess(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, fmt.Sprintf("/dashboard?success=%s", url.QueryEscape(msg)), http.StatusSeeOther)
}
