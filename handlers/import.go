package handlers

import (
	"encoding/csv"
	"fmt"
	"html/template"
	"net/http"

	"hrassist/config"
	"hrassist/importer"
	"hrassist/store"
)

type ImportHandler struct {
	config    *config.Config
	templates map[string]*template.Template
}

func NewImportHandler(cfg *config.Config, templates map[string]*template.Template) *ImportHandler {
	return &ImportHandler{
		config:    cfg,
		templates: templates,
	}
}

// Import ingests an uploaded CSV/XLSX report. Rows written before a failing
// row stay written; the failure is reported inline.
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		redirectError(w, r, "Invalid upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		redirectError(w, r, "No file selected")
		return
	}
	defer file.Close()

	reportType := importer.ReportType(r.FormValue("report_type"))

	rows, err := importer.ReadRows(file, header.Filename)
	if err != nil {
		redirectError(w, r, "Import failed: "+err.Error())
		return
	}

	result, err := importer.Import(reportType, rows)
	if err != nil {
		redirectError(w, r, "Import failed: "+err.Error())
		return
	}

	msg := fmt.Sprintf("Imported %d rows", result.Inserted)
	if result.Updated > 0 {
		msg = fmt.Sprintf("Imported %d rows (%d updated)", result.Inserted+result.Updated, result.Updated)
	}
	redirectSuccess(w, r, msg)
}

// ExportDB serves the whole database file as-is.
func (h *ImportHandler) ExportDB(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", "attachment; filename=employees.db")
	http.ServeFile(w, r, h.config.DatabasePath)
}

func (h *ImportHandler) ExportEmployeesCSV(w http.ResponseWriter, r *http.Request) {
	employees, err := store.ListEmployees()
	if err != nil {
		http.Error(w, "Failed to load employees", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=employees.csv")

	writer := csv.NewWriter(w)
	defer writer.Flush()

	writer.Write([]string{"ID", "First Name", "Last Name", "Email", "Phone", "Department", "Position", "Date of Hire", "Salary", "Address"})

	for _, e := range employees {
		writer.Write([]string{
			fmt.Sprintf("%d", e.ID),
			e.FirstName,
			e.LastName,
			e.Email,
			e.Phone,
			e.Department,
			e.Position,
			e.DateOfHire,
			fmt.Sprintf("%.2f", e.Salary),
			e.Address,
		})
	}
}
