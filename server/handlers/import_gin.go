package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"crmserver/importer"
	apperrors "crmserver/server/errors"
	"crmserver/server/services"
)

// ImportHandler serves the contact upload endpoints: import, dry-run
// validation, issues export and the sample template download.
type ImportHandler struct {
	importService  *services.ImportService
	maxUploadBytes int64
}

// NewImportHandler creates an import handler. maxUploadBytes caps the
// accepted upload size; values <= 0 fall back to 10 MB.
func NewImportHandler(importService *services.ImportService, maxUploadBytes int64) *ImportHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 10 << 20
	}
	return &ImportHandler{
		importService:  importService,
		maxUploadBytes: maxUploadBytes,
	}
}

// readUploadFile pulls the "file" part out of a multipart request. When
// ok is false the error response has already been written.
func (h *ImportHandler) readUploadFile(c *gin.Context) (filename string, data []byte, ok bool) {
	if err := c.Request.ParseMultipartForm(h.maxUploadBytes); err != nil {
		SendJSONError(c, http.StatusBadRequest, "Could not parse the upload form")
		return "", nil, false
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		SendJSONError(c, http.StatusBadRequest, "File field 'file' is required")
		return "", nil, false
	}
	defer file.Close()

	data, err = io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		SendJSONError(c, http.StatusBadRequest, "Could not read the uploaded file")
		return "", nil, false
	}
	if int64(len(data)) > h.maxUploadBytes {
		SendJSONError(c, http.StatusRequestEntityTooLarge, "Uploaded file is too large")
		return "", nil, false
	}

	return header.Filename, data, true
}

// HandleImportContacts imports contacts from an uploaded file.
// @Summary Import contacts from a file
// @Description Validates an uploaded CSV or XLSX file, stores the contacts that pass validation and returns the full import report
// @Tags contacts
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV or XLSX file with contacts"
// @Success 200 {object} services.ImportResult "Import outcome with report"
// @Failure 400 {object} ErrorResponse "Invalid upload"
// @Failure 422 {object} ErrorResponse "File could not be processed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/contacts/import [post]
func (h *ImportHandler) HandleImportContacts(c *gin.Context) {
	filename, data, ok := h.readUploadFile(c)
	if !ok {
		return
	}

	result, err := h.importService.Import(c.Request.Context(), filename, data)
	if err != nil {
		appErr := apperrors.WrapError(err, "failed to import contacts")
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	SendJSONResponse(c, http.StatusOK, result)
}

// HandleValidateContacts validates an uploaded file without storing
// anything.
// @Summary Validate a contact file without importing
// @Description Runs the full validation pipeline over an uploaded CSV or XLSX file and returns the report; nothing is stored
// @Tags contacts
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV or XLSX file with contacts"
// @Success 200 {object} importer.ImportReport "Validation report"
// @Failure 400 {object} ErrorResponse "Invalid upload"
// @Failure 422 {object} ErrorResponse "File could not be processed"
// @Router /api/contacts/validate [post]
func (h *ImportHandler) HandleValidateContacts(c *gin.Context) {
	filename, data, ok := h.readUploadFile(c)
	if !ok {
		return
	}

	report, err := h.importService.Validate(c.Request.Context(), filename, data)
	if err != nil {
		appErr := apperrors.WrapError(err, "failed to validate upload")
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	SendJSONResponse(c, http.StatusOK, report)
}

// HandleExportIssues validates an uploaded file and returns its issues
// as a downloadable report.
// @Summary Export validation issues as a file
// @Description Validates an uploaded file and returns the found issues as a CSV or XLSX attachment
// @Tags contacts
// @Accept multipart/form-data
// @Produce text/csv
// @Param file formData file true "CSV or XLSX file with contacts"
// @Param format query string false "Export format: csv (default) or xlsx"
// @Success 200 {file} file "Issues report"
// @Failure 400 {object} ErrorResponse "Invalid upload or format"
// @Failure 422 {object} ErrorResponse "File could not be processed"
// @Router /api/contacts/validate/export [post]
func (h *ImportHandler) HandleExportIssues(c *gin.Context) {
	filename, data, ok := h.readUploadFile(c)
	if !ok {
		return
	}

	format := c.DefaultQuery("format", "csv")
	content, downloadName, err := h.importService.ExportIssues(c.Request.Context(), filename, data, format)
	if err != nil {
		appErr := apperrors.WrapError(err, "failed to export validation issues")
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	contentType := "text/csv; charset=utf-8"
	if strings.HasSuffix(downloadName, ".xlsx") {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	c.Header("Content-Disposition", `attachment; filename="`+downloadName+`"`)
	c.Data(http.StatusOK, contentType, content)
}

// HandleDownloadTemplate serves the sample import file.
// @Summary Download the sample import template
// @Description Returns a small CSV showing the expected columns, including multi-number and malformed example rows
// @Tags contacts
// @Produce text/csv
// @Success 200 {file} file "Sample CSV template"
// @Router /api/contacts/template [get]
func (h *ImportHandler) HandleDownloadTemplate(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="contact_import_template.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", importer.TemplateCSV())
}
