package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "crmserver/server/errors"
	"crmserver/server/services"
)

// ContactHandler serves contact CRUD endpoints.
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a contact handler.
func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// HandleListContacts lists stored contacts.
// @Summary List contacts
// @Description Returns a page of contacts, optionally filtered by a search term or a tag
// @Tags contacts
// @Produce json
// @Param search query string false "Match against name, phone or email"
// @Param tag query string false "Exact tag filter"
// @Param limit query int false "Page size (default 50, max 200)"
// @Param offset query int false "Page offset"
// @Success 200 {object} services.ContactPage "One page of contacts"
// @Failure 400 {object} ErrorResponse "Invalid paging parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/contacts [get]
func (h *ContactHandler) HandleListContacts(c *gin.Context) {
	limit, ok := intQuery(c, "limit")
	if !ok {
		return
	}
	offset, ok := intQuery(c, "offset")
	if !ok {
		return
	}

	page, err := h.contactService.List(c.Request.Context(), services.ContactListParams{
		Search: c.Query("search"),
		Tag:    c.Query("tag"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		appErr := apperrors.WrapError(err, "failed to list contacts")
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	SendJSONResponse(c, http.StatusOK, page)
}

// HandleCreateContact creates one contact.
// @Summary Create a contact
// @Description Creates one contact; the phone number is standardized and checked against the same rules as imported contacts
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body services.CreateContactInput true "Contact fields"
// @Success 201 {object} database.StoredContact "Created contact"
// @Failure 400 {object} ErrorResponse "Invalid contact fields"
// @Failure 409 {object} ErrorResponse "Phone number already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/contacts [post]
func (h *ContactHandler) HandleCreateContact(c *gin.Context) {
	var input services.CreateContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		SendJSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	contact, err := h.contactService.Create(c.Request.Context(), input)
	if err != nil {
		appErr := apperrors.WrapError(err, "failed to create contact")
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	SendJSONResponse(c, http.StatusCreated, contact)
}

// HandleGetContact fetches one contact by id.
// @Summary Get a contact
// @Description Returns one contact by its id
// @Tags contacts
// @Produce json
// @Param id path string true "Contact id"
// @Success 200 {object} database.StoredContact "Contact"
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/contacts/{id} [get]
func (h *ContactHandler) HandleGetContact(c *gin.Context) {
	contact, err := h.contactService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := apperrors.WrapError(err, "failed to load contact")
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	SendJSONResponse(c, http.StatusOK, contact)
}

// HandleDeleteContact deletes one contact by id.
// @Summary Delete a contact
// @Description Deletes one contact by its id
// @Tags contacts
// @Produce json
// @Param id path string true "Contact id"
// @Success 200 {object} map[string]string "Deletion confirmation"
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/contacts/{id} [delete]
func (h *ContactHandler) HandleDeleteContact(c *gin.Context) {
	id := c.Param("id")
	if err := h.contactService.Delete(c.Request.Context(), id); err != nil {
		appErr := apperrors.WrapError(err, "failed to delete contact")
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	SendJSONResponse(c, http.StatusOK, gin.H{
		"message": "contact deleted",
		"id":      id,
	})
}

// intQuery parses an optional integer query parameter. When ok is false
// the error response has already been written.
func intQuery(c *gin.Context, name string) (value int, ok bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		SendJSONError(c, http.StatusBadRequest, "Query parameter '"+name+"' must be a number")
		return 0, false
	}
	return value, true
}
