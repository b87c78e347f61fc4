package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/tendant/role-admin/pkg/admin"
)

// Handler handles HTTP requests for role administration
type Handler struct {
	adminService *admin.AdminService
}

// NewHandler creates a new role administration handler
func NewHandler(adminService *admin.AdminService) *Handler {
	return &Handler{
		adminService: adminService,
	}
}

// RegisterRoutes registers the role administration routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/roles", func(r chi.Router) {
		r.Get("/", h.ListRoles)
		r.Post("/", h.CreateRole)
		r.Get("/{id}", h.EditRole)
		r.Put("/{id}", h.ApplyRoleEdit)
		r.Get("/{id}/users", h.EditUsersInRole)
		r.Put("/{id}/users", h.ApplyUserRoleEdits)
	})
}

// RoleNameRequest carries a submitted role name
type RoleNameRequest struct {
	RoleName string `json:"role_name"`
}

// UserRoleEditsRequest carries the submitted membership checkboxes
type UserRoleEditsRequest struct {
	Users []admin.UserRoleSelection `json:"users"`
}

// ListRoles handles the request to list all roles
func (h *Handler) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.adminService.ListRoles(r.Context())
	if err != nil {
		http.Error(w, "Failed to list roles: "+err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, roles)
}

// CreateRole handles the request to create a new role
func (h *Handler) CreateRole(w http.ResponseWriter, r *http.Request) {
	var req RoleNameRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.adminService.CreateRole(r.Context(), req.RoleName)
	if err != nil {
		http.Error(w, "Failed to create role: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if !result.Succeeded {
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, result)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, result)
}

// EditRole handles the read path of the edit-role workflow
func (h *Handler) EditRole(w http.ResponseWriter, r *http.Request) {
	roleID, ok := parseRoleID(w, r)
	if !ok {
		return
	}

	result, err := h.adminService.GetRoleForEdit(r.Context(), roleID)
	if err != nil {
		http.Error(w, "Failed to load role: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if result.Kind == admin.OutcomeNotFound {
		renderNotFound(w, r, result.Outcome)
		return
	}

	render.JSON(w, r, result.Model)
}

// ApplyRoleEdit handles the write path of the edit-role workflow
func (h *Handler) ApplyRoleEdit(w http.ResponseWriter, r *http.Request) {
	roleID, ok := parseRoleID(w, r)
	if !ok {
		return
	}

	var req RoleNameRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	model := admin.EditRoleView{ID: roleID}
	if err := copier.Copy(&model, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.adminService.ApplyRoleEdit(r.Context(), model)
	if err != nil {
		http.Error(w, "Failed to update role: "+err.Error(), http.StatusInternalServerError)
		return
	}

	switch result.Kind {
	case admin.OutcomeNotFound:
		renderNotFound(w, r, result.Outcome)
	case admin.OutcomeRedirect:
		renderRedirect(w, r, result.Outcome, result)
	default:
		// Store rejected the rename; redisplay the submitted model.
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, result)
	}
}

// EditUsersInRole handles the read path of the membership workflow
func (h *Handler) EditUsersInRole(w http.ResponseWriter, r *http.Request) {
	roleID, ok := parseRoleID(w, r)
	if !ok {
		return
	}

	result, err := h.adminService.GetUsersForRoleEdit(r.Context(), roleID)
	if err != nil {
		http.Error(w, "Failed to load role users: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if result.Kind == admin.OutcomeNotFound {
		renderNotFound(w, r, result.Outcome)
		return
	}

	render.JSON(w, r, result.Users)
}

// ApplyUserRoleEdits handles the write path of the membership workflow
func (h *Handler) ApplyUserRoleEdits(w http.ResponseWriter, r *http.Request) {
	roleID, ok := parseRoleID(w, r)
	if !ok {
		return
	}

	var req UserRoleEditsRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.adminService.ApplyUserRoleEdits(r.Context(), roleID, req.Users)
	if err != nil {
		http.Error(w, "Failed to update role users: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if result.Kind == admin.OutcomeNotFound {
		renderNotFound(w, r, result.Outcome)
		return
	}

	renderRedirect(w, r, result.Outcome, result)
}

// parseRoleID extracts and validates the role id route parameter
func parseRoleID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, "Invalid role ID", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// renderNotFound writes the not-found view carrying the missing id
func renderNotFound(w http.ResponseWriter, r *http.Request, outcome admin.Outcome) {
	render.Status(r, http.StatusNotFound)
	render.JSON(w, r, outcome)
}

// renderRedirect translates a redirect outcome into a 303 with a Location
// header; the body carries the full outcome, including any per-item
// failures from a membership edit.
func renderRedirect(w http.ResponseWriter, r *http.Request, outcome admin.Outcome, body interface{}) {
	w.Header().Set("Location", redirectLocation(outcome.Redirect))
	render.Status(r, http.StatusSeeOther)
	render.JSON(w, r, body)
}

// redirectLocation maps an action-name redirect to its route
func redirectLocation(rd *admin.Redirect) string {
	if rd == nil {
		return "/roles"
	}
	switch rd.Target {
	case admin.ActionEditRole:
		if id, ok := rd.Params["id"]; ok {
			return "/roles/" + id
		}
	}
	return "/roles"
}
