// Package web serves the HTML interface for groups and pages.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fatihpirim/PatriotHacks/internal/middleware"
	"github.com/fatihpirim/PatriotHacks/internal/models"
	"github.com/fatihpirim/PatriotHacks/internal/service"
	"github.com/fatihpirim/PatriotHacks/internal/storage"
)

// Handler holds the dependencies of the HTML handlers.
type Handler struct {
	svc   *service.GroupService
	store storage.Store
	views *Renderer
}

// NewHandler creates a Handler. store is used only for health checks.
func NewHandler(svc *service.GroupService, store storage.Store, views *Renderer) *Handler {
	return &Handler{svc: svc, store: store, views: views}
}

type indexData struct {
	Title  string
	Groups []models.GroupListing
}

type addGroupData struct {
	Title string
}

type addPageData struct {
	Title     string
	GroupID   int64
	GroupName string
}

// ServeIndex renders every group with its pages.
func (h *Handler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.ListGroups(r.Context())
	if err != nil {
		h.serverError(w, r, "list groups", err)
		return
	}
	h.render(w, r, "index", indexData{Title: "Groups", Groups: groups})
}

// ServeAddGroup renders the empty group form.
func (h *Handler) ServeAddGroup(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "add_group", addGroupData{Title: "Add group"})
}

// HandleAddGroup creates a group and its default page.
// A taken name gets a plain-text conflict response instead of a redirect.
func (h *Handler) HandleAddGroup(w http.ResponseWriter, r *http.Request) {
	name, ok := formValue(w, r, "name")
	if !ok {
		return
	}

	if _, err := h.svc.CreateGroup(r.Context(), name); err != nil {
		if errors.Is(err, storage.ErrDuplicateGroup) {
			plainText(w, http.StatusConflict, fmt.Sprintf("Group '%s' already exists!", name))
			return
		}
		h.serverError(w, r, "create group", err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleDeleteGroup deletes the group in the URL and its pages.
// There is no confirmation and no distinction for a missing group.
func (h *Handler) HandleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteGroup(r.Context(), groupID); err != nil {
		h.serverError(w, r, "delete group", err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ServeAddPage renders the empty page form for the group in the URL.
// The form is shown even if the group does not exist; submission decides.
func (h *Handler) ServeAddPage(w http.ResponseWriter, r *http.Request) {
	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}

	data := addPageData{Title: "Add page", GroupID: groupID}
	group, err := h.svc.GetGroup(r.Context(), groupID)
	switch {
	case err == nil:
		data.GroupName = group.Name
	case !errors.Is(err, storage.ErrGroupNotFound):
		h.serverError(w, r, "get group", err)
		return
	}
	h.render(w, r, "add_page", data)
}

// HandleAddPage adds a page to the group in the URL.
func (h *Handler) HandleAddPage(w http.ResponseWriter, r *http.Request) {
	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}
	text, ok := formValue(w, r, "text")
	if !ok {
		return
	}

	if _, err := h.svc.CreatePage(r.Context(), groupID, text); err != nil {
		if errors.Is(err, storage.ErrGroupNotFound) {
			plainText(w, http.StatusNotFound, fmt.Sprintf("Group %d not found", groupID))
			return
		}
		h.serverError(w, r, "create page", err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ServeHealth reports whether the database answers.
func (h *Handler) ServeHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		slog.Error("Health check failed", "error", err)
		plainText(w, http.StatusServiceUnavailable, "unavailable")
		return
	}
	plainText(w, http.StatusOK, "ok")
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	if err := h.views.Render(w, name, data); err != nil {
		h.serverError(w, r, "render "+name, err)
	}
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, op string, err error) {
	slog.Error("Request failed",
		"op", op,
		"request_id", middleware.GetRequestID(r.Context()),
		"error", err,
	)
	plainText(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// groupIDParam parses {groupID}. The route pattern already restricts it to
// digits; values that overflow int64 are treated as unknown routes.
func groupIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupID"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return 0, false
	}
	return groupID, true
}

// formValue reads a required form field. An empty value is accepted;
// a missing field is a 400.
func formValue(w http.ResponseWriter, r *http.Request, field string) (string, bool) {
	if err := r.ParseForm(); err != nil {
		plainText(w, http.StatusBadRequest, "Invalid form data")
		return "", false
	}
	values, ok := r.PostForm[field]
	if !ok || len(values) == 0 {
		plainText(w, http.StatusBadRequest, fmt.Sprintf("Missing form field: %s", field))
		return "", false
	}
	return values[0], true
}

func plainText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	fmt.Fprint(w, msg)
}
