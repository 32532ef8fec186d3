package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sbexpress/hris-backend-go/internal/domain/activitylog"
	"github.com/sbexpress/hris-backend-go/internal/pkg/jwt"
	"github.com/sbexpress/hris-backend-go/internal/pkg/validator"
)

// queryInt reads an optional integer query parameter. Missing or blank values return 0.
func queryInt(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validator.ValidationErrors{{
			Field:   key,
			Message: key + " must be a number",
		}}
	}
	return n, nil
}

// pathID reads the {id} URL parameter as a positive integer.
func pathID(r *http.Request) (int64, error) {
	id, ok := validator.ParseID(chi.URLParam(r, "id"))
	if !ok {
		return 0, validator.ValidationErrors{{
			Field:   "id",
			Message: "id must be a positive number",
		}}
	}
	return id, nil
}

// viewEntry builds an activity entry for the authenticated caller of r.
func viewEntry(r *http.Request, description string) activitylog.Entry {
	entry := activitylog.Entry{
		UserID:       jwt.UserIDFromContext(r.Context()),
		ActivityType: activitylog.TypeView,
		Description:  description,
	}
	if ip := r.RemoteAddr; ip != "" {
		entry.IPAddress = &ip
	}
	if ua := r.UserAgent(); ua != "" {
		entry.UserAgent = &ua
	}
	return entry
}
