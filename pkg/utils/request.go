package utils

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// PathID reads a positive integer URL parameter.
func PathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// QueryInt reads an optional integer query parameter. ok is false when the
// parameter is present but not a number.
func QueryInt(r *http.Request, name string) (value *int, ok bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &v, true
}

func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
