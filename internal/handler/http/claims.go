package http

import (
	"net/http"
	"strconv"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/user"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

// userIDFromRequest extracts user_id from the verified JWT. jwx decodes
// numeric claims as float64.
func userIDFromRequest(r *http.Request) (int64, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, false
	}
	switch id := claims["user_id"].(type) {
	case float64:
		return int64(id), true
	case int64:
		return id, true
	default:
		return 0, false
	}
}

func roleFromRequest(r *http.Request) user.Role {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	roleStr, _ := claims["role"].(string)
	return user.Role(roleStr)
}

func idParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func queryInt64(r *http.Request, name string) *int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// pagination reads offset/limit query parameters with sane bounds.
func pagination(r *http.Request) (offset, limit int) {
	limit = 20
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			offset = n
		}
	}
	return offset, limit
}
