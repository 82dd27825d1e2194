package http

import "net/http"

// NotFoundHandler answers unknown routes with the standard JSON error body.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "no such route: "+r.URL.Path)
	})
}
