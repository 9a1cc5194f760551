package middleware

import "net/http"

// BodyLimit caps request bodies at limit bytes. Requests declaring a larger
// Content-Length are rejected with 413; readers of longer chunked bodies
// get an *http.MaxBytesError.
func BodyLimit(limit int64) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				writeJSONError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
