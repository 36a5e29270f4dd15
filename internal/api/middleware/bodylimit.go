package middleware

import "net/http"

// BodyLimit caps the request body at n bytes using http.MaxBytesReader.
// Oversized bodies surface as read errors inside the handler rather than
// unbounded memory growth.
func BodyLimit(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, n)
			}
			next.ServeHTTP(w, r)
		})
	}
}
