package middleware

import "net/http"

type CORSMiddleware struct {
	allowedMethods string
}

func NewCORSMiddleware() *CORSMiddleware {
	return &CORSMiddleware{allowedMethods: "GET, POST, OPTIONS"}
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", m.allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, req)
	})
}
