package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"doctorhub-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type RecoverMiddleware struct {
	log *logrus.Logger
}

func NewRecoverMiddleware(log *logrus.Logger) *RecoverMiddleware {
	return &RecoverMiddleware{log: log}
}

// Handle turns a handler panic into a 500 error envelope carrying the panic value.
func (m *RecoverMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				m.log.WithFields(logrus.Fields{
					"request_id": GetRequestID(r.Context()),
					"path":       r.URL.Path,
				}).Errorf("Recovered from panic: %v\n%s", rec, debug.Stack())
				response.InternalServerError(w, fmt.Sprint(rec))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
