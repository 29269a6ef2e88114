package http

import (
	"net/http"

	"github.com/secmon-lab/vantage/pkg/utils/errutil"
)

// recoverer turns a handler panic into a 500 response. The panic is logged
// and reported to the Sentry hub bound to the request.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			_ = errutil.Recovered(r.Context(), rec, "panic in HTTP handler")
			if r.Header.Get("Connection") != "Upgrade" {
				w.WriteHeader(http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
