package server

import (
	"net/http"
	"strconv"
	"strings"
)

const maxSteps = 1000

// steps applies f up to n times, stopping early once the value no longer
// changes. The first result is always included.
func steps(value string, n int, f func(string) string) []string {
	out := make([]string, 0, n)
	for range n {
		next := f(value)
		out = append(out, next)
		if next == value {
			break
		}
		value = next
	}
	return out
}

func stepHandler(f func(string) string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := 1
		if q := r.URL.Query().Get("n"); q != "" {
			var err error
			n, err = strconv.Atoi(q)
			if err != nil || n < 1 || n > maxSteps {
				writeError(w, r, http.StatusBadRequest, "n must be a whole number between 1 and "+strconv.Itoa(maxSteps))
				return
			}
		}

		values := steps(r.PathValue("value"), n, f)
		writeText(w, r, http.StatusOK, strings.Join(values, "\n")+"\n")
	})
}
