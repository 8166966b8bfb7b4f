package server

import (
	"errors"
	"net/http"

	"magicinc/internal/ctxlog"
	"magicinc/internal/seqstore"
)

func listHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		all := map[string]seqstore.Sequence{}
		for name, seq := range seqstore.All() {
			all[name] = seq
		}
		writeJSON(w, r, http.StatusOK, all)
	})
}

func getHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seq, err := seqstore.Get(r.PathValue("name"))
		if err != nil {
			storeError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, seq)
	})
}

type advanced struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func advanceHandler(f func(string) (string, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		r = r.WithContext(ctxlog.With(r.Context(), "sequence", name))

		value, err := f(name)
		if err != nil {
			storeError(w, r, err)
			return
		}

		l := ctxlog.Get(r.Context())
		l.Info("sequence advanced", "value", value)

		writeJSON(w, r, http.StatusOK, advanced{Name: name, Value: value})
	})
}

func storeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, seqstore.ErrNotFound):
		writeError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, seqstore.ErrInvalidName):
		writeError(w, r, http.StatusBadRequest, err.Error())
	default:
		log := ctxlog.Get(r.Context())
		log.Error("sequence store failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
