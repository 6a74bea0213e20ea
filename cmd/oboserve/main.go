// Command oboserve is a thin HTTP front end over package goobo: flag
// parsing and request wiring only, no parsing or serialization logic
// of its own.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"

	"github.com/ritamzico/goobo"
)

var allowedOrigins = []string{
	"http://localhost:5173",
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func corsMiddleware(next http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if _, ok := allowed[origin]; ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	port := flag.Int("port", 8080, "port to listen on")
	flag.Parse()

	mux := http.NewServeMux()

	// POST /parse accepts raw OBO text in the request body and returns
	// the kind-tagged JSON envelope, or a 422 carrying the syntax error
	// location if the body fails to parse.
	mux.HandleFunc("/parse", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		doc, err := goobo.Parse(r.Body, goobo.NewCache())
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		b, err := goobo.ToJSON(doc)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	})

	// POST /validate reports cardinality violations without echoing the
	// document back.
	mux.HandleFunc("/validate", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		doc, err := goobo.Parse(r.Body, goobo.NewCache())
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		errs := doc.Validate()
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		writeJSON(w, http.StatusOK, struct {
			Valid  bool     `json:"valid"`
			Errors []string `json:"errors"`
		}{Valid: len(msgs) == 0, Errors: msgs})
	})

	addr := fmt.Sprintf(":%d", *port)
	fmt.Printf("oboserve listening on %s\n", addr)
	if err := http.ListenAndServe(addr, corsMiddleware(mux)); err != nil {
		fmt.Fprintf(flag.CommandLine.Output(), "server error: %v\n", err)
	}
}
