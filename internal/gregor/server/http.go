package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/schema"
	eiyaerror "github.com/msto63/eiya/foundation/core/error"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// FormatQuery is the query of GET /v1/format
type FormatQuery struct {
	Time    string `json:"time" schema:"time"`
	Pattern string `json:"pattern" schema:"pattern"`
	Locale  string `json:"locale" schema:"locale"`
}

// ParseQuery is the query of GET /v1/parse
type ParseQuery struct {
	Text    string `json:"text" schema:"text,required"`
	Pattern string `json:"pattern" schema:"pattern"`
	Locale  string `json:"locale" schema:"locale"`
}

var decoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

// Handler returns the HTTP handler of the metrics listener: /metrics,
// /healthz and the read-only query API under /v1/
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/format", s.handleFormat)
	mux.HandleFunc("/v1/parse", s.handleParse)
	return mux
}

// locale falls back to the Accept-Language header
func locale(r *http.Request, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return r.Header.Get("Accept-Language")
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	var q FormatQuery
	if err := decoder.Decode(&q, r.URL.Query()); err != nil {
		writeError(w, badQuery(err))
		return
	}

	t := s.service.Now()
	if q.Time != "" && q.Time != "now" {
		var err error
		if t, err = time.Parse(TimeLayout, q.Time); err != nil {
			writeError(w, badQuery(err))
			return
		}
	}

	text, err := s.service.Format(r.Context(), t, q.Pattern, locale(r, q.Locale))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var q ParseQuery
	if err := decoder.Decode(&q, r.URL.Query()); err != nil {
		writeError(w, badQuery(err))
		return
	}

	t, err := s.service.Parse(r.Context(), q.Text, q.Pattern, locale(r, q.Locale))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"time": formatInstant(t)})
}

func badQuery(err error) error {
	return eiyaerror.Wrap(err, "invalid query").WithCode(eiyaerror.CodeInvalidInput)
}

func writeError(w http.ResponseWriter, err error) {
	code := eiyaerror.GetCode(err)
	status := http.StatusInternalServerError
	if code.IsUserError() {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]string{"error": err.Error(), "code": code.String()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
