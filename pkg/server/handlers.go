package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/iterary/plastron/pkg/course"
	"github.com/iterary/plastron/pkg/grid"
	"github.com/iterary/plastron/pkg/schedule"
)

// scheduleRequest is the body of both schedule endpoints. Filters arrive as
// a loose map so partial overrides merge onto the defaults and unknown keys
// get rejected.
type scheduleRequest struct {
	Courses []string       `json:"courses"`
	Top     int            `json:"top"`
	Filters map[string]any `json:"filters"`
}

// decodeRequest parses and validates a schedule request body. On failure it
// writes the error response and returns ok=false.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (scheduleRequest, course.Filters, bool) {
	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return req, course.Filters{}, false
	}

	if len(req.Courses) == 0 {
		respondError(w, http.StatusUnprocessableEntity, "at least one course is required")
		return req, course.Filters{}, false
	}
	if len(req.Courses) > schedule.MaxCourses {
		respondError(w, http.StatusUnprocessableEntity, fmt.Sprintf("Maximum of %d courses allowed.", schedule.MaxCourses))
		return req, course.Filters{}, false
	}

	if req.Top == 0 {
		req.Top = 1
	}
	if req.Top < 0 {
		respondError(w, http.StatusUnprocessableEntity, "top must be a positive integer")
		return req, course.Filters{}, false
	}

	filters, err := course.DecodeFilters(req.Filters)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return req, course.Filters{}, false
	}

	return req, filters, true
}

// generate hydrates and searches for one request.
func (s *Server) generate(req scheduleRequest, filters course.Filters) ([]schedule.Schedule, error) {
	gen := schedule.NewGenerator(s.source, req.Courses, filters, s.params)
	return gen.Generate(req.Top)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	req, filters, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	schedules, err := s.generate(req, filters)
	if err != nil {
		s.logger.Error("generation failed", "courses", req.Courses, "error", err,
			"request_id", RequestIDFromContext(r.Context()))
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}

	if schedules == nil {
		schedules = []schedule.Schedule{}
	}
	respondJSON(w, http.StatusOK, schedules)
}

func (s *Server) handleVisualize(w http.ResponseWriter, r *http.Request) {
	req, filters, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	schedules, err := s.generate(req, filters)
	if err != nil {
		s.logger.Error("generation failed", "courses", req.Courses, "error", err,
			"request_id", RequestIDFromContext(r.Context()))
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}

	colored := r.URL.Query().Get("colored") == "true"

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if len(schedules) == 0 {
		fmt.Fprintln(w, "No conflict-free schedules found.")
		return
	}
	fmt.Fprint(w, grid.RenderAll(schedules, colored))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Plastron API. See /docs for more information.",
		"version": Version,
	})
}

type healthResponse struct {
	Status         string       `json:"status"`
	Uptime         string       `json:"uptime"`
	ResponseTimeMS float64      `json:"response_time_ms"`
	System         systemHealth `json:"system"`
	Timestamp      string       `json:"timestamp"`
}

type systemHealth struct {
	Platform   string `json:"platform"`
	GoVersion  string `json:"go_version"`
	Goroutines int    `json:"goroutines"`
	HeapMB     uint64 `json:"heap_mb"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	respondJSON(w, http.StatusOK, healthResponse{
		Status:         "ok",
		Uptime:         time.Since(s.startTime).Round(time.Second).String(),
		ResponseTimeMS: float64(time.Since(start).Microseconds()) / 1000,
		System: systemHealth{
			Platform:   runtime.GOOS,
			GoVersion:  runtime.Version(),
			Goroutines: runtime.NumGoroutine(),
			HeapMB:     mem.HeapAlloc / (1 << 20),
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
