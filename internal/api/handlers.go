package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Tato14/Ped-eeg-position/pkg/buildinfo"
	"github.com/Tato14/Ped-eeg-position/pkg/errors"
	"github.com/Tato14/Ped-eeg-position/pkg/layout"
	"github.com/Tato14/Ped-eeg-position/pkg/pipeline"
)

// contentTypes maps output formats to MIME types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatDOT:  "text/vnd.graphviz",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// handleLayout computes a layout and returns its JSON document.
//
//	GET /v1/layout?age=30&sex=female&ni=32&pa=28
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := s.optionsFromQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	doc, err := s.runner.Compute(opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	data, err := layout.Marshal(doc)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "serialize layout"))
		return
	}
	w.Header().Set("Content-Type", contentTypes[pipeline.FormatJSON])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// handleRender computes a layout and returns one rendered artifact.
//
//	GET /v1/render?age=30&sex=female&ni=32&pa=28&format=svg&viz=scalp&style=print
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := s.optionsFromQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	opts.Formats = []string{format}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Layout-Hash", result.LayoutHash)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// optionsFromQuery parses subject and render parameters from the query
// string, falling back to the configured render defaults for anything the
// request omits. Validation of values is left to the pipeline; this only
// rejects unparseable numbers.
func (s *Server) optionsFromQuery(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Sex:         q.Get("sex"),
		Viz:         q.Get("viz"),
		Style:       q.Get("style"),
		Width:       s.render.Width,
		Scale:       s.render.Scale,
		Grid:        q.Get("grid") == "true",
		NoLabels:    !s.render.Labels,
		Fiducials:   q.Get("fiducials") == "true",
		Coordinates: q.Get("coordinates") == "true",
		Refresh:     q.Get("refresh") == "true",
		AgeSpacing:  q.Get("age_spacing") == "true",
	}
	if opts.Style == "" {
		opts.Style = s.render.Style
	}
	if labels := q.Get("labels"); labels != "" {
		opts.NoLabels = labels == "false"
	}

	var err error
	if opts.AgeMonths, err = queryFloat(q.Get("age"), "age"); err != nil {
		return opts, err
	}
	if opts.NasionInion, err = queryFloat(q.Get("ni"), "ni"); err != nil {
		return opts, err
	}
	if opts.Preauricular, err = queryFloat(q.Get("pa"), "pa"); err != nil {
		return opts, err
	}
	if w := q.Get("width"); w != "" {
		if opts.Width, err = queryFloat(w, "width"); err != nil {
			return opts, err
		}
	}
	if sc := q.Get("scale"); sc != "" {
		if opts.Scale, err = queryFloat(sc, "scale"); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func queryFloat(raw, name string) (float64, error) {
	if raw == "" {
		return 0, errors.New(errors.ErrCodeInvalidInput, "missing required parameter %q", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "parameter %q is not a number: %q", name, raw)
	}
	return v, nil
}

// errorResponse is the JSON body for failed requests.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// writeError maps validation failures to 400 and everything else to 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.IsValidation(err) {
		status = http.StatusBadRequest
	} else {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, errorResponse{
		Error: errors.UserMessage(err),
		Code:  string(errors.GetCode(err)),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
