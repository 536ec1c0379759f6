package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/buttonstrip/pkg/buildinfo"
	"github.com/matzehuels/buttonstrip/pkg/editor"
	"github.com/matzehuels/buttonstrip/pkg/errors"
	"github.com/matzehuels/buttonstrip/pkg/frame"
	"github.com/matzehuels/buttonstrip/pkg/observability"
	"github.com/matzehuels/buttonstrip/pkg/pipeline"
	"github.com/matzehuels/buttonstrip/pkg/settings"
	"github.com/matzehuels/buttonstrip/pkg/sink"
)

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

type renderRequest struct {
	Input   frame.Input      `json:"input"`
	Options pipeline.Options `json:"options"`
}

type renderResponse struct {
	InputHash string            `json:"input_hash"`
	RowCount  int               `json:"row_count"`
	Patch     settings.Patch    `json:"patch,omitempty"`
	Artifacts map[string][]byte `json:"artifacts"`
	FrameHit  bool              `json:"frame_hit"`
	RenderHit bool              `json:"render_hit"`
}

type resolveResponse struct {
	Patch    settings.Patch     `json:"patch"`
	Changed  bool               `json:"changed"`
	Settings *settings.Settings `json:"settings"`
}

type beginRequest struct {
	Input frame.Input `json:"input"`
	Item  string      `json:"item"`
}

type moveRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type sessionResponse struct {
	ID      string  `json:"id"`
	Item    string  `json:"item"`
	Param   string  `json:"param"`
	Axis    string  `json:"axis"`
	Trim    float64 `json:"trim"`
	Value   float64 `json:"value"`
	AnchorX float64 `json:"anchor_x"`
	AnchorY float64 `json:"anchor_y"`
	SVG     string  `json:"svg,omitempty"`
}

type endResponse struct {
	Value    float64            `json:"value"`
	Patch    settings.Patch     `json:"patch"`
	Settings *settings.Settings `json:"settings"`
	SVG      string             `json:"svg"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if !s.decode(w, r, &req) {
		return
	}
	res, err := s.runner.Execute(r.Context(), req.Input, req.Options)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, renderResponse{
		InputHash: res.InputHash,
		RowCount:  res.Frame.RowCount,
		Patch:     res.Frame.Patch,
		Artifacts: res.Artifacts,
		FrameHit:  res.CacheInfo.FrameHit,
		RenderHit: res.CacheInfo.RenderHit,
	})
}

// handleRenderFormat returns a single artifact as the raw response body.
func (s *Server) handleRenderFormat(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	var req renderRequest
	if !s.decode(w, r, &req) {
		return
	}
	req.Options.Formats = []string{format}
	res, err := s.runner.Execute(r.Context(), req.Input, req.Options)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	st := settings.Default()
	if !s.decode(w, r, st) {
		return
	}
	if err := st.Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}
	patch, changed := st.Resolve()
	writeJSON(w, http.StatusOK, resolveResponse{Patch: patch, Changed: changed, Settings: st})
}

func (s *Server) handleBeginEdit(w http.ResponseWriter, r *http.Request) {
	var req beginRequest
	if !s.decode(w, r, &req) {
		return
	}
	in := req.Input
	in.Edit = true
	in.Drag = nil
	f, err := s.runner.Compute(r.Context(), in, pipeline.Options{Measurer: pipeline.MeasurerFaces})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sess, err := editor.Begin(f, req.Item)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sess.Input = in
	s.sessions.Put(sess)
	observability.Editor().OnEditBegin(r.Context(), sess.Item, sess.Handle.Param)
	writeJSON(w, http.StatusCreated, newSessionResponse(sess, ""))
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if !s.decode(w, r, &req) {
		return
	}
	var resp sessionResponse
	err := s.sessions.Update(chi.URLParam(r, "id"), func(sess *editor.Session) error {
		drag := sess.Move(req.X, req.Y)
		in := sess.Input
		in.Drag = &drag
		f, err := s.runner.Compute(r.Context(), in, pipeline.Options{Measurer: pipeline.MeasurerFaces})
		if err != nil {
			return err
		}
		sess.Track(f)
		resp = newSessionResponse(sess, string(sink.RenderSVG(f, sink.WithHandles())))
		return nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEndEdit(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Take(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	value, patch := sess.End()

	in := sess.Input
	st := settings.Default()
	if in.Settings != nil {
		st = in.Settings.Clone()
	}
	if err := st.Apply(patch); err != nil {
		s.writeError(w, r, err)
		return
	}
	in.Settings = st
	in.Edit = false
	f, err := s.runner.Compute(r.Context(), in, pipeline.Options{Measurer: pipeline.MeasurerFaces})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	observability.Editor().OnEditEnd(r.Context(), sess.Item, sess.Handle.Param, value, time.Since(sess.Started))
	writeJSON(w, http.StatusOK, endResponse{
		Value:    value,
		Patch:    patch,
		Settings: st,
		SVG:      string(sink.RenderSVG(f)),
	})
}

func newSessionResponse(sess *editor.Session, svg string) sessionResponse {
	return sessionResponse{
		ID:      sess.ID.String(),
		Item:    sess.Item,
		Param:   sess.Handle.Param,
		Axis:    string(sess.Handle.Axis),
		Trim:    sess.Trim,
		Value:   sess.Value(),
		AnchorX: sess.Handle.AnchorX,
		AnchorY: sess.Handle.AnchorY,
		SVG:     svg,
	}
}

// decode reads a JSON body into v and writes an error response on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		code := errors.GetCode(err)
		if code == "" {
			code = errors.ErrCodeInvalidFormat
		}
		s.writeError(w, r, errors.Wrap(code, err, "decode request body: %s", errors.UserMessage(err)))
		return false
	}
	return true
}

type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= 500 {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
		observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
	}
	writeJSON(w, status, map[string]errorBody{"error": {Code: code, Message: errors.UserMessage(err)}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
