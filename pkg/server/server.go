package server

import (
	"errors"
	"fmt"
	"io"

	"github.com/bastiangx/arrowword/pkg/dictionary"
	"github.com/bastiangx/arrowword/pkg/generator"
	"github.com/bastiangx/arrowword/pkg/words"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for grid generation
type Server struct {
	gen generator.IGenerator
	dec *msgpack.Decoder
	enc *msgpack.Encoder
	log *log.Logger
}

// NewServer creates a server reading requests from r and writing responses
// to w, usually stdin and stdout.
func NewServer(gen generator.IGenerator, r io.Reader, w io.Writer, l *log.Logger) *Server {
	if l == nil {
		l = log.Default()
	}
	return &Server{
		gen: gen,
		dec: msgpack.NewDecoder(r),
		enc: msgpack.NewEncoder(w),
		log: l,
	}
}

// Start serves requests until the input ends. A message that is not valid
// msgpack ends the loop with an error, the stream cannot be resynchronised.
func (s *Server) Start() error {
	s.log.Debug("Starting Server.")

	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("Input closed, stopping server.")
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			_ = s.sendError("", "invalid msgpack request", 400)
			return err
		}
		if err := s.handleRequest(req); err != nil {
			s.log.Errorf("Writing response: %v", err)
			return err
		}
	}
}

func (s *Server) handleRequest(req Request) error {
	switch req.Action {
	case "", ActionBuild:
		return s.handleBuild(req)
	case ActionHealth:
		return s.send(StatusResponse{ID: req.ID, Status: "ok"})
	case ActionStats:
		return s.send(StatusResponse{ID: req.ID, Status: "ok", Stats: s.gen.Stats()})
	}
	return s.sendError(req.ID, fmt.Sprintf("Unknown action: %s", req.Action), 400)
}

func (s *Server) handleBuild(req Request) error {
	if len(req.Words) == 0 {
		s.log.Debug("Empty word list in request", "id", req.ID)
		return s.sendError(req.ID, "Missing 'words' parameter", 400)
	}

	p, err := s.gen.Generate(req.Words)
	if p == nil {
		code := 500
		if errors.Is(err, dictionary.ErrNoWords) || errors.Is(err, words.ErrEmptyInput) ||
			errors.Is(err, words.ErrDegenerateWord) {
			code = 422
		}
		s.log.Warn("Build failed", "id", req.ID, "err", err)
		return s.sendError(req.ID, err.Error(), code)
	}

	resp := newBuildResponse(req.ID, p)
	if err != nil {
		s.log.Error("Layout stuck", "id", req.ID, "err", err)
		resp.Error = err.Error()
	}
	return s.send(resp)
}

func newBuildResponse(id string, p *generator.Puzzle) BuildResponse {
	res := p.Result
	resp := BuildResponse{
		ID:        id,
		Grid:      res.Grid.Lines(),
		Placed:    make([]PlacedWord, len(res.Placed)),
		Unplaced:  make([]string, len(res.Unplaced)),
		State:     res.State.String(),
		Cached:    p.Cached,
		TimeTaken: p.Took.Microseconds(),
	}
	for i, w := range res.Placed {
		pos := w.Position()
		resp.Placed[i] = PlacedWord{
			Word:        w.String(),
			Hint:        w.Hint(),
			Orientation: w.Orientation().String(),
			Row:         pos.Row,
			Col:         pos.Col,
		}
	}
	for i, w := range res.Unplaced {
		resp.Unplaced[i] = w.String()
	}
	return resp
}

func (s *Server) send(v any) error {
	return s.enc.Encode(v)
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
