// Package cli handles interactive input for building grids by hand and
// draws the results for a terminal.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bastiangx/arrowword/pkg/dictionary"
	"github.com/bastiangx/arrowword/pkg/generator"
	"github.com/bastiangx/arrowword/pkg/words"
	"github.com/charmbracelet/log"
)

// InputHandler collects words line by line and builds a grid on request.
// A line is either one word with a hint after a separator ("chair;a seat")
// or several bare words ("chair card speaker").
//
// Commands:
//
//	:go     build a grid from the collected words
//	:list   show the collected words
//	:clear  drop the collected words
//	:quit   leave
type InputHandler struct {
	gen     generator.IGenerator
	render  *Renderer
	in      io.Reader
	out     io.Writer
	pending []words.Entry
}

func NewInputHandler(gen generator.IGenerator, render *Renderer, in io.Reader, out io.Writer) *InputHandler {
	return &InputHandler{gen: gen, render: render, in: in, out: out}
}

var errQuit = errors.New("quit")

// Start runs the input loop until :quit or the end of input. Words still
// pending at the end of input are built before returning.
func (h *InputHandler) Start() error {
	log.Print("arrowword CLI")
	log.Print("enter words, :go to build a grid (:quit to exit):")

	reader := bufio.NewReader(h.in)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if herr := h.handleInput(strings.TrimSpace(line)); herr != nil {
			if errors.Is(herr, errQuit) {
				return nil
			}
			return herr
		}
		if errors.Is(err, io.EOF) {
			if len(h.pending) > 0 {
				return h.build()
			}
			return nil
		}
	}
}

func (h *InputHandler) handleInput(line string) error {
	switch line {
	case "":
		return nil
	case ":q", ":quit":
		return errQuit
	case ":go", ":build":
		return h.build()
	case ":clear":
		h.pending = nil
		log.Info("Cleared word list")
		return nil
	case ":list":
		for i, e := range h.pending {
			if _, err := fmt.Fprintf(h.out, "%2d. %s %s\n", i+1, e.Text, e.Hint); err != nil {
				return err
			}
		}
		return nil
	}

	if strings.HasPrefix(line, ":") {
		log.Warnf("Unknown command: %s", line)
		return nil
	}
	h.pending = append(h.pending, parseLine(line)...)
	log.Debug("Collected words", "count", len(h.pending))
	return nil
}

func (h *InputHandler) build() error {
	if len(h.pending) == 0 {
		log.Warn("No words to build from")
		return nil
	}
	entries := h.pending
	h.pending = nil

	p, err := h.gen.Generate(entries)
	if p == nil {
		log.Errorf("Build failed: %v", err)
		return nil
	}
	if err != nil {
		log.Error("Layout stuck", "err", err)
	}
	log.Debugf("Took [ %v ] for %d words", p.Took, len(entries))
	_, werr := fmt.Fprintln(h.out, h.render.Puzzle(p))
	return werr
}

func parseLine(line string) []words.Entry {
	// a separator was cut off, so this is one word with its hint
	if e := dictionary.SplitHint(line); e.Text != line {
		return []words.Entry{e}
	}
	return words.FromStrings(strings.Fields(line)...)
}
