/*
Package server implements msgpack IPC for arrowword grid generation.

Clients write msgpack maps to stdin and read one msgpack map per request
from stdout. Logs go to stderr so they never mix with the stream.

# IPC

A build request carries the word list, hints optional:

	{"id": "req_001", "words": [{"w": "chair", "h": "a seat"}, {"w": "cardboard"}]}

The response holds the grid rows and where each word went:

	{"id": "req_001", "grid": ["cardboard", "h________", ...],
	 "placed": [{"w": "cardboard", "o": "horizontal", "r": 0, "c": 0}, ...],
	 "unplaced": [], "state": "done", "t": 120}

A run that gets stuck still answers with the partial grid, state "stuck" and
the reason in "e". Requests that cannot be served at all get an ErrorResponse.

Other actions:

	{"id": "h_1", "action": "health"}
	{"id": "s_1", "action": "stats"}

The server announces itself with {"status": "ready"} before reading.
*/
package server

import "github.com/bastiangx/arrowword/pkg/words"

const (
	ActionBuild  = "build"
	ActionHealth = "health"
	ActionStats  = "stats"
)

// Request is every message a client can send. Action defaults to build.
type Request struct {
	ID     string        `msgpack:"id"`
	Action string        `msgpack:"action,omitempty"`
	Words  []words.Entry `msgpack:"words,omitempty"`
}

// PlacedWord is a word on the grid, anchored at its first letter.
type PlacedWord struct {
	Word        string `msgpack:"w"`
	Hint        string `msgpack:"h,omitempty"`
	Orientation string `msgpack:"o"`
	Row         int    `msgpack:"r"`
	Col         int    `msgpack:"c"`
}

// BuildResponse - result of a build request
type BuildResponse struct {
	ID        string       `msgpack:"id"`
	Grid      []string     `msgpack:"grid"`
	Placed    []PlacedWord `msgpack:"placed"`
	Unplaced  []string     `msgpack:"unplaced"`
	State     string       `msgpack:"state"`
	Error     string       `msgpack:"e,omitempty"`
	Cached    bool         `msgpack:"cached,omitempty"`
	TimeTaken int64        `msgpack:"t"`
}

// StatusResponse answers ready, health and stats
type StatusResponse struct {
	ID     string         `msgpack:"id,omitempty"`
	Status string         `msgpack:"status"`
	Stats  map[string]int `msgpack:"stats,omitempty"`
}

// ErrorResponse holds basic error information
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
