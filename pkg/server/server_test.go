package server

import (
	"bytes"
	"testing"

	"github.com/bastiangx/arrowword/internal/logger"
	"github.com/bastiangx/arrowword/pkg/config"
	"github.com/bastiangx/arrowword/pkg/generator"
	"github.com/bastiangx/arrowword/pkg/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

// run feeds the requests to a fresh server and returns a decoder positioned
// after the ready message.
func run(t *testing.T, reqs ...any) *msgpack.Decoder {
	t.Helper()
	gen, err := generator.NewGenerator(config.DefaultConfig(), logger.Quiet())
	require.NoError(t, err)

	var in, out bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, r := range reqs {
		require.NoError(t, enc.Encode(r))
	}
	require.NoError(t, NewServer(gen, &in, &out, logger.Quiet()).Start())

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	assert.Equal(t, "ready", ready.Status)
	return dec
}

func TestBuild(t *testing.T) {
	dec := run(t, Request{
		ID: "req_001",
		Words: []words.Entry{
			{Text: "hello", Hint: "a greeting"},
			{Text: "bye"},
		},
	})

	var resp BuildResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "req_001", resp.ID)
	assert.Equal(t, []string{"_b___", "_y___", "hello"}, resp.Grid)
	assert.Equal(t, []PlacedWord{
		{Word: "hello", Hint: "a greeting", Orientation: "horizontal", Row: 2, Col: 0},
		{Word: "bye", Orientation: "down", Row: 0, Col: 1},
	}, resp.Placed)
	assert.Empty(t, resp.Unplaced)
	assert.Equal(t, "done", resp.State)
	assert.Empty(t, resp.Error)
}

func TestBuildStuck(t *testing.T) {
	dec := run(t, Request{ID: "s", Words: words.FromStrings("chair", "card", "bet")})

	var resp BuildResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "stuck", resp.State)
	assert.Equal(t, []string{"bet"}, resp.Unplaced)
	assert.Equal(t, []string{"chair", "a____", "r____", "d____"}, resp.Grid)
	assert.Contains(t, resp.Error, "no intersection")
}

func TestRequestsInSequence(t *testing.T) {
	input := words.FromStrings("speaker", "chair")
	dec := run(t,
		Request{ID: "1", Words: input},
		Request{ID: "2", Action: ActionBuild, Words: input},
		Request{ID: "3", Action: ActionHealth},
		Request{ID: "4", Action: ActionStats},
	)

	var first, second BuildResponse
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))
	assert.Equal(t, first.Grid, second.Grid)
	assert.False(t, first.Cached)
	assert.True(t, second.Cached)

	var health StatusResponse
	require.NoError(t, dec.Decode(&health))
	assert.Equal(t, StatusResponse{ID: "3", Status: "ok"}, health)

	var stats StatusResponse
	require.NoError(t, dec.Decode(&stats))
	assert.Equal(t, 1, stats.Stats["generated"])
	assert.Equal(t, 1, stats.Stats["cacheHits"])
}

func TestBadRequests(t *testing.T) {
	testCases := []struct {
		name string
		req  Request
		code int
	}{
		{"no words", Request{ID: "a"}, 400},
		{"unknown action", Request{ID: "b", Action: "solve"}, 400},
		{"nothing usable", Request{ID: "c", Words: words.FromStrings("123", "!!")}, 422},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dec := run(t, tc.req)
			var resp ErrorResponse
			require.NoError(t, dec.Decode(&resp))
			assert.Equal(t, tc.req.ID, resp.ID)
			assert.Equal(t, tc.code, resp.Code)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestGarbageInput(t *testing.T) {
	gen, err := generator.NewGenerator(config.DefaultConfig(), logger.Quiet())
	require.NoError(t, err)

	var out bytes.Buffer
	// a bare string where a map is expected
	in := bytes.NewBuffer([]byte{0xa3, 'b', 'a', 'd'})
	err = NewServer(gen, in, &out, logger.Quiet()).Start()
	assert.Error(t, err)

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	var resp ErrorResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, 400, resp.Code)
}
