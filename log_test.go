package voovan

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gookit/goutil/testutil/assert"
	"github.com/rs/zerolog"
)

func TestSendLogsFatalFailuresOnly(t *testing.T) {
	var logBuf bytes.Buffer
	prev := logger
	SetLogger(zerolog.New(&logBuf))
	defer SetLogger(prev)

	// benign release race stays silent
	resp := NewResponse()
	resp.SetBodyString("x")
	sink := recordingSink{failAt: 1, failErr: ErrBodyReleased}
	assert.Err(t, resp.Send(&sink))
	assert.Eq(t, 0, logBuf.Len())

	// a real transport failure is logged
	resp = NewResponse()
	resp.SetBodyString("x")
	sink = recordingSink{failAt: 1, failErr: errors.New("broken pipe")}
	assert.Err(t, resp.Send(&sink))
	assert.StrContains(t, logBuf.String(), "response send failed")
	assert.StrContains(t, logBuf.String(), "broken pipe")
}
