package messaging_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/messaging"
)

type recordingOpener struct {
	opened []string
	at     []time.Time
	failOn string
}

func (r *recordingOpener) Open(_ context.Context, url string) error {
	if url == r.failOn {
		return errors.New("no handler for url")
	}
	r.opened = append(r.opened, url)
	r.at = append(r.at, time.Now())
	return nil
}

func TestDispatch_OpensInOrderWithDelay(t *testing.T) {
	o := &recordingOpener{}
	links := []messaging.Link{
		{URL: "https://wa.me/1?text=order"},
		{URL: "https://wa.me/2?text=image", Delay: 30 * time.Millisecond},
	}

	require.NoError(t, messaging.Dispatch(context.Background(), o, links))

	require.Equal(t, []string{"https://wa.me/1?text=order", "https://wa.me/2?text=image"}, o.opened)
	assert.GreaterOrEqual(t, o.at[1].Sub(o.at[0]), 30*time.Millisecond)
}

func TestDispatch_CancelledDuringDelay(t *testing.T) {
	o := &recordingOpener{}
	links := []messaging.Link{
		{URL: "first"},
		{URL: "second", Delay: time.Hour},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := messaging.Dispatch(ctx, o, links)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, []string{"first"}, o.opened)
}

func TestDispatch_StopsAtFirstFailure(t *testing.T) {
	o := &recordingOpener{failOn: "first"}
	links := []messaging.Link{{URL: "first"}, {URL: "second"}}

	err := messaging.Dispatch(context.Background(), o, links)
	require.Error(t, err)
	assert.Empty(t, o.opened)
}

func TestPrintOpener(t *testing.T) {
	var buf bytes.Buffer
	links := []messaging.Link{{URL: "https://wa.me/1?text=a"}, {URL: "https://wa.me/2?text=b"}}

	require.NoError(t, messaging.Dispatch(context.Background(), messaging.PrintOpener{W: &buf}, links))
	assert.Equal(t, "https://wa.me/1?text=a\nhttps://wa.me/2?text=b\n", buf.String())
}
