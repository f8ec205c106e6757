package hub

import (
	"errors"
	"testing"
	"time"
)

type fakeWS struct {
	frames   []any
	pings    int
	writeErr error
}

func (f *fakeWS) WriteJSON(v any) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.frames = append(f.frames, v)
	return nil
}

func (f *fakeWS) WriteMessage(messageType int, data []byte) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.pings++
	return nil
}

func (f *fakeWS) SetWriteDeadline(t time.Time) error { return nil }

func TestBroadcastReachesAllListeners(t *testing.T) {
	t.Parallel()
	h := New(nil)

	first, second := &fakeWS{}, &fakeWS{}
	h.Add(NewConn(first))
	h.Add(NewConn(second))

	payload := map[string]string{"type": "SCENE_UPDATE"}
	if got := h.Broadcast(payload); got != 2 {
		t.Fatalf("delivered: got %d, want 2", got)
	}
	for i, ws := range []*fakeWS{first, second} {
		if len(ws.frames) != 1 {
			t.Fatalf("listener %d frames: got %d, want 1", i, len(ws.frames))
		}
	}
}

func TestBroadcastSkipsFailedListener(t *testing.T) {
	t.Parallel()
	h := New(nil)

	healthy := &fakeWS{}
	broken := &fakeWS{writeErr: errors.New("write: broken pipe")}
	h.Add(NewConn(healthy))
	h.Add(NewConn(broken))

	if got := h.Broadcast("frame"); got != 1 {
		t.Fatalf("delivered: got %d, want 1", got)
	}
	if len(healthy.frames) != 1 {
		t.Fatalf("healthy listener frames: %d", len(healthy.frames))
	}
}

func TestRemoveStopsDelivery(t *testing.T) {
	t.Parallel()
	h := New(nil)

	ws := &fakeWS{}
	c := NewConn(ws)
	h.Add(c)
	if h.Count() != 1 {
		t.Fatalf("count after add: %d", h.Count())
	}

	h.Remove(c)
	if h.Count() != 0 {
		t.Fatalf("count after remove: %d", h.Count())
	}
	if got := h.Broadcast("frame"); got != 0 {
		t.Fatalf("delivered after remove: got %d, want 0", got)
	}
	if len(ws.frames) != 0 {
		t.Fatalf("removed listener still received %d frames", len(ws.frames))
	}

	// removing twice is safe
	h.Remove(c)
}

func TestConnSerializesPingAndSend(t *testing.T) {
	t.Parallel()
	ws := &fakeWS{}
	c := NewConn(ws)

	if err := c.SendJSON("a"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if err := c.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if len(ws.frames) != 1 || ws.pings != 1 {
		t.Fatalf("frames=%d pings=%d", len(ws.frames), ws.pings)
	}
}
