package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-epr-sync/internal/channel"
	"github.com/MKhiriev/go-epr-sync/internal/mock"
	"github.com/MKhiriev/go-epr-sync/models"
)

// fakeConn is a scripted channel. respond computes the reply to each sent
// message; failSend injects a write failure for the n-th send.
type fakeConn struct {
	respond  func(msg models.Message) (models.Message, bool)
	failSend func(n int, msg models.Message) error

	replies chan models.Message
	done    chan struct{}
	once    sync.Once

	mu   sync.Mutex
	sent []models.Message
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		replies: make(chan models.Message, 64),
		done:    make(chan struct{}),
	}
}

func (c *fakeConn) SendObject(ctx context.Context, msg models.Message) error {
	select {
	case <-c.done:
		return channel.ErrClosed
	default:
	}

	c.mu.Lock()
	n := len(c.sent)
	c.mu.Unlock()
	if c.failSend != nil {
		if err := c.failSend(n, msg); err != nil {
			return err
		}
	}

	c.mu.Lock()
	c.sent = append(c.sent, msg)
	c.mu.Unlock()

	if c.respond != nil {
		if reply, ok := c.respond(msg); ok {
			c.replies <- reply
		}
	}
	return nil
}

func (c *fakeConn) ReceiveObject(ctx context.Context, into models.Message) error {
	select {
	case reply := <-c.replies:
		raw, err := json.Marshal(reply)
		if err != nil {
			return err
		}
		return json.Unmarshal(raw, into)
	case <-c.done:
		return channel.ErrClosed
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", channel.ErrTransport, ctx.Err())
	}
}

func (c *fakeConn) Close() error {
	c.once.Do(func() { close(c.done) })
	return nil
}

func (c *fakeConn) Sent() []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Message(nil), c.sent...)
}

// reply queues a message to be received regardless of what is sent.
func (c *fakeConn) reply(msg models.Message) *fakeConn {
	c.replies <- msg
	return c
}

func newTestProvider(ctrl *gomock.Controller) *mock.MockProvider {
	p := mock.NewMockProvider(ctrl)
	p.EXPECT().Host().Return("server.test").AnyTimes()
	p.EXPECT().Port(gomock.Any()).Return(7000).AnyTimes()
	p.EXPECT().ClientID().Return("amb-01").AnyTimes()
	return p
}

// statusRecorder collects flow status updates.
type statusRecorder struct {
	mu       sync.Mutex
	statuses []models.FlowStatus
}

func (r *statusRecorder) record(s models.FlowStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, s)
}

func (r *statusRecorder) last() models.FlowStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.statuses) == 0 {
		return models.FlowStatus{}
	}
	return r.statuses[len(r.statuses)-1]
}

func (r *statusRecorder) states() []models.FlowState {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.FlowState, 0, len(r.statuses))
	for _, s := range r.statuses {
		out = append(out, s.State)
	}
	return out
}

func ptr(v int64) *int64 { return &v }
