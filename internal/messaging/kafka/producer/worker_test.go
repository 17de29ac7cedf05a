package producer

import (
	"context"
	"errors"
	"testing"

	"go-payroll/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeOutboxRepository struct {
	pending []kafka.OutboxEvent
	sent    []string
	failed  map[string]string
}

func (f *fakeOutboxRepository) WithTx(*gorm.DB) kafka.OutboxRepository { return f }
func (f *fakeOutboxRepository) Create(context.Context, kafka.OutboxEvent) error {
	return nil
}
func (f *fakeOutboxRepository) ListPending(_ context.Context, limit int) ([]kafka.OutboxEvent, error) {
	if len(f.pending) > limit {
		return f.pending[:limit], nil
	}
	return f.pending, nil
}
func (f *fakeOutboxRepository) MarkSent(_ context.Context, id string) error {
	f.sent = append(f.sent, id)
	return nil
}
func (f *fakeOutboxRepository) MarkFailed(_ context.Context, id string, reason string) error {
	if f.failed == nil {
		f.failed = map[string]string{}
	}
	f.failed[id] = reason
	return nil
}

type fakeWriter struct {
	messages []kafkago.Message
	failKey  string
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if string(m.Key) == w.failKey {
			return errors.New("leader not available")
		}
		w.messages = append(w.messages, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	repo := &fakeOutboxRepository{pending: []kafka.OutboxEvent{
		{ID: "a", AggregateID: "1", EventType: "settlement_paid", AggregateType: "settlement", Topic: "t", Payload: []byte("{}"), RequestID: "req-1"},
		{ID: "b", AggregateID: "2", EventType: "settlement_paid", AggregateType: "settlement", Topic: "t", Payload: []byte("{}")},
		{ID: "c", AggregateID: "3", EventType: "settlement_paid", AggregateType: "settlement", Topic: "t", Payload: []byte("{}")},
	}}
	writer := &fakeWriter{failKey: "2"}

	sent, err := processPendingEvents(context.Background(), repo, writer, zap.NewNop(), 10)

	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Equal(t, []string{"a", "c"}, repo.sent)
	assert.Contains(t, repo.failed["b"], "leader not available")

	require.Len(t, writer.messages, 2)
	headers := map[string]string{}
	for _, h := range writer.messages[0].Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "settlement_paid", headers["event_type"])
	assert.Equal(t, "req-1", headers["request_id"])
}

func TestProcessPendingEvents_RespectsBatchSize(t *testing.T) {
	repo := &fakeOutboxRepository{pending: []kafka.OutboxEvent{
		{ID: "a", AggregateID: "1", Topic: "t", Payload: []byte("{}")},
		{ID: "b", AggregateID: "2", Topic: "t", Payload: []byte("{}")},
	}}

	sent, err := processPendingEvents(context.Background(), repo, &fakeWriter{}, zap.NewNop(), 1)

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}
