package kafka

import (
	"context"
	"testing"
	"time"

	"go-payroll/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvent() OutboxEvent {
	return OutboxEvent{
		ID:            uuid.NewString(),
		AggregateType: "settlement",
		AggregateID:   "42",
		EventType:     "settlement_paid",
		Topic:         "hr.payroll.settlement.paid.v1",
		Payload:       []byte(`{"settlement_id":42}`),
		Status:        OutboxStatusPending,
	}
}

func TestOutboxRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t, &OutboxEvent{})

	clock := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	repo := &outboxRepository{db: db, now: func() time.Time { return clock }}

	first, second := newEvent(), newEvent()
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	pending, err := repo.ListPending(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	require.NoError(t, repo.MarkSent(ctx, first.ID))
	require.NoError(t, repo.MarkFailed(ctx, second.ID, "broker unavailable"))

	pending, err = repo.ListPending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending, "failed event waits for its backoff")

	clock = clock.Add(16 * time.Second)
	pending, err = repo.ListPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)
	assert.Equal(t, 1, pending[0].RetryCount)
	require.NotNil(t, pending[0].ErrorMessage)
	assert.Equal(t, "broker unavailable", *pending[0].ErrorMessage)
}

func TestValidateOutboxEvent(t *testing.T) {
	e := newEvent()
	assert.NoError(t, ValidateOutboxEvent(e))

	e.Topic = ""
	assert.Error(t, ValidateOutboxEvent(e))

	e = newEvent()
	e.Status = "queued"
	assert.Error(t, ValidateOutboxEvent(e))

	e = newEvent()
	e.Payload = nil
	assert.Error(t, ValidateOutboxEvent(e))
}
