package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/Gunvolt24/seafood-shop/internal/kafka/mocks"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

var (
	testReaderConfig = kafka.ReaderConfig{Topic: "catalog-events", GroupID: "g1", Brokers: []string{"b:9092"}}
	updated          = []byte(`{"type":"product.updated","entityId":"p1"}`)
)

type consumerEnv struct {
	reader  *mocks.Mockreader
	handler *mocks.MockeventHandler
}

func newConsumerEnv(t *testing.T) *consumerEnv {
	ctrl := gomock.NewController(t)
	e := &consumerEnv{reader: mocks.NewMockreader(ctrl), handler: mocks.NewMockeventHandler(ctrl)}
	e.reader.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	return e
}

func (e *consumerEnv) consumer(maxAttempts int) *Consumer {
	return newConsumer(e.reader, e.handler, nopLogger{}, ConsumerConfig{
		ProcessTimeout: 30 * time.Millisecond,
		RetryInitial:   2 * time.Millisecond,
		RetryMax:       8 * time.Millisecond,
		MaxAttempts:    maxAttempts,
	}, 1)
}

// deliver — одно сообщение, затем fetch блокируется до отмены контекста.
func (e *consumerEnv) deliver(offset int64, value []byte) {
	first := e.reader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{Offset: offset, Value: value}, nil)
	e.reader.EXPECT().FetchMessage(gomock.Any()).After(first).
		DoAndReturn(func(ctx context.Context) (kafka.Message, error) {
			<-ctx.Done()
			return kafka.Message{}, ctx.Err()
		})
}

// runUntil — Run в горутине; done закрывается тестом, когда ожидания выполнены.
func runUntil(t *testing.T, c *Consumer, done <-chan struct{}) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- c.Run(ctx) }()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer did not reach the expected state")
	}
	cancel()

	select {
	case err := <-errCh:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestRun_HandledEventIsCommitted(t *testing.T) {
	e := newConsumerEnv(t)
	e.deliver(1, updated)
	e.handler.EXPECT().HandleEvent(gomock.Any(), updated).Return(nil)

	done := make(chan struct{})
	e.reader.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			require.EqualValues(t, 1, msgs[0].Offset)
			close(done)
			return nil
		})

	runUntil(t, e.consumer(3), done)
}

func TestRun_InvalidEventIsCommittedWithoutRetry(t *testing.T) {
	e := newConsumerEnv(t)
	e.deliver(7, []byte("bad"))
	e.handler.EXPECT().HandleEvent(gomock.Any(), []byte("bad")).Return(domain.ErrInvalidEvent).Times(1)

	done := make(chan struct{})
	e.reader.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, ...kafka.Message) error { close(done); return nil })

	runUntil(t, e.consumer(3), done)
}

func TestRun_TemporaryFailureRetriedOnSameMessage(t *testing.T) {
	e := newConsumerEnv(t)
	e.deliver(2, updated)
	gomock.InOrder(
		e.handler.EXPECT().HandleEvent(gomock.Any(), updated).Return(context.DeadlineExceeded),
		e.handler.EXPECT().HandleEvent(gomock.Any(), updated).Return(errors.New("cache busy")),
		e.handler.EXPECT().HandleEvent(gomock.Any(), updated).Return(nil),
	)

	done := make(chan struct{})
	e.reader.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, ...kafka.Message) error { close(done); return nil })

	runUntil(t, e.consumer(5), done)
}

func TestRun_DropAfterMaxAttempts(t *testing.T) {
	e := newConsumerEnv(t)
	e.deliver(3, updated)
	e.handler.EXPECT().HandleEvent(gomock.Any(), updated).Return(errors.New("boom")).Times(2)

	done := make(chan struct{})
	e.reader.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, ...kafka.Message) error { close(done); return nil })

	runUntil(t, e.consumer(2), done)
}

func TestRun_UnlimitedRetries_NoCommitOnCancel(t *testing.T) {
	e := newConsumerEnv(t)
	e.reader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{Offset: 4, Value: updated}, nil)
	e.handler.EXPECT().HandleEvent(gomock.Any(), updated).Return(errors.New("boom")).MinTimes(2)
	// CommitMessages не ожидается: вызов уронит тест

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, e.consumer(0).Run(ctx), context.DeadlineExceeded)
}

func TestRun_FetchErrorsRetriedUntilCancel(t *testing.T) {
	e := newConsumerEnv(t)
	e.reader.EXPECT().FetchMessage(gomock.Any()).
		Return(kafka.Message{}, errors.New("broker down")).MinTimes(2)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, e.consumer(3).Run(ctx), context.DeadlineExceeded)
}

func TestRun_CommitErrorDoesNotStopLoop(t *testing.T) {
	e := newConsumerEnv(t)
	first := e.reader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{Offset: 5, Value: updated}, nil)
	second := e.reader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{Offset: 6, Value: updated}, nil).After(first)
	e.reader.EXPECT().FetchMessage(gomock.Any()).After(second).
		DoAndReturn(func(ctx context.Context) (kafka.Message, error) {
			<-ctx.Done()
			return kafka.Message{}, ctx.Err()
		})
	e.handler.EXPECT().HandleEvent(gomock.Any(), updated).Return(nil).Times(2)

	done := make(chan struct{})
	gomock.InOrder(
		e.reader.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(errors.New("rebalance")),
		e.reader.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, ...kafka.Message) error { close(done); return nil }),
	)

	runUntil(t, e.consumer(3), done)
}

func TestClose_Once(t *testing.T) {
	e := newConsumerEnv(t)
	closeErr := errors.New("already closed")
	e.reader.EXPECT().Close().Return(closeErr).Times(1)

	c := e.consumer(3)
	require.ErrorIs(t, c.Close(), closeErr)
	require.ErrorIs(t, c.Close(), closeErr)
}

func TestBackoff(t *testing.T) {
	b := newBackoff(10*time.Millisecond, 40*time.Millisecond, 42)

	for _, base := range []time.Duration{10, 20, 40, 40} {
		d := b.next()
		base *= time.Millisecond
		require.GreaterOrEqual(t, d, base/2)
		require.LessOrEqual(t, d, base)
	}

	b.reset()
	require.LessOrEqual(t, b.next(), 10*time.Millisecond)
}

func TestSleepCtx(t *testing.T) {
	require.True(t, sleepCtx(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.False(t, sleepCtx(ctx, time.Hour))
}
