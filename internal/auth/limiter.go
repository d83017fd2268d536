package auth

import (
	"sync"
	"time"
)

// Значения по умолчанию для AttemptLimiter.
const (
	DefaultMaxAttempts   = 5
	DefaultLockoutWindow = 15 * time.Minute
)

// AttemptLimiter — счётчик неудачных входов по ключу (email) в скользящем окне.
// Состояние живёт в памяти процесса.
type AttemptLimiter struct {
	max    int
	window time.Duration
	now    func() time.Time

	mu        sync.Mutex
	attempts  map[string][]time.Time
	lastSweep time.Time
}

func NewAttemptLimiter(maxAttempts int, window time.Duration, now func() time.Time) *AttemptLimiter {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if window <= 0 {
		window = DefaultLockoutWindow
	}
	if now == nil {
		now = time.Now
	}
	return &AttemptLimiter{
		max:      maxAttempts,
		window:   window,
		now:      now,
		attempts: make(map[string][]time.Time),
	}
}

// Check — можно ли пытаться войти; при блокировке возвращает оставшееся время.
func (l *AttemptLimiter) Check(key string) (time.Duration, bool) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	recent := l.prune(key, now)
	if len(recent) < l.max {
		return 0, true
	}
	return l.window - now.Sub(recent[0]), false
}

// RecordFailure — учесть неудачную попытку.
func (l *AttemptLimiter) RecordFailure(key string) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.attempts[key] = append(l.prune(key, now), now)
	if now.Sub(l.lastSweep) >= l.window {
		l.sweep(now)
	}
}

// Len — число ключей с попытками в памяти.
func (l *AttemptLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.attempts)
}

// sweep — удаляет ключи, все попытки которых вышли из окна; не чаще раза за окно.
func (l *AttemptLimiter) sweep(now time.Time) {
	for key := range l.attempts {
		l.prune(key, now)
	}
	l.lastSweep = now
}

// Reset — сбросить счётчик после успешного входа.
func (l *AttemptLimiter) Reset(key string) {
	l.mu.Lock()
	delete(l.attempts, key)
	l.mu.Unlock()
}

// prune — оставляет попытки внутри окна; вызывается под мьютексом.
func (l *AttemptLimiter) prune(key string, now time.Time) []time.Time {
	list := l.attempts[key]
	i := 0
	for i < len(list) && now.Sub(list[i]) >= l.window {
		i++
	}
	list = list[i:]
	if len(list) == 0 {
		delete(l.attempts, key)
		return nil
	}
	l.attempts[key] = list
	return list
}
