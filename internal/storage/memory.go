package storage

import (
	"context"
	"sync"

	"pitchbook/internal/model"
)

// Memory is an in-memory Storage for tests and ephemeral runs. It follows
// the same read/write contract as the durable backends.
type Memory struct {
	mu   sync.Mutex
	data []model.Booking
	set  bool
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(_ context.Context) ([]model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return nil, nil
	}
	out := make([]model.Booking, len(m.data))
	copy(out, m.data)
	return out, nil
}

func (m *Memory) Save(_ context.Context, bookings []model.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data := make([]model.Booking, len(bookings))
	copy(data, bookings)
	m.data = data
	m.set = true
	return nil
}
