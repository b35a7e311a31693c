package repository

import (
	"context"
	"sync"

	"github.com/dcastilloq/reservation-service/internal/errs"
	"github.com/dcastilloq/reservation-service/internal/model"
)

// inMemory keeps reservations in a slice guarded by a mutex. It satisfies
// the same contract as the Postgres repository and hands out copies, never
// live references.
type inMemory struct {
	mu     sync.Mutex
	nextID int64
	items  []model.Reservation
}

func NewInMemory() *inMemory {
	return &inMemory{nextID: 1}
}

func (m *inMemory) ExistsByDate(_ context.Context, date model.Date) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (m *inMemory) FindByDate(_ context.Context, date model.Date) (model.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].Date.Equal(date) {
			return m.items[i], nil
		}
	}
	return model.Reservation{}, errs.ErrNotFound
}

func (m *inMemory) FindByHolderName(_ context.Context, name string) ([]model.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Reservation, 0)
	for i := range m.items {
		if m.items[i].HolderName == name {
			out = append(out, m.items[i])
		}
	}
	return out, nil
}

func (m *inMemory) FindAll(_ context.Context) ([]model.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Reservation, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *inMemory) FindByID(_ context.Context, id int64) (model.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			return m.items[i], nil
		}
	}
	return model.Reservation{}, errs.ErrNotFound
}

func (m *inMemory) Save(_ context.Context, rsv model.Reservation) (model.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rsv.ID == 0 {
		rsv.ID = m.nextID
		m.nextID++
		m.items = append(m.items, rsv)
		return rsv, nil
	}
	for i := range m.items {
		if m.items[i].ID == rsv.ID {
			m.items[i] = rsv
			return rsv, nil
		}
	}
	return model.Reservation{}, errs.ErrNotFound
}

func (m *inMemory) Delete(_ context.Context, rsv model.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == rsv.ID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}
