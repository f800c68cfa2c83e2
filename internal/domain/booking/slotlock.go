package booking

import (
	"fmt"
	"sync"
)

// SlotLocker serializes booking admission per (barber, date, slot) key so
// two concurrent requests cannot both pass the conflict check and create
// a double booking.
type SlotLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSlotLocker() *SlotLocker {
	return &SlotLocker{
		locks: make(map[string]*sync.Mutex),
	}
}

func SlotKey(barberID uint, date, timeSlot string) string {
	return fmt.Sprintf("%d|%s|%s", barberID, date, timeSlot)
}

func (l *SlotLocker) Lock(key string) {
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
}

func (l *SlotLocker) Unlock(key string) {
	l.mu.Lock()
	m, ok := l.locks[key]
	l.mu.Unlock()

	if ok {
		m.Unlock()
	}
}
