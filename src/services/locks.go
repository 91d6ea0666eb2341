package services

import "sync"

// CardLocks serializes the read-check-write sequences that touch a card's
// deposit balance and outstanding loans. Without it two concurrent borrow
// requests could both pass the balance and quota checks before either writes.
type CardLocks struct {
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func NewCardLocks() *CardLocks {
	return &CardLocks{locks: make(map[int]*sync.Mutex)}
}

// Lock acquires the mutex for the given card and returns its release func.
func (l *CardLocks) Lock(cardId int) func() {
	l.mu.Lock()
	m, ok := l.locks[cardId]
	if !ok {
		m = &sync.Mutex{}
		l.locks[cardId] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
