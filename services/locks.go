package services

import "sync"

// CartLocker hands out one mutex per user so that every read-then-write
// sequence on a cart is serialized. Placing an order takes the same lock as
// cart mutations, so the snapshot-and-clear step always observes a complete
// cart state. Different users never contend.
type CartLocker struct {
	locks sync.Map // userID -> *sync.Mutex
}

func NewCartLocker() *CartLocker {
	return &CartLocker{}
}

func (l *CartLocker) ForUser(userID uint) *sync.Mutex {
	mu, _ := l.locks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
