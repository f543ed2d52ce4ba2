// Package host plays the role of the execution environment around player
// instances: it owns the store and serialises calls per instance.
package host

import (
	"fmt"
	"sync"

	tplog "okinoko-test_player/log"
	"okinoko-test_player/player"
)

// TxStore is a player.Store that can group a read-modify-write into one
// atomic transaction.
type TxStore interface {
	player.Store
	Update(fn func(st player.Store) error) error
}

type Host struct {
	log   tplog.Logger
	store TxStore

	mu    sync.Mutex
	locks map[string]*idLock
}

// idLock serialises calls to one instance. refs counts holders and waiters
// so the entry can be dropped once nobody uses it.
type idLock struct {
	mu   sync.Mutex
	refs int
}

func NewHost(log tplog.Logger, store TxStore) *Host {
	return &Host{
		log:   log,
		store: store,
		locks: make(map[string]*idLock),
	}
}

func (h *Host) lock(id string) func() {
	h.mu.Lock()
	l, ok := h.locks[id]
	if !ok {
		l = &idLock{}
		h.locks[id] = l
	}
	l.refs++
	h.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		h.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(h.locks, id)
		}
		h.mu.Unlock()
	}
}

// Create constructs a new player instance.
func (h *Host) Create(id, creator string, dims player.Dimensions, start uint32) (*player.State, error) {
	if id == "" {
		return nil, fmt.Errorf("player id is empty")
	}
	defer h.lock(id)()

	var s *player.State
	err := h.store.Update(func(st player.Store) error {
		var err error
		s, err = player.Create(st, id, creator, dims, start)
		return err
	})
	if err != nil {
		return nil, err
	}
	if dims.Width == 0 {
		h.log.Warnf("player %s has zero width; its turns will fail", id)
	}
	h.log.Infof("player created: id=%s width=%d height=%d start=%d", id, dims.Width, dims.Height, start)
	return s, nil
}

// Turns plays n consecutive turns of one instance, each in its own
// transaction. It stops at the first failing turn and returns the
// coordinates played before it.
func (h *Host) Turns(id string, n int) ([]player.Coord, error) {
	defer h.lock(id)()

	// n comes from the caller; grow on demand instead of preallocating
	var out []player.Coord
	for i := 0; i < n; i++ {
		var (
			c *player.Coord
			s *player.State
		)
		err := h.store.Update(func(st player.Store) error {
			var err error
			c, s, err = player.Turn(st, id)
			return err
		})
		if err != nil {
			h.log.Errorf("turn failed: id=%s err=%v", id, err)
			return out, err
		}
		if c == nil {
			h.log.Infof("player %s passed", id)
			continue
		}
		if !c.Within(s.Dimensions) {
			h.log.Warnf("player %s moved outside the grid: x=%d y=%d", id, c.X, c.Y)
		}
		h.log.Debugf("turn: id=%s x=%d y=%d counter=%d", id, c.X, c.Y, s.Counter)
		out = append(out, *c)
	}
	return out, nil
}

// Get returns the stored state of an instance.
func (h *Host) Get(id string) (*player.Info, error) {
	defer h.lock(id)()
	return player.LoadInfo(h.store, id)
}
