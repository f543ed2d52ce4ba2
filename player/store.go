package player

import (
	"fmt"
	"sync"
)

// Store is durable key-value storage for player instances. Implementations
// must make a successful Put visible to the next Get of the same key.
type Store interface {
	// Get returns the value under key and whether it exists.
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
}

func stateKey(id string) string { return "p_" + id + "_state" }
func metaKey(id string) string  { return "p_" + id + "_meta" }

// Info is a player state together with its instance metadata.
type Info struct {
	ID      string
	Creator string
	State   *State
}

// Create persists a new player under id. It fails with ErrInstanceExists if
// the id is already taken.
func Create(st Store, id, creator string, dims Dimensions, start uint32) (*State, error) {
	_, found, err := st.Get(stateKey(id))
	if err != nil {
		return nil, fmt.Errorf("load player %s: %w", id, err)
	}
	if found {
		return nil, fmt.Errorf("%w: %s", ErrInstanceExists, id)
	}
	meta, err := encodeMeta(creator)
	if err != nil {
		return nil, err
	}
	s := New(dims, start)
	if err := st.Put(metaKey(id), meta); err != nil {
		return nil, fmt.Errorf("save player %s meta: %w", id, err)
	}
	if err := st.Put(stateKey(id), EncodeState(s)); err != nil {
		return nil, fmt.Errorf("save player %s: %w", id, err)
	}
	return s, nil
}

// Load reads the state of player id.
func Load(st Store, id string) (*State, error) {
	raw, found, err := st.Get(stateKey(id))
	if err != nil {
		return nil, fmt.Errorf("load player %s: %w", id, err)
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrInstanceNotFound, id)
	}
	s, err := DecodeState(raw)
	if err != nil {
		return nil, fmt.Errorf("player %s: %w", id, err)
	}
	return s, nil
}

// LoadInfo reads the state and metadata of player id.
func LoadInfo(st Store, id string) (*Info, error) {
	s, err := Load(st, id)
	if err != nil {
		return nil, err
	}
	info := &Info{ID: id, State: s}
	raw, found, err := st.Get(metaKey(id))
	if err != nil {
		return nil, fmt.Errorf("load player %s meta: %w", id, err)
	}
	if found {
		if info.Creator, err = decodeMeta(raw); err != nil {
			return nil, fmt.Errorf("player %s meta: %w", id, err)
		}
	}
	return info, nil
}

// Turn plays one turn of player id: load, advance, store. Nothing is written
// when the turn fails. It returns the coordinate and the state after the turn.
func Turn(st Store, id string) (*Coord, *State, error) {
	s, err := Load(st, id)
	if err != nil {
		return nil, nil, err
	}
	c, err := s.YourTurn()
	if err != nil {
		return nil, nil, fmt.Errorf("player %s: %w", id, err)
	}
	if err := st.Put(stateKey(id), EncodeState(s)); err != nil {
		return nil, nil, fmt.Errorf("save player %s: %w", id, err)
	}
	return c, s, nil
}

// MemStore is an in-memory Store.
type MemStore struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string][]byte)}
}

func (s *MemStore) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *MemStore) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = append([]byte(nil), value...)
	return nil
}
