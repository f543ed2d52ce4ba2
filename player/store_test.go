package player

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	*MemStore
	failPut bool
}

func (f *failingStore) Put(key string, value []byte) error {
	if f.failPut {
		return errors.New("disk full")
	}
	return f.MemStore.Put(key, value)
}

func TestCreateAndTurn(t *testing.T) {
	st := NewMemStore()
	_, err := Create(st, "a", "hive:someone", Dimensions{Width: 3, Height: 2}, 0)
	require.NoError(t, err)

	want := []Coord{{0, 0}, {1, 0}, {2, 0}, {0, 1}}
	for _, w := range want {
		c, s, err := Turn(st, "a")
		require.NoError(t, err)
		assert.Equal(t, w, *c)
		assert.Equal(t, Dimensions{Width: 3, Height: 2}, s.Dimensions)
	}

	info, err := LoadInfo(st, "a")
	require.NoError(t, err)
	assert.Equal(t, "hive:someone", info.Creator)
	assert.Equal(t, uint32(4), info.State.Counter)
}

func TestCreate_Duplicate(t *testing.T) {
	st := NewMemStore()
	_, err := Create(st, "a", "", Dimensions{Width: 1, Height: 1}, 0)
	require.NoError(t, err)

	_, err = Create(st, "a", "", Dimensions{Width: 2, Height: 2}, 5)
	assert.ErrorIs(t, err, ErrInstanceExists)

	s, err := Load(st, "a")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), s.Dimensions.Width)
}

func TestTurn_NotFound(t *testing.T) {
	_, _, err := Turn(NewMemStore(), "ghost")
	assert.ErrorIs(t, err, ErrInstanceNotFound)
}

func TestTurn_FailureLeavesStateUntouched(t *testing.T) {
	st := NewMemStore()
	_, err := Create(st, "zero", "", Dimensions{Width: 0, Height: 3}, 4)
	require.NoError(t, err)
	before, _, _ := st.Get(stateKey("zero"))

	_, _, err = Turn(st, "zero")
	assert.ErrorIs(t, err, ErrDivisionByZero)

	after, _, _ := st.Get(stateKey("zero"))
	assert.Equal(t, before, after)
}

func TestTurn_PutError(t *testing.T) {
	st := &failingStore{MemStore: NewMemStore()}
	_, err := Create(st, "a", "", Dimensions{Width: 2, Height: 2}, 0)
	require.NoError(t, err)

	st.failPut = true
	_, _, err = Turn(st, "a")
	assert.EqualError(t, err, "save player a: disk full")

	s, err := Load(st, "a")
	require.NoError(t, err)
	assert.Equal(t, uint32(0), s.Counter)
}

func TestLoad_Corrupt(t *testing.T) {
	st := NewMemStore()
	require.NoError(t, st.Put(stateKey("bad"), []byte{1, 2}))

	_, err := Load(st, "bad")
	assert.ErrorIs(t, err, ErrCorruptState)
}

func TestMemStore_CopiesValues(t *testing.T) {
	st := NewMemStore()
	v := []byte{1, 2, 3}
	require.NoError(t, st.Put("k", v))
	v[0] = 9

	got, found, err := st.Get("k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte{1, 2, 3}, got)
}
