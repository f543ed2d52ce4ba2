package badger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tplog "okinoko-test_player/log"
	"okinoko-test_player/player"
)

func openStore(t *testing.T, dir string) *BadgerStore {
	t.Helper()
	st, err := NewBadgerStore(tplog.Nop(), dir, 16)
	require.NoError(t, err)
	return st
}

func TestBadgerStore_GetPut(t *testing.T) {
	st := openStore(t, t.TempDir())
	defer st.Close()

	_, found, err := st.Get("missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, st.Put("k", []byte("v1")))
	v, found, err := st.Get("k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v1"), v)
}

func TestBadgerStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	st := openStore(t, dir)
	_, err := player.Create(st, "p", "host", player.Dimensions{Width: 3, Height: 2}, 0)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		_, _, err := player.Turn(st, "p")
		require.NoError(t, err)
	}
	require.NoError(t, st.Close())

	st = openStore(t, dir)
	defer st.Close()
	c, s, err := player.Turn(st, "p")
	require.NoError(t, err)
	assert.Equal(t, player.Coord{X: 1, Y: 1}, *c)
	assert.Equal(t, uint32(5), s.Counter)
}

func TestBadgerStore_UpdateRollsBack(t *testing.T) {
	st := openStore(t, t.TempDir())
	defer st.Close()
	require.NoError(t, st.Put("k", []byte("old")))

	boom := errors.New("boom")
	err := st.Update(func(tx player.Store) error {
		require.NoError(t, tx.Put("k", []byte("new")))
		v, found, err := tx.Get("k")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte("new"), v)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	v, _, err := st.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("old"), v)
}

func TestBadgerStore_UpdateCommits(t *testing.T) {
	st := openStore(t, t.TempDir())
	defer st.Close()

	err := st.Update(func(tx player.Store) error {
		_, err := player.Create(tx, "p", "", player.Dimensions{Width: 5, Height: 5}, 7)
		return err
	})
	require.NoError(t, err)

	var got *player.Coord
	err = st.Update(func(tx player.Store) error {
		c, _, err := player.Turn(tx, "p")
		got = c
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, player.Coord{X: 2, Y: 1}, *got)

	s, err := player.Load(st, "p")
	require.NoError(t, err)
	assert.Equal(t, uint32(8), s.Counter)
}
