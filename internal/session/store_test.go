package session

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Lifecycle(t *testing.T) {
	st := NewStore(2, WithSentinel("STOP"))

	snap, err := st.Create()
	require.NoError(t, err)
	assert.Equal(t, "STOP", snap.Sentinel)
	assert.Equal(t, AwaitingDeclarations, snap.State)
	assert.Equal(t, 1, st.Len())

	err = st.Do(snap.ID, func(s *Session) error {
		_, err := s.Declare("bin a 1;")
		return err
	})
	require.NoError(t, err)

	var vars int
	require.NoError(t, st.Do(snap.ID, func(s *Session) error {
		vars = s.Table().Len()
		return nil
	}))
	assert.Equal(t, 1, vars)

	require.NoError(t, st.Delete(snap.ID))
	assert.ErrorIs(t, st.Delete(snap.ID), ErrNotFound)
	assert.ErrorIs(t, st.Do(snap.ID, func(*Session) error { return nil }), ErrNotFound)
}

func TestStore_Limit(t *testing.T) {
	st := NewStore(1)

	_, err := st.Create()
	require.NoError(t, err)

	_, err = st.Create()
	assert.ErrorIs(t, err, ErrStoreFull)
}

func TestStore_DefaultLimit(t *testing.T) {
	assert.Equal(t, DefaultStoreLimit, NewStore(0).limit)
}

func TestStore_ConcurrentDeclarations(t *testing.T) {
	st := NewStore(10)
	snap, err := st.Create()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = st.Do(snap.ID, func(s *Session) error {
				_, err := s.Declare("bin shared 1;")
				return err
			})
		}()
	}
	wg.Wait()

	require.NoError(t, st.Do(snap.ID, func(s *Session) error {
		assert.Equal(t, 1, s.Table().Len())
		return nil
	}))
	assert.ErrorIs(t, st.Do(uuid.New(), func(*Session) error { return nil }), ErrNotFound)
}
