package jellyfin

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession(t *testing.T) {
	s := NewSession(nil)
	assert.Nil(t, s.Get())
	assert.Equal(t, "", s.UserID())
	assert.Equal(t, "", s.Token())
	assert.False(t, s.Authenticated())

	s.Set(AuthUser{ID: "u1", Token: "t1"})
	assert.Equal(t, "u1", s.UserID())
	assert.True(t, s.Authenticated())

	got := s.Get()
	got.Token = "mutated"
	assert.Equal(t, "t1", s.Token(), "Get must return a copy")

	s.Clear()
	assert.Nil(t, s.Get())
}

func TestSessionConcurrentAccess(t *testing.T) {
	s := NewSession(&AuthUser{ID: "seed", Token: "seed"})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Set(AuthUser{ID: "writer", Token: "w"})
		}()
		go func() {
			defer wg.Done()
			_ = s.Token()
			_ = s.UserID()
		}()
	}
	wg.Wait()

	assert.Equal(t, "writer", s.UserID())
}
