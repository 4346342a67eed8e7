package presence

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("new user", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry()
		r.Register("A", "sockA")

		c, ok := r.Lookup("A")
		assert.True(t, ok)
		assert.Equal(t, "sockA", c)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("last connect wins", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry()
		r.Register("A", "sockA1")
		r.Register("A", "sockA2")

		c, ok := r.Lookup("A")
		assert.True(t, ok)
		assert.Equal(t, "sockA2", c)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("same connection re-registered for another user", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry()
		r.Register("A", "sock")
		r.Register("B", "sock")

		_, ok := r.Lookup("A")
		assert.False(t, ok)
		c, ok := r.Lookup("B")
		assert.True(t, ok)
		assert.Equal(t, "sock", c)
	})
}

func TestRegistry_Unregister(t *testing.T) {
	t.Parallel()

	t.Run("registered connection", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry()
		r.Register("A", "sockA")

		u, ok := r.Unregister("sockA")
		assert.True(t, ok)
		assert.Equal(t, "A", u)

		_, ok = r.Lookup("A")
		assert.False(t, ok)
		assert.Equal(t, 0, r.Len())
	})

	t.Run("superseded connection is a no-op", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry()
		r.Register("A", "sockA1")
		r.Register("A", "sockA2")

		_, ok := r.Unregister("sockA1")
		assert.False(t, ok)

		c, ok := r.Lookup("A")
		assert.True(t, ok)
		assert.Equal(t, "sockA2", c)
	})

	t.Run("never registered", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry()
		r.Register("A", "sockA")

		_, ok := r.Unregister("unknown")
		assert.False(t, ok)

		c, ok := r.Lookup("A")
		assert.True(t, ok)
		assert.Equal(t, "sockA", c)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("twice", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry()
		r.Register("A", "sockA")

		_, ok := r.Unregister("sockA")
		assert.True(t, ok)
		_, ok = r.Unregister("sockA")
		assert.False(t, ok)
	})
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	_, ok := r.Lookup("never")
	assert.False(t, ok)
}

func TestRegistry_Users(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register("A", "sockA")
	r.Register("B", "sockB")
	r.Register("C", "sockC")
	r.Unregister("sockB")

	assert.ElementsMatch(t, []string{"A", "C"}, r.Users())
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u := strconv.Itoa(i)
			c := "sock" + u
			r.Register(u, c)
			got, ok := r.Lookup(u)
			assert.True(t, ok)
			assert.Equal(t, c, got)
			r.Unregister(c)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 0, r.Len())
}
