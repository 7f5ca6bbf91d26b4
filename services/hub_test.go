package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHubMembershipIsIdempotent(t *testing.T) {
	hub := NewHub()
	sess := &fakeSession{}

	hub.Add(sess)
	hub.Add(sess)
	assert.Equal(t, 1, hub.Len(), "adding the same session twice must not create a duplicate")

	hub.Remove(sess)
	assert.Equal(t, 0, hub.Len())

	// Removing again, or removing something never added, is a no-op.
	hub.Remove(sess)
	hub.Remove(&fakeSession{})
	assert.Equal(t, 0, hub.Len())
}

func TestHubForEachSkipsRemovedSessions(t *testing.T) {
	hub := NewHub()
	s1, s2, s3 := &fakeSession{}, &fakeSession{}, &fakeSession{}
	hub.Add(s1)
	hub.Add(s2)
	hub.Add(s3)
	hub.Remove(s2)

	visited := make(map[Session]int)
	hub.ForEach(func(sess Session) {
		visited[sess]++
	})

	assert.Equal(t, 1, visited[s1])
	assert.Equal(t, 1, visited[s3])
	assert.NotContains(t, visited, s2)
}

func TestHubForEachAllowsMutationDuringIteration(t *testing.T) {
	hub := NewHub()
	s1, s2 := &fakeSession{}, &fakeSession{}
	hub.Add(s1)
	hub.Add(s2)

	// The callback removing sessions mid-iteration must not deadlock.
	hub.ForEach(func(sess Session) {
		hub.Remove(sess)
		hub.Add(&fakeSession{})
	})

	assert.Equal(t, 2, hub.Len())
}

func TestHubConcurrentAccess(t *testing.T) {
	hub := NewHub()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess := &fakeSession{}
			for j := 0; j < 100; j++ {
				hub.Add(sess)
				hub.ForEach(func(s Session) {
					_ = s
				})
				hub.Remove(sess)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, hub.Len())
}
