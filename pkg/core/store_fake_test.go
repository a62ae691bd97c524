package core_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/aretw0/haste/pkg/core"
)

// fakeStore implements core.Store in memory and counts calls.
type fakeStore struct {
	mu      sync.Mutex
	docs    map[string]string
	gets    int
	puts    int
	seq     int
	nextKey string
	putErr  error

	// When set, Put signals entered and waits for release.
	entered chan struct{}
	release chan struct{}

	// When set, Get does the same with its own pair.
	getEntered chan struct{}
	getRelease chan struct{}
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: make(map[string]string)}
}

func (f *fakeStore) Get(ctx context.Context, key string) (string, error) {
	if f.getEntered != nil {
		f.getEntered <- struct{}{}
		<-f.getRelease
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	content, ok := f.docs[key]
	if !ok {
		return "", core.ErrNotFound
	}
	return content, nil
}

func (f *fakeStore) Put(ctx context.Context, content string) (string, error) {
	if f.entered != nil {
		f.entered <- struct{}{}
		<-f.release
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts++
	if f.putErr != nil {
		return "", f.putErr
	}
	key := f.nextKey
	if key == "" {
		f.seq++
		key = fmt.Sprintf("key%d", f.seq)
	}
	f.nextKey = ""
	f.docs[key] = content
	return key, nil
}

func (f *fakeStore) calls() (gets, puts int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gets, f.puts
}
