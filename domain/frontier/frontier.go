// Package frontier holds the urls discovered but not yet fetched, plus the
// urls already fetched.
package frontier

import (
	"sync"

	"newsCrawler/domain/adapters/FIFOqueue"
	"newsCrawler/domain/store"
)

// Frontier is an ordered queue with membership tracking. A url is queued at
// most once while pending and never handed out again once visited.
type Frontier struct {
	mu      sync.Mutex
	queue   *FIFOqueue.FIFOQueue
	queued  map[string]struct{}
	visited *store.UrlStore
}

func New() *Frontier {
	return &Frontier{
		queue:   FIFOqueue.New(),
		queued:  make(map[string]struct{}),
		visited: store.NewUrlStore(),
	}
}

// Push enqueues url unless it is already visited or waiting in the queue.
func (f *Frontier) Push(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if url == "" || f.visited.Seen(url) {
		return false
	}
	if _, ok := f.queued[url]; ok {
		return false
	}
	if err := f.queue.Push(url); err != nil {
		return false
	}
	f.queued[url] = struct{}{}
	return true
}

// PushAll enqueues every url and returns how many were new.
func (f *Frontier) PushAll(urls []string) int {
	added := 0
	for _, u := range urls {
		if f.Push(u) {
			added++
		}
	}
	return added
}

// Pop returns the oldest pending url. It does not mark it visited.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.queue.Pop()
	if !ok {
		return "", false
	}
	url, _ := v.(string)
	delete(f.queued, url)
	return url, true
}

// Visit marks url visited and reports whether this call did so.
func (f *Frontier) Visit(url string) bool {
	return f.visited.Visit(url)
}

// Len is the number of pending urls.
func (f *Frontier) Len() int {
	return f.queue.Len()
}

// VisitedCount is the number of urls marked visited.
func (f *Frontier) VisitedCount() int {
	return f.visited.Len()
}
