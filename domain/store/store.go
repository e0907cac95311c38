package store

import "sync"

// UrlStore is the set of urls already handed out for fetching.
type UrlStore struct {
	seenUrls map[string]struct{}
	rwMutex  sync.RWMutex
}

func NewUrlStore() *UrlStore {
	return &UrlStore{
		seenUrls: make(map[string]struct{}),
		rwMutex:  sync.RWMutex{},
	}
}

func (s *UrlStore) Seen(url string) bool {
	s.rwMutex.RLock()
	defer s.rwMutex.RUnlock()
	_, ok := s.seenUrls[url]
	return ok
}

// Visit adds url and reports whether it was new. Check and insert happen
// under one lock so two callers can never both get true for the same url.
func (s *UrlStore) Visit(url string) bool {
	s.rwMutex.Lock()
	defer s.rwMutex.Unlock()
	if _, ok := s.seenUrls[url]; ok {
		return false
	}
	s.seenUrls[url] = struct{}{}
	return true
}

func (s *UrlStore) Len() int {
	s.rwMutex.RLock()
	defer s.rwMutex.RUnlock()
	return len(s.seenUrls)
}
