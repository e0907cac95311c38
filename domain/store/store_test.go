package store_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"newsCrawler/domain/store"
)

func TestUrlStore(t *testing.T) {
	t.Run("visit then seen", func(t *testing.T) {
		t.Parallel()

		s := store.NewUrlStore()
		assert.False(t, s.Seen("https://tuoitre.vn/a.htm"))

		s.Visit("https://tuoitre.vn/a.htm")
		assert.True(t, s.Seen("https://tuoitre.vn/a.htm"))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("visit is true only the first time", func(t *testing.T) {
		t.Parallel()

		s := store.NewUrlStore()
		assert.True(t, s.Visit("https://tuoitre.vn/a.htm"))
		assert.False(t, s.Visit("https://tuoitre.vn/a.htm"))
	})

	t.Run("concurrent visits admit exactly one caller", func(t *testing.T) {
		t.Parallel()

		s := store.NewUrlStore()
		var admitted int64
		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if s.Visit("https://tuoitre.vn/same.htm") {
					atomic.AddInt64(&admitted, 1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int64(1), admitted)
	})
}
