package dao_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsCrawler/dao"
	"newsCrawler/domain/model"
)

func openStore(t *testing.T) *dao.SQLiteStore {
	t.Helper()
	store, err := dao.Open(context.Background(), filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()

	t.Run("articles come back in acceptance order", func(t *testing.T) {
		store := openStore(t)
		runID, err := store.StartRun(ctx, "https://news.example/")
		require.NoError(t, err)

		second := model.ArticleRecord{URL: "https://news.example/b", Title: "B", Content: "Nội dung bài B"}
		first := model.ArticleRecord{URL: "https://news.example/a", Title: "A", Published: "2024-01-01", Author: "X", Content: "Nội dung bài A"}
		require.NoError(t, store.AddArticle(ctx, runID, 2, second))
		require.NoError(t, store.AddArticle(ctx, runID, 1, first))

		articles, err := store.Articles(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, []model.ArticleRecord{first, second}, articles)
	})

	t.Run("adding the same url twice keeps the first record", func(t *testing.T) {
		store := openStore(t)
		runID, err := store.StartRun(ctx, "https://news.example/")
		require.NoError(t, err)

		require.NoError(t, store.AddArticle(ctx, runID, 1, model.ArticleRecord{URL: "https://news.example/a", Title: "first"}))
		require.NoError(t, store.AddArticle(ctx, runID, 2, model.ArticleRecord{URL: "https://news.example/a", Title: "second"}))

		articles, err := store.Articles(ctx, runID)
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, "first", articles[0].Title)
	})

	t.Run("runs are isolated", func(t *testing.T) {
		store := openStore(t)
		runA, err := store.StartRun(ctx, "https://news.example/")
		require.NoError(t, err)
		runB, err := store.StartRun(ctx, "https://news.example/")
		require.NoError(t, err)
		assert.NotEqual(t, runA, runB)

		require.NoError(t, store.AddArticle(ctx, runA, 1, model.ArticleRecord{URL: "https://news.example/a"}))

		articles, err := store.Articles(ctx, runB)
		require.NoError(t, err)
		assert.Empty(t, articles)
	})

	t.Run("finishing a run records the count", func(t *testing.T) {
		store := openStore(t)
		runID, err := store.StartRun(ctx, "https://news.example/")
		require.NoError(t, err)

		run, err := store.Run(ctx, runID)
		require.NoError(t, err)
		assert.Nil(t, run.FinishedAt)

		require.NoError(t, store.FinishRun(ctx, runID, 7))

		run, err = store.Run(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, "https://news.example/", run.SeedURL)
		assert.Equal(t, 7, run.Accepted)
		assert.NotNil(t, run.FinishedAt)
	})

	t.Run("unknown runs", func(t *testing.T) {
		store := openStore(t)

		_, err := store.Run(ctx, "missing")
		assert.ErrorIs(t, err, dao.ErrRunNotFound)
		assert.ErrorIs(t, store.FinishRun(ctx, "missing", 1), dao.ErrRunNotFound)
	})

	t.Run("reopening keeps the archive", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "archive.db")
		store, err := dao.Open(ctx, path)
		require.NoError(t, err)
		runID, err := store.StartRun(ctx, "https://news.example/")
		require.NoError(t, err)
		require.NoError(t, store.AddArticle(ctx, runID, 1, model.ArticleRecord{URL: "https://news.example/a"}))
		require.NoError(t, store.Close())

		store, err = dao.Open(ctx, path)
		require.NoError(t, err)
		defer store.Close()

		articles, err := store.Articles(ctx, runID)
		require.NoError(t, err)
		assert.Len(t, articles, 1)
	})
}
