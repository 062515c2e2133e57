package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/d60-Lab/blogly/internal/model"
)

// setupDB 每个测试独立的内存 sqlite，开启外键
func setupDB(tb testing.TB) *gorm.DB {
	tb.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(tb.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		tb.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := Migrate(db); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	return db
}

type repos struct {
	users UserRepository
	posts PostRepository
	tags  TagRepository
}

func newRepos(db *gorm.DB) repos {
	return repos{
		users: NewUserRepository(db),
		posts: NewPostRepository(db),
		tags:  NewTagRepository(db),
	}
}

func mustUser(t *testing.T, r repos, first, last string) *model.User {
	t.Helper()
	u := &model.User{FirstName: first, LastName: last}
	require.NoError(t, r.users.Create(context.Background(), u))
	return u
}

func mustPost(t *testing.T, r repos, userID uint, title string, at time.Time, tagIDs ...uint) *model.Post {
	t.Helper()
	p := &model.Post{Title: title, Content: title + " content", UserID: userID, CreatedAt: at}
	require.NoError(t, r.posts.Create(context.Background(), p, tagIDs))
	return p
}

func mustTag(t *testing.T, r repos, name string, postIDs ...uint) *model.Tag {
	t.Helper()
	tag := &model.Tag{Name: name}
	require.NoError(t, r.tags.Create(context.Background(), tag, postIDs))
	return tag
}

func tagNames(tags []model.Tag) []string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Name
	}
	return names
}

func countRows(t *testing.T, db *gorm.DB, m any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	q := db.Model(m)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}
