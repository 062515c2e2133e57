package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/blogly/internal/model"
)

func TestMigrateIsIdempotent(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, Migrate(db))
	for _, table := range []string{"users", "posts", "tags", "posts_tags"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestUserCreateAndGet(t *testing.T) {
	r := newRepos(setupDB(t))
	ctx := context.Background()

	u := &model.User{FirstName: "Grace", LastName: "Hopper", ImageURL: "https://example.com/grace.png"}
	require.NoError(t, r.users.Create(ctx, u))
	require.NotZero(t, u.ID)

	got, err := r.users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grace", got.FirstName)
	assert.Equal(t, "Hopper", got.LastName)
	assert.Equal(t, "https://example.com/grace.png", got.ImageURL)
	assert.Equal(t, "Grace Hopper", got.FullName())
	assert.Empty(t, got.Posts)
}

func TestUserCreateDefaultsImageURL(t *testing.T) {
	r := newRepos(setupDB(t))
	u := mustUser(t, r, "Alan", "Turing")

	got, err := r.users.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultImageURL, got.ImageURL)
}

func TestUserListOrderedByName(t *testing.T) {
	r := newRepos(setupDB(t))
	mustUser(t, r, "Linus", "Torvalds")
	mustUser(t, r, "Ada", "Lovelace")
	mustUser(t, r, "Ada", "Byron")

	users, err := r.users.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "Ada Byron", users[0].FullName())
	assert.Equal(t, "Ada Lovelace", users[1].FullName())
	assert.Equal(t, "Linus Torvalds", users[2].FullName())
}

func TestUserUpdateOverwritesFields(t *testing.T) {
	r := newRepos(setupDB(t))
	ctx := context.Background()
	u := mustUser(t, r, "Ada", "Byron")

	got, err := r.users.Update(ctx, &model.User{ID: u.ID, FirstName: "Ada", LastName: "Lovelace"})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got.FullName())
	assert.Equal(t, model.DefaultImageURL, got.ImageURL)

	_, err = r.users.Update(ctx, &model.User{ID: u.ID + 100, FirstName: "x", LastName: "y"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserGetIncludesPostsNewestFirst(t *testing.T) {
	r := newRepos(setupDB(t))
	u := mustUser(t, r, "Ada", "Lovelace")
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mustPost(t, r, u.ID, "first", base)
	mustPost(t, r, u.ID, "second", base.Add(time.Hour))

	got, err := r.users.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.Len(t, got.Posts, 2)
	assert.Equal(t, "second", got.Posts[0].Title)
	assert.Equal(t, "first", got.Posts[1].Title)
}

func TestDeleteUserCascadesPosts(t *testing.T) {
	db := setupDB(t)
	r := newRepos(db)
	ctx := context.Background()

	u := mustUser(t, r, "Ada", "Lovelace")
	other := mustUser(t, r, "Charles", "Babbage")
	tag := mustTag(t, r, "math")
	now := time.Now()
	for i := 0; i < 3; i++ {
		mustPost(t, r, u.ID, "post", now.Add(time.Duration(i)*time.Minute), tag.ID)
	}
	kept := mustPost(t, r, other.ID, "kept", now, tag.ID)

	require.NoError(t, r.users.Delete(ctx, u.ID))

	posts, err := r.posts.ListByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Zero(t, countRows(t, db, &model.Post{}, "user_id = ?", u.ID))
	assert.Equal(t, int64(1), countRows(t, db, &model.PostTag{}, ""))

	_, err = r.posts.GetByID(ctx, kept.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, r.users.Delete(ctx, u.ID), ErrNotFound)
}
