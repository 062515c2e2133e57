package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/blogly/internal/model"
)

func TestTagNameIsUnique(t *testing.T) {
	db := setupDB(t)
	r := newRepos(db)
	u := mustUser(t, r, "Ada", "Lovelace")
	p := mustPost(t, r, u.ID, "p", time.Now())
	mustTag(t, r, "math")

	err := r.tags.Create(context.Background(), &model.Tag{Name: "math"}, []uint{p.ID})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, int64(1), countRows(t, db, &model.Tag{}, ""))
	assert.Zero(t, countRows(t, db, &model.PostTag{}, ""))

	other := mustTag(t, r, "science")
	_, err = r.tags.Update(context.Background(), &model.Tag{ID: other.ID, Name: "math"}, nil)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestTagCreateWithPostsAndUpdate(t *testing.T) {
	r := newRepos(setupDB(t))
	ctx := context.Background()
	u := mustUser(t, r, "Ada", "Lovelace")
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p1 := mustPost(t, r, u.ID, "older", base)
	p2 := mustPost(t, r, u.ID, "newer", base.Add(time.Hour))
	p3 := mustPost(t, r, u.ID, "third", base.Add(2*time.Hour))

	tag := mustTag(t, r, "math", p1.ID, p2.ID)
	got, err := r.tags.GetByID(ctx, tag.ID)
	require.NoError(t, err)
	require.Len(t, got.Posts, 2)
	assert.Equal(t, "newer", got.Posts[0].Title)
	assert.Equal(t, "older", got.Posts[1].Title)

	got, err = r.tags.Update(ctx, &model.Tag{ID: tag.ID, Name: "mathematics"}, []uint{p3.ID})
	require.NoError(t, err)
	assert.Equal(t, "mathematics", got.Name)
	assert.Equal(t, []uint{p3.ID}, got.PostIDs())

	post, err := r.posts.GetByID(ctx, p1.ID)
	require.NoError(t, err)
	assert.Empty(t, post.Tags)
}

func TestDeleteTagKeepsPosts(t *testing.T) {
	db := setupDB(t)
	r := newRepos(db)
	ctx := context.Background()
	u := mustUser(t, r, "Ada", "Lovelace")
	keep := mustTag(t, r, "keep")
	drop := mustTag(t, r, "drop")
	p1 := mustPost(t, r, u.ID, "one", time.Now(), keep.ID, drop.ID)
	p2 := mustPost(t, r, u.ID, "two", time.Now(), drop.ID)

	before, err := r.posts.GetByID(ctx, p1.ID)
	require.NoError(t, err)

	require.NoError(t, r.tags.Delete(ctx, drop.ID))
	assert.Zero(t, countRows(t, db, &model.PostTag{}, "tag_id = ?", drop.ID))

	after, err := r.posts.GetByID(ctx, p1.ID)
	require.NoError(t, err)
	assert.Equal(t, before.Title, after.Title)
	assert.Equal(t, before.Content, after.Content)
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt))
	assert.Equal(t, before.UserID, after.UserID)
	assert.Equal(t, []string{"keep"}, tagNames(after.Tags))

	_, err = r.posts.GetByID(ctx, p2.ID)
	assert.NoError(t, err)
	assert.ErrorIs(t, r.tags.Delete(ctx, drop.ID), ErrNotFound)
}

func TestTagListAndFindByIDs(t *testing.T) {
	r := newRepos(setupDB(t))
	ctx := context.Background()
	z := mustTag(t, r, "zeta")
	a := mustTag(t, r, "alpha")

	tags, err := r.tags.List(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "alpha", tags[0].Name)

	found, err := r.tags.FindByIDs(ctx, []uint{z.ID, a.ID, 77})
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

// Ada 场景：建用户、发文、加标签、删用户后标签仍在且无关联文章
func TestLifecycleScenario(t *testing.T) {
	r := newRepos(setupDB(t))
	ctx := context.Background()

	u := mustUser(t, r, "Ada", "Lovelace")
	p := mustPost(t, r, u.ID, "Analytical Engine", time.Time{})
	math := mustTag(t, r, "math")

	_, err := r.posts.Update(ctx, &model.Post{ID: p.ID, Title: p.Title, Content: p.Content}, []uint{math.ID})
	require.NoError(t, err)

	got, err := r.posts.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"math"}, tagNames(got.Tags))

	require.NoError(t, r.users.Delete(ctx, u.ID))

	_, err = r.posts.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	tag, err := r.tags.GetByID(ctx, math.ID)
	require.NoError(t, err)
	assert.Empty(t, tag.Posts)
}
