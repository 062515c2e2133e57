package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/d60-Lab/blogly/config"
	"github.com/d60-Lab/blogly/internal/repository"
	"github.com/d60-Lab/blogly/internal/service"
	"github.com/d60-Lab/blogly/pkg/database"
	"github.com/d60-Lab/blogly/pkg/logger"
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

// 演示数据：作者、标签与每人若干篇文章；USERS / POSTS 环境变量可调整规模
var (
	authors = [][2]string{
		{"Alan", "Alda"},
		{"Joel", "Burton"},
		{"Jane", "Smith"},
		{"Ada", "Lovelace"},
	}
	tagNames = []string{"fun", "even more", "bloop", "zope", "math"}
)

func envInt(name string, def int) int {
	if s := os.Getenv(name); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func main() {
	cfg := must(config.Load())
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	db := must(database.InitDB(cfg))
	defer database.Close(db)
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	tagRepo := repository.NewTagRepository(db)
	userSvc := service.NewUserService(userRepo, nil)
	postSvc := service.NewPostService(userRepo, postRepo, nil)
	tagSvc := service.NewTagService(tagRepo)

	ctx := context.Background()
	nUsers := envInt("USERS", len(authors))
	nPosts := envInt("POSTS", 2)

	// 标签名唯一，重复执行时复用已有标签
	existing := map[string]uint{}
	for _, t := range must(tagSvc.List(ctx)) {
		existing[t.Name] = t.ID
	}
	tagIDs := make([]uint, 0, len(tagNames))
	for _, name := range tagNames {
		if id, ok := existing[name]; ok {
			tagIDs = append(tagIDs, id)
			continue
		}
		tag := must(tagSvc.Create(ctx, service.TagInput{Name: name}))
		tagIDs = append(tagIDs, tag.ID)
	}

	posts := 0
	for i := 0; i < nUsers; i++ {
		a := authors[i%len(authors)]
		first := a[0]
		if i >= len(authors) {
			first = fmt.Sprintf("%s %d", a[0], i/len(authors))
		}
		user := must(userSvc.Create(ctx, service.UserInput{FirstName: first, LastName: a[1]}))
		for j := 0; j < nPosts; j++ {
			in := service.PostInput{
				Title:   fmt.Sprintf("%s's post #%d", user.FirstName, j+1),
				Content: fmt.Sprintf("Notes from %s, entry %d.", user.FullName(), j+1),
				TagIDs:  []uint{tagIDs[(i+j)%len(tagIDs)], tagIDs[(i+j+1)%len(tagIDs)]},
			}
			must(postSvc.Create(ctx, user.ID, in))
			posts++
		}
	}

	logger.Info("seed complete",
		zap.Int("users", nUsers),
		zap.Int("posts", posts),
		zap.Int("tags", len(tagIDs)),
	)
}
