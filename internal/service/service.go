package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/d60-Lab/blogly/internal/cache"
	"github.com/d60-Lab/blogly/pkg/logger"
)

// ErrInvalidInput 必填字段为空
var ErrInvalidInput = errors.New("invalid input")

// normalizeIDs 去重、去零并排序
func normalizeIDs(ids []uint) []uint {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// requireFields 任一字段去空白后为空则返回 ErrInvalidInput
func requireFields(fields map[string]string) error {
	var missing []string
	for name, v := range fields {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &InputError{Fields: missing}
}

// InputError 列出缺失的字段
type InputError struct {
	Fields []string
}

func (e *InputError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

// invalidate 首页缓存失效失败只记录日志，TTL 兜底
func invalidate(ctx context.Context, c cache.PostCache) {
	if err := c.Invalidate(ctx); err != nil {
		logger.Warn("invalidate recent posts cache failed", zap.Error(err))
	}
}

func orNoop(c cache.PostCache) cache.PostCache {
	if c == nil {
		return cache.Noop{}
	}
	return c
}
