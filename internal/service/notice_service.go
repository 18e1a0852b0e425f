package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spec-kit/society-service/internal/domain"
	"github.com/spec-kit/society-service/internal/persistence"
	"github.com/spec-kit/society-service/internal/repository"
	apperrors "github.com/spec-kit/society-service/pkg/util"
)

const noticeCacheKey = "notices:board"

// NoticeService manages the announcement board. The board read path is
// cached; publishing invalidates the cache.
type NoticeService struct {
	notices  repository.NoticeRepository
	cache    *persistence.Redis
	cacheTTL time.Duration
}

// NewNoticeService wires the notice service.
func NewNoticeService(notices repository.NoticeRepository, cache *persistence.Redis, cacheTTL time.Duration) *NoticeService {
	return &NoticeService{notices: notices, cache: cache, cacheTTL: cacheTTL}
}

// PublishNotice posts an announcement and drops the board cache.
func (s *NoticeService) PublishNotice(ctx context.Context, adminID, title, body string) (*domain.Notice, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" || body == "" {
		return nil, apperrors.NewValidationError("title and body are required", nil)
	}

	notice := &domain.Notice{
		Title:       title,
		Body:        body,
		CreatedByID: adminID,
	}
	if err := s.notices.Create(ctx, notice); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.cache.Invalidate(ctx, noticeCacheKey)
	return notice, nil
}

// ListNotices returns the board, newest first, via the cache when warm.
func (s *NoticeService) ListNotices(ctx context.Context) ([]domain.Notice, error) {
	var cached []domain.Notice
	if err := s.cache.GetJSON(ctx, noticeCacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, persistence.ErrCacheMiss) {
		return nil, apperrors.MapError(err)
	}

	notices, err := s.notices.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	s.cache.SetJSON(ctx, noticeCacheKey, notices, s.cacheTTL)
	return notices, nil
}

// ListNoticesFresh bypasses the cache so admins always see the live board.
func (s *NoticeService) ListNoticesFresh(ctx context.Context) ([]domain.Notice, error) {
	notices, err := s.notices.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return notices, nil
}
