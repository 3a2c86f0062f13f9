// ClubAPI - Espoir Sportif de Chorbane Club Backend
// Copyright 2026 ESC Chorbane
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/esc-chorbane/clubapi

package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/esc-chorbane/clubapi/internal/logging"
	"github.com/esc-chorbane/clubapi/internal/models"
	"github.com/esc-chorbane/clubapi/internal/validation"
)

// NewsStore is the persistence surface the news service needs.
type NewsStore interface {
	CreateNews(ctx context.Context, n *models.News) error
	GetNews(ctx context.Context, id uuid.UUID) (*models.News, error)
	ListNews(ctx context.Context, category *string) ([]*models.News, error)
	UpdateNews(ctx context.Context, n *models.News) error
	DeleteNews(ctx context.Context, id uuid.UUID) error
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	UserExists(ctx context.Context, id uuid.UUID) (bool, error)
}

// NewsService implements news article CRUD with author attribution.
type NewsService struct {
	store NewsStore
}

// NewNewsService creates the news service.
func NewNewsService(store NewsStore) *NewsService {
	return &NewsService{store: store}
}

// Create stores a new article. When the payload names no author the
// article is attributed to the authenticated user; authorID may be nil
// for callers outside the HTTP layer.
func (s *NewsService) Create(ctx context.Context, req *models.NewsCreateRequest, authorID *uuid.UUID) (*models.NewsView, error) {
	if verr := validation.ValidateStruct(req); verr != nil {
		return nil, validationFailed(verr)
	}

	author, err := s.resolveAuthorID(ctx, req.AuthorID, authorID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	publishedDate := now
	if req.PublishedDate != nil && *req.PublishedDate != "" {
		publishedDate, err = models.ParseDateTime(*req.PublishedDate)
		if err != nil {
			return nil, invalidField("published_date must be a valid date")
		}
	}

	article := &models.News{
		ID:            uuid.New(),
		Title:         req.Title,
		Content:       req.Content,
		ImageURL:      req.ImageURL,
		PublishedDate: publishedDate,
		Category:      req.Category,
		AuthorID:      author,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.store.CreateNews(ctx, article); err != nil {
		return nil, internalError("create news article", err)
	}

	logging.Info().Str("news_id", article.ID.String()).Str("title", article.Title).Msg("News article created")
	return s.assembleView(ctx, article)
}

// Get returns one article with its author reference.
func (s *NewsService) Get(ctx context.Context, id uuid.UUID) (*models.NewsView, error) {
	article, err := s.store.GetNews(ctx, id)
	if err != nil {
		return nil, storeError("News article", "get news article", err)
	}
	return s.assembleView(ctx, article)
}

// List returns articles, optionally restricted to one category, newest
// first.
func (s *NewsService) List(ctx context.Context, category *string) ([]models.NewsView, error) {
	articles, err := s.store.ListNews(ctx, category)
	if err != nil {
		return nil, internalError("list news articles", err)
	}

	authors := make(map[uuid.UUID]*models.User)
	views := make([]models.NewsView, 0, len(articles))
	for _, article := range articles {
		var author *models.User
		if article.AuthorID != nil {
			cached, ok := authors[*article.AuthorID]
			if !ok {
				cached, err = s.store.GetUser(ctx, *article.AuthorID)
				if err != nil {
					return nil, storeError("User", "get news author", err)
				}
				authors[*article.AuthorID] = cached
			}
			author = cached
		}
		views = append(views, models.NewNewsView(article, author))
	}
	return views, nil
}

// Update applies a partial update. Sending "author_id": "" removes the
// attribution.
func (s *NewsService) Update(ctx context.Context, id uuid.UUID, patch *models.NewsPatch) (*models.NewsView, error) {
	if verr := validation.ValidateStruct(patch); verr != nil {
		return nil, validationFailed(verr)
	}

	article, err := s.store.GetNews(ctx, id)
	if err != nil {
		return nil, storeError("News article", "get news article", err)
	}

	if err := s.applyNewsPatch(ctx, article, patch); err != nil {
		return nil, err
	}
	article.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateNews(ctx, article); err != nil {
		return nil, storeError("News article", "update news article", err)
	}
	return s.assembleView(ctx, article)
}

// Delete removes an article.
func (s *NewsService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeleteNews(ctx, id); err != nil {
		return storeError("News article", "delete news article", err)
	}
	logging.Info().Str("news_id", id.String()).Msg("News article deleted")
	return nil
}

func (s *NewsService) assembleView(ctx context.Context, article *models.News) (*models.NewsView, error) {
	var author *models.User
	if article.AuthorID != nil {
		var err error
		author, err = s.store.GetUser(ctx, *article.AuthorID)
		if err != nil {
			return nil, storeError("User", "get news author", err)
		}
	}
	view := models.NewNewsView(article, author)
	return &view, nil
}

// resolveAuthorID picks the article author: the explicit payload value
// wins, otherwise the authenticated user. An empty string means
// explicitly unattributed.
func (s *NewsService) resolveAuthorID(ctx context.Context, wire *string, fallback *uuid.UUID) (*uuid.UUID, error) {
	if wire == nil {
		return fallback, nil
	}
	if *wire == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*wire)
	if err != nil {
		return nil, invalidField("author_id must be a valid id")
	}
	exists, err := s.store.UserExists(ctx, id)
	if err != nil {
		return nil, internalError("check user existence", err)
	}
	if !exists {
		return nil, invalidField("author_id does not reference an existing user")
	}
	return &id, nil
}

func (s *NewsService) applyNewsPatch(ctx context.Context, n *models.News, p *models.NewsPatch) error {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.ImageURL != nil {
		n.ImageURL = p.ImageURL
	}
	if p.PublishedDate != nil {
		publishedDate, err := models.ParseDateTime(*p.PublishedDate)
		if err != nil {
			return invalidField("published_date must be a valid date")
		}
		n.PublishedDate = publishedDate
	}
	if p.Category != nil {
		n.Category = p.Category
	}
	if p.AuthorID != nil {
		author, err := s.resolveAuthorID(ctx, p.AuthorID, nil)
		if err != nil {
			return err
		}
		n.AuthorID = author
	}
	return nil
}
