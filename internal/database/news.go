// ClubAPI - Espoir Sportif de Chorbane Club Backend
// Copyright 2026 ESC Chorbane
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/esc-chorbane/clubapi

package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/esc-chorbane/clubapi/internal/models"
)

const newsColumns = `id, title, content, image_url, published_date, category, author_id, created_at, updated_at`

// CreateNews inserts a new article row.
func (db *DB) CreateNews(ctx context.Context, n *models.News) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO news (`+newsColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.Title, n.Content, n.ImageURL, n.PublishedDate, n.Category, n.AuthorID, n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert news article: %w", err)
	}
	return nil
}

// GetNews returns the article with the given id, or ErrNotFound.
func (db *DB) GetNews(ctx context.Context, id uuid.UUID) (*models.News, error) {
	return scanNews(db.conn.QueryRowContext(ctx,
		`SELECT `+newsColumns+` FROM news WHERE id = ?`, id))
}

// ListNews returns articles, optionally restricted to one category,
// newest first.
func (db *DB) ListNews(ctx context.Context, category *string) ([]*models.News, error) {
	query := `SELECT ` + newsColumns + ` FROM news`
	var args []interface{}
	if category != nil {
		query += ` WHERE category = ?`
		args = append(args, *category)
	}
	query += ` ORDER BY published_date DESC`

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}
	defer rows.Close()

	articles := make([]*models.News, 0)
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, n)
	}
	return articles, rows.Err()
}

// UpdateNews writes all mutable columns of an existing article.
func (db *DB) UpdateNews(ctx context.Context, n *models.News) error {
	res, err := db.conn.ExecContext(ctx,
		`UPDATE news
		 SET title = ?, content = ?, image_url = ?, published_date = ?, category = ?, author_id = ?, updated_at = ?
		 WHERE id = ?`,
		n.Title, n.Content, n.ImageURL, n.PublishedDate, n.Category, n.AuthorID, n.UpdatedAt, n.ID,
	)
	return affectedOrNotFound(res, err)
}

// DeleteNews removes an article.
func (db *DB) DeleteNews(ctx context.Context, id uuid.UUID) error {
	res, err := db.conn.ExecContext(ctx, `DELETE FROM news WHERE id = ?`, id)
	return affectedOrNotFound(res, err)
}

func scanNews(row rowScanner) (*models.News, error) {
	var n models.News
	err := row.Scan(&n.ID, &n.Title, &n.Content, &n.ImageURL, &n.PublishedDate,
		&n.Category, &n.AuthorID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &n, nil
}
