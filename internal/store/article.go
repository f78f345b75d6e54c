package store

import (
	"context"
	"strconv"

	"curavital-api/internal/model"
)

// ArticleFilter narrows ListArticles. Search matches title, excerpt and
// content as substrings. Limit <= 0 means no limit.
type ArticleFilter struct {
	PublishedOnly bool
	Category      string
	Search        string
	Limit         int
}

const articleCols = `id, title, excerpt, content, category, author, read_time,
	image, is_published, tags, created_at, updated_at`

func (s *Store) CreateArticle(ctx context.Context, a *model.Article) error {
	if a.Tags == nil {
		a.Tags = []string{}
	}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO articles
		   (id, title, excerpt, content, category, author, read_time, image, is_published, tags)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		 RETURNING created_at, updated_at`,
		a.ID, a.Title, a.Excerpt, a.Content, a.Category, a.Author, a.ReadTime,
		a.Image, a.IsPublished, a.Tags,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	return wrapErr(err)
}

func (s *Store) GetArticle(ctx context.Context, id string) (*model.Article, error) {
	a := &model.Article{}
	err := s.pool.QueryRow(ctx,
		`SELECT `+articleCols+` FROM articles WHERE id = $1`, id,
	).Scan(&a.ID, &a.Title, &a.Excerpt, &a.Content, &a.Category, &a.Author,
		&a.ReadTime, &a.Image, &a.IsPublished, &a.Tags, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, wrapErr(err)
	}
	return a, nil
}

func (s *Store) ListArticles(ctx context.Context, f ArticleFilter) ([]model.Article, error) {
	q := `SELECT ` + articleCols + ` FROM articles WHERE 1=1`
	args := []any{}

	if f.PublishedOnly {
		q += ` AND is_published = true`
	}
	if f.Category != "" {
		args = append(args, f.Category)
		q += ` AND category = $` + itoa(len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := itoa(len(args))
		q += ` AND (title ILIKE $` + n + ` OR excerpt ILIKE $` + n + ` OR content ILIKE $` + n + `)`
	}
	q += ` ORDER BY created_at DESC`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		q += ` LIMIT $` + itoa(len(args))
	}

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	var out []model.Article
	for rows.Next() {
		var a model.Article
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Excerpt, &a.Content, &a.Category, &a.Author,
			&a.ReadTime, &a.Image, &a.IsPublished, &a.Tags, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) UpdateArticle(ctx context.Context, a *model.Article) error {
	if a.Tags == nil {
		a.Tags = []string{}
	}
	err := s.pool.QueryRow(ctx,
		`UPDATE articles
		 SET title=$1, excerpt=$2, content=$3, category=$4, author=$5,
		     read_time=$6, image=$7, is_published=$8, tags=$9, updated_at=NOW()
		 WHERE id=$10
		 RETURNING updated_at`,
		a.Title, a.Excerpt, a.Content, a.Category, a.Author, a.ReadTime,
		a.Image, a.IsPublished, a.Tags, a.ID,
	).Scan(&a.UpdatedAt)
	return wrapErr(err)
}

func (s *Store) DeleteArticle(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func itoa(n int) string { return strconv.Itoa(n) }
