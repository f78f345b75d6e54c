package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"curavital-api/internal/model"
	"curavital-api/internal/store"
)

// CategoryAll is the pseudo-category the articles page uses to clear the
// category filter.
const CategoryAll = "Todos"

type ArticleStore interface {
	CreateArticle(ctx context.Context, a *model.Article) error
	GetArticle(ctx context.Context, id string) (*model.Article, error)
	ListArticles(ctx context.Context, f store.ArticleFilter) ([]model.Article, error)
	UpdateArticle(ctx context.Context, a *model.Article) error
	DeleteArticle(ctx context.Context, id string) error
}

// ArticleService is a read-mostly projection over the store. Every
// visitor-facing query carries the is_published filter; nothing is
// cached locally.
type ArticleService struct {
	store ArticleStore
}

func NewArticleService(st ArticleStore) *ArticleService {
	return &ArticleService{store: st}
}

func (s *ArticleService) ListPublished(ctx context.Context) ([]model.Article, error) {
	out, err := s.store.ListArticles(ctx, store.ArticleFilter{PublishedOnly: true})
	if err != nil {
		return nil, fail("No se pudieron cargar los artículos.", err)
	}
	return out, nil
}

func (s *ArticleService) ByCategory(ctx context.Context, category string) ([]model.Article, error) {
	f := store.ArticleFilter{PublishedOnly: true}
	if category != CategoryAll {
		f.Category = category
	}
	out, err := s.store.ListArticles(ctx, f)
	if err != nil {
		return nil, fail("No se pudieron cargar los artículos.", err)
	}
	return out, nil
}

func (s *ArticleService) Search(ctx context.Context, query string) ([]model.Article, error) {
	out, err := s.store.ListArticles(ctx, store.ArticleFilter{
		PublishedOnly: true,
		Search:        query,
	})
	if err != nil {
		return nil, fail("No se pudieron buscar los artículos.", err)
	}
	return out, nil
}

// Featured returns the newest published articles for the home page.
// Like the slot listing, a failure degrades to an empty list.
func (s *ArticleService) Featured(ctx context.Context, limit int) []model.Article {
	if limit <= 0 {
		limit = 3
	}
	out, err := s.store.ListArticles(ctx, store.ArticleFilter{
		PublishedOnly: true,
		Limit:         limit,
	})
	if err != nil {
		log.Printf("featured articles: %v", err)
		return []model.Article{}
	}
	return out
}

func (s *ArticleService) GetByID(ctx context.Context, id string) (*model.Article, error) {
	a, err := s.store.GetArticle(ctx, id)
	if err != nil {
		return nil, fail("No se pudo encontrar el artículo.", err)
	}
	return a, nil
}

func (s *ArticleService) Create(ctx context.Context, a *model.Article) (*model.Article, error) {
	a.ID = uuid.New().String()
	if err := s.store.CreateArticle(ctx, a); err != nil {
		return nil, fail("No se pudo crear el artículo.", err)
	}
	return a, nil
}

// ArticlePatch is a partial update; nil fields keep their value.
type ArticlePatch struct {
	Title       *string   `json:"title"`
	Excerpt     *string   `json:"excerpt"`
	Content     *string   `json:"content"`
	Category    *string   `json:"category"`
	Author      *string   `json:"author"`
	ReadTime    *string   `json:"readTime"`
	Image       *string   `json:"image"`
	IsPublished *bool     `json:"isPublished"`
	Tags        *[]string `json:"tags"`
}

func (s *ArticleService) Update(ctx context.Context, id string, p ArticlePatch) (*model.Article, error) {
	a, err := s.store.GetArticle(ctx, id)
	if err != nil {
		return nil, fail("No se pudo encontrar el artículo.", err)
	}

	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Excerpt != nil {
		a.Excerpt = *p.Excerpt
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.Author != nil {
		a.Author = *p.Author
	}
	if p.ReadTime != nil {
		a.ReadTime = *p.ReadTime
	}
	if p.Image != nil {
		a.Image = *p.Image
	}
	if p.IsPublished != nil {
		a.IsPublished = *p.IsPublished
	}
	if p.Tags != nil {
		a.Tags = *p.Tags
	}

	if err := s.store.UpdateArticle(ctx, a); err != nil {
		return nil, fail("No se pudo actualizar el artículo.", err)
	}
	return a, nil
}

func (s *ArticleService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteArticle(ctx, id); err != nil {
		return fail("No se pudo eliminar el artículo.", err)
	}
	return nil
}
