// Package content is the read-only boundary to the static JSON documents
// the views fetch: catalog, blog, pricing plans, dashboard numbers.
package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"azmedical/internal/domain/model"
)

var ErrNotFound = errors.New("content not found")

const (
	productsFile  = "products.json"
	blogFile      = "blog.json"
	pricingFile   = "pricing.json"
	dashboardFile = "dashboard.json"
)

type Loader struct {
	fsys fs.FS
}

func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

func (l *Loader) Products() ([]model.Product, error) {
	var out []model.Product
	if err := l.read(productsFile, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Loader) BlogPosts() ([]model.BlogPost, error) {
	var out []model.BlogPost
	if err := l.read(blogFile, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// BlogPost looks a post up by slug; a missing slug is ErrNotFound, never
// a crash — the caller renders the not-found view.
func (l *Loader) BlogPost(slug string) (model.BlogPost, error) {
	posts, err := l.BlogPosts()
	if err != nil {
		return model.BlogPost{}, err
	}

	for _, p := range posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return model.BlogPost{}, fmt.Errorf("blog post %q: %w", slug, ErrNotFound)
}

func (l *Loader) PricingPlans() ([]model.PricingPlan, error) {
	var out []model.PricingPlan
	if err := l.read(pricingFile, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Loader) Dashboard() (model.DashboardStats, error) {
	var out model.DashboardStats
	if err := l.read(dashboardFile, &out); err != nil {
		return model.DashboardStats{}, err
	}
	return out, nil
}

func (l *Loader) read(name string, v any) error {
	raw, err := fs.ReadFile(l.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
