package service

import (
	"context"
	"testing"
	"time"

	"github.com/khangviet/storefront/internal/domain"
	"github.com/khangviet/storefront/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGallery struct {
	projects []domain.Project
}

func (f *fakeGallery) ListProjects(ctx context.Context, companySlug string) ([]domain.Project, error) {
	if companySlug == "missing" {
		return nil, errs.ErrNotFound
	}
	var out []domain.Project
	for _, p := range f.projects {
		if companySlug == "" || p.CompanySlug == companySlug {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeGallery) FeaturedProjects(ctx context.Context) ([]domain.Project, error) {
	var out []domain.Project
	for _, p := range f.projects {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeGallery) GetProject(ctx context.Context, slug string) (domain.Project, error) {
	for _, p := range f.projects {
		if p.Slug == slug {
			return p, nil
		}
	}
	return domain.Project{}, errs.ErrNotFound
}

func (f *fakeGallery) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	return []domain.Company{{ID: "co1", Name: "Vinamilk", Slug: "vinamilk"}}, nil
}

func TestNewGalleryCardFallbacks(t *testing.T) {
	card := NewGalleryCard(domain.Project{Slug: "bare", Name: "Bare project", CompanySlug: "acme"})

	assert.Equal(t, domain.PlaceholderImage, card.CoverImage)
	assert.Equal(t, []string{}, card.GalleryImages)
	assert.Equal(t, "Unknown Location", card.Location)
	assert.Equal(t, "N/A", card.CompletionYear)
	assert.Equal(t, "acme", card.ClientName)
}

func TestNewGalleryCardSplitsCover(t *testing.T) {
	done := time.Date(2023, time.March, 5, 0, 0, 0, 0, time.UTC)
	card := NewGalleryCard(domain.Project{
		Slug:           "vinamilk-hq",
		Name:           "Vinamilk HQ",
		Address:        "Q7, TP.HCM",
		CompletionDate: &done,
		ImageURLs:      []string{"a", "b", "c"},
		IsFeatured:     true,
	})

	assert.Equal(t, "a", card.CoverImage)
	assert.Equal(t, []string{"b", "c"}, card.GalleryImages)
	assert.Equal(t, "2023", card.CompletionYear)
	assert.Equal(t, "Q7, TP.HCM", card.Location)
	assert.True(t, card.IsFeatured)
}

func TestGalleryService(t *testing.T) {
	svc := CreateGalleryService(&fakeGallery{projects: []domain.Project{
		{Slug: "one", CompanySlug: "vinamilk", IsFeatured: true},
		{Slug: "two", CompanySlug: "acme"},
	}})
	ctx := context.Background()

	cards, err := svc.Projects(ctx, "vinamilk")
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "one", cards[0].Slug)

	_, err = svc.Projects(ctx, "missing")
	assert.ErrorIs(t, err, errs.ErrNotFound)

	featured, err := svc.Featured(ctx)
	require.NoError(t, err)
	assert.Len(t, featured, 1)

	project, card, err := svc.Project(ctx, "two")
	require.NoError(t, err)
	assert.Equal(t, "acme", project.CompanySlug)
	assert.Equal(t, "two", card.Slug)
}
