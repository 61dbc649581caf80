package service

import (
	"context"
	"strings"

	"github.com/khangviet/storefront/internal/domain"
	"github.com/khangviet/storefront/pkg/utils"
	"github.com/rs/zerolog/log"
)

const unknownLocation = "Unknown Location"

type GalleryServiceImpl struct {
	backend GalleryBackend
}

func CreateGalleryService(backend GalleryBackend) *GalleryServiceImpl {
	return &GalleryServiceImpl{backend: backend}
}

// NewGalleryCard maps a project to its public card. The first image is the cover.
func NewGalleryCard(p domain.Project) domain.GalleryCard {
	card := domain.GalleryCard{
		Slug:           p.Slug,
		Title:          p.Name,
		ClientName:     p.CompanySlug,
		Location:       p.Address,
		CompletionYear: utils.CompletionYear(p.CompletionDate),
		CoverImage:     domain.PlaceholderImage,
		GalleryImages:  []string{},
		IsFeatured:     p.IsFeatured,
	}
	if strings.TrimSpace(card.Location) == "" {
		card.Location = unknownLocation
	}
	if len(p.ImageURLs) > 0 {
		card.CoverImage = p.ImageURLs[0]
		card.GalleryImages = append(card.GalleryImages, p.ImageURLs[1:]...)
	}
	return card
}

func galleryCards(projects []domain.Project) []domain.GalleryCard {
	cards := make([]domain.GalleryCard, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, NewGalleryCard(p))
	}
	return cards
}

func (s *GalleryServiceImpl) Projects(ctx context.Context, companySlug string) ([]domain.GalleryCard, error) {
	projects, err := s.backend.ListProjects(ctx, companySlug)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GalleryProjects").Msg("")
		return nil, err
	}
	return galleryCards(projects), nil
}

func (s *GalleryServiceImpl) Featured(ctx context.Context) ([]domain.GalleryCard, error) {
	projects, err := s.backend.FeaturedProjects(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GalleryFeatured").Msg("")
		return nil, err
	}
	return galleryCards(projects), nil
}

func (s *GalleryServiceImpl) Project(ctx context.Context, slug string) (domain.Project, domain.GalleryCard, error) {
	project, err := s.backend.GetProject(ctx, slug)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GalleryProject").Msg("")
		return domain.Project{}, domain.GalleryCard{}, err
	}
	return project, NewGalleryCard(project), nil
}

func (s *GalleryServiceImpl) Companies(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.backend.ListCompanies(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GalleryCompanies").Msg("")
		return nil, err
	}
	return companies, nil
}
