// AngelaMos | 2026
// service.go

package siteconfig

import (
	"context"
	"strings"
)

type Service struct {
	repo         Repository
	defaultEmail string
}

func NewService(repo Repository, defaultEmail string) *Service {
	return &Service{
		repo:         repo,
		defaultEmail: defaultEmail,
	}
}

func (s *Service) Get(ctx context.Context) (*SiteConfig, error) {
	return s.repo.GetOrCreate(ctx, s.defaultEmail)
}

// Update replaces the contact email and any social link present in req.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*SiteConfig, error) {
	cfg, err := s.repo.GetOrCreate(ctx, s.defaultEmail)
	if err != nil {
		return nil, err
	}

	cfg.ContactEmail = strings.TrimSpace(req.ContactEmail)

	if links := req.SocialLinks; links != nil {
		if links.Instagram != nil {
			cfg.Instagram = strings.TrimSpace(*links.Instagram)
		}
		if links.YouTube != nil {
			cfg.YouTube = strings.TrimSpace(*links.YouTube)
		}
		if links.Vimeo != nil {
			cfg.Vimeo = strings.TrimSpace(*links.Vimeo)
		}
	}

	if err := s.repo.Save(ctx, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ContactEmail returns the configured contact address, or the default
// when none is stored.
func (s *Service) ContactEmail(ctx context.Context) (string, error) {
	cfg, err := s.Get(ctx)
	if err != nil {
		return s.defaultEmail, err
	}
	if cfg.ContactEmail == "" {
		return s.defaultEmail, nil
	}
	return cfg.ContactEmail, nil
}
