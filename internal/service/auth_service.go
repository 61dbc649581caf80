package service

import (
	"context"

	"github.com/khangviet/storefront/internal/dto"
	backendapi "github.com/khangviet/storefront/internal/infrastructure/backend-api"
	"github.com/khangviet/storefront/internal/repository"
	"github.com/khangviet/storefront/pkg/utils"
	"github.com/rs/zerolog/log"
)

type AuthServiceImpl struct {
	backend AuthBackend
	storage repository.StorageRepository
}

func CreateAuthService(backend AuthBackend, storage repository.StorageRepository) *AuthServiceImpl {
	return &AuthServiceImpl{backend: backend, storage: storage}
}

func (s *AuthServiceImpl) TokenStore(sessionID string) backendapi.TokenStore {
	return newStorageTokenStore(s.storage, sessionID)
}

func (s *AuthServiceImpl) Login(ctx context.Context, sessionID, email, password string) (dto.SessionResponse, error) {
	creds, err := s.backend.Login(ctx, email, password)
	if err != nil {
		log.Ctx(ctx).Info().Err(err).Str("component", "Login").Msg("")
		return dto.SessionResponse{}, err
	}

	if err := s.TokenStore(sessionID).Save(ctx, creds); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Login").Msg("")
		return dto.SessionResponse{}, err
	}

	resp := dto.SessionResponse{Authenticated: true, Role: creds.Role, Email: tokenSubject(creds)}
	if resp.Email == "" {
		resp.Email = email
	}
	return resp, nil
}

// Logout always forgets the local tokens, even when the backend call fails.
func (s *AuthServiceImpl) Logout(ctx context.Context, sessionID string) error {
	store := s.TokenStore(sessionID)
	creds := s.Credentials(ctx, sessionID)

	if creds.Authenticated() {
		if err := s.backend.Logout(ctx, creds); err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("component", "Logout").Msg("backend logout failed")
		}
	}

	if err := store.Clear(ctx); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Logout").Msg("")
		return err
	}
	return nil
}

func (s *AuthServiceImpl) Me(ctx context.Context, sessionID string) (dto.UserResponse, error) {
	ctx = backendapi.ContextWithTokenStore(ctx, s.TokenStore(sessionID))
	user, err := s.backend.Me(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Me").Msg("")
		return dto.UserResponse{}, err
	}
	return user, nil
}

func (s *AuthServiceImpl) Credentials(ctx context.Context, sessionID string) backendapi.Credentials {
	creds, err := s.TokenStore(sessionID).Load(ctx)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "Credentials").Msg("unreadable session tokens")
		return backendapi.Credentials{}
	}
	return creds
}

func tokenSubject(creds backendapi.Credentials) string {
	if !creds.Authenticated() {
		return ""
	}
	claims, err := utils.ExtractTokenClaims(creds.AccessToken)
	if err != nil {
		return ""
	}
	return claims.Subject
}
