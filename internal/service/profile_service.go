package service

import (
	"context"
	"fmt"
	"strings"

	"tech-oh/internal/domain"
	"tech-oh/internal/logger"
	"tech-oh/internal/metrics"
	"tech-oh/internal/repository"
	"tech-oh/internal/validator"
)

// ProfileService reads and writes the caller's profile.
type ProfileService struct {
	repo      repository.ProfileRepository
	validator *validator.Validator
	opts      options
}

// NewProfileService creates a new ProfileService.
func NewProfileService(repo repository.ProfileRepository, opts ...Option) *ProfileService {
	return &ProfileService{
		repo:      repo,
		validator: validator.NewValidator(),
		opts:      newOptions(opts),
	}
}

// GetProfile returns the profile of userID or ErrNotFound.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (profile domain.Profile, err error) {
	defer func() { metrics.ObserveArticleOperation("get_profile", err) }()

	if err := s.validator.ValidateIdentityID("user_id", userID); err != nil {
		return domain.Profile{}, err
	}

	storeCtx, cancel := s.opts.storeCtx(ctx)
	defer cancel()

	profile, err = s.repo.Get(storeCtx, userID)
	if err != nil {
		logFailure(ctx, "get profile failed", err, "user_id", userID)
		return domain.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// UpsertProfile replaces the whole profile record of userID, creating it if needed.
func (s *ProfileService) UpsertProfile(ctx context.Context, userID string, fields domain.ProfileFields) (profile domain.Profile, err error) {
	defer func() { metrics.ObserveArticleOperation("upsert_profile", err) }()

	if err := s.validator.ValidateIdentityID("user_id", userID); err != nil {
		return domain.Profile{}, err
	}

	fields = normalizeProfile(fields)
	if err := s.validator.ValidateProfile(&fields); err != nil {
		return domain.Profile{}, err
	}

	storeCtx, cancel := s.opts.storeCtx(ctx)
	defer cancel()

	profile, err = s.repo.Upsert(storeCtx, userID, fields, s.opts.timestamp())
	if err != nil {
		logFailure(ctx, "upsert profile failed", err, "user_id", userID)
		return domain.Profile{}, fmt.Errorf("upsert profile: %w", err)
	}

	logger.InfoContext(ctx, "profile saved", "user_id", userID, "username", profile.Username)
	return profile, nil
}

func normalizeProfile(f domain.ProfileFields) domain.ProfileFields {
	f.Username = strings.TrimSpace(f.Username)
	f.FullName = strings.TrimSpace(f.FullName)
	if f.Bio != nil {
		f.Bio = domain.NullableString(*f.Bio)
	}
	if f.Website != nil {
		f.Website = domain.NullableString(*f.Website)
	}
	if f.AvatarURL != nil {
		f.AvatarURL = domain.NullableString(*f.AvatarURL)
	}
	return f
}
