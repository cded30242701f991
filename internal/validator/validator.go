package validator

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"tech-oh/internal/domain"
)

const (
	MaxExcerptLength  = 300
	MaxBioLength      = 500
	MaxWebsiteLength  = 100
	MinUsernameLength = 3
	MaxUsernameLength = 30
	MinFullNameLength = 2
	MaxFullNameLength = 50
)

var (
	validStatus     = []interface{}{domain.StatusDraft, domain.StatusPublished, domain.StatusArchived}
	validCategories = categoryValues()
)

func categoryValues() []interface{} {
	values := make([]interface{}, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		values = append(values, c)
	}
	return values
}

// Validator provides validation methods for domain entities.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateArticleFields validates the fields of a new article.
func (v *Validator) ValidateArticleFields(f *domain.ArticleFields) error {
	return convert(validation.ValidateStruct(f,
		validation.Field(&f.Title,
			validation.Required.Error("title_required"),
			validation.By(notBlank("title_required")),
		),
		validation.Field(&f.Excerpt,
			validation.RuneLength(0, MaxExcerptLength).Error("excerpt_too_long"),
		),
		validation.Field(&f.Content,
			validation.Required.Error("content_required"),
			validation.By(notBlank("content_required")),
		),
		validation.Field(&f.Category,
			validation.In(validCategories...).Error("invalid_category"),
		),
		validation.Field(&f.Status,
			validation.Required.Error("status_required"),
			validation.In(validStatus...).Error("invalid_status"),
		),
	))
}

// ValidateArticlePatch validates the supplied fields of an update.
func (v *Validator) ValidateArticlePatch(p *domain.ArticlePatch) error {
	return convert(validation.ValidateStruct(p,
		validation.Field(&p.Title,
			validation.NilOrNotEmpty.Error("title_required"),
			validation.By(notBlank("title_required")),
		),
		validation.Field(&p.Excerpt,
			validation.RuneLength(0, MaxExcerptLength).Error("excerpt_too_long"),
		),
		validation.Field(&p.Content,
			validation.NilOrNotEmpty.Error("content_required"),
			validation.By(notBlank("content_required")),
		),
		validation.Field(&p.Category,
			validation.In(validCategories...).Error("invalid_category"),
		),
		validation.Field(&p.Status,
			validation.NilOrNotEmpty.Error("invalid_status"),
			validation.In(validStatus...).Error("invalid_status"),
		),
	))
}

// ValidateProfile validates the fields of a profile upsert.
func (v *Validator) ValidateProfile(f *domain.ProfileFields) error {
	return convert(validation.ValidateStruct(f,
		validation.Field(&f.Username,
			validation.Required.Error("username_required"),
			validation.RuneLength(MinUsernameLength, MaxUsernameLength).Error("invalid_username_length"),
		),
		validation.Field(&f.FullName,
			validation.Required.Error("full_name_required"),
			validation.RuneLength(MinFullNameLength, MaxFullNameLength).Error("invalid_full_name_length"),
		),
		validation.Field(&f.Bio,
			validation.RuneLength(0, MaxBioLength).Error("bio_too_long"),
		),
		validation.Field(&f.Website,
			validation.RuneLength(0, MaxWebsiteLength).Error("website_too_long"),
		),
		validation.Field(&f.AvatarURL,
			is.URL.Error("invalid_avatar_url"),
		),
	))
}

// ValidateIdentityID checks that an identity reference is a UUID.
func (v *Validator) ValidateIdentityID(field, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.NewValidationError(field, "invalid_"+field)
	}
	return nil
}

// notBlank rejects strings that contain only whitespace.
func notBlank(code string) validation.RuleFunc {
	return func(value interface{}) error {
		v, isNil := validation.Indirect(value)
		if isNil {
			return nil
		}
		s, ok := v.(string)
		if !ok {
			return nil
		}
		if s != "" && strings.TrimSpace(s) == "" {
			return validation.NewError(code, code)
		}
		return nil
	}
}

// convert turns ozzo validation errors into a domain.ValidationError.
func convert(err error) error {
	if err == nil {
		return nil
	}

	var ie validation.InternalError
	if errors.As(err, &ie) {
		return err
	}

	ve, ok := err.(validation.Errors)
	if !ok {
		return &domain.ValidationError{Fields: map[string]string{"unknown": err.Error()}}
	}

	fields := make(map[string]string, len(ve))
	for field, fieldErr := range ve {
		if fieldErr == nil {
			continue
		}
		fields[field] = fieldErr.Error()
	}
	if len(fields) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: fields}
}
