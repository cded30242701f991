package validator

import (
	"testing"

	"tech-oh/internal/domain"
)

func BenchmarkValidateArticleFields(b *testing.B) {
	v := NewValidator()
	excerpt := "A short summary of the article"
	category := "Programming"
	fields := domain.ArticleFields{
		Title:    "Building Scalable Web Applications",
		Excerpt:  &excerpt,
		Content:  "<p>Body</p>",
		Category: &category,
		Status:   domain.StatusDraft,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := fields
		_ = v.ValidateArticleFields(&f)
	}
}
