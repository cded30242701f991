package handler

import "tech-oh/internal/domain"

// ArticleResponse represents an article in the API response.
type ArticleResponse struct {
	ID        string  `json:"id"`
	AuthorID  string  `json:"author_id"`
	Title     string  `json:"title"`
	Excerpt   *string `json:"excerpt"`
	Content   string  `json:"content"`
	Category  *string `json:"category"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func toArticleResponse(a domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:        a.ID,
		AuthorID:  a.AuthorID,
		Title:     a.Title,
		Excerpt:   a.Excerpt,
		Content:   a.Content,
		Category:  a.Category,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt.Format(TimeFormat),
		UpdatedAt: a.UpdatedAt.Format(TimeFormat),
	}
}

func toArticleResponses(articles []domain.Article) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, toArticleResponse(a))
	}
	return out
}

// ArticleListResponse wraps a list of articles.
type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Count    int               `json:"count"`
}

// StatsResponse represents the article counters of an author.
type StatsResponse struct {
	Total               int              `json:"total"`
	Published           int              `json:"published"`
	Drafts              int              `json:"drafts"`
	Archived            int              `json:"archived"`
	MostRecentlyUpdated *ArticleResponse `json:"most_recently_updated"`
}

func toStatsResponse(s domain.ArticleStats) StatsResponse {
	response := StatsResponse{
		Total:     s.Total,
		Published: s.Published,
		Drafts:    s.Drafts,
		Archived:  s.Archived,
	}
	if s.MostRecentlyUpdated != nil {
		a := toArticleResponse(*s.MostRecentlyUpdated)
		response.MostRecentlyUpdated = &a
	}
	return response
}

// ProfileResponse represents a profile in the API response.
type ProfileResponse struct {
	UserID    string  `json:"user_id"`
	Username  string  `json:"username"`
	FullName  string  `json:"full_name"`
	Bio       *string `json:"bio"`
	Website   *string `json:"website"`
	AvatarURL *string `json:"avatar_url"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func toProfileResponse(p domain.Profile) ProfileResponse {
	return ProfileResponse{
		UserID:    p.UserID,
		Username:  p.Username,
		FullName:  p.FullName,
		Bio:       p.Bio,
		Website:   p.Website,
		AvatarURL: p.AvatarURL,
		CreatedAt: p.CreatedAt.Format(TimeFormat),
		UpdatedAt: p.UpdatedAt.Format(TimeFormat),
	}
}

// AccountResponse is the identity of the caller with its profile, if any.
type AccountResponse struct {
	ID      string           `json:"id"`
	Email   string           `json:"email"`
	Profile *ProfileResponse `json:"profile"`
}

// DashboardResponse is the signed-in landing view.
type DashboardResponse struct {
	Account AccountResponse `json:"account"`
	Stats   StatsResponse   `json:"stats"`
}

func toAccountResponse(identity domain.Identity, profile *domain.Profile) AccountResponse {
	response := AccountResponse{ID: identity.ID, Email: identity.Email}
	if profile != nil {
		p := toProfileResponse(*profile)
		response.Profile = &p
	}
	return response
}
