package domain

// ArticleStats summarizes an author's articles for the dashboard.
type ArticleStats struct {
	Total               int      `json:"total"`
	Published           int      `json:"published"`
	Drafts              int      `json:"drafts"`
	Archived            int      `json:"archived"`
	MostRecentlyUpdated *Article `json:"most_recently_updated"`
}

// ComputeStats counts articles by status and picks the one with the latest
// UpdatedAt. On a tie the earliest article in the slice wins.
func ComputeStats(articles []Article) ArticleStats {
	var stats ArticleStats
	for i := range articles {
		a := articles[i]
		stats.Total++
		switch a.Status {
		case StatusPublished:
			stats.Published++
		case StatusDraft:
			stats.Drafts++
		case StatusArchived:
			stats.Archived++
		}
		if stats.MostRecentlyUpdated == nil || a.UpdatedAt.After(stats.MostRecentlyUpdated.UpdatedAt) {
			stats.MostRecentlyUpdated = &a
		}
	}
	return stats
}
