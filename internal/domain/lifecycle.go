package domain

// statusTransitions lists, per current status, the statuses an author may move
// an article to. Every edge of the three-state graph is currently allowed.
var statusTransitions = map[ArticleStatus][]ArticleStatus{
	StatusDraft:     {StatusDraft, StatusPublished, StatusArchived},
	StatusPublished: {StatusDraft, StatusPublished, StatusArchived},
	StatusArchived:  {StatusDraft, StatusPublished, StatusArchived},
}

// CanTransition reports whether an article in status from may be moved to status to.
func CanTransition(from, to ArticleStatus) bool {
	for _, s := range statusTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
