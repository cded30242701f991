package domain

// Dashboard is the signed-in landing view: who the caller is, their profile
// when one exists, and their article stats.
type Dashboard struct {
	Identity Identity     `json:"identity"`
	Profile  *Profile     `json:"profile"`
	Stats    ArticleStats `json:"stats"`
}
