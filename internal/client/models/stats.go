package models

// Stats is the derived per-user aggregate shown next to each directory entry.
// It is never persisted: the table is recomputed from a fresh full scan and is
// valid only as of the last recomputation.
type Stats struct {
	PhotoCount   int `json:"photoCount"`
	CommentCount int `json:"commentCount"`
}
