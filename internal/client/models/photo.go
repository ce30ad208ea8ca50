package models

import (
	"errors"
	"time"
)

// Photo is a photo with its nested comment sequence, as returned by
// GET /api/photo/:userId. Comments are ordered and append-only from the
// client's perspective.
type Photo struct {
	ID       string    `json:"_id"`
	UserID   string    `json:"user_id"`
	FileName string    `json:"file_name"`
	DateTime time.Time `json:"date_time"`
	Comments []Comment `json:"comments"`
}

// Comment is a single comment nested under exactly one photo.
type Comment struct {
	ID       string    `json:"_id"`
	Text     string    `json:"comment"`
	DateTime time.Time `json:"date_time"`
	User     *UserRef  `json:"user,omitempty"`
}

// AddCommentRequest is the body of POST /api/photo/commentsOfPhoto/:photoId.
type AddCommentRequest struct {
	Comment string `json:"comment"`
}

// EnrichedComment is a comment decorated with its parent photo's identity and
// timestamp, for display-linking in the per-author comment view.
type EnrichedComment struct {
	Comment
	PhotoID       string    `json:"photo_id"`
	PhotoFileName string    `json:"photo_file_name"`
	PhotoDate     time.Time `json:"photo_date"`
}

var (
	ErrCommentRequired = errors.New("comment text is required")
	ErrNotPhotoOwner   = errors.New("not the owner of this photo")
	ErrPhotoNotFound   = errors.New("photo not found")
)
