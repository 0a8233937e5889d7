package dto

import "time"

// CreateCommentRequest is the staff comment payload.
type CreateCommentRequest struct {
	CommentText string `json:"comment_text"`
	IsInternal  bool   `json:"is_internal"`
}

// CommentResponse represents a thread comment.
type CommentResponse struct {
	ID          string    `json:"id"`
	AuthorName  string    `json:"authorName"`
	CommentText string    `json:"commentText"`
	CommentHTML string    `json:"commentHtml"`
	IsInternal  bool      `json:"isInternal"`
	CreatedAt   time.Time `json:"createdAt"`
}
