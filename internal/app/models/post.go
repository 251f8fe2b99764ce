package models

import "github.com/google/uuid"

// Post defines a feed post based on the 'posts' table
type Post struct {
	ID           uuid.UUID `json:"id" db:"id"`
	AuthorID     uuid.UUID `json:"authorId" db:"author_id"`
	Content      string    `json:"content" db:"content"`
	LikeCount    int       `json:"likeCount" db:"like_count"`
	CommentCount int       `json:"commentCount" db:"comment_count"`
}

// Like marks a post as liked by a student.
// Composite key (post_id, user_id); unique per pair.
type Like struct {
	PostID    uuid.UUID `json:"postId" db:"post_id"`
	StudentID uuid.UUID `json:"studentId" db:"user_id"`
}

// Comment defines a comment on a post
type Comment struct {
	ID       uuid.UUID `json:"id" db:"id"`
	PostID   uuid.UUID `json:"postId" db:"post_id"`
	AuthorID uuid.UUID `json:"authorId" db:"author_id"`
	Content  string    `json:"content" db:"content"`
}
