package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/engage-app/seedctl/internal/app/models"
)

// PostRepository handles database operations for posts
type PostRepository struct {
	db *pgxpool.Pool
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{db: db}
}

// Create inserts a new post and returns its generated id
func (r *PostRepository) Create(ctx context.Context, post *models.Post) (uuid.UUID, error) {
	query := `
		INSERT INTO posts (content, author_id, like_count, comment_count)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query, post.Content, post.AuthorID, post.LikeCount, post.CommentCount).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}

	post.ID = id
	return id, nil
}

// LikeRepository handles database operations for likes
type LikeRepository struct {
	db *pgxpool.Pool
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *pgxpool.Pool) *LikeRepository {
	return &LikeRepository{db: db}
}

// Create inserts a like. The store rejects a duplicate (post, student) pair
// with a unique violation.
func (r *LikeRepository) Create(ctx context.Context, like *models.Like) error {
	query := `
		INSERT INTO likes (post_id, user_id)
		VALUES ($1, $2)
	`

	_, err := r.db.Exec(ctx, query, like.PostID, like.StudentID)
	return err
}

// CommentRepository handles database operations for comments
type CommentRepository struct {
	db *pgxpool.Pool
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts a comment on a post
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (content, author_id, post_id)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query, comment.Content, comment.AuthorID, comment.PostID)
	return err
}
