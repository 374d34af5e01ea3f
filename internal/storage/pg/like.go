package pg

import (
	"database/sql"
	"errors"

	"github.com/diskusi-dev/diskusi/internal/domain"
	"github.com/diskusi-dev/diskusi/internal/utils"
)

// AddLike inserts a like row. Uniqueness per (comment_id, owner) is enforced
// by the schema constraint, not here.
func (s *Storage) AddLike(commentId, owner string) (domain.CommentLike, error) {
	id := utils.GenerateID("like")

	var rowId string
	err := s.db.QueryRow(`
	INSERT INTO comment_likes (id, comment_id, owner, date)
	VALUES ($1, $2, $3, now())
	RETURNING id`, id, commentId, owner).Scan(&rowId)
	if err != nil {
		return domain.CommentLike{}, err
	}

	return domain.NewCommentLike(map[string]interface{}{
		"id":        rowId,
		"commentId": commentId,
		"owner":     owner,
	})
}

// RemoveLike hard-deletes the like row; likes are never soft-deleted.
func (s *Storage) RemoveLike(commentId, owner string) error {
	result, err := s.db.Exec(`DELETE FROM comment_likes WHERE comment_id = $1 AND owner = $2`, commentId, owner)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrLikeNotFound
	}
	return nil
}

// VerifyLikeExistence reports whether the user already likes the comment.
func (s *Storage) VerifyLikeExistence(commentId, owner string) (bool, error) {
	var id string
	err := s.db.QueryRow(`SELECT id FROM comment_likes WHERE comment_id = $1 AND owner = $2`, commentId, owner).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GetLikeCountByCommentID returns the like count, 0 when none.
func (s *Storage) GetLikeCountByCommentID(commentId string) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM comment_likes WHERE comment_id = $1`, commentId).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
