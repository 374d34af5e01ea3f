package pg

import (
	"database/sql"
	"errors"

	"github.com/diskusi-dev/diskusi/internal/domain"
	"github.com/diskusi-dev/diskusi/internal/utils"
)

// AddComment inserts a comment under a thread.
func (s *Storage) AddComment(creation domain.CommentCreation, threadId, owner string) (domain.AddedComment, error) {
	id := utils.GenerateID("comment")

	var added domain.AddedComment
	err := s.db.QueryRow(`
	INSERT INTO comments (id, content, thread_id, owner, is_delete, date)
	VALUES ($1, $2, $3, $4, false, now())
	RETURNING id, content, owner`,
		id, creation.Content, threadId, owner).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		return domain.AddedComment{}, err
	}
	return added, nil
}

// DeleteComment soft-deletes a comment. The content stays in storage; readers
// see the placeholder instead.
func (s *Storage) DeleteComment(commentId string) error {
	result, err := s.db.Exec(`UPDATE comments SET is_delete = true WHERE id = $1`, commentId)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

// VerifyCommentOwner checks existence before ownership, so a missing comment
// surfaces as not-found rather than forbidden.
func (s *Storage) VerifyCommentOwner(commentId, owner string) error {
	var rowOwner string
	err := s.db.QueryRow(`SELECT owner FROM comments WHERE id = $1`, commentId).Scan(&rowOwner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCommentNotFound
		}
		return err
	}
	if rowOwner != owner {
		return domain.ErrCommentNotOwner
	}
	return nil
}

// VerifyCommentExists fails with the comment not-found sentinel when no row
// matches.
func (s *Storage) VerifyCommentExists(commentId string) error {
	var id string
	err := s.db.QueryRow(`SELECT id FROM comments WHERE id = $1`, commentId).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCommentNotFound
		}
		return err
	}
	return nil
}

// GetCommentsByThreadID lists a thread's comments in ascending creation
// order, each with the owner's username and the aggregated like count.
func (s *Storage) GetCommentsByThreadID(threadId string) ([]domain.CommentRow, error) {
	rows, err := s.db.Query(`
	SELECT comments.id, users.username, comments.date, comments.content, comments.is_delete,
	       COUNT(comment_likes.id) AS like_count
	FROM comments
	JOIN users ON comments.owner = users.id
	LEFT JOIN comment_likes ON comment_likes.comment_id = comments.id
	WHERE comments.thread_id = $1
	GROUP BY comments.id, users.username
	ORDER BY comments.date ASC`, threadId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []domain.CommentRow{}
	for rows.Next() {
		var c domain.CommentRow
		if err := rows.Scan(&c.Id, &c.Username, &c.Date, &c.Content, &c.IsDelete, &c.LikeCount); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
