package pg

import (
	"database/sql"
	"errors"

	"github.com/diskusi-dev/diskusi/internal/domain"
	"github.com/diskusi-dev/diskusi/internal/utils"
)

// AddReply inserts a reply under a comment. The result is validated through
// the AddedReply constructor since it is built from repository output.
func (s *Storage) AddReply(creation domain.ReplyCreation, commentId, owner string) (domain.AddedReply, error) {
	id := utils.GenerateID("reply")

	var rowId, rowContent, rowOwner string
	err := s.db.QueryRow(`
	INSERT INTO replies (id, content, comment_id, owner, is_delete, date)
	VALUES ($1, $2, $3, $4, false, now())
	RETURNING id, content, owner`,
		id, creation.Content, commentId, owner).Scan(&rowId, &rowContent, &rowOwner)
	if err != nil {
		return domain.AddedReply{}, err
	}

	return domain.NewAddedReply(map[string]interface{}{
		"id":      rowId,
		"content": rowContent,
		"owner":   rowOwner,
	})
}

// DeleteReply soft-deletes a reply.
func (s *Storage) DeleteReply(replyId string) error {
	result, err := s.db.Exec(`UPDATE replies SET is_delete = true WHERE id = $1`, replyId)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrReplyNotFound
	}
	return nil
}

// VerifyReplyOwner checks existence before ownership.
func (s *Storage) VerifyReplyOwner(replyId, owner string) error {
	var rowOwner string
	err := s.db.QueryRow(`SELECT owner FROM replies WHERE id = $1`, replyId).Scan(&rowOwner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrReplyNotFound
		}
		return err
	}
	if rowOwner != owner {
		return domain.ErrReplyNotOwner
	}
	return nil
}

// VerifyReplyExists fails with the reply not-found sentinel when no row
// matches.
func (s *Storage) VerifyReplyExists(replyId string) error {
	var id string
	err := s.db.QueryRow(`SELECT id FROM replies WHERE id = $1`, replyId).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrReplyNotFound
		}
		return err
	}
	return nil
}

// GetRepliesByCommentID lists a comment's replies in ascending creation
// order with the owner's username.
func (s *Storage) GetRepliesByCommentID(commentId string) ([]domain.ReplyRow, error) {
	rows, err := s.db.Query(`
	SELECT replies.id, replies.content, replies.date, replies.is_delete, users.username
	FROM replies
	JOIN users ON replies.owner = users.id
	WHERE replies.comment_id = $1
	ORDER BY replies.date ASC`, commentId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	replies := []domain.ReplyRow{}
	for rows.Next() {
		var r domain.ReplyRow
		if err := rows.Scan(&r.Id, &r.Content, &r.Date, &r.IsDelete, &r.Username); err != nil {
			return nil, err
		}
		replies = append(replies, r)
	}
	return replies, rows.Err()
}
