package pg

import (
	"database/sql"
	"errors"

	"github.com/diskusi-dev/diskusi/internal/domain"
	"github.com/diskusi-dev/diskusi/internal/utils"
)

// AddThread inserts a thread and returns its creation result.
func (s *Storage) AddThread(creation domain.ThreadCreation) (domain.AddedThread, error) {
	id := utils.GenerateID("thread")

	var added domain.AddedThread
	err := s.db.QueryRow(`
	INSERT INTO threads (id, title, body, owner, date)
	VALUES ($1, $2, $3, $4, now())
	RETURNING id, title, owner`,
		id, creation.Title, creation.Body, creation.Owner).Scan(&added.Id, &added.Title, &added.Owner)
	if err != nil {
		return domain.AddedThread{}, err
	}
	return added, nil
}

// GetThreadByID returns the thread row with the owner's username joined in.
func (s *Storage) GetThreadByID(threadId string) (domain.ThreadRow, error) {
	var row domain.ThreadRow
	err := s.db.QueryRow(`
	SELECT threads.id, threads.title, threads.body, threads.date, users.username
	FROM threads
	JOIN users ON threads.owner = users.id
	WHERE threads.id = $1`, threadId).Scan(&row.Id, &row.Title, &row.Body, &row.Date, &row.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadRow{}, domain.ErrThreadNotFound
		}
		return domain.ThreadRow{}, err
	}
	return row, nil
}

// VerifyThreadExists fails with the thread not-found sentinel when no row
// matches.
func (s *Storage) VerifyThreadExists(threadId string) error {
	var id string
	err := s.db.QueryRow(`SELECT id FROM threads WHERE id = $1`, threadId).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrThreadNotFound
		}
		return err
	}
	return nil
}
