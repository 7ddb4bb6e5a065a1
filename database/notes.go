package database

import (
	"action-notes/models"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ==================== NOTE OPERATIONS ====================

const noteColumns = `id, title, content, created_at, updated_at`

func scanNote(s scanner) (*models.Note, error) {
	var note models.Note
	if err := s.Scan(&note.ID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt); err != nil {
		return nil, err
	}
	return &note, nil
}

func getNoteTx(ctx context.Context, tx *sql.Tx, id int64) (*models.Note, error) {
	note, err := scanNote(tx.QueryRowContext(ctx, `
		SELECT `+noteColumns+`
		FROM notes
		WHERE id = ?
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get note %d: %w", id, err)
	}
	return note, nil
}

func insertNoteTx(ctx context.Context, tx *sql.Tx, title, content string, now time.Time) (*models.Note, error) {
	res, err := tx.ExecContext(ctx, `
		INSERT INTO notes (title, content, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`, title, content, now, now)
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}

	return &models.Note{
		ID:        id,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// CreateNote inserts a note. Fields are expected to be trimmed and validated.
func (r *Repository) CreateNote(ctx context.Context, title, content string) (*models.Note, error) {
	var note *models.Note
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		note, err = insertNoteTx(ctx, tx, title, content, r.now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return note, nil
}

// GetNote retrieves a single note by id
func (r *Repository) GetNote(ctx context.Context, id int64) (*models.Note, error) {
	var note *models.Note
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		note, err = getNoteTx(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return note, nil
}

// noteFilter builds the WHERE clause for a note search. An empty query
// matches every note.
func noteFilter(query string) (string, []any) {
	if query == "" {
		return "", nil
	}
	pattern := likePattern(query)
	return `WHERE ` + foldFunc + `(title) LIKE ? ESCAPE '\' OR ` + foldFunc + `(content) LIKE ? ESCAPE '\'`, []any{pattern, pattern}
}

// ListNotes returns a page of notes matching q, ordered by q.Sort
func (r *Repository) ListNotes(ctx context.Context, q models.NoteQuery) ([]models.Note, error) {
	order, err := ParseSort(q.Sort, NoteSortFields)
	if err != nil {
		return nil, err
	}
	limit, offset := pageBounds(q.Limit, q.Offset)
	where, args := noteFilter(q.Query)

	// Initialize with empty slice to avoid returning nil
	notes := make([]models.Note, 0)
	err = r.withTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT `+noteColumns+`
			FROM notes
			`+where+`
			ORDER BY `+order.SQL()+`
			LIMIT ? OFFSET ?
		`, append(args, limit, offset)...)
		if err != nil {
			return fmt.Errorf("list notes: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			note, err := scanNote(rows)
			if err != nil {
				return fmt.Errorf("list notes: %w", err)
			}
			notes = append(notes, *note)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// CountNotes returns how many notes match query
func (r *Repository) CountNotes(ctx context.Context, query string) (int, error) {
	where, args := noteFilter(query)

	var total int
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM notes `+where, args...).Scan(&total)
	})
	if err != nil {
		return 0, fmt.Errorf("count notes: %w", err)
	}
	return total, nil
}

// UpdateNote applies the present fields of patch and refreshes updated_at
func (r *Repository) UpdateNote(ctx context.Context, id int64, patch models.NotePatch) (*models.Note, error) {
	var note *models.Note
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		note, err = getNoteTx(ctx, tx, id)
		if err != nil {
			return err
		}

		patch.Apply(note)
		note.UpdatedAt = r.touch(note.UpdatedAt)

		_, err = tx.ExecContext(ctx, `
			UPDATE notes SET
				title = ?,
				content = ?,
				updated_at = ?
			WHERE id = ?
		`, note.Title, note.Content, note.UpdatedAt, id)
		if err != nil {
			return fmt.Errorf("update note %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return note, nil
}

// DeleteNote removes a note. Action items that referenced it keep existing
// with their note_id cleared.
func (r *Repository) DeleteNote(ctx context.Context, id int64) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `UPDATE action_items SET note_id = NULL WHERE note_id = ?`, id); err != nil {
			return fmt.Errorf("detach action items from note %d: %w", id, err)
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("delete note %d: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete note %d: %w", id, err)
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// CreateNoteWithActionItems stores a note and the action items extracted from
// it in a single transaction.
func (r *Repository) CreateNoteWithActionItems(ctx context.Context, title, content string, descriptions []string) (*models.Note, []models.ActionItem, error) {
	var (
		note  *models.Note
		items []models.ActionItem
	)
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		now := r.now()

		var err error
		note, err = insertNoteTx(ctx, tx, title, content, now)
		if err != nil {
			return err
		}

		items, err = insertActionItemsTx(ctx, tx, descriptions, &note.ID, now)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return note, items, nil
}

func pageBounds(limit, offset int) (int, int) {
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
