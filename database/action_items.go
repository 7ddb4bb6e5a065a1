package database

import (
	"action-notes/models"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ==================== ACTION ITEM OPERATIONS ====================

const actionItemColumns = `id, note_id, description, completed, created_at, updated_at`

func scanActionItem(s scanner) (*models.ActionItem, error) {
	var item models.ActionItem
	var noteID sql.NullInt64

	if err := s.Scan(&item.ID, &noteID, &item.Description, &item.Completed, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	if noteID.Valid {
		item.NoteID = &noteID.Int64
	}
	return &item, nil
}

func getActionItemTx(ctx context.Context, tx *sql.Tx, id int64) (*models.ActionItem, error) {
	item, err := scanActionItem(tx.QueryRowContext(ctx, `
		SELECT `+actionItemColumns+`
		FROM action_items
		WHERE id = ?
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get action item %d: %w", id, err)
	}
	return item, nil
}

func noteExistsTx(ctx context.Context, tx *sql.Tx, id int64) (bool, error) {
	var exists int
	err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM notes WHERE id = ?)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check note %d: %w", id, err)
	}
	return exists == 1, nil
}

func insertActionItemsTx(ctx context.Context, tx *sql.Tx, descriptions []string, noteID *int64, now time.Time) ([]models.ActionItem, error) {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO action_items (note_id, description, completed, created_at, updated_at)
		VALUES (?, ?, 0, ?, ?)
	`)
	if err != nil {
		return nil, fmt.Errorf("prepare action item insert: %w", err)
	}
	defer stmt.Close()

	var ref sql.NullInt64
	if noteID != nil {
		ref = sql.NullInt64{Int64: *noteID, Valid: true}
	}

	items := make([]models.ActionItem, 0, len(descriptions))
	for _, desc := range descriptions {
		res, err := stmt.ExecContext(ctx, ref, desc, now, now)
		if err != nil {
			return nil, fmt.Errorf("insert action item: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("insert action item: %w", err)
		}

		item := models.ActionItem{
			ID:          id,
			Description: desc,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if noteID != nil {
			nid := *noteID
			item.NoteID = &nid
		}
		items = append(items, item)
	}

	return items, nil
}

// CreateActionItem inserts one action item, optionally linked to a note
func (r *Repository) CreateActionItem(ctx context.Context, description string, noteID *int64) (*models.ActionItem, error) {
	items, err := r.CreateActionItems(ctx, []string{description}, noteID)
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

// CreateActionItems inserts a batch of action items in one transaction
func (r *Repository) CreateActionItems(ctx context.Context, descriptions []string, noteID *int64) ([]models.ActionItem, error) {
	var items []models.ActionItem
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		if noteID != nil {
			ok, err := noteExistsTx(ctx, tx, *noteID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrInvalidReference
			}
		}

		var err error
		items, err = insertActionItemsTx(ctx, tx, descriptions, noteID, r.now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetActionItem retrieves a single action item by id
func (r *Repository) GetActionItem(ctx context.Context, id int64) (*models.ActionItem, error) {
	var item *models.ActionItem
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		item, err = getActionItemTx(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func actionItemFilter(completed *bool, noteID *int64) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if completed != nil {
		conds = append(conds, "completed = ?")
		args = append(args, *completed)
	}
	if noteID != nil {
		conds = append(conds, "note_id = ?")
		args = append(args, *noteID)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// ListActionItems returns a page of action items matching q
func (r *Repository) ListActionItems(ctx context.Context, q models.ActionItemQuery) ([]models.ActionItem, error) {
	order, err := ParseSort(q.Sort, ActionItemSortFields)
	if err != nil {
		return nil, err
	}
	limit, offset := pageBounds(q.Limit, q.Offset)
	where, args := actionItemFilter(q.Completed, q.NoteID)

	items := make([]models.ActionItem, 0)
	err = r.withTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT `+actionItemColumns+`
			FROM action_items
			`+where+`
			ORDER BY `+order.SQL()+`
			LIMIT ? OFFSET ?
		`, append(args, limit, offset)...)
		if err != nil {
			return fmt.Errorf("list action items: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			item, err := scanActionItem(rows)
			if err != nil {
				return fmt.Errorf("list action items: %w", err)
			}
			items = append(items, *item)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// CountActionItems returns how many action items match the filters
func (r *Repository) CountActionItems(ctx context.Context, completed *bool, noteID *int64) (int, error) {
	where, args := actionItemFilter(completed, noteID)

	var total int
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM action_items `+where, args...).Scan(&total)
	})
	if err != nil {
		return 0, fmt.Errorf("count action items: %w", err)
	}
	return total, nil
}

// UpdateActionItem applies the present fields of patch and refreshes updated_at
func (r *Repository) UpdateActionItem(ctx context.Context, id int64, patch models.ActionItemPatch) (*models.ActionItem, error) {
	return r.mutateActionItem(ctx, id, patch.Apply)
}

// SetActionItemCompleted sets the completed flag directly
func (r *Repository) SetActionItemCompleted(ctx context.Context, id int64, completed bool) (*models.ActionItem, error) {
	return r.mutateActionItem(ctx, id, func(item *models.ActionItem) {
		item.Completed = completed
	})
}

func (r *Repository) mutateActionItem(ctx context.Context, id int64, apply func(*models.ActionItem)) (*models.ActionItem, error) {
	var item *models.ActionItem
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		item, err = getActionItemTx(ctx, tx, id)
		if err != nil {
			return err
		}

		apply(item)
		item.UpdatedAt = r.touch(item.UpdatedAt)

		_, err = tx.ExecContext(ctx, `
			UPDATE action_items SET
				description = ?,
				completed = ?,
				updated_at = ?
			WHERE id = ?
		`, item.Description, item.Completed, item.UpdatedAt, id)
		if err != nil {
			return fmt.Errorf("update action item %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteActionItem removes an action item
func (r *Repository) DeleteActionItem(ctx context.Context, id int64) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM action_items WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("delete action item %d: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete action item %d: %w", id, err)
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
}
