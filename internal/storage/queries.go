package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Queries bundles the raw SQL used by the repository.
type Queries struct {
	db *sql.DB
}

func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

const seedCategory = `INSERT OR IGNORE INTO categories (name) VALUES (?)`

func (q *Queries) SeedCategory(ctx context.Context, name string) error {
	_, err := q.db.ExecContext(ctx, seedCategory, name)
	return err
}

const categoryExists = `SELECT EXISTS (SELECT 1 FROM categories WHERE name = ?)`

func (q *Queries) CategoryExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := q.db.QueryRowContext(ctx, categoryExists, name).Scan(&exists)
	return exists, err
}

const listCategories = `SELECT name FROM categories ORDER BY id`

func (q *Queries) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, listCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// insertExpense resolves the category in the same statement as the write, so
// an unknown category means zero rows affected and nothing persisted.
const insertExpense = `
INSERT INTO expenses (user_id, amount_cents, category_id, spent_on)
SELECT ?, ?, id, ? FROM categories WHERE name = ?`

type InsertExpenseParams struct {
	UserID      int64
	AmountCents int64
	SpentOn     string
	Category    string
}

// InsertExpense returns the new row id and whether a row was written at all.
func (q *Queries) InsertExpense(ctx context.Context, arg InsertExpenseParams) (int64, bool, error) {
	res, err := q.db.ExecContext(ctx, insertExpense, arg.UserID, arg.AmountCents, arg.SpentOn, arg.Category)
	if err != nil {
		return 0, false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, false, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return 0, false, nil
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, false, fmt.Errorf("last insert id: %w", err)
	}
	return id, true, nil
}

const listMonthExpenses = `
SELECT e.id, e.user_id, e.amount_cents, c.name, e.spent_on
FROM expenses e
JOIN categories c ON c.id = e.category_id
WHERE e.user_id = ? AND e.spent_on >= ? AND e.spent_on < ?
ORDER BY e.id`

type ExpenseRow struct {
	ID          int64
	UserID      int64
	AmountCents int64
	Category    string
	SpentOn     string
}

func (q *Queries) ListMonthExpenses(ctx context.Context, userID int64, from, to string) ([]ExpenseRow, error) {
	rows, err := q.db.QueryContext(ctx, listMonthExpenses, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ExpenseRow
	for rows.Next() {
		var r ExpenseRow
		if err := rows.Scan(&r.ID, &r.UserID, &r.AmountCents, &r.Category, &r.SpentOn); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

const monthTotal = `
SELECT COALESCE(SUM(amount_cents), 0)
FROM expenses
WHERE user_id = ? AND spent_on >= ? AND spent_on < ?`

func (q *Queries) MonthTotal(ctx context.Context, userID int64, from, to string) (int64, error) {
	var total int64
	err := q.db.QueryRowContext(ctx, monthTotal, userID, from, to).Scan(&total)
	return total, err
}
