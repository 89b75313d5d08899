// Package store holds the mocked bank data in an in-memory SQLite database.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/lima/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

const dateLayout = "2006-01-02"

// Source selects transactions by direction.
type Source string

const (
	SourceAll     Source = "all"
	SourceIncome  Source = "income"
	SourceExpense Source = "expense"
)

// ParseSource validates a source filter name. Empty means all.
func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case "", SourceAll:
		return SourceAll, nil
	case SourceIncome, SourceExpense:
		return Source(s), nil
	}
	return "", fmt.Errorf("unknown source %q (want all, income or expense)", s)
}

// Filter narrows Transactions. The zero value matches everything.
type Filter struct {
	Source     Source
	Categories []string
}

// Ledger is the mock bank backend: accounts, transactions and the spending
// curve of the current month.
type Ledger struct {
	db *sql.DB
}

// Open creates an empty in-memory ledger. Nothing is written to disk.
func Open() (*Ledger, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Ledger{db: db}, nil
}

// OpenSeeded opens a ledger and loads fx into it.
func OpenSeeded(fx Fixtures) (*Ledger, error) {
	l, err := Open()
	if err != nil {
		return nil, err
	}
	if err := l.Seed(fx); err != nil {
		_ = l.Close()
		return nil, err
	}
	return l, nil
}

// Close releases the database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Seed replaces the ledger contents with fx.
func (l *Ledger) Seed(fx Fixtures) error {
	tx, err := l.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"accounts", "categories", "transactions", "chart_points"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for i, a := range fx.Accounts {
		_, err = tx.Exec("INSERT INTO accounts (position, bank_name, balance, color) VALUES (?, ?, ?, ?)",
			i, a.BankName, a.Balance.String(), a.Color)
		if err != nil {
			return fmt.Errorf("inserting account %q: %w", a.BankName, err)
		}
	}
	for i, c := range fx.Categories {
		_, err = tx.Exec("INSERT INTO categories (name, color, position) VALUES (?, ?, ?)", c.Name, c.Color, i)
		if err != nil {
			return fmt.Errorf("inserting category %q: %w", c.Name, err)
		}
	}
	for i, t := range fx.Transactions {
		_, err = tx.Exec(`INSERT INTO transactions
			(id, merchant, category, amount, type, date, position)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.Merchant, t.Category, t.Amount.String(), string(t.Type), t.Date.Format(dateLayout), i)
		if err != nil {
			return fmt.Errorf("inserting transaction %s: %w", t.ID, err)
		}
	}
	for _, p := range fx.Chart {
		_, err = tx.Exec("INSERT INTO chart_points (day, amount) VALUES (?, ?)", p.Day, p.Amount.String())
		if err != nil {
			return fmt.Errorf("inserting chart point %d: %w", p.Day, err)
		}
	}

	return tx.Commit()
}

// Accounts returns the linked accounts in display order.
func (l *Ledger) Accounts() ([]model.Account, error) {
	rows, err := l.db.Query("SELECT bank_name, balance, color FROM accounts ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var result []model.Account
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.BankName, &a.Balance, &a.Color); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

// Categories returns the known categories in display order.
func (l *Ledger) Categories() ([]model.Category, error) {
	rows, err := l.db.Query("SELECT name, color FROM categories ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var result []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.Name, &c.Color); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// Transactions returns the transactions matching f, newest day first and in
// seed order within a day.
func (l *Ledger) Transactions(f Filter) ([]model.Transaction, error) {
	var (
		where []string
		args  []any
	)
	switch f.Source {
	case "", SourceAll:
	case SourceIncome, SourceExpense:
		where = append(where, "type = ?")
		args = append(args, string(f.Source))
	default:
		return nil, fmt.Errorf("unknown source %q", f.Source)
	}
	if len(f.Categories) > 0 {
		where = append(where, "category IN (?"+strings.Repeat(", ?", len(f.Categories)-1)+")")
		for _, c := range f.Categories {
			args = append(args, c)
		}
	}

	q := "SELECT id, merchant, category, amount, type, date FROM transactions"
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY date DESC, position"

	rows, err := l.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var result []model.Transaction
	for rows.Next() {
		var (
			t    model.Transaction
			typ  string
			date string
		)
		if err := rows.Scan(&t.ID, &t.Merchant, &t.Category, &t.Amount, &typ, &date); err != nil {
			return nil, err
		}
		t.Type = model.TxType(typ)
		t.Date, err = time.ParseInLocation(dateLayout, date, time.Local)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: bad date %q: %w", t.ID, date, err)
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

// ExpensesByCategory returns the expenses booked under category.
func (l *Ledger) ExpensesByCategory(category string) ([]model.Transaction, error) {
	if category == "" {
		return nil, errors.New("category is required")
	}
	return l.Transactions(Filter{Source: SourceExpense, Categories: []string{category}})
}

// ChartPoints returns the month-to-date spending curve ordered by day.
func (l *Ledger) ChartPoints() ([]model.ChartPoint, error) {
	rows, err := l.db.Query("SELECT day, amount FROM chart_points ORDER BY day")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var result []model.ChartPoint
	for rows.Next() {
		var p model.ChartPoint
		if err := rows.Scan(&p.Day, &p.Amount); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}
