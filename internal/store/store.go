// Package store holds the simulated usage datasets in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/verte-zerg/focuslock/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// Store wraps SQLite access for the weekly usage and unlock history.
type Store struct {
	db *sql.DB
}

var weeklyFixture = []model.UsagePoint{
	{Day: "Mon", Minutes: 95},
	{Day: "Tue", Minutes: 142},
	{Day: "Wed", Minutes: 88},
	{Day: "Thu", Minutes: 135},
	{Day: "Fri", Minutes: 156},
	{Day: "Sat", Minutes: 180},
}

var unlockFixture = []model.UnlockRecord{
	{Time: "2:30 PM", Date: "Today", Status: model.UnlockApproved},
	{Time: "5:45 PM", Date: "Yesterday", Status: model.UnlockApproved},
	{Time: "3:20 PM", Date: "2 days ago", Status: model.UnlockDenied},
}

// Open opens the database, applies migrations and seeds the fixtures.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	if err := store.seed(context.Background()); err != nil {
		if cerr := db.Close(); cerr != nil {
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS usage_days (
			position INTEGER PRIMARY KEY,
			day TEXT NOT NULL,
			minutes INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS unlock_events (
			id INTEGER PRIMARY KEY,
			time_label TEXT NOT NULL,
			date_label TEXT NOT NULL,
			status TEXT NOT NULL CHECK (status IN ('Approved', 'Denied'))
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) seed(ctx context.Context) (err error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM usage_days`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count usage days: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	for i, p := range weeklyFixture {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO usage_days (position, day, minutes) VALUES (?, ?, ?)`,
			i, p.Day, p.Minutes,
		); err != nil {
			return fmt.Errorf("failed to seed usage: %w", err)
		}
	}
	for i, r := range unlockFixture {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO unlock_events (id, time_label, date_label, status) VALUES (?, ?, ?, ?)`,
			i+1, r.Time, r.Date, string(r.Status),
		); err != nil {
			return fmt.Errorf("failed to seed unlock history: %w", err)
		}
	}
	err = tx.Commit()
	return err
}

// WeeklyUsage returns the recorded days in weekday order.
func (s *Store) WeeklyUsage(ctx context.Context) ([]model.UsagePoint, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT day, minutes FROM usage_days ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var points []model.UsagePoint
	for rows.Next() {
		var p model.UsagePoint
		if err := rows.Scan(&p.Day, &p.Minutes); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

// UnlockHistory returns unlock requests, most recent first.
func (s *Store) UnlockHistory(ctx context.Context) ([]model.UnlockRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT time_label, date_label, status FROM unlock_events ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var records []model.UnlockRecord
	for rows.Next() {
		var r model.UnlockRecord
		var status string
		if err := rows.Scan(&r.Time, &r.Date, &status); err != nil {
			return nil, err
		}
		r.Status = model.UnlockStatus(status)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
