package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Meal is one logged meal in the journal.
type Meal struct {
	ID          string
	LoggedAt    time.Time
	Description string
	Calories    float64
	Source      string // "manual" or "photo"
}

// DayTotal aggregates the journal for one calendar day.
type DayTotal struct {
	Day      string // YYYY-MM-DD
	Calories float64
	Meals    int
}

// Journal is the SQLite-backed meal log. Unlike the blob store it is
// append-heavy and queried by date range, so it gets a real database.
type Journal struct {
	db *sql.DB
}

// OpenJournal opens or creates the journal database at the given path.
func OpenJournal(dbPath string) (*Journal, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating journal dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening journal db: %w", err)
	}

	if _, err := db.Exec(journalSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Close closes the journal database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Append records a meal. A missing ID is filled in.
func (j *Journal) Append(m Meal) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.LoggedAt.IsZero() {
		m.LoggedAt = time.Now()
	}
	if m.Source == "" {
		m.Source = "manual"
	}
	_, err := j.db.Exec(
		`INSERT INTO meals (id, logged_at, description, calories, source) VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.LoggedAt.UTC().Format(time.RFC3339), m.Description, m.Calories, m.Source,
	)
	return err
}

// Recent returns up to limit meals, newest first.
func (j *Journal) Recent(limit int) ([]Meal, error) {
	rows, err := j.db.Query(
		`SELECT id, logged_at, description, calories, source
		 FROM meals ORDER BY logged_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var meals []Meal
	for rows.Next() {
		var m Meal
		var logged string
		if err := rows.Scan(&m.ID, &logged, &m.Description, &m.Calories, &m.Source); err != nil {
			return nil, err
		}
		m.LoggedAt, _ = time.Parse(time.RFC3339, logged)
		meals = append(meals, m)
	}
	return meals, rows.Err()
}

// DayTotals returns per-day calorie totals for the last n days,
// oldest first.
func (j *Journal) DayTotals(n int) ([]DayTotal, error) {
	since := time.Now().UTC().AddDate(0, 0, -n).Format(time.RFC3339)
	rows, err := j.db.Query(
		`SELECT substr(logged_at, 1, 10) AS day, SUM(calories), COUNT(*)
		 FROM meals WHERE logged_at >= ?
		 GROUP BY day ORDER BY day`, since)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var totals []DayTotal
	for rows.Next() {
		var t DayTotal
		if err := rows.Scan(&t.Day, &t.Calories, &t.Meals); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// DeleteMeal removes a journal entry.
func (j *Journal) DeleteMeal(id string) error {
	_, err := j.db.Exec("DELETE FROM meals WHERE id = ?", id)
	return err
}
