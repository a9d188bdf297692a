package storage

import (
	"database/sql"
	"time"

	"investment-outlook/src/logger"
	"investment-outlook/src/models"

	_ "modernc.org/sqlite"
)

// -----------------------------------------------------------------------------

type SQLiteCache struct {
	Config *models.MConfig
	DB     *sql.DB
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

// NewSQLiteCache creates the sqlite-backed price series cache.
func NewSQLiteCache(cfg *models.MConfig, log *logger.Logger) (*SQLiteCache, error) {
	return &SQLiteCache{
		Config: cfg,
		Logger: log,
	}, nil
}

// -----------------------------------------------------------------------------

func (d *SQLiteCache) Initialize() error {
	dsn := d.Config.Storage.DBPath

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		return err
	}
	d.DB = db

	// PRAGMA optimizations
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		d.Logger.Warning("Failed to set WAL mode: %v", err)
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL;"); err != nil {
		d.Logger.Warning("Failed to set synchronous mode: %v", err)
	}

	return d.createTables()
}

// -----------------------------------------------------------------------------

func (d *SQLiteCache) createTables() error {
	// SQLite types: INTEGER for int64, REAL for float64, TEXT for string
	query := `
		CREATE TABLE IF NOT EXISTS price_history (
			symbol TEXT,
			date TEXT,
			close REAL,
			PRIMARY KEY (symbol, date)
		);
	`
	if _, err := d.DB.Exec(query); err != nil {
		return err
	}

	query = `
		CREATE TABLE IF NOT EXISTS price_series_meta (
			symbol TEXT PRIMARY KEY,
			fetched_at INTEGER
		);
	`
	_, err := d.DB.Exec(query)
	return err
}

// -----------------------------------------------------------------------------

// Load returns the cached series for symbol if its entry is fresher than the
// configured TTL.
func (d *SQLiteCache) Load(symbol string) (*models.MPriceSeries, bool, error) {
	var fetchedAt int64
	err := d.DB.QueryRow(
		"SELECT fetched_at FROM price_series_meta WHERE symbol = ?", symbol,
	).Scan(&fetchedAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	ttl := time.Duration(d.Config.Storage.TTLHours) * time.Hour
	if time.Since(time.Unix(fetchedAt, 0)) > ttl {
		return nil, false, nil
	}

	rows, err := d.DB.Query(
		"SELECT date, close FROM price_history WHERE symbol = ? ORDER BY date ASC", symbol,
	)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	series := &models.MPriceSeries{Symbol: symbol}
	for rows.Next() {
		var date string
		var close float64
		if err := rows.Scan(&date, &close); err != nil {
			return nil, false, err
		}
		series.Dates = append(series.Dates, date)
		series.Closes = append(series.Closes, close)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	if series.Len() == 0 {
		return nil, false, nil
	}
	return series, true, nil
}

// -----------------------------------------------------------------------------

// Store replaces the cached series for the symbol and stamps the fetch time.
func (d *SQLiteCache) Store(series *models.MPriceSeries) error {
	tx, err := d.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM price_history WHERE symbol = ?", series.Symbol); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO price_history (symbol, date, close)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, date := range series.Dates {
		if _, err := stmt.Exec(series.Symbol, date, series.Closes[i]); err != nil {
			return err
		}
	}

	query := `
		INSERT INTO price_series_meta (symbol, fetched_at) VALUES (?, ?)
		ON CONFLICT (symbol) DO UPDATE SET fetched_at = excluded.fetched_at
	`
	if _, err := tx.Exec(query, series.Symbol, time.Now().Unix()); err != nil {
		return err
	}

	return tx.Commit()
}

// -----------------------------------------------------------------------------

func (d *SQLiteCache) Close() error {
	if d.DB == nil {
		return nil
	}
	return d.DB.Close()
}
