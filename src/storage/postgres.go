package storage

import (
	"database/sql"
	"time"

	"investment-outlook/src/logger"
	"investment-outlook/src/models"

	_ "github.com/lib/pq"
)

// -----------------------------------------------------------------------------

type PostgresCache struct {
	Config *models.MConfig
	DB     *sql.DB
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

// NewPostgresCache creates the postgres-backed price series cache.
func NewPostgresCache(cfg *models.MConfig, log *logger.Logger) (*PostgresCache, error) {
	return &PostgresCache{
		Config: cfg,
		Logger: log,
	}, nil
}

// -----------------------------------------------------------------------------

func (d *PostgresCache) Initialize() error {
	dsn := d.Config.Storage.DBConnectionString
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		return err
	}
	d.DB = db

	query := `
		CREATE TABLE IF NOT EXISTS price_history (
			symbol TEXT,
			date TEXT,
			close DOUBLE PRECISION,
			PRIMARY KEY (symbol, date)
		);
	`
	if _, err := d.DB.Exec(query); err != nil {
		return err
	}

	query = `
		CREATE TABLE IF NOT EXISTS price_series_meta (
			symbol TEXT PRIMARY KEY,
			fetched_at BIGINT
		);
	`
	if _, err := d.DB.Exec(query); err != nil {
		return err
	}

	d.Logger.Info("PostgresCache initialized successfully")
	return nil
}

// -----------------------------------------------------------------------------

// Load returns the cached series for symbol if its entry is fresher than the
// configured TTL.
func (d *PostgresCache) Load(symbol string) (*models.MPriceSeries, bool, error) {
	var fetchedAt int64
	err := d.DB.QueryRow(
		"SELECT fetched_at FROM price_series_meta WHERE symbol = $1", symbol,
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
		"SELECT date, close FROM price_history WHERE symbol = $1 ORDER BY date ASC", symbol,
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
func (d *PostgresCache) Store(series *models.MPriceSeries) error {
	tx, err := d.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM price_history WHERE symbol = $1", series.Symbol); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO price_history (symbol, date, close)
		VALUES ($1, $2, $3)
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
		INSERT INTO price_series_meta (symbol, fetched_at) VALUES ($1, $2)
		ON CONFLICT (symbol) DO UPDATE SET fetched_at = EXCLUDED.fetched_at
	`
	if _, err := tx.Exec(query, series.Symbol, time.Now().Unix()); err != nil {
		return err
	}

	return tx.Commit()
}

// -----------------------------------------------------------------------------

func (d *PostgresCache) Close() error {
	if d.DB == nil {
		return nil
	}
	return d.DB.Close()
}
