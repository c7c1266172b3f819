package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/cafes-service/cmd/api/cafe"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db  *sql.DB
	exc DBTX
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:  db,
		exc: db,
	}
}

/* Connects to the database trought a connection string and returns a pointer to a valid DB object (*sql.DB). */
func ConnectDb(connStr string) (*sql.DB, error) {
	sqlDB, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("connecting to db, opening: %w", err)
	}

	err = sqlDB.Ping()
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("connecting to db, pinging: %w", err)
	}

	log.Info().Msg("successfully connected to the database")
	return sqlDB, nil
}

// MigrationUp creates the schema when it is absent, applying the migrations
// embedded in the binary. Being already up to date is not an error.
func MigrationUp(store *Store) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("migrating up, reading migrations: %w", err)
	}

	driver, err := postgres.WithInstance(store.db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("migrating up: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migrating up: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrating up: %w", err)
	}
	return nil
}

func (store *Store) Close() error {
	return store.db.Close()
}

const cafeColumns = `id, name, map_url, img_url, location, has_sockets, has_toilet, has_wifi, can_take_calls, seats, coffee_price`

type rowScanner interface {
	Scan(dest ...any) error
}

/* Maps one cafes row, in cafeColumns order, onto a Cafe. */
func scanCafe(row rowScanner) (cafe.Cafe, error) {
	var c cafe.Cafe
	err := row.Scan(&c.ID, &c.Name, &c.MapURL, &c.ImgURL, &c.Location,
		&c.HasSockets, &c.HasToilet, &c.HasWifi, &c.CanTakeCalls, &c.Seats, &c.CoffeePrice)
	return c, err
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation"
}

/* Returns every cafe in insertion order. */
func (store *Store) ListCafes(ctx context.Context) ([]cafe.Cafe, error) {
	sqlStatement := `SELECT ` + cafeColumns + ` FROM cafes ORDER BY id ASC;`

	rows, err := store.exc.QueryContext(ctx, sqlStatement)
	if err != nil {
		return nil, fmt.Errorf("listing cafes from db: %w", err)
	}
	defer rows.Close()

	cafes := []cafe.Cafe{}
	for rows.Next() {
		c, err := scanCafe(rows)
		if err != nil {
			return nil, fmt.Errorf("listing cafes from db: %w", err)
		}
		cafes = append(cafes, c)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("listing cafes from db: %w", err)
	}

	return cafes, nil
}

/* Searches a cafe in database based on ID and returns it if succeed. */
func (store *Store) GetCafeByID(ctx context.Context, id int64) (cafe.Cafe, error) {
	sqlStatement := `SELECT ` + cafeColumns + ` FROM cafes WHERE id = $1;`

	c, err := scanCafe(store.exc.QueryRowContext(ctx, sqlStatement, id))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return cafe.Cafe{}, fmt.Errorf("searching by ID: %w", cafe.ErrResponseCafeNotFound)
		default:
			return cafe.Cafe{}, fmt.Errorf("searching by ID: %w", err)
		}
	}

	return c, nil
}

/* Stores the cafe into the database and returns it with its new ID. */
func (store *Store) CreateCafe(ctx context.Context, entry cafe.Cafe) (cafe.Cafe, error) {
	sqlStatement := `
	INSERT INTO cafes (name, map_url, img_url, location, has_sockets, has_toilet, has_wifi, can_take_calls, seats, coffee_price)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING ` + cafeColumns

	createdRow := store.exc.QueryRowContext(ctx, sqlStatement, entry.Name, entry.MapURL, entry.ImgURL, entry.Location,
		entry.HasSockets, entry.HasToilet, entry.HasWifi, entry.CanTakeCalls, entry.Seats, entry.CoffeePrice)
	c, err := scanCafe(createdRow)
	if err != nil {
		if isUniqueViolation(err) {
			return cafe.Cafe{}, fmt.Errorf("storing cafe on db: %w", cafe.ErrResponseCafeNameConflict)
		}
		return cafe.Cafe{}, fmt.Errorf("storing cafe on db: %w", err)
	}

	return c, nil
}

/* Overwrites every column of the cafe with entry.ID. */
func (store *Store) UpdateCafe(ctx context.Context, entry cafe.Cafe) (cafe.Cafe, error) {
	sqlStatement := `
	UPDATE cafes
	SET name = $2, map_url = $3, img_url = $4, location = $5, has_sockets = $6,
		has_toilet = $7, has_wifi = $8, can_take_calls = $9, seats = $10, coffee_price = $11
	WHERE id = $1
	RETURNING ` + cafeColumns

	updatedRow := store.exc.QueryRowContext(ctx, sqlStatement, entry.ID, entry.Name, entry.MapURL, entry.ImgURL, entry.Location,
		entry.HasSockets, entry.HasToilet, entry.HasWifi, entry.CanTakeCalls, entry.Seats, entry.CoffeePrice)
	c, err := scanCafe(updatedRow)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return cafe.Cafe{}, fmt.Errorf("updating on db: %w", cafe.ErrResponseCafeNotFound)
		case isUniqueViolation(err):
			return cafe.Cafe{}, fmt.Errorf("updating on db: %w", cafe.ErrResponseCafeNameConflict)
		default:
			return cafe.Cafe{}, fmt.Errorf("updating on db: %w", err)
		}
	}

	return c, nil
}

func (store *Store) DeleteCafe(ctx context.Context, id int64) error {
	sqlStatement := `DELETE FROM cafes WHERE id = $1;`

	result, err := store.exc.ExecContext(ctx, sqlStatement, id)
	if err != nil {
		return fmt.Errorf("deleting cafe from db: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting cafe from db: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("deleting cafe from db: %w", cafe.ErrResponseCafeNotFound)
	}
	return nil
}
