package book

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// Ping reports whether the database is reachable.
func (r *PostgresRepo) Ping(ctx context.Context) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.Ping(timeoutCtx)
}

func (r *PostgresRepo) FindAll(ctx context.Context, req PageRequest) ([]Book, int, error) {
	return r.findPage(ctx, "", nil, req)
}

func (r *PostgresRepo) FindByTitle(ctx context.Context, title string, req PageRequest) ([]Book, int, error) {
	// strpos matches title literally; LIKE would treat % and _ as wildcards.
	return r.findPage(ctx, "WHERE strpos(lower(title), lower($1)) > 0", []any{title}, req)
}

func (r *PostgresRepo) findPage(ctx context.Context, where string, args []any, req PageRequest) ([]Book, int, error) {
	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM books %s", where)
	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order := "ASC"
	if req.Descending() {
		order = "DESC"
	}
	argn := len(args) + 1
	dataSQL := fmt.Sprintf(`
		SELECT id, author, launch_date, price, title
		FROM books
		%s
		ORDER BY title %s, id ASC
		LIMIT $%d OFFSET $%d`,
		where, order, argn, argn+1)

	argsWithPage := append([]any{}, args...)
	argsWithPage = append(argsWithPage, req.Size, req.Offset())
	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	rows, err := r.db.Query(timeoutCtx2, dataSQL, argsWithPage...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []Book{}
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Author, &b.LaunchDate, &b.Price, &b.Title); err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepo) FindByID(ctx context.Context, id int64) (Book, error) {
	const query = `
		SELECT id, author, launch_date, price, title
		FROM books
		WHERE id = $1
	`
	var b Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(&b.ID, &b.Author, &b.LaunchDate, &b.Price, &b.Title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) Save(ctx context.Context, b Book) (Book, error) {
	if b.ID == 0 {
		return r.insert(ctx, b)
	}
	return r.update(ctx, b)
}

func (r *PostgresRepo) insert(ctx context.Context, b Book) (Book, error) {
	const sql = `
		INSERT INTO books (author, launch_date, price, title)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, sql, b.Author, b.LaunchDate, b.Price, b.Title).Scan(&b.ID); err != nil {
		return Book{}, fmt.Errorf("insert book: %w", err)
	}
	return b, nil
}

func (r *PostgresRepo) update(ctx context.Context, b Book) (Book, error) {
	const sql = `
		UPDATE books
		SET author = $2, launch_date = $3, price = $4, title = $5
		WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, sql, b.ID, b.Author, b.LaunchDate, b.Price, b.Title)
	if err != nil {
		return Book{}, fmt.Errorf("update book %d: %w", b.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return Book{}, ErrNotFound
	}
	return b, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, b Book) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM books WHERE id = $1`, b.ID)
	if err != nil {
		return fmt.Errorf("delete book %d: %w", b.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
