package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
)

var (
	ErrNotFound    = errors.New("painting not found")
	ErrDuplicateID = errors.New("painting with this id already exists")
)

type Repository interface {
	List(ctx context.Context) ([]Painting, error)
	GetByID(ctx context.Context, id string) (*Painting, error)
	Create(ctx context.Context, p *Painting) error
	Update(ctx context.Context, p *Painting) error
	Delete(ctx context.Context, id string) error
}

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type postgresRepository struct {
	db DB
}

func NewRepository(db DB) Repository {
	return &postgresRepository{db: db}
}

const paintingColumns = `id, name, image, price, original_price, category, rating, reviews, badge, coupon_code, coupon_discount, created_at`

func scanPainting(row pgx.Row) (*Painting, error) {
	var p Painting
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Image,
		&p.Price,
		&p.OriginalPrice,
		&p.Category,
		&p.Rating,
		&p.Reviews,
		&p.Badge,
		&p.CouponCode,
		&p.CouponDiscount,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]Painting, error) {
	query := `SELECT ` + paintingColumns + ` FROM paintings ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query paintings: %w", err)
	}
	defer rows.Close()

	paintings := make([]Painting, 0)
	for rows.Next() {
		p, err := scanPainting(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan painting: %w", err)
		}
		paintings = append(paintings, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: failed iterating paintings: %w", err)
	}

	return paintings, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*Painting, error) {
	query := `SELECT ` + paintingColumns + ` FROM paintings WHERE id = $1`

	p, err := scanPainting(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to select painting by id %s: %w", id, err)
	}
	return p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *Painting) error {
	query := `
		INSERT INTO paintings (id, name, image, price, original_price, category, rating, reviews, badge, coupon_code, coupon_discount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		p.ID,
		p.Name,
		p.Image,
		p.Price,
		p.OriginalPrice,
		p.Category,
		p.Rating,
		p.Reviews,
		p.Badge,
		p.CouponCode,
		p.CouponDiscount,
	).Scan(&p.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			log.Warn().Str("painting_id", p.ID).Msg("repository: duplicate painting id")
			return ErrDuplicateID
		}
		return fmt.Errorf("repository: failed to insert painting: %w", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, p *Painting) error {
	query := `
		UPDATE paintings
		SET name = $2, image = $3, price = $4, original_price = $5, category = $6,
		    rating = $7, reviews = $8, badge = $9, coupon_code = $10, coupon_discount = $11
		WHERE id = $1
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		p.ID,
		p.Name,
		p.Image,
		p.Price,
		p.OriginalPrice,
		p.Category,
		p.Rating,
		p.Reviews,
		p.Badge,
		p.CouponCode,
		p.CouponDiscount,
	).Scan(&p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("repository: failed to update painting %s: %w", p.ID, err)
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM paintings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete painting %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
