package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kinosvet/cinema-booking/internal/domain"
)

type PostgresHallRepository struct {
	db *pgxpool.Pool
}

func NewPostgresHallRepository(db *pgxpool.Pool) *PostgresHallRepository {
	return &PostgresHallRepository{
		db: db,
	}
}

func (p *PostgresHallRepository) GetAll(ctx context.Context) ([]domain.Hall, error) {
	query := `
		SELECT id, name, rows, seats_per_row, standard_price, vip_price, layout, created_at, updated_at
		FROM halls
		ORDER BY name
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	halls := make([]domain.Hall, 0)

	for rows.Next() {
		var hall domain.Hall

		err := rows.Scan(
			&hall.ID,
			&hall.Name,
			&hall.Rows,
			&hall.SeatsPerRow,
			&hall.StandardPrice,
			&hall.VipPrice,
			&hall.Layout,
			&hall.CreatedAt,
			&hall.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		halls = append(halls, hall)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return halls, nil
}

func (p *PostgresHallRepository) GetById(ctx context.Context, id int) (*domain.Hall, error) {
	query := `
		SELECT id, name, rows, seats_per_row, standard_price, vip_price, layout, created_at, updated_at
		FROM halls
		WHERE id = $1
	`

	var hall domain.Hall

	err := p.db.QueryRow(ctx, query, id).Scan(
		&hall.ID,
		&hall.Name,
		&hall.Rows,
		&hall.SeatsPerRow,
		&hall.StandardPrice,
		&hall.VipPrice,
		&hall.Layout,
		&hall.CreatedAt,
		&hall.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &hall, nil
}

func (p *PostgresHallRepository) Create(ctx context.Context, hall *domain.Hall) error {
	query := `
		INSERT INTO halls (name, rows, seats_per_row, standard_price, vip_price, layout)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := p.db.QueryRow(ctx,
		query,
		hall.Name,
		hall.Rows,
		hall.SeatsPerRow,
		hall.StandardPrice,
		hall.VipPrice,
		hall.Layout).Scan(&hall.ID, &hall.CreatedAt, &hall.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err, "halls_name_key") {
			return domain.ErrDuplicateHallName
		}

		return err
	}

	return nil
}

func (p *PostgresHallRepository) Update(ctx context.Context, hall *domain.Hall) error {
	query := `
		UPDATE halls
		SET name = $1, rows = $2, seats_per_row = $3, standard_price = $4,
			vip_price = $5, layout = $6, updated_at = NOW()
		WHERE id = $7 AND updated_at = $8
		RETURNING updated_at
	`

	err := p.db.QueryRow(ctx,
		query,
		hall.Name,
		hall.Rows,
		hall.SeatsPerRow,
		hall.StandardPrice,
		hall.VipPrice,
		hall.Layout,
		hall.ID,
		hall.UpdatedAt).Scan(&hall.UpdatedAt)

	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return domain.ErrEditConflict
		case isUniqueViolation(err, "halls_name_key"):
			return domain.ErrDuplicateHallName
		}

		return err
	}

	return nil
}

func (p *PostgresHallRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM halls WHERE id = $1`

	result, err := p.db.Exec(ctx, query, id)
	if err != nil {
		if isForeignKeyViolation(err, "screenings_hall_id_fkey") {
			return domain.ErrHallInUse
		}

		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
