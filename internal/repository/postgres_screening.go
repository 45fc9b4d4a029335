package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kinosvet/cinema-booking/internal/domain"
)

type PostgresScreeningRepository struct {
	db *pgxpool.Pool
}

func NewPostgresScreeningRepository(db *pgxpool.Pool) *PostgresScreeningRepository {
	return &PostgresScreeningRepository{
		db: db,
	}
}

// toPgTime converts a midnight offset to a TIME column value.
func toPgTime(offset time.Duration) pgtype.Time {
	return pgtype.Time{Microseconds: offset.Microseconds(), Valid: true}
}

func fromPgTime(t pgtype.Time) time.Duration {
	return time.Duration(t.Microseconds) * time.Microsecond
}

func (p *PostgresScreeningRepository) GetAll(ctx context.Context) ([]domain.ScreeningDetails, error) {
	query := `
		SELECT
			s.id,
			s.movie_id,
			s.hall_id,
			s.date,
			s.start_time,
			s.booked_seats,
			s.created_at,
			s.updated_at,
			m.title,
			m.duration,
			h.name
		FROM screenings s
		JOIN movies m ON s.movie_id = m.id
		JOIN halls h ON s.hall_id = h.id
		ORDER BY s.date, s.start_time
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	screenings := make([]domain.ScreeningDetails, 0)

	for rows.Next() {
		var details domain.ScreeningDetails
		var startTime pgtype.Time

		err := rows.Scan(
			&details.ID,
			&details.MovieID,
			&details.HallID,
			&details.Date,
			&startTime,
			&details.BookedSeats,
			&details.CreatedAt,
			&details.UpdatedAt,
			&details.MovieTitle,
			&details.MovieDuration,
			&details.Hall.Name,
		)
		if err != nil {
			return nil, err
		}

		details.StartTime = fromPgTime(startTime)
		details.Hall.ID = details.HallID

		screenings = append(screenings, details)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return screenings, nil
}

func (p *PostgresScreeningRepository) GetWithHall(ctx context.Context, id int) (*domain.ScreeningDetails, error) {
	query := `
		SELECT
			s.id,
			s.movie_id,
			s.hall_id,
			s.date,
			s.start_time,
			s.booked_seats,
			s.created_at,
			s.updated_at,
			m.title,
			m.duration,
			h.id,
			h.name,
			h.rows,
			h.seats_per_row,
			h.standard_price,
			h.vip_price,
			h.layout
		FROM screenings s
		JOIN movies m ON s.movie_id = m.id
		JOIN halls h ON s.hall_id = h.id
		WHERE s.id = $1
	`

	var details domain.ScreeningDetails
	var startTime pgtype.Time

	err := p.db.QueryRow(ctx, query, id).Scan(
		&details.ID,
		&details.MovieID,
		&details.HallID,
		&details.Date,
		&startTime,
		&details.BookedSeats,
		&details.CreatedAt,
		&details.UpdatedAt,
		&details.MovieTitle,
		&details.MovieDuration,
		&details.Hall.ID,
		&details.Hall.Name,
		&details.Hall.Rows,
		&details.Hall.SeatsPerRow,
		&details.Hall.StandardPrice,
		&details.Hall.VipPrice,
		&details.Hall.Layout,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	details.StartTime = fromPgTime(startTime)

	return &details, nil
}

func (p *PostgresScreeningRepository) Create(ctx context.Context, screening *domain.Screening) error {
	query := `
		INSERT INTO screenings (movie_id, hall_id, date, start_time, booked_seats)
		VALUES ($1, $2, $3, $4, '[]')
		RETURNING id, created_at, updated_at
	`

	err := p.db.QueryRow(ctx,
		query,
		screening.MovieID,
		screening.HallID,
		screening.Date,
		toPgTime(screening.StartTime)).Scan(&screening.ID, &screening.CreatedAt, &screening.UpdatedAt)

	if err != nil {
		switch {
		case isForeignKeyViolation(err, "screenings_movie_id_fkey"),
			isForeignKeyViolation(err, "screenings_hall_id_fkey"):
			return domain.ErrRecordNotFound
		}

		return err
	}

	screening.BookedSeats = []string{}

	return nil
}

func (p *PostgresScreeningRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM screenings WHERE id = $1`

	result, err := p.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
