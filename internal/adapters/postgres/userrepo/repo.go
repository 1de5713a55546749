package userrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/placegram/places-api/internal/adapters/postgres"
	"github.com/placegram/places-api/internal/domain"
	"github.com/placegram/places-api/internal/ports/out/userrepo"
)

// Repo is a Postgres implementation of userrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, u domain.User) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	id, err := uuid.Parse(string(u.ID))
	if err != nil {
		return userrepo.ErrInvalidID
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO users (id, name, about, avatar, email, password_digest)
		VALUES ($1, $2, $3, $4, lower($5), $6)
	`, id, u.Name, u.About, u.Avatar, u.Email, u.PasswordDigest)
	if err != nil {
		if pe, ok := postgres.AsPgError(err); ok && pe.Code == postgres.UniqueViolationCode {
			switch pe.ConstraintName {
			case "users_email_unique":
				return userrepo.ErrEmailTaken
			default:
				return userrepo.ErrAlreadyExists
			}
		}
		return err
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.UserID) (domain.User, error) {
	if r.pool == nil {
		return domain.User{}, errors.New("nil postgres pool")
	}
	pgID, err := uuid.Parse(string(id))
	if err != nil {
		return domain.User{}, userrepo.ErrInvalidID
	}

	row := r.pool.QueryRow(ctx, `
		SELECT id, name, about, avatar, email, password_digest
		FROM users
		WHERE id = $1
	`, pgID)
	return scanUser(row)
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	if r.pool == nil {
		return domain.User{}, errors.New("nil postgres pool")
	}
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, about, avatar, email, password_digest
		FROM users
		WHERE email = lower($1)
	`, email)
	return scanUser(row)
}

func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, about, avatar, email, password_digest
		FROM users
		ORDER BY lower(name), id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *Repo) UpdateProfile(ctx context.Context, id domain.UserID, patch userrepo.ProfilePatch) (domain.User, error) {
	if r.pool == nil {
		return domain.User{}, errors.New("nil postgres pool")
	}
	pgID, err := uuid.Parse(string(id))
	if err != nil {
		return domain.User{}, userrepo.ErrInvalidID
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE users
		SET name   = COALESCE($2, name),
		    about  = COALESCE($3, about),
		    avatar = COALESCE($4, avatar)
		WHERE id = $1
		RETURNING id, name, about, avatar, email, password_digest
	`, pgID, patch.Name, patch.About, patch.Avatar)
	return scanUser(row)
}

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		id uuid.UUID
		u  domain.User
	)
	err := row.Scan(&id, &u.Name, &u.About, &u.Avatar, &u.Email, &u.PasswordDigest)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, userrepo.ErrNotFound
		}
		return domain.User{}, err
	}
	u.ID = domain.UserID(id.String())
	return u, nil
}
