package cardrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/placegram/places-api/internal/domain"
	"github.com/placegram/places-api/internal/ports/out/cardrepo"
)

// Repo is a Postgres implementation of cardrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, c domain.Card) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	id, err := uuid.Parse(string(c.ID))
	if err != nil {
		return cardrepo.ErrInvalidID
	}
	ownerID, err := uuid.Parse(string(c.OwnerID))
	if err != nil {
		return cardrepo.ErrInvalidID
	}

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO cards (id, name, link, owner_id, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`, id, c.Name, c.Link, ownerID, c.CreatedAt.UTC())
		if err != nil {
			return err
		}
		for _, l := range c.Likes {
			userID, err := uuid.Parse(string(l))
			if err != nil {
				return cardrepo.ErrInvalidID
			}
			if _, err := tx.Exec(ctx, `
				INSERT INTO card_likes (card_id, user_id)
				VALUES ($1, $2)
				ON CONFLICT DO NOTHING
			`, id, userID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repo) GetByID(ctx context.Context, id domain.CardID) (domain.Card, error) {
	if r.pool == nil {
		return domain.Card{}, errors.New("nil postgres pool")
	}
	pgID, err := uuid.Parse(string(id))
	if err != nil {
		return domain.Card{}, cardrepo.ErrInvalidID
	}
	return getCard(ctx, r.pool, pgID)
}

func (r *Repo) List(ctx context.Context) ([]domain.Card, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.name, c.link, c.owner_id, c.created_at,
		       COALESCE(array_agg(l.user_id ORDER BY l.user_id) FILTER (WHERE l.user_id IS NOT NULL), '{}')
		FROM cards c
		LEFT JOIN card_likes l ON l.card_id = c.id
		GROUP BY c.id
		ORDER BY c.created_at, c.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Card, 0)
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) Delete(ctx context.Context, id domain.CardID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	pgID, err := uuid.Parse(string(id))
	if err != nil {
		return cardrepo.ErrInvalidID
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM cards WHERE id = $1`, pgID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return cardrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) AddLike(ctx context.Context, id domain.CardID, userID domain.UserID) (domain.Card, error) {
	return r.mutateLike(ctx, id, userID, `
		INSERT INTO card_likes (card_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`)
}

func (r *Repo) RemoveLike(ctx context.Context, id domain.CardID, userID domain.UserID) (domain.Card, error) {
	return r.mutateLike(ctx, id, userID, `
		DELETE FROM card_likes WHERE card_id = $1 AND user_id = $2
	`)
}

func (r *Repo) mutateLike(ctx context.Context, id domain.CardID, userID domain.UserID, sql string) (domain.Card, error) {
	if r.pool == nil {
		return domain.Card{}, errors.New("nil postgres pool")
	}
	pgID, err := uuid.Parse(string(id))
	if err != nil {
		return domain.Card{}, cardrepo.ErrInvalidID
	}
	pgUserID, err := uuid.Parse(string(userID))
	if err != nil {
		return domain.Card{}, cardrepo.ErrInvalidID
	}

	var out domain.Card
	err = pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		// Lock the card row so the like mutation and reload are consistent.
		var exists uuid.UUID
		err := tx.QueryRow(ctx, `SELECT id FROM cards WHERE id = $1 FOR UPDATE`, pgID).Scan(&exists)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return cardrepo.ErrNotFound
			}
			return err
		}
		if _, err := tx.Exec(ctx, sql, pgID, pgUserID); err != nil {
			return err
		}
		out, err = getCard(ctx, tx, pgID)
		return err
	})
	if err != nil {
		return domain.Card{}, err
	}
	return out, nil
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func getCard(ctx context.Context, q querier, id uuid.UUID) (domain.Card, error) {
	row := q.QueryRow(ctx, `
		SELECT c.id, c.name, c.link, c.owner_id, c.created_at,
		       COALESCE(array_agg(l.user_id ORDER BY l.user_id) FILTER (WHERE l.user_id IS NOT NULL), '{}')
		FROM cards c
		LEFT JOIN card_likes l ON l.card_id = c.id
		WHERE c.id = $1
		GROUP BY c.id
	`, id)
	c, err := scanCard(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Card{}, cardrepo.ErrNotFound
		}
		return domain.Card{}, err
	}
	return c, nil
}

func scanCard(row pgx.Row) (domain.Card, error) {
	var (
		id      uuid.UUID
		ownerID uuid.UUID
		likeIDs []uuid.UUID
		c       domain.Card
	)
	if err := row.Scan(&id, &c.Name, &c.Link, &ownerID, &c.CreatedAt, &likeIDs); err != nil {
		return domain.Card{}, err
	}
	c.ID = domain.CardID(id.String())
	c.OwnerID = domain.UserID(ownerID.String())
	c.Likes = make([]domain.UserID, 0, len(likeIDs))
	for _, l := range likeIDs {
		c.Likes = append(c.Likes, domain.UserID(l.String()))
	}
	return c, nil
}
