package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"property_listing/internal/domain"
)

func valStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertProperty(ctx context.Context, p domain.Property) error {
	cats := p.Categories
	if cats == nil {
		cats = []string{}
	}
	catsJSON, err := json.Marshal(cats)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, upsertPropertySQL,
		p.ID,
		p.Position,
		p.Name,
		p.Rating,
		string(catsJSON),
		valStr(p.Address.State),
		valStr(p.Address.City),
		valStr(p.Address.Country),
		p.Price,
		valStr(p.Offers.Bed),
		valStr(p.Offers.Shower),
		valStr(p.Offers.Occupants),
		valStr(p.Image),
		valStr(p.Discount),
	)
	return err
}

func (r *Repo) LogMiss(ctx context.Context, source string, status int, reason string) error {
	_, err := r.db.ExecContext(ctx, insertMissSQL, source, status, reason)
	return err
}

func (r *Repo) PruneProperties(ctx context.Context, keep []string) ([]string, error) {
	keepSet := make(map[string]struct{}, len(keep))
	for _, id := range keep {
		keepSet[id] = struct{}{}
	}

	rows, err := r.db.QueryContext(ctx, selectPropertyIDsSQL)
	if err != nil {
		return nil, err
	}
	var stale []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
		if _, ok := keepSet[id]; !ok {
			stale = append(stale, id)
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()
	if len(stale) == 0 {
		return nil, nil
	}

	args := make([]any, len(stale))
	for i, id := range stale {
		args[i] = id
	}
	q := deletePropertiesSQL + "(" + strings.TrimSuffix(strings.Repeat("?,", len(stale)), ",") + ")"
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return nil, err
	}
	return stale, nil
}

func (r *Repo) ListProperties(ctx context.Context) ([]domain.Property, error) {
	rows, err := r.db.QueryContext(ctx, listPropertiesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) GetProperty(ctx context.Context, id string) (domain.Property, error) {
	p, err := scanProperty(r.db.QueryRowContext(ctx, getPropertySQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Property{}, domain.ErrNotFound
	}
	return p, err
}

type scanner interface{ Scan(dest ...any) error }

func scanProperty(s scanner) (domain.Property, error) {
	var p domain.Property
	var catsJSON []byte
	var state, city, country, bed, shower, occupants, image, discount sql.NullString

	if err := s.Scan(
		&p.ID, &p.Position, &p.Name, &p.Rating, &catsJSON,
		&state, &city, &country,
		&p.Price,
		&bed, &shower, &occupants,
		&image, &discount,
	); err != nil {
		return domain.Property{}, err
	}
	// a malformed category column degrades to "no categories"
	if len(catsJSON) > 0 {
		_ = json.Unmarshal(catsJSON, &p.Categories)
	}
	p.Address = domain.Address{State: state.String, City: city.String, Country: country.String}
	p.Offers = domain.Offers{Bed: bed.String, Shower: shower.String, Occupants: occupants.String}
	p.Image = image.String
	p.Discount = discount.String
	return p, nil
}
