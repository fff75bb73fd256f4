package postgres

// Package postgres provides a pgx-backed period store. It maps stored-period
// snapshots onto three tables (periods, period_rows, period_overrides) and
// keeps each save/delete transactional so a snapshot is replaced whole or
// not at all.

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/balanza-dev/balanza/internal/errs"
	tb "github.com/balanza-dev/balanza/internal/trialbalance"
)

const schema = `
create table if not exists periods (
  period_key text primary key,
  year integer not null,
  month integer not null,
  filename text,
  exchange_rate double precision not null,
  uploaded_at timestamptz not null
);

create table if not exists period_rows (
  period_key text not null references periods(period_key) on delete cascade,
  row_id text not null,
  sort_order integer not null,
  code text not null,
  name text,
  opening_debit double precision not null,
  opening_credit double precision not null,
  period_debit double precision not null,
  period_credit double precision not null,
  closing_debit double precision not null,
  closing_credit double precision not null,
  exclude_from_analysis boolean not null default false,
  unique (period_key, row_id)
);

create table if not exists period_overrides (
  period_key text not null references periods(period_key) on delete cascade,
  row_key text not null,
  target_code text,
  target_name text,
  "group" text,
  subgroup text,
  unique (period_key, row_key)
);
`

// Store holds a pgx connection pool. All methods are safe for concurrent use.
type Store struct {
	pool *pgxpool.Pool
}

// Open establishes a pgx pool using the provided connection string and makes
// sure the period tables exist.
func Open(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, err
	}
	return &Store{pool: pool}, nil
}

// Close releases the underlying pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ready pings the pool to verify connectivity.
func (s *Store) Ready(ctx context.Context) error { return s.pool.Ping(ctx) }

// SavePeriod upserts the period header and replaces its rows and overrides
// in one transaction.
func (s *Store) SavePeriod(ctx context.Context, p tb.StoredPeriod) error {
	if p.Year <= 0 || p.Month < 1 || p.Month > 12 {
		return errs.ErrInvalid
	}
	key := tb.PeriodKey(p.Year, p.Month)
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
		insert into periods (period_key, year, month, filename, exchange_rate, uploaded_at)
		values ($1,$2,$3,$4,$5,$6)
		on conflict (period_key) do update set
		  filename = excluded.filename,
		  exchange_rate = excluded.exchange_rate,
		  uploaded_at = excluded.uploaded_at
	`, key, p.Year, p.Month, p.Filename, p.ExchangeRate, p.UploadedAt); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `delete from period_rows where period_key = $1`, key); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `delete from period_overrides where period_key = $1`, key); err != nil {
		return err
	}
	for i, r := range p.Rows {
		if _, err := tx.Exec(ctx, `
			insert into period_rows (
			  period_key, row_id, sort_order, code, name,
			  opening_debit, opening_credit, period_debit, period_credit,
			  closing_debit, closing_credit, exclude_from_analysis
			) values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		`, key, r.ID, i, r.Code, r.Name,
			r.OpeningDebit, r.OpeningCredit, r.PeriodDebit, r.PeriodCredit,
			r.ClosingDebit, r.ClosingCredit, r.ExcludeFromAnalysis); err != nil {
			return err
		}
	}
	for rowKey, o := range p.Overrides {
		if o.IsZero() {
			continue
		}
		if _, err := tx.Exec(ctx, `
			insert into period_overrides (period_key, row_key, target_code, target_name, "group", subgroup)
			values ($1,$2,$3,$4,$5,$6)
		`, key, rowKey, o.TargetCode, o.TargetName, string(o.Group), string(o.Subgroup)); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// LoadPeriod returns the snapshot for year-month or errs.ErrNotFound.
func (s *Store) LoadPeriod(ctx context.Context, year, month int) (tb.StoredPeriod, error) {
	key := tb.PeriodKey(year, month)
	var p tb.StoredPeriod
	err := s.pool.QueryRow(ctx, `
		select year, month, coalesce(filename, ''), exchange_rate, uploaded_at
		from periods where period_key = $1
	`, key).Scan(&p.Year, &p.Month, &p.Filename, &p.ExchangeRate, &p.UploadedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return tb.StoredPeriod{}, errs.ErrNotFound
	}
	if err != nil {
		return tb.StoredPeriod{}, err
	}

	rows, err := s.pool.Query(ctx, `
		select row_id, code, coalesce(name, ''),
		       opening_debit, opening_credit, period_debit, period_credit,
		       closing_debit, closing_credit, exclude_from_analysis
		from period_rows
		where period_key = $1
		order by sort_order asc
	`, key)
	if err != nil {
		return tb.StoredPeriod{}, err
	}
	defer rows.Close()
	p.Rows = make([]tb.Row, 0)
	for rows.Next() {
		var r tb.Row
		if err := rows.Scan(&r.ID, &r.Code, &r.Name,
			&r.OpeningDebit, &r.OpeningCredit, &r.PeriodDebit, &r.PeriodCredit,
			&r.ClosingDebit, &r.ClosingCredit, &r.ExcludeFromAnalysis); err != nil {
			return tb.StoredPeriod{}, err
		}
		p.Rows = append(p.Rows, r)
	}
	if err := rows.Err(); err != nil {
		return tb.StoredPeriod{}, err
	}

	oRows, err := s.pool.Query(ctx, `
		select row_key, coalesce(target_code, ''), coalesce(target_name, ''),
		       coalesce("group", ''), coalesce(subgroup, '')
		from period_overrides
		where period_key = $1
	`, key)
	if err != nil {
		return tb.StoredPeriod{}, err
	}
	defer oRows.Close()
	p.Overrides = make(map[string]tb.Override)
	for oRows.Next() {
		var rowKey, group, subgroup string
		var o tb.Override
		if err := oRows.Scan(&rowKey, &o.TargetCode, &o.TargetName, &group, &subgroup); err != nil {
			return tb.StoredPeriod{}, err
		}
		o.Group = tb.Group(group)
		o.Subgroup = tb.Subgroup(subgroup)
		p.Overrides[rowKey] = o
	}
	return p, oRows.Err()
}

// ListPeriods returns summaries of every stored period, newest first.
func (s *Store) ListPeriods(ctx context.Context) ([]tb.PeriodSummary, error) {
	rows, err := s.pool.Query(ctx, `
		select p.year, p.month, coalesce(p.filename, ''), p.exchange_rate, p.uploaded_at,
		       (select count(1) from period_rows r where r.period_key = p.period_key)
		from periods p
		order by p.year desc, p.month desc
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]tb.PeriodSummary, 0)
	for rows.Next() {
		var ps tb.PeriodSummary
		if err := rows.Scan(&ps.Year, &ps.Month, &ps.Filename, &ps.ExchangeRate, &ps.UploadedAt, &ps.RowCount); err != nil {
			return nil, err
		}
		out = append(out, ps)
	}
	return out, rows.Err()
}

// ListUpTo returns the stored periods of the given year with month <= the
// cutoff, ascending, with rows and overrides populated.
func (s *Store) ListUpTo(ctx context.Context, year, month int) ([]tb.StoredPeriod, error) {
	rows, err := s.pool.Query(ctx, `
		select month from periods where year = $1 and month <= $2 order by month asc
	`, year, month)
	if err != nil {
		return nil, err
	}
	months := make([]int, 0)
	for rows.Next() {
		var m int
		if err := rows.Scan(&m); err != nil {
			rows.Close()
			return nil, err
		}
		months = append(months, m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	out := make([]tb.StoredPeriod, 0, len(months))
	for _, m := range months {
		p, err := s.LoadPeriod(ctx, year, m)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// DeletePeriod removes a snapshot and reports whether it existed. Row and
// override rows go with it via the cascading foreign keys.
func (s *Store) DeletePeriod(ctx context.Context, year, month int) (bool, error) {
	ct, err := s.pool.Exec(ctx, `delete from periods where period_key = $1`, tb.PeriodKey(year, month))
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}
