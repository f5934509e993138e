package pg

import (
	"context"

	"fleetid.org/internal/auth"
	"fleetid.org/internal/ids"
)

type permStore struct {
	s *Store
}

func (p *permStore) Ensure(ctx context.Context, perms []auth.Permission) error {
	return withRetry(ctx, func() error {
		tx, err := p.s.db.BeginTx(ctx, nil)
		if err != nil {
			return mapError(err)
		}
		defer func() { _ = tx.Rollback() }()

		for _, perm := range perms {
			id := perm.ID
			if id == "" {
				id = ids.New()
			}
			if _, err := tx.ExecContext(ctx, `
				insert into permissions (id, key, description, created_at)
				values ($1, $2, $3, now())
				on conflict (key) do nothing
			`, id, perm.Key, perm.Description); err != nil {
				return mapError(err)
			}
		}
		return tx.Commit()
	})
}

func (p *permStore) List(ctx context.Context) ([]auth.Permission, error) {
	return p.query(ctx, `
		select id, key, description, created_at
		from permissions
		order by key
	`)
}

// SetForRole replaces the role's permission set in one transaction, so
// concurrent authorization reads observe either the old or the new set.
func (p *permStore) SetForRole(ctx context.Context, roleID string, keys []string) error {
	return withRetry(ctx, func() error {
		tx, err := p.s.db.BeginTx(ctx, nil)
		if err != nil {
			return mapError(err)
		}
		defer func() { _ = tx.Rollback() }()

		var exists bool
		if err := tx.QueryRowContext(ctx, `select exists(select 1 from roles where id = $1)`, roleID).Scan(&exists); err != nil {
			return mapError(err)
		}
		if !exists {
			return auth.ErrNotFound
		}
		if _, err := tx.ExecContext(ctx, `delete from role_permissions where role_id = $1`, roleID); err != nil {
			return mapError(err)
		}
		for _, key := range keys {
			res, err := tx.ExecContext(ctx, `
				insert into role_permissions (role_id, permission_id)
				select $1, id from permissions where key = $2
			`, roleID, key)
			if err != nil {
				return mapError(err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			if n == 0 {
				return auth.ErrNotFound
			}
		}
		return tx.Commit()
	})
}

func (p *permStore) ForRole(ctx context.Context, roleID string) ([]auth.Permission, error) {
	return p.query(ctx, `
		select p.id, p.key, p.description, p.created_at
		from permissions p
		join role_permissions rp on rp.permission_id = p.id
		where rp.role_id = $1
		order by p.key
	`, roleID)
}

func (p *permStore) ForUser(ctx context.Context, userID string) ([]auth.Permission, error) {
	return p.query(ctx, `
		select distinct p.id, p.key, p.description, p.created_at
		from permissions p
		join role_permissions rp on rp.permission_id = p.id
		join user_roles ur on ur.role_id = rp.role_id
		where ur.user_id = $1
		order by p.key
	`, userID)
}

func (p *permStore) query(ctx context.Context, q string, args ...any) ([]auth.Permission, error) {
	var result []auth.Permission
	err := withRetry(ctx, func() error {
		rows, err := p.s.db.QueryContext(ctx, q, args...)
		if err != nil {
			return mapError(err)
		}
		defer rows.Close()

		result = result[:0]
		for rows.Next() {
			var perm auth.Permission
			if err := rows.Scan(&perm.ID, &perm.Key, &perm.Description, &perm.CreatedAt); err != nil {
				return err
			}
			result = append(result, perm)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
