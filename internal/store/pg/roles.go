package pg

import (
	"context"

	"fleetid.org/internal/auth"
)

type roleStore struct {
	s *Store
}

func (r *roleStore) Create(ctx context.Context, role *auth.Role) error {
	return withRetry(ctx, func() error {
		_, err := r.s.db.ExecContext(ctx, `
			insert into roles (id, name, description, created_at, updated_at)
			values ($1, $2, $3, $4, $5)
		`, role.ID, role.Name, role.Description, role.CreatedAt, role.UpdatedAt)
		return mapError(err)
	})
}

func (r *roleStore) Find(ctx context.Context, id string) (*auth.Role, error) {
	return r.findBy(ctx, `where id = $1`, id)
}

func (r *roleStore) FindByName(ctx context.Context, name string) (*auth.Role, error) {
	return r.findBy(ctx, `where name = $1`, name)
}

func (r *roleStore) findBy(ctx context.Context, where string, arg any) (*auth.Role, error) {
	var role auth.Role
	err := withRetry(ctx, func() error {
		row := r.s.db.QueryRowContext(ctx, `
			select id, name, description, created_at, updated_at
			from roles `+where, arg)
		return mapError(row.Scan(&role.ID, &role.Name, &role.Description, &role.CreatedAt, &role.UpdatedAt))
	})
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleStore) List(ctx context.Context) ([]*auth.Role, error) {
	var result []*auth.Role
	err := withRetry(ctx, func() error {
		rows, err := r.s.db.QueryContext(ctx, `
			select id, name, description, created_at, updated_at
			from roles
			order by name
		`)
		if err != nil {
			return mapError(err)
		}
		defer rows.Close()

		result = result[:0]
		for rows.Next() {
			var role auth.Role
			if err := rows.Scan(&role.ID, &role.Name, &role.Description, &role.CreatedAt, &role.UpdatedAt); err != nil {
				return err
			}
			result = append(result, &role)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *roleStore) Update(ctx context.Context, role *auth.Role) error {
	return withRetry(ctx, func() error {
		res, err := r.s.db.ExecContext(ctx, `
			update roles set name = $1, description = $2, updated_at = $3
			where id = $4
		`, role.Name, role.Description, role.UpdatedAt, role.ID)
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
		return nil
	})
}

func (r *roleStore) Delete(ctx context.Context, id string) error {
	return withRetry(ctx, func() error {
		res, err := r.s.db.ExecContext(ctx, `delete from roles where id = $1`, id)
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
		return nil
	})
}

func (r *roleStore) Assign(ctx context.Context, assignment auth.Assignment) error {
	return withRetry(ctx, func() error {
		_, err := r.s.db.ExecContext(ctx, `
			insert into user_roles (user_id, role_id, created_at)
			values ($1, $2, $3)
			on conflict (user_id, role_id) do nothing
		`, assignment.UserID, assignment.RoleID, assignment.CreatedAt)
		return mapError(err)
	})
}

func (r *roleStore) Unassign(ctx context.Context, userID, roleID string) error {
	return withRetry(ctx, func() error {
		res, err := r.s.db.ExecContext(ctx, `
			delete from user_roles where user_id = $1 and role_id = $2
		`, userID, roleID)
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
		return nil
	})
}

func (r *roleStore) Assignments(ctx context.Context, userID string) ([]auth.Assignment, error) {
	var result []auth.Assignment
	err := withRetry(ctx, func() error {
		rows, err := r.s.db.QueryContext(ctx, `
			select user_id, role_id, created_at
			from user_roles
			where user_id = $1
			order by role_id
		`, userID)
		if err != nil {
			return mapError(err)
		}
		defer rows.Close()

		result = result[:0]
		for rows.Next() {
			var a auth.Assignment
			if err := rows.Scan(&a.UserID, &a.RoleID, &a.CreatedAt); err != nil {
				return err
			}
			result = append(result, a)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *roleStore) RolesForUser(ctx context.Context, userID string) ([]auth.Role, error) {
	var result []auth.Role
	err := withRetry(ctx, func() error {
		rows, err := r.s.db.QueryContext(ctx, `
			select r.id, r.name, r.description, r.created_at, r.updated_at
			from roles r
			join user_roles ur on ur.role_id = r.id
			where ur.user_id = $1
			order by r.name
		`, userID)
		if err != nil {
			return mapError(err)
		}
		defer rows.Close()

		result = result[:0]
		for rows.Next() {
			var role auth.Role
			if err := rows.Scan(&role.ID, &role.Name, &role.Description, &role.CreatedAt, &role.UpdatedAt); err != nil {
				return err
			}
			result = append(result, role)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
