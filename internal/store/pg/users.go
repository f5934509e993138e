package pg

import (
	"context"
	"strconv"
	"strings"

	"fleetid.org/internal/auth"
)

type userStore struct {
	s *Store
}

func (u *userStore) Create(ctx context.Context, user *auth.User) error {
	return withRetry(ctx, func() error {
		_, err := u.s.db.ExecContext(ctx, `
			insert into users (id, name, email, password_hash, status, created_at, updated_at)
			values ($1, $2, $3, $4, $5, $6, $7)
		`, user.ID, user.Name, user.Email, user.PasswordHash, user.Status, user.CreatedAt, user.UpdatedAt)
		return mapError(err)
	})
}

func (u *userStore) Find(ctx context.Context, id string) (*auth.User, error) {
	return u.findBy(ctx, `where id = $1`, id)
}

func (u *userStore) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	return u.findBy(ctx, `where email = $1`, email)
}

func (u *userStore) findBy(ctx context.Context, where string, arg any) (*auth.User, error) {
	var user auth.User
	err := withRetry(ctx, func() error {
		row := u.s.db.QueryRowContext(ctx, `
			select id, name, email, password_hash, status, created_at, updated_at
			from users `+where, arg)
		return mapError(row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
			&user.Status, &user.CreatedAt, &user.UpdatedAt))
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *userStore) List(ctx context.Context) ([]*auth.User, error) {
	var result []*auth.User
	err := withRetry(ctx, func() error {
		rows, err := u.s.db.QueryContext(ctx, `
			select id, name, email, password_hash, status, created_at, updated_at
			from users
			order by id
		`)
		if err != nil {
			return mapError(err)
		}
		defer rows.Close()

		result = result[:0]
		for rows.Next() {
			var user auth.User
			if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
				&user.Status, &user.CreatedAt, &user.UpdatedAt); err != nil {
				return err
			}
			result = append(result, &user)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (u *userStore) Update(ctx context.Context, id string, upd auth.UserUpdate) (*auth.User, error) {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)
	add := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, col+" = $"+strconv.Itoa(len(args)))
	}
	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Email != nil {
		add("email", *upd.Email)
	}
	if upd.Password != nil {
		add("password_hash", *upd.Password)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}
	if len(sets) == 0 {
		return u.Find(ctx, id)
	}
	sets = append(sets, "updated_at = now()")
	args = append(args, id)

	var user auth.User
	err := withRetry(ctx, func() error {
		row := u.s.db.QueryRowContext(ctx, `
			update users set `+strings.Join(sets, ", ")+`
			where id = $`+strconv.Itoa(len(args))+`
			returning id, name, email, password_hash, status, created_at, updated_at
		`, args...)
		return mapError(row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
			&user.Status, &user.CreatedAt, &user.UpdatedAt))
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *userStore) Delete(ctx context.Context, id string) error {
	return withRetry(ctx, func() error {
		res, err := u.s.db.ExecContext(ctx, `delete from users where id = $1`, id)
		if err != nil {
			// Sessions reference users with on delete restrict; the FK
			// violation reads as a conflict, not a missing record.
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
