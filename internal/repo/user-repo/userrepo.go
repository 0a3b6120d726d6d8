package userrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/coderr/internal/domain"
	"github.com/GlebRadaev/coderr/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const userColumns = `id, username, email, password_hash, first_name, last_name, role, is_staff, is_guest, created_at`

const profileSelect = `
	SELECT u.id, u.username, u.first_name, u.last_name, u.email, u.role, u.is_guest,
	       p.file, p.location, p.tel, p.description, p.working_hours, p.created_at
	FROM users u
	JOIN profiles p ON p.user_id = u.id
`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.FirstName,
		&user.LastName, &user.Role, &user.IsStaff, &user.IsGuest, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) findOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where
	user, err := scanUser(repo.db.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	return repo.findOne(ctx, "id = $1", id)
}

func (repo *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return repo.findOne(ctx, "LOWER(username) = LOWER($1)", username)
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return repo.findOne(ctx, "LOWER(email) = LOWER($1)", email)
}

// Create stores the account and its empty profile together.
func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	userQuery := `
		INSERT INTO users (username, email, password_hash, first_name, last_name, role, is_staff, is_guest)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	profileQuery := `INSERT INTO profiles (user_id) VALUES ($1)`

	err := repo.txManager.Begin(ctx, func(ctx context.Context) error {
		err := repo.db.QueryRow(ctx, userQuery, user.Username, user.Email, user.PasswordHash, user.FirstName,
			user.LastName, user.Role, user.IsStaff, user.IsGuest).Scan(&user.ID, &user.CreatedAt)
		if err != nil {
			return err
		}
		_, err = repo.db.Exec(ctx, profileQuery, user.ID)
		return err
	})
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, fmt.Errorf("user %q: %w", user.Username, domain.ErrConflict)
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// PromoteStaff grants staff rights; it reports false when no such user exists.
func (repo *Repository) PromoteStaff(ctx context.Context, username string) (bool, error) {
	tag, err := repo.db.Exec(ctx, `UPDATE users SET is_staff = TRUE WHERE username = $1`, username)
	if err != nil {
		zap.L().Error("can't promote user", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(&p.UserID, &p.Username, &p.FirstName, &p.LastName, &p.Email, &p.Type, &p.IsGuest,
		&p.File, &p.Location, &p.Tel, &p.Description, &p.WorkingHours, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (repo *Repository) GetProfile(ctx context.Context, userID int) (*domain.Profile, error) {
	profile, err := scanProfile(repo.db.QueryRow(ctx, profileSelect+` WHERE u.id = $1`, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get profile", zap.Error(err))
		return nil, err
	}
	return profile, nil
}

func (repo *Repository) ListProfiles(ctx context.Context, role domain.Role) ([]domain.Profile, error) {
	rows, err := repo.db.Query(ctx, profileSelect+` WHERE u.role = $1 ORDER BY u.id`, role)
	if err != nil {
		zap.L().Error("can't list profiles", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	profiles := make([]domain.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			zap.L().Error("can't scan profile row", zap.Error(err))
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

// UpdateProfile applies the non-nil fields of upd and returns the stored profile.
func (repo *Repository) UpdateProfile(ctx context.Context, userID int, upd domain.ProfileUpdate) (*domain.Profile, error) {
	userQuery := `
		UPDATE users
		SET first_name = COALESCE($2, first_name),
		    last_name = COALESCE($3, last_name),
		    email = COALESCE($4, email)
		WHERE id = $1
	`
	profileQuery := `
		UPDATE profiles
		SET file = COALESCE($2, file),
		    location = COALESCE($3, location),
		    tel = COALESCE($4, tel),
		    description = COALESCE($5, description),
		    working_hours = COALESCE($6, working_hours)
		WHERE user_id = $1
	`

	var profile *domain.Profile
	err := repo.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := repo.db.Exec(ctx, userQuery, userID, upd.FirstName, upd.LastName, upd.Email)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		if _, err = repo.db.Exec(ctx, profileQuery, userID, upd.File, upd.Location, upd.Tel,
			upd.Description, upd.WorkingHours); err != nil {
			return err
		}
		profile, err = scanProfile(repo.db.QueryRow(ctx, profileSelect+` WHERE u.id = $1`, userID))
		return err
	})
	switch {
	case err == nil:
		return profile, nil
	case errors.Is(err, domain.ErrNotFound):
		return nil, err
	case pg.IsUniqueViolation(err):
		return nil, fmt.Errorf("email: %w", domain.ErrConflict)
	}
	zap.L().Error("can't update profile", zap.Error(err))
	return nil, err
}
