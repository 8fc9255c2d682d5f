package repos

import (
	"github.com/jmoiron/sqlx"

	"harvesthub/internal/domain"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

const userCols = `id, username, email, password_hash, full_name, role, created_at, updated_at`

func (r *UserRepo) ByUsername(username string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE LOWER(username)=LOWER(?)`, username)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id int64) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Insert creates a user with the fixed self-service role.
func (r *UserRepo) Insert(username, email, hash, fullName string) (*domain.User, error) {
	res, err := r.DB.Exec(`
	  INSERT INTO users(username, email, password_hash, full_name, role)
	  VALUES(?,?,?,?,'user')
	`, username, email, hash, fullName)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.ByID(id)
}

func (r *UserRepo) List() ([]domain.User, error) {
	out := []domain.User{}
	err := r.DB.Select(&out, `SELECT `+userCols+` FROM users ORDER BY id ASC`)
	return out, err
}

// BindSession stores an opaque bearer token for a user.
func (r *UserRepo) BindSession(token string, userID int64) error {
	_, err := r.DB.Exec(`INSERT INTO sessions(token, user_id, last_seen)
	                      VALUES(?,?,CURRENT_TIMESTAMP)
	                      ON CONFLICT(token) DO UPDATE SET user_id=excluded.user_id, last_seen=CURRENT_TIMESTAMP`, token, userID)
	return err
}

// SessionUser resolves a bearer token to its user.
func (r *UserRepo) SessionUser(token string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `
	  SELECT u.id, u.username, u.email, u.password_hash, u.full_name, u.role, u.created_at, u.updated_at
	  FROM sessions s
	  JOIN users u ON u.id = s.user_id
	  WHERE s.token = ?`, token)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) UnbindSession(token string) error {
	_, err := r.DB.Exec(`DELETE FROM sessions WHERE token = ?`, token)
	return err
}
