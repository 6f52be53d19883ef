package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Danzskrtt/Health-Point-Management-System/internal/domain"
	"github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

type sqliteUserRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewSQLiteUserRepository(db *sql.DB, logger *logrus.Logger) domain.UserRepository {
	return &sqliteUserRepository{
		db:  db,
		log: logger,
	}
}

func (r *sqliteUserRepository) CreateUser(user *domain.User) (*domain.User, error) {
	query := `INSERT INTO users (username, password_hash) VALUES (?, ?)`

	result, err := r.db.Exec(query, user.Username, user.PasswordHash)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			r.log.Warnf("Attempted to create user with duplicate username: %s", user.Username)
			return nil, fmt.Errorf("user with username '%s' already exists", user.Username)
		}
		r.log.Errorf("Failed to create user '%s': %v", user.Username, err)
		return nil, fmt.Errorf("could not create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.log.Errorf("Failed to read new user id for '%s': %v", user.Username, err)
		return nil, fmt.Errorf("could not read new user id: %w", err)
	}
	user.ID = int(id)

	r.log.Infof("User created successfully with ID: %d, Username: %s", user.ID, user.Username)
	return user, nil
}

func (r *sqliteUserRepository) GetUserByUsername(username string) (*domain.User, error) {
	query := `SELECT id, username, password_hash FROM users WHERE username = ?`

	user := &domain.User{}
	err := r.db.QueryRow(query, username).Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("User '%s' not found", username)
			return nil, fmt.Errorf("user '%s' not found", username)
		}
		r.log.Errorf("Failed to get user '%s': %v", username, err)
		return nil, fmt.Errorf("could not get user: %w", err)
	}

	return user, nil
}
