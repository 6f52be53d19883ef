package usecase

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Danzskrtt/Health-Point-Management-System/internal/domain"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type UserUseCase interface {
	Register(username, password string) (*domain.User, error)
	Authenticate(username, password string) (*domain.AuthResponse, error)
	ValidateToken(token string) (int, bool)
}

type userUseCase struct {
	userRepo domain.UserRepository
	log      *logrus.Logger

	mu       sync.Mutex
	sessions map[string]int
}

func NewUserUseCase(repo domain.UserRepository, logger *logrus.Logger) UserUseCase {
	return &userUseCase{
		userRepo: repo,
		log:      logger,
		sessions: make(map[string]int),
	}
}

func (uc *userUseCase) Register(username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		uc.log.Warn("Use Case: Registration failed - empty username")
		return nil, errors.New("username cannot be empty")
	}
	if len(password) < minPasswordLength {
		uc.log.Warnf("Use Case: Registration failed for '%s' - password too short", username)
		return nil, fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to hash password for '%s': %v", username, err)
		return nil, fmt.Errorf("internal error processing password: %w", err)
	}

	createdUser, err := uc.userRepo.CreateUser(&domain.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
	})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create user '%s': %v", username, err)
		return nil, err
	}

	uc.log.Infof("Use Case: User registered successfully. ID: %d, Username: %s", createdUser.ID, createdUser.Username)
	return createdUser, nil
}

// Authenticate checks the password against the stored bcrypt hash and
// issues an opaque session token on success. A wrong username or password
// is a result, not an error.
func (uc *userUseCase) Authenticate(username, password string) (*domain.AuthResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return &domain.AuthResponse{Authenticated: false, ErrorMessage: "Invalid username or password"}, nil
	}

	user, err := uc.userRepo.GetUserByUsername(username)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			uc.log.Warnf("Use Case: Auth failed - user not found: %s", username)
			return &domain.AuthResponse{Authenticated: false, ErrorMessage: "Invalid username or password"}, nil
		}
		uc.log.Errorf("Use Case: Error retrieving user '%s' during auth: %v", username, err)
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			uc.log.Warnf("Use Case: Auth failed - incorrect password for user %s (ID: %d)", username, user.ID)
			return &domain.AuthResponse{Authenticated: false, ErrorMessage: "Invalid username or password"}, nil
		}
		uc.log.Errorf("Use Case: Error comparing password hash for user '%s': %v", username, err)
		return nil, fmt.Errorf("internal error during authentication: %w", err)
	}

	token := uuid.NewString()
	uc.mu.Lock()
	uc.sessions[token] = user.ID
	uc.mu.Unlock()
	uc.log.Infof("Use Case: Authentication successful for user %s (ID: %d)", username, user.ID)

	return &domain.AuthResponse{
		Authenticated: true,
		Token:         token,
		UserID:        user.ID,
	}, nil
}

// ValidateToken resolves a session token issued by Authenticate to its
// user id. Sessions live for the process lifetime, matching the desktop
// app's login-once-per-launch behavior.
func (uc *userUseCase) ValidateToken(token string) (int, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	userID, ok := uc.sessions[token]
	return userID, ok
}
