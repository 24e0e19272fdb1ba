package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"cricket-club-site/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultTokenTTL is how long an issued admin token stays valid. There is no refresh.
const DefaultTokenTTL = 24 * time.Hour

type AuthService struct {
	DB *gorm.DB

	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewAuthService(db *gorm.DB, secret string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &AuthService{DB: db, secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Principal is the identity carried by a verified token.
type Principal struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type tokenClaims struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type LoginResult struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// Login checks the credentials and issues a signed token.
func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, invalid("Username and password required")
	}

	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("🚫 [AUTH] Login for unknown user %q", username)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := CheckPassword(password, user.Password); err != nil {
		log.Printf("🚫 [AUTH] Wrong password for %q", username)
		return nil, ErrInvalidCredentials
	}

	token, err := s.issue(&user)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ [AUTH] %s logged in", user.Username)
	return &LoginResult{Token: token, User: user.Public()}, nil
}

func (s *AuthService) issue(user *models.User) (string, error) {
	issuedAt := s.now()
	claims := tokenClaims{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry. It never touches the database, so a
// token cannot be revoked before it expires.
func (s *AuthService) Verify(token string) (*Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrUnauthorized
	}

	var claims tokenClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return &Principal{ID: claims.ID, Username: claims.Username, Role: claims.Role}, nil
}

// CreateUser provisions an admin account.
func (s *AuthService) CreateUser(username, password, role string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, invalid("username is required")
	}
	if len(password) < 8 {
		return nil, invalid("password must be at least 8 characters")
	}
	if role == "" {
		role = models.RoleAdmin
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Username: username, Password: hash, Role: role}
	if err := s.DB.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user %s: %w", username, err)
	}
	return user, nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

func CheckPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
