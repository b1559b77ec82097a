package service

import (
	"context"
	"errors"
	"time"

	"fitlife/fitness-backend/internal/domain"
	"fitlife/fitness-backend/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrUserAlreadyExists    = errors.New("user with this email already exists")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid email or password")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
)

// RegisterInput carries the profile fields collected at registration.
type RegisterInput struct {
	FullName         string
	Email            string
	Password         string
	Role             domain.Role
	Age              int
	Gender           string
	Weight           float64
	Height           float64
	FitnessGoal      domain.FitnessGoal
	DailyCalorieGoal int
	DailyWaterGoal   int
	Phone            string
	Address          domain.Address
	ProfilePicURL    string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (token string, user *domain.User, err error)
	Login(ctx context.Context, email, password string) (token string, user *domain.User, err error)
	GetJWTSecret() string
}

// --- Service Implementation ---

// authService implements the AuthService interface.
type authService struct {
	userRepo      repository.UserRepository
	assigner      TrainerAssigner
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo repository.UserRepository, assigner TrainerAssigner, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = time.Hour * 1
	}
	return &authService{
		userRepo:      userRepo,
		assigner:      assigner,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register handles new user registration. Regular users get a trainer
// picked by the assignment policy; admins do not.
func (s *authService) Register(ctx context.Context, input RegisterInput) (string, *domain.User, error) {
	if input.FullName == "" || input.Email == "" || input.Password == "" || input.Role == "" {
		return "", nil, errors.New("name, email, password, and role cannot be empty")
	}

	// Check if the email is already taken
	_, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return "", nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, ErrHashingFailed
	}

	user := &domain.User{
		FullName:         input.FullName,
		Email:            input.Email,
		PasswordHash:     string(hashedPassword),
		Role:             input.Role,
		Age:              input.Age,
		Gender:           input.Gender,
		Weight:           input.Weight,
		Height:           input.Height,
		FitnessGoal:      input.FitnessGoal,
		DailyCalorieGoal: input.DailyCalorieGoal,
		DailyWaterGoal:   input.DailyWaterGoal,
		Phone:            input.Phone,
		Address:          input.Address,
		ProfilePicURL:    input.ProfilePicURL,
	}
	if user.DailyCalorieGoal == 0 {
		user.DailyCalorieGoal = 2200
	}
	if user.DailyWaterGoal == 0 {
		user.DailyWaterGoal = domain.MaxWaterGlasses
	}

	if user.Role == domain.RoleUser {
		trainer, err := s.assigner.Assign(ctx, user)
		if err == nil {
			user.TrainerID = &trainer.ID
		} else if !errors.Is(err, ErrTrainerNotFound) {
			return "", nil, err
		}
		// No trainers registered yet is fine; the user stays unassigned.
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", nil, ErrUserAlreadyExists
		}
		return "", nil, err
	}
	user.ID = userID

	token, err := s.generateJWT(user)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	user.PasswordHash = ""
	return token, user, nil
}

// Login handles user authentication and JWT generation.
func (s *authService) Login(ctx context.Context, email, password string) (token string, user *domain.User, err error) {
	if email == "" || password == "" {
		err = errors.New("email and password cannot be empty")
		return
	}

	user, err = s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			err = ErrAuthenticationFailed // User not found maps to auth failure
			return
		}
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		err = ErrAuthenticationFailed
		user = nil
		return
	}

	token, err = s.generateJWT(user)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	user.PasswordHash = ""
	return token, user, nil
}

// --- JWT Helper ---

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	UserID string      `json:"uid"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// generateJWT creates a new JWT token for the given user.
func (s *authService) generateJWT(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &jwtClaims{
		UserID: user.ID.Hex(),
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "fitness-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}
	return signedToken, nil
}

// GetJWTSecret returns the JWT secret for middleware authentication
func (s *authService) GetJWTSecret() string {
	return s.jwtSecret
}
