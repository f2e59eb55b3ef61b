package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"google.golang.org/api/idtoken"

	"wander/internal/models/db_models"
	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/internal/repositories"
	"wander/pkg/utils"
)

type AccountService interface {
	SignUp(ctx context.Context, req request_models.SignUpRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error)
	GoogleAuth(ctx context.Context, req request_models.GoogleAuthRequest) (*response_models.AuthResponse, error)
	GetProfile(ctx context.Context, userID string) (*response_models.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req request_models.UpdateProfileRequest) (*response_models.UserResponse, error)
}

type accountService struct {
	users repositories.UserRepository
}

func NewAccountService(users repositories.UserRepository) AccountService {
	return &accountService{users: users}
}

func (s *accountService) SignUp(ctx context.Context, req request_models.SignUpRequest) (*response_models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)
	if email == "" || username == "" || len(req.Password) < 6 {
		return nil, utils.ErrInvalidInput
	}

	if existing, err := s.users.FindByEmail(ctx, email); err != nil {
		return nil, utils.ErrDatabaseError
	} else if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}
	if existing, err := s.users.FindByUsername(ctx, username); err != nil {
		return nil, utils.ErrDatabaseError
	} else if existing != nil {
		return nil, utils.ErrUsernameTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &db_models.User{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		log.Printf("account: signup insert failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return s.authResponse(ctx, user, "account created")
}

func (s *accountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil || user.PasswordHash == "" {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return s.authResponse(ctx, user, "login successful")
}

// GoogleAuth verifies the ID token, then matches by Google subject, then by
// email (linking the Google identity to an existing account), and finally
// creates a fresh account.
func (s *accountService) GoogleAuth(ctx context.Context, req request_models.GoogleAuthRequest) (*response_models.AuthResponse, error) {
	payload, err := idtoken.Validate(ctx, req.Token, os.Getenv("GOOGLE_CLIENT_ID"))
	if err != nil {
		return nil, utils.ErrInvalidGoogleToken
	}

	googleID := payload.Subject
	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	if email == "" {
		return nil, utils.ErrInvalidGoogleToken
	}
	email = strings.ToLower(email)

	user, err := s.users.FindByGoogleID(ctx, googleID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if user == nil {
		user, err = s.users.FindByEmail(ctx, email)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if user != nil {
			user.GoogleID = googleID
			if user.ProfilePicture == "" {
				user.ProfilePicture = picture
			}
			if err := s.users.Update(ctx, user); err != nil {
				return nil, utils.ErrDatabaseError
			}
		}
	}

	if user == nil {
		user = &db_models.User{
			Email:          email,
			Username:       s.availableUsername(ctx, name, email),
			GoogleID:       googleID,
			ProfilePicture: picture,
		}
		if err := s.users.Insert(ctx, user); err != nil {
			log.Printf("account: google signup insert failed: %v", err)
			return nil, utils.ErrDatabaseError
		}
	}

	return s.authResponse(ctx, user, "login successful")
}

func (s *accountService) GetProfile(ctx context.Context, userID string) (*response_models.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return s.userResponse(ctx, user), nil
}

func (s *accountService) UpdateProfile(ctx context.Context, userID string, req request_models.UpdateProfileRequest) (*response_models.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username == "" {
			return nil, utils.ErrInvalidInput
		}
		if username != user.Username {
			existing, err := s.users.FindByUsername(ctx, username)
			if err != nil {
				return nil, utils.ErrDatabaseError
			}
			if existing != nil {
				return nil, utils.ErrUsernameTaken
			}
			user.Username = username
		}
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email == "" {
			return nil, utils.ErrInvalidInput
		}
		if email != user.Email {
			existing, err := s.users.FindByEmail(ctx, email)
			if err != nil {
				return nil, utils.ErrDatabaseError
			}
			if existing != nil {
				return nil, utils.ErrEmailAlreadyExists
			}
			user.Email = email
		}
	}
	if req.Password != nil {
		if len(*req.Password) < 6 {
			return nil, utils.ErrInvalidInput
		}
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if req.ProfilePicture != nil {
		user.ProfilePicture = *req.ProfilePicture
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.userResponse(ctx, user), nil
}

func (s *accountService) authResponse(ctx context.Context, user *db_models.User, message string) (*response_models.AuthResponse, error) {
	token, err := utils.CreateToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &response_models.AuthResponse{
		Message:     message,
		AccessToken: token,
		User:        *s.userResponse(ctx, user),
	}, nil
}

func (s *accountService) userResponse(ctx context.Context, user *db_models.User) *response_models.UserResponse {
	count, err := s.users.CountTrips(ctx, user.ID.String())
	if err != nil {
		count = 0
	}
	return &response_models.UserResponse{
		ID:             user.ID.String(),
		Email:          user.Email,
		Username:       user.Username,
		ProfilePicture: user.ProfilePicture,
		CreatedAt:      utils.FormatUnix(user.CreatedAt),
		TripCount:      int(count),
	}
}

// availableUsername derives a username from the Google display name or the
// email local part, suffixing digits until it is free.
func (s *accountService) availableUsername(ctx context.Context, name, email string) string {
	base := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", ""))
	if base == "" {
		base = strings.SplitN(email, "@", 2)[0]
	}
	if base == "" {
		base = "traveler"
	}

	candidate := base
	for i := 1; i <= 20; i++ {
		existing, err := s.users.FindByUsername(ctx, candidate)
		if err != nil || existing == nil {
			return candidate
		}
		candidate = fmt.Sprintf("%s%d", base, i)
	}
	return fmt.Sprintf("%s%d", base, time.Now().Unix())
}
