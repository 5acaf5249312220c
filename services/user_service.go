package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"storefront/apperr"
	"storefront/models"
	"storefront/storage"
	"storefront/utils"
)

const bcryptCost = 10

type UserService struct {
	users     UserRepository
	store     ObjectStore
	jwtSecret string
	jwtTTL    time.Duration
}

func NewUserService(users UserRepository, store ObjectStore, jwtSecret string, jwtTTL time.Duration) *UserService {
	return &UserService{users: users, store: store, jwtSecret: jwtSecret, jwtTTL: jwtTTL}
}

func (s *UserService) Register(ctx context.Context, in models.SignupInput) (*models.User, error) {
	in.Email = normalizeEmail(in.Email)
	in.Mobile = strings.TrimSpace(in.Mobile)
	if err := models.Validate(in); err != nil {
		return nil, err
	}

	existing, err := s.users.FindByEmailOrMobile(ctx, in.Email, in.Mobile)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("User already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:      in.Name,
		Email:     in.Email,
		Mobile:    in.Mobile,
		DOB:       in.DOB,
		Password:  string(hashed),
		Addresses: []models.Address{},
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login returns a signed token for valid credentials. Unknown emails and
// wrong passwords fail with the same message.
func (s *UserService) Login(ctx context.Context, in models.LoginInput) (string, *models.User, error) {
	if in.Email == "" || in.Password == "" {
		return "", nil, apperr.Validation("Email and password are required")
	}
	user, err := s.users.FindByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, apperr.Unauthorized("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return "", nil, apperr.Unauthorized("Invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID.Hex(), s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, s.view(ctx, user), nil
}

func (s *UserService) Get(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}
	return s.view(ctx, user), nil
}

func (s *UserService) Update(ctx context.Context, id primitive.ObjectID, patch models.UserPatch) (*models.User, error) {
	if err := models.Validate(patch); err != nil {
		return nil, err
	}
	if patch.Email != nil {
		email := normalizeEmail(*patch.Email)
		patch.Email = &email
		other, err := s.users.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, apperr.Conflict("Email already in use")
		}
	}
	if patch.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		h := string(hashed)
		patch.Password = &h
	}

	user, err := s.users.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}
	return s.view(ctx, user), nil
}

func (s *UserService) AddAddress(ctx context.Context, id primitive.ObjectID, addr models.Address) (*models.User, error) {
	user, err := s.users.AddAddress(ctx, id, addr)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}
	return s.view(ctx, user), nil
}

// UploadAvatar stores the picture under a per-user key, replacing any
// previous one.
func (s *UserService) UploadAvatar(ctx context.Context, id primitive.ObjectID, image io.Reader) (*models.User, error) {
	if s.store == nil {
		return nil, fmt.Errorf("object storage is not configured")
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	body, err := storage.Recompress(image)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "Invalid image file", err)
	}
	key := storage.ProfilePictureKey(id.Hex())
	if err := s.store.Upload(ctx, key, body, storage.ImageContentType); err != nil {
		return nil, err
	}

	user, err = s.users.Update(ctx, id, models.UserPatch{ProfilePic: &key})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}
	return s.view(ctx, user), nil
}

// Authenticate resolves a bearer token to the current state of its user.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := utils.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired token")
	}
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired token")
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Unauthorized("User not found")
	}
	return user, nil
}

func (s *UserService) view(ctx context.Context, user *models.User) *models.User {
	out := *user
	out.ProfilePic = presign(ctx, s.store, user.ProfilePic)
	return &out
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
