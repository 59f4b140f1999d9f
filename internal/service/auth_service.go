package service

import (
	"context"
	"strings"
	"time"

	"github.com/Albertgui/teg-backend/internal/config"
	"github.com/Albertgui/teg-backend/internal/dto"
	"github.com/Albertgui/teg-backend/internal/model"
	"github.com/Albertgui/teg-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginData, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.UsuarioResponse, error)
	// EditUser only touches the acting user's own row.
	EditUser(ctx context.Context, actorID, id uint, req dto.EditUserRequest) (*dto.UsuarioResponse, error)
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginData, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, ErrCredencialesInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Pass)); err != nil {
		return nil, ErrCredencialesInvalidas
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginData{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: s.cfg.JWTExpirationHours * 3600,
		User:      dto.UsuarioResponse{ID: user.ID, Username: user.Username},
	}, nil
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Pass), 12)
	if err != nil {
		return nil, err
	}
	user := &model.Usuario{
		Username:     strings.ToLower(strings.TrimSpace(req.Username)),
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return &dto.UsuarioResponse{ID: user.ID, Username: user.Username}, nil
}

func (s *authService) EditUser(ctx context.Context, actorID, id uint, req dto.EditUserRequest) (*dto.UsuarioResponse, error) {
	if actorID != id {
		return nil, repository.ErrNoEncontrado
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Username != nil {
		user.Username = strings.ToLower(strings.TrimSpace(*req.Username))
	}
	if req.Pass != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Pass), 12)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return &dto.UsuarioResponse{ID: user.ID, Username: user.Username}, nil
}

func (s *authService) generateToken(user *model.Usuario) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":      now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
