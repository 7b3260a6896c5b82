package services

import (
	"context"
	stderrors "errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	"github.com/projetovox/vox-backend/internal/domain/errors"
	"github.com/projetovox/vox-backend/internal/domain/ports"
	"github.com/projetovox/vox-backend/internal/domain/repositories"
	"github.com/projetovox/vox-backend/internal/domain/valueobjects"
)

// AuthService cuida do registro, login e resolução do usuário de um token
type AuthService struct {
	usuarioRepo repositories.UsuarioRepository
	tokens      ports.TokenService
	uow         ports.UnitOfWork
	logger      ports.Logger
	hashCost    int
}

// AuthOption configura o AuthService
type AuthOption func(*AuthService)

// WithHashCost altera o custo do bcrypt (testes usam bcrypt.MinCost)
func WithHashCost(cost int) AuthOption {
	return func(s *AuthService) {
		s.hashCost = cost
	}
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	usuarioRepo repositories.UsuarioRepository,
	tokens ports.TokenService,
	uow ports.UnitOfWork,
	logger ports.Logger,
	opts ...AuthOption,
) *AuthService {
	s := &AuthService{
		usuarioRepo: usuarioRepo,
		tokens:      tokens,
		uow:         uow,
		logger:      logger,
		hashCost:    bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterInput representa os dados para registrar um usuário
type RegisterInput struct {
	Nome     string
	Telefone string
	Email    string
	Password string
}

// Register cria um usuário com role USER. O email precisa estar livre.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entities.Usuario, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	s.logger.Info("registering usuario", "email", email.String())

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usuario := &entities.Usuario{
		Nome:         input.Nome,
		Telefone:     input.Telefone,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entities.RoleUser,
	}
	if err := usuario.Validate(); err != nil {
		return nil, err
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.usuarioRepo.FindByEmail(txCtx, email.String())
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.ErrEmailAlreadyExists
		}
		return s.usuarioRepo.Create(txCtx, usuario)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("usuario registered", "usuario_id", usuario.ID)
	return usuario, nil
}

// Login confere as credenciais e emite um token cujo subject é o email
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	usuario, err := s.usuarioRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if usuario == nil {
		s.logger.Warn("login with unknown email")
		return "", errors.ErrUsuarioNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(password)); err != nil {
		if stderrors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.logger.Warn("login with invalid password", "usuario_id", usuario.ID)
			return "", errors.ErrInvalidCredentials
		}
		return "", err
	}

	token, err := s.tokens.Issue(usuario.Email.String())
	if err != nil {
		return "", err
	}

	s.logger.Info("usuario logged in", "usuario_id", usuario.ID)
	return token, nil
}

// Authenticate resolve o usuário dono de um token. Qualquer falha é UNAUTHORIZED.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*entities.Usuario, error) {
	subject, err := s.tokens.Verify(token)
	if err != nil {
		return nil, errors.ErrUnauthorized.Wrap(err)
	}

	usuario, err := s.usuarioRepo.FindByEmail(ctx, subject)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, errors.ErrUnauthorized
	}
	return usuario, nil
}
