package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projetovox/vox-backend/internal/domain/errors"
	"github.com/projetovox/vox-backend/internal/handlers/dto"
	"github.com/projetovox/vox-backend/internal/handlers/middleware"
	"github.com/projetovox/vox-backend/internal/services"
)

const minSenhaLen = 6

// AuthHandler lida com registro, login e usuário corrente
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register registra um novo usuário
//
//	@Summary	Registrar usuário
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.RegisterRequest	true	"Dados do usuário"
//	@Success	201		{object}	dto.RegisterResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteError(c, err)
		return
	}
	if len(req.Secret()) < minSenhaLen {
		dto.WriteError(c, errors.Validation(map[string]string{
			"senha": dto.T(c, "validation.min", map[string]interface{}{"Param": minSenhaLen}),
		}))
		return
	}

	usuario, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Nome:     req.Nome,
		Telefone: req.Telefone,
		Email:    req.Email,
		Password: req.Secret(),
	})
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Success: true,
		Message: dto.T(c, "auth.registered"),
		UserID:  usuario.ID,
	})
}

// Login autentica e devolve um token Bearer
//
//	@Summary	Login
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.LoginRequest	true	"Credenciais"
//	@Success	200		{object}	dto.TokenResponse
//	@Failure	403		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteError(c, err)
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Login(), req.Secret())
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token, Tipo: dto.TipoToken})
}

// Me devolve o usuário do token Bearer
//
//	@Summary	Usuário autenticado
//	@Tags		auth
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.UsuarioResponse
//	@Failure	403	{object}	dto.ErrorResponse
//	@Router		/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	usuario, ok := middleware.Principal(c)
	if !ok {
		dto.WriteError(c, errors.ErrUnauthorized)
		return
	}

	c.JSON(http.StatusOK, dto.ToUsuarioResponse(usuario))
}
