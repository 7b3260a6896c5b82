package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	"github.com/projetovox/vox-backend/internal/domain/errors"
	"github.com/projetovox/vox-backend/internal/domain/repositories"
	"github.com/projetovox/vox-backend/internal/handlers/dto"
	"github.com/projetovox/vox-backend/internal/services"
)

// UsuarioHandler lida com as consultas de usuários
type UsuarioHandler struct {
	usuarioService *services.UsuarioService
}

// NewUsuarioHandler cria um novo UsuarioHandler
func NewUsuarioHandler(usuarioService *services.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{
		usuarioService: usuarioService,
	}
}

// GetUsuario busca um usuário por ID
//
//	@Summary	Buscar usuário
//	@Tags		usuarios
//	@Produce	json
//	@Param		id	path		int	true	"ID do usuário"
//	@Success	200	{object}	dto.UsuarioResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/api/usuarios/{id} [get]
func (h *UsuarioHandler) GetUsuario(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	usuario, err := h.usuarioService.GetUsuario(c.Request.Context(), id)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUsuarioResponse(usuario))
}

// ListUsuarios lista usuários com paginação e filtro de role
//
//	@Summary	Listar usuários
//	@Tags		usuarios
//	@Produce	json
//	@Param		page	query		int		false	"Página (começa em 1)"
//	@Param		size	query		int		false	"Itens por página"
//	@Param		role	query		string	false	"USER ou ADMIN"
//	@Success	200		{object}	dto.PageResponse[dto.UsuarioResponse]
//	@Router		/api/usuarios [get]
func (h *UsuarioHandler) ListUsuarios(c *gin.Context) {
	page, err := queryInt(c, "page", 1, 1, 1<<20)
	if err != nil {
		dto.WriteError(c, err)
		return
	}
	size, err := queryInt(c, "size", 20, 1, 100)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	filters := repositories.UsuarioFilters{Page: page, PageSize: size}
	if raw := c.Query("role"); raw != "" {
		role := entities.Role(raw)
		if !role.IsValid() {
			dto.WriteError(c, errors.Validation(map[string]string{
				"role": dto.T(c, "validation.oneof", map[string]interface{}{"Param": "USER ADMIN"}),
			}))
			return
		}
		filters.Role = &role
	}

	usuarios, total, err := h.usuarioService.ListUsuarios(c.Request.Context(), filters)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPageResponse(dto.ToUsuarioResponses(usuarios), page, size, total))
}
