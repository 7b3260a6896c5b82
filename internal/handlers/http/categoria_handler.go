package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projetovox/vox-backend/internal/handlers/dto"
	"github.com/projetovox/vox-backend/internal/services"
)

// CategoriaHandler lida com requisições HTTP de categorias
type CategoriaHandler struct {
	categoriaService *services.CategoriaService
}

// NewCategoriaHandler cria um novo CategoriaHandler
func NewCategoriaHandler(categoriaService *services.CategoriaService) *CategoriaHandler {
	return &CategoriaHandler{
		categoriaService: categoriaService,
	}
}

// Criar cria uma categoria pessoal
//
//	@Summary	Criar categoria
//	@Tags		categorias
//	@Accept		json
//	@Produce	json
//	@Param		Usuario-Id	header		int						true	"ID do usuário"
//	@Param		body		body		dto.CategoriaRequest	true	"Categoria"
//	@Success	201			{object}	dto.CategoriaResponse
//	@Failure	400			{object}	dto.ErrorResponse
//	@Router		/api/categorias [post]
func (h *CategoriaHandler) Criar(c *gin.Context) {
	uid, err := usuarioID(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	var req dto.CategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteError(c, err)
		return
	}

	categoria, err := h.categoriaService.Criar(c.Request.Context(), req.ToInput(), uid)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoriaResponse(categoria))
}

// Listar lista as categorias padrão e do usuário
//
//	@Summary	Listar categorias
//	@Tags		categorias
//	@Produce	json
//	@Param		Usuario-Id	header	int	true	"ID do usuário"
//	@Success	200			{array}	dto.CategoriaResponse
//	@Router		/api/categorias [get]
func (h *CategoriaHandler) Listar(c *gin.Context) {
	uid, err := usuarioID(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	categorias, err := h.categoriaService.ListarDisponiveis(c.Request.Context(), uid)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoriaResponses(categorias))
}

// Buscar retorna a categoria com os pictogramas ativos
//
//	@Summary	Categoria com pictogramas
//	@Tags		categorias
//	@Produce	json
//	@Param		Usuario-Id	header		int	true	"ID do usuário"
//	@Param		id			path		int	true	"ID da categoria"
//	@Success	200			{object}	dto.CategoriaComPictogramasResponse
//	@Failure	404			{object}	dto.ErrorResponse
//	@Router		/api/categorias/{id} [get]
func (h *CategoriaHandler) Buscar(c *gin.Context) {
	uid, err := usuarioID(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	categoria, err := h.categoriaService.BuscarComPictogramas(c.Request.Context(), id, uid)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoriaComPictogramasResponse(categoria))
}

// Atualizar altera uma categoria do usuário
//
//	@Summary	Atualizar categoria
//	@Tags		categorias
//	@Accept		json
//	@Produce	json
//	@Param		Usuario-Id	header		int						true	"ID do usuário"
//	@Param		id			path		int						true	"ID da categoria"
//	@Param		body		body		dto.CategoriaRequest	true	"Categoria"
//	@Success	200			{object}	dto.CategoriaResponse
//	@Failure	400			{object}	dto.ErrorResponse
//	@Router		/api/categorias/{id} [put]
func (h *CategoriaHandler) Atualizar(c *gin.Context) {
	uid, err := usuarioID(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	var req dto.CategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteError(c, err)
		return
	}

	categoria, err := h.categoriaService.Atualizar(c.Request.Context(), id, req.ToInput(), uid)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoriaResponse(categoria))
}

// Desativar exclui logicamente uma categoria do usuário
//
//	@Summary	Desativar categoria
//	@Tags		categorias
//	@Param		Usuario-Id	header	int	true	"ID do usuário"
//	@Param		id			path	int	true	"ID da categoria"
//	@Success	204
//	@Failure	400	{object}	dto.ErrorResponse
//	@Router		/api/categorias/{id} [delete]
func (h *CategoriaHandler) Desativar(c *gin.Context) {
	uid, err := usuarioID(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	if err := h.categoriaService.Desativar(c.Request.Context(), id, uid); err != nil {
		dto.WriteError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Reordenar grava a ordem das categorias conforme a lista de ids
//
//	@Summary	Reordenar categorias
//	@Tags		categorias
//	@Accept		json
//	@Param		Usuario-Id	header	int		true	"ID do usuário"
//	@Param		body		body	[]int	true	"IDs na nova ordem"
//	@Success	200
//	@Router		/api/categorias/reordenar [put]
func (h *CategoriaHandler) Reordenar(c *gin.Context) {
	uid, err := usuarioID(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	var ids []int64
	if err := c.ShouldBindJSON(&ids); err != nil {
		dto.WriteError(c, err)
		return
	}

	if err := h.categoriaService.Reordenar(c.Request.Context(), ids, uid); err != nil {
		dto.WriteError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
