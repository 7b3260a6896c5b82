package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projetovox/vox-backend/internal/handlers/dto"
	"github.com/projetovox/vox-backend/internal/services"
)

// PictogramaHandler lida com requisições HTTP de pictogramas
type PictogramaHandler struct {
	pictogramaService *services.PictogramaService
}

// NewPictogramaHandler cria um novo PictogramaHandler
func NewPictogramaHandler(pictogramaService *services.PictogramaService) *PictogramaHandler {
	return &PictogramaHandler{
		pictogramaService: pictogramaService,
	}
}

// Criar cria um pictograma pessoal
//
//	@Summary	Criar pictograma
//	@Tags		pictogramas
//	@Accept		json
//	@Produce	json
//	@Param		Usuario-Id	header		int						true	"ID do usuário"
//	@Param		body		body		dto.PictogramaRequest	true	"Pictograma"
//	@Success	201			{object}	dto.PictogramaResponse
//	@Failure	400			{object}	dto.ErrorResponse
//	@Router		/api/pictogramas [post]
func (h *PictogramaHandler) Criar(c *gin.Context) {
	uid, err := usuarioID(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	var req dto.PictogramaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteError(c, err)
		return
	}

	pictograma, err := h.pictogramaService.Criar(c.Request.Context(), req.ToInput(), uid)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPictogramaResponse(pictograma))
}

// ListarPorCategoria lista os pictogramas visíveis de uma categoria
//
//	@Summary	Pictogramas da categoria
//	@Tags		pictogramas
//	@Produce	json
//	@Param		Usuario-Id	header	int	true	"ID do usuário"
//	@Param		categoriaId	path	int	true	"ID da categoria"
//	@Success	200			{array}	dto.PictogramaResponse
//	@Router		/api/pictogramas/categoria/{categoriaId} [get]
func (h *PictogramaHandler) ListarPorCategoria(c *gin.Context) {
	uid, err := usuarioID(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}
	categoriaID, err := pathID(c, "categoriaId")
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	pictogramas, err := h.pictogramaService.ListarPorCategoria(c.Request.Context(), categoriaID, uid)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPictogramaResponses(pictogramas))
}

// MaisUsados lista os pictogramas mais usados do usuário
//
//	@Summary	Pictogramas mais usados
//	@Tags		pictogramas
//	@Produce	json
//	@Param		Usuario-Id	header	int	true	"ID do usuário"
//	@Param		limite		query	int	false	"Quantidade (padrão 10)"
//	@Success	200			{array}	dto.PictogramaResponse
//	@Router		/api/pictogramas/mais-usados [get]
func (h *PictogramaHandler) MaisUsados(c *gin.Context) {
	uid, err := usuarioID(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}
	limite, err := queryInt(c, "limite", services.DefaultLimiteMaisUsados, 1, 100)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	pictogramas, err := h.pictogramaService.MaisUsados(c.Request.Context(), uid, limite)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPictogramaResponses(pictogramas))
}

// Buscar procura pictogramas por texto
//
//	@Summary	Buscar pictogramas
//	@Tags		pictogramas
//	@Produce	json
//	@Param		Usuario-Id	header	int		true	"ID do usuário"
//	@Param		termo		query	string	true	"Texto a procurar"
//	@Success	200			{array}	dto.PictogramaResponse
//	@Router		/api/pictogramas/buscar [get]
func (h *PictogramaHandler) Buscar(c *gin.Context) {
	uid, err := usuarioID(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	pictogramas, err := h.pictogramaService.Buscar(c.Request.Context(), c.Query("termo"), uid)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPictogramaResponses(pictogramas))
}

// BuscarPorID busca um pictograma, inclusive inativo
//
//	@Summary	Buscar pictograma
//	@Tags		pictogramas
//	@Produce	json
//	@Param		id	path		int	true	"ID do pictograma"
//	@Success	200	{object}	dto.PictogramaResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/api/pictogramas/{id} [get]
func (h *PictogramaHandler) BuscarPorID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	pictograma, err := h.pictogramaService.BuscarPorID(c.Request.Context(), id)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPictogramaResponse(pictograma))
}

// Atualizar altera um pictograma do usuário
//
//	@Summary	Atualizar pictograma
//	@Tags		pictogramas
//	@Accept		json
//	@Produce	json
//	@Param		Usuario-Id	header		int						true	"ID do usuário"
//	@Param		id			path		int						true	"ID do pictograma"
//	@Param		body		body		dto.PictogramaRequest	true	"Pictograma"
//	@Success	200			{object}	dto.PictogramaResponse
//	@Failure	400			{object}	dto.ErrorResponse
//	@Router		/api/pictogramas/{id} [put]
func (h *PictogramaHandler) Atualizar(c *gin.Context) {
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

	var req dto.PictogramaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteError(c, err)
		return
	}

	pictograma, err := h.pictogramaService.Atualizar(c.Request.Context(), id, req.ToInput(), uid)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPictogramaResponse(pictograma))
}

// Usar registra um uso do pictograma
//
//	@Summary	Registrar uso
//	@Tags		pictogramas
//	@Param		id	path	int	true	"ID do pictograma"
//	@Success	200
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/api/pictogramas/{id}/usar [post]
func (h *PictogramaHandler) Usar(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	if _, err := h.pictogramaService.RegistrarUso(c.Request.Context(), id); err != nil {
		dto.WriteError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// Desativar exclui logicamente um pictograma do usuário
//
//	@Summary	Desativar pictograma
//	@Tags		pictogramas
//	@Param		Usuario-Id	header	int	true	"ID do usuário"
//	@Param		id			path	int	true	"ID do pictograma"
//	@Success	204
//	@Failure	400	{object}	dto.ErrorResponse
//	@Router		/api/pictogramas/{id} [delete]
func (h *PictogramaHandler) Desativar(c *gin.Context) {
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

	if err := h.pictogramaService.Desativar(c.Request.Context(), id, uid); err != nil {
		dto.WriteError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
