package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projetovox/vox-backend/internal/handlers/dto"
	"github.com/projetovox/vox-backend/internal/services"
)

// FraseFavoritaHandler lida com requisições HTTP de frases favoritas
type FraseFavoritaHandler struct {
	fraseService *services.FraseFavoritaService
}

// NewFraseFavoritaHandler cria um novo FraseFavoritaHandler
func NewFraseFavoritaHandler(fraseService *services.FraseFavoritaService) *FraseFavoritaHandler {
	return &FraseFavoritaHandler{
		fraseService: fraseService,
	}
}

// Criar salva uma frase favorita
//
//	@Summary	Criar frase favorita
//	@Tags		frases-favoritas
//	@Accept		json
//	@Produce	json
//	@Param		Usuario-Id	header		int							true	"ID do usuário"
//	@Param		body		body		dto.FraseFavoritaRequest	true	"Frase"
//	@Success	201			{object}	dto.FraseFavoritaResponse
//	@Failure	400			{object}	dto.ErrorResponse
//	@Router		/api/frases-favoritas [post]
func (h *FraseFavoritaHandler) Criar(c *gin.Context) {
	uid, err := usuarioID(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	var req dto.FraseFavoritaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteError(c, err)
		return
	}

	frase, err := h.fraseService.Criar(c.Request.Context(), req.ToInput(), uid)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFraseFavoritaResponse(frase))
}

// Listar lista as frases ativas na ordem do usuário
//
//	@Summary	Listar frases favoritas
//	@Tags		frases-favoritas
//	@Produce	json
//	@Param		Usuario-Id	header	int	true	"ID do usuário"
//	@Success	200			{array}	dto.FraseFavoritaResponse
//	@Router		/api/frases-favoritas [get]
func (h *FraseFavoritaHandler) Listar(c *gin.Context) {
	uid, err := usuarioID(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	frases, err := h.fraseService.Listar(c.Request.Context(), uid)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFraseFavoritaResponses(frases))
}

// MaisUsadas lista as frases por número de usos
//
//	@Summary	Frases mais usadas
//	@Tags		frases-favoritas
//	@Produce	json
//	@Param		Usuario-Id	header	int	true	"ID do usuário"
//	@Success	200			{array}	dto.FraseFavoritaResponse
//	@Router		/api/frases-favoritas/mais-usadas [get]
func (h *FraseFavoritaHandler) MaisUsadas(c *gin.Context) {
	uid, err := usuarioID(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	frases, err := h.fraseService.MaisUsadas(c.Request.Context(), uid)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFraseFavoritaResponses(frases))
}

// Atualizar altera uma frase do usuário
//
//	@Summary	Atualizar frase favorita
//	@Tags		frases-favoritas
//	@Accept		json
//	@Produce	json
//	@Param		Usuario-Id	header		int							true	"ID do usuário"
//	@Param		id			path		int							true	"ID da frase"
//	@Param		body		body		dto.FraseFavoritaRequest	true	"Frase"
//	@Success	200			{object}	dto.FraseFavoritaResponse
//	@Failure	400			{object}	dto.ErrorResponse
//	@Router		/api/frases-favoritas/{id} [put]
func (h *FraseFavoritaHandler) Atualizar(c *gin.Context) {
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

	var req dto.FraseFavoritaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteError(c, err)
		return
	}

	frase, err := h.fraseService.Atualizar(c.Request.Context(), id, req.ToInput(), uid)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFraseFavoritaResponse(frase))
}

// Usar registra um uso da frase
//
//	@Summary	Registrar uso da frase
//	@Tags		frases-favoritas
//	@Param		Usuario-Id	header	int	true	"ID do usuário"
//	@Param		id			path	int	true	"ID da frase"
//	@Success	200
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/api/frases-favoritas/{id}/usar [post]
func (h *FraseFavoritaHandler) Usar(c *gin.Context) {
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

	if _, err := h.fraseService.RegistrarUso(c.Request.Context(), id, uid); err != nil {
		dto.WriteError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// Desativar exclui logicamente uma frase
//
//	@Summary	Desativar frase favorita
//	@Tags		frases-favoritas
//	@Param		Usuario-Id	header	int	true	"ID do usuário"
//	@Param		id			path	int	true	"ID da frase"
//	@Success	204
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/api/frases-favoritas/{id} [delete]
func (h *FraseFavoritaHandler) Desativar(c *gin.Context) {
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

	if err := h.fraseService.Desativar(c.Request.Context(), id, uid); err != nil {
		dto.WriteError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Reordenar grava a ordem das frases conforme a lista de ids
//
//	@Summary	Reordenar frases favoritas
//	@Tags		frases-favoritas
//	@Accept		json
//	@Param		Usuario-Id	header	int		true	"ID do usuário"
//	@Param		body		body	[]int	true	"IDs na nova ordem"
//	@Success	200
//	@Router		/api/frases-favoritas/reordenar [put]
func (h *FraseFavoritaHandler) Reordenar(c *gin.Context) {
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

	if err := h.fraseService.Reordenar(c.Request.Context(), ids, uid); err != nil {
		dto.WriteError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
