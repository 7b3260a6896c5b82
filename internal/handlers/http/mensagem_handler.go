package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projetovox/vox-backend/internal/handlers/dto"
	"github.com/projetovox/vox-backend/internal/services"
)

// MensagemHandler lida com o histórico de mensagens
type MensagemHandler struct {
	mensagemService *services.MensagemService
}

// NewMensagemHandler cria um novo MensagemHandler
func NewMensagemHandler(mensagemService *services.MensagemService) *MensagemHandler {
	return &MensagemHandler{
		mensagemService: mensagemService,
	}
}

// Salvar grava uma mensagem falada
//
//	@Summary	Salvar mensagem
//	@Tags		mensagens
//	@Accept		json
//	@Produce	json
//	@Param		Usuario-Id	header		int					true	"ID do usuário"
//	@Param		body		body		dto.MensagemRequest	true	"Mensagem"
//	@Success	201			{object}	dto.MensagemResponse
//	@Failure	400			{object}	dto.ErrorResponse
//	@Router		/api/mensagens [post]
func (h *MensagemHandler) Salvar(c *gin.Context) {
	uid, err := usuarioID(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	var req dto.MensagemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteError(c, err)
		return
	}

	mensagem, err := h.mensagemService.Salvar(c.Request.Context(), req.ToInput(), uid)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMensagemResponse(mensagem))
}

// Listar retorna o histórico paginado, mais recentes primeiro
//
//	@Summary	Histórico de mensagens
//	@Tags		mensagens
//	@Produce	json
//	@Param		Usuario-Id	header		int	true	"ID do usuário"
//	@Param		page		query		int	false	"Página (começa em 1)"
//	@Param		size		query		int	false	"Itens por página (padrão 20)"
//	@Success	200			{object}	dto.PageResponse[dto.MensagemResponse]
//	@Router		/api/mensagens [get]
func (h *MensagemHandler) Listar(c *gin.Context) {
	uid, err := usuarioID(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}
	pagina, err := queryInt(c, "page", 1, 1, 1<<20)
	if err != nil {
		dto.WriteError(c, err)
		return
	}
	tamanho, err := queryInt(c, "size", services.DefaultTamanhoPagina, 1, services.MaxTamanhoPagina)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	page, err := h.mensagemService.Listar(c.Request.Context(), uid, pagina, tamanho)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMensagemPage(page))
}

// Favoritas lista as mensagens marcadas como favoritas
//
//	@Summary	Mensagens favoritas
//	@Tags		mensagens
//	@Produce	json
//	@Param		Usuario-Id	header	int	true	"ID do usuário"
//	@Success	200			{array}	dto.MensagemResponse
//	@Router		/api/mensagens/favoritas [get]
func (h *MensagemHandler) Favoritas(c *gin.Context) {
	uid, err := usuarioID(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	mensagens, err := h.mensagemService.Favoritas(c.Request.Context(), uid)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMensagemResponses(mensagens))
}

// PorPeriodo lista as mensagens criadas entre inicio e fim
//
//	@Summary	Mensagens por período
//	@Tags		mensagens
//	@Produce	json
//	@Param		Usuario-Id	header	int		true	"ID do usuário"
//	@Param		inicio		query	string	true	"Início (RFC 3339)"
//	@Param		fim			query	string	true	"Fim (RFC 3339)"
//	@Success	200			{array}	dto.MensagemResponse
//	@Failure	400			{object}	dto.ErrorResponse
//	@Router		/api/mensagens/periodo [get]
func (h *MensagemHandler) PorPeriodo(c *gin.Context) {
	uid, err := usuarioID(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}
	inicio, fim, err := queryPeriodo(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	mensagens, err := h.mensagemService.PorPeriodo(c.Request.Context(), uid, inicio, fim)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMensagemResponses(mensagens))
}

// AlternarFavorita inverte a marcação de favorita
//
//	@Summary	Alternar favorita
//	@Tags		mensagens
//	@Produce	json
//	@Param		Usuario-Id	header		int	true	"ID do usuário"
//	@Param		id			path		int	true	"ID da mensagem"
//	@Success	200			{object}	dto.MensagemResponse
//	@Failure	404			{object}	dto.ErrorResponse
//	@Router		/api/mensagens/{id}/favorita [put]
func (h *MensagemHandler) AlternarFavorita(c *gin.Context) {
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

	mensagem, err := h.mensagemService.AlternarFavorita(c.Request.Context(), id, uid)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMensagemResponse(mensagem))
}

// Reutilizar incrementa o contador de reutilização
//
//	@Summary	Reutilizar mensagem
//	@Tags		mensagens
//	@Param		Usuario-Id	header	int	true	"ID do usuário"
//	@Param		id			path	int	true	"ID da mensagem"
//	@Success	200
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/api/mensagens/{id}/reutilizar [post]
func (h *MensagemHandler) Reutilizar(c *gin.Context) {
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

	if _, err := h.mensagemService.Reutilizar(c.Request.Context(), id, uid); err != nil {
		dto.WriteError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// Estatisticas retorna o total geral e o total no período
//
//	@Summary	Estatísticas de mensagens
//	@Tags		mensagens
//	@Produce	json
//	@Param		Usuario-Id	header		int		true	"ID do usuário"
//	@Param		inicio		query		string	true	"Início (RFC 3339)"
//	@Param		fim			query		string	true	"Fim (RFC 3339)"
//	@Success	200			{object}	dto.EstatisticasResponse
//	@Failure	400			{object}	dto.ErrorResponse
//	@Router		/api/mensagens/estatisticas [get]
func (h *MensagemHandler) Estatisticas(c *gin.Context) {
	uid, err := usuarioID(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}
	inicio, fim, err := queryPeriodo(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	estatisticas, err := h.mensagemService.Estatisticas(c.Request.Context(), uid, inicio, fim)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEstatisticasResponse(estatisticas))
}
