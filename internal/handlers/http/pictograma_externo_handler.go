package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projetovox/vox-backend/internal/handlers/dto"
	"github.com/projetovox/vox-backend/internal/services"
)

// Limites das consultas ao catálogo externo
const (
	limiteBuscaPadrao     = 20
	limiteCategoriaPadrao = 30
	limiteSugestaoPadrao  = 15
	limiteBuscaMax        = 50
	limiteSugestaoMax     = 30
	fonteCatalogo         = "ARASAAC"
)

// PictogramaExternoHandler expõe a busca e a importação do catálogo ARASAAC
type PictogramaExternoHandler struct {
	importacaoService *services.ImportacaoService
}

// NewPictogramaExternoHandler cria um novo PictogramaExternoHandler
func NewPictogramaExternoHandler(importacaoService *services.ImportacaoService) *PictogramaExternoHandler {
	return &PictogramaExternoHandler{
		importacaoService: importacaoService,
	}
}

// Buscar procura no catálogo por palavra-chave
//
//	@Summary	Buscar no catálogo
//	@Tags		pictogramas-externos
//	@Produce	json
//	@Param		Usuario-Id	header	int		true	"ID do usuário"
//	@Param		palavra		query	string	true	"Palavra-chave"
//	@Param		limite		query	int		false	"1 a 50 (padrão 20)"
//	@Success	200			{array}	dto.PictogramaExternoResponse
//	@Failure	400			{object}	dto.ErrorResponse
//	@Router		/api/pictogramas-externos/buscar [get]
func (h *PictogramaExternoHandler) Buscar(c *gin.Context) {
	uid, err := usuarioID(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}
	palavra, err := requiredQuery(c, "palavra")
	if err != nil {
		dto.WriteError(c, err)
		return
	}
	limite, err := queryInt(c, "limite", limiteBuscaPadrao, 1, limiteBuscaMax)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	externos, err := h.importacaoService.Buscar(c.Request.Context(), palavra, limite, &uid)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPictogramaExternoResponses(externos))
}

// BuscarPorCategoria procura no catálogo pelo nome de uma categoria
//
//	@Summary	Buscar no catálogo por categoria
//	@Tags		pictogramas-externos
//	@Produce	json
//	@Param		Usuario-Id	header	int		true	"ID do usuário"
//	@Param		nome		path	string	true	"Nome da categoria"
//	@Param		limite		query	int		false	"1 a 50 (padrão 30)"
//	@Success	200			{array}	dto.PictogramaExternoResponse
//	@Router		/api/pictogramas-externos/categoria/{nome} [get]
func (h *PictogramaExternoHandler) BuscarPorCategoria(c *gin.Context) {
	uid, err := usuarioID(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}
	limite, err := queryInt(c, "limite", limiteCategoriaPadrao, 1, limiteBuscaMax)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	externos, err := h.importacaoService.BuscarPorCategoria(c.Request.Context(), c.Param("nome"), limite, &uid)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPictogramaExternoResponses(externos))
}

// BuscarPorID busca um pictograma do catálogo. O header Usuario-Id é opcional aqui.
//
//	@Summary	Pictograma do catálogo
//	@Tags		pictogramas-externos
//	@Produce	json
//	@Param		Usuario-Id	header		int	false	"ID do usuário"
//	@Param		idExterno	path		int	true	"ID no ARASAAC"
//	@Success	200			{object}	dto.PictogramaExternoResponse
//	@Failure	404			{object}	dto.ErrorResponse
//	@Router		/api/pictogramas-externos/{idExterno} [get]
func (h *PictogramaExternoHandler) BuscarPorID(c *gin.Context) {
	uid, err := optionalUsuarioID(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}
	idExterno, err := pathID(c, "idExterno")
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	externo, err := h.importacaoService.BuscarPorID(c.Request.Context(), idExterno, uid)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, externo)
}

// Importar cria um pictograma pessoal a partir do catálogo
//
//	@Summary	Importar pictograma
//	@Tags		pictogramas-externos
//	@Accept		json
//	@Produce	json
//	@Param		Usuario-Id	header		int					true	"ID do usuário"
//	@Param		body		body		dto.ImportarRequest	true	"Pictograma a importar"
//	@Success	200			{object}	dto.PictogramaResponse
//	@Failure	400			{object}	dto.ErrorResponse
//	@Failure	404			{object}	dto.ErrorResponse
//	@Router		/api/pictogramas-externos/importar [post]
func (h *PictogramaExternoHandler) Importar(c *gin.Context) {
	uid, err := usuarioID(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	var req dto.ImportarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteError(c, err)
		return
	}

	pictograma, err := h.importacaoService.Importar(c.Request.Context(), req.ToInput(), uid)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPictogramaResponse(pictograma))
}

// ImportarLote importa vários pictogramas. Itens com falha são pulados.
//
//	@Summary	Importar em lote
//	@Tags		pictogramas-externos
//	@Accept		json
//	@Produce	json
//	@Param		Usuario-Id	header		int						true	"ID do usuário"
//	@Param		body		body		[]dto.ImportarRequest	true	"Pictogramas a importar"
//	@Success	200			{object}	dto.ImportarLoteResponse
//	@Router		/api/pictogramas-externos/importar-lote [post]
func (h *PictogramaExternoHandler) ImportarLote(c *gin.Context) {
	uid, err := usuarioID(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	var reqs []dto.ImportarRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		dto.WriteError(c, err)
		return
	}

	inputs := make([]services.ImportarInput, 0, len(reqs))
	for _, req := range reqs {
		inputs = append(inputs, req.ToInput())
	}

	importados := h.importacaoService.ImportarLote(c.Request.Context(), inputs, uid)
	c.JSON(http.StatusOK, dto.NewImportarLoteResponse(len(inputs), importados))
}

// Sugerir sugere pictogramas para as palavras de um texto
//
//	@Summary	Sugerir pictogramas
//	@Tags		pictogramas-externos
//	@Produce	json
//	@Param		Usuario-Id	header	int		true	"ID do usuário"
//	@Param		texto		query	string	true	"Texto livre"
//	@Param		limite		query	int		false	"1 a 30 (padrão 15)"
//	@Success	200			{array}	dto.PictogramaExternoResponse
//	@Router		/api/pictogramas-externos/sugerir [get]
func (h *PictogramaExternoHandler) Sugerir(c *gin.Context) {
	uid, err := usuarioID(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}
	// texto vazio não é erro: só não gera sugestões
	texto, err := presentQuery(c, "texto")
	if err != nil {
		dto.WriteError(c, err)
		return
	}
	limite, err := queryInt(c, "limite", limiteSugestaoPadrao, 1, limiteSugestaoMax)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	sugestoes, err := h.importacaoService.Sugerir(c.Request.Context(), texto, limite, &uid)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPictogramaExternoResponses(sugestoes))
}

// Status informa se o catálogo externo está disponível
//
//	@Summary	Status do catálogo
//	@Tags		pictogramas-externos
//	@Produce	json
//	@Success	200	{object}	dto.StatusCatalogoResponse
//	@Router		/api/pictogramas-externos/status [get]
func (h *PictogramaExternoHandler) Status(c *gin.Context) {
	disponivel := h.importacaoService.Status(c.Request.Context())

	key := "arasaac.status.unavailable"
	if disponivel {
		key = "arasaac.status.available"
	}

	c.JSON(http.StatusOK, dto.StatusCatalogoResponse{
		Disponivel: disponivel,
		Fonte:      fonteCatalogo,
		Mensagem:   dto.T(c, key),
	})
}
