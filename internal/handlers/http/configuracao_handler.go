package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projetovox/vox-backend/internal/handlers/dto"
	"github.com/projetovox/vox-backend/internal/services"
)

// ConfiguracaoHandler lida com as preferências do usuário
type ConfiguracaoHandler struct {
	configuracaoService *services.ConfiguracaoService
}

// NewConfiguracaoHandler cria um novo ConfiguracaoHandler
func NewConfiguracaoHandler(configuracaoService *services.ConfiguracaoService) *ConfiguracaoHandler {
	return &ConfiguracaoHandler{
		configuracaoService: configuracaoService,
	}
}

// Obter retorna as configurações, criando os padrões no primeiro acesso
//
//	@Summary	Obter configurações
//	@Tags		configuracoes
//	@Produce	json
//	@Param		Usuario-Id	header		int	true	"ID do usuário"
//	@Success	200			{object}	dto.ConfiguracaoResponse
//	@Router		/api/configuracoes [get]
func (h *ConfiguracaoHandler) Obter(c *gin.Context) {
	uid, err := usuarioID(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	config, err := h.configuracaoService.Obter(c.Request.Context(), uid)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConfiguracaoResponse(config))
}

// Atualizar altera só os campos enviados
//
//	@Summary	Atualizar configurações
//	@Tags		configuracoes
//	@Accept		json
//	@Produce	json
//	@Param		Usuario-Id	header		int						true	"ID do usuário"
//	@Param		body		body		dto.ConfiguracaoRequest	true	"Campos a alterar"
//	@Success	200			{object}	dto.ConfiguracaoResponse
//	@Failure	400			{object}	dto.ErrorResponse
//	@Router		/api/configuracoes [put]
func (h *ConfiguracaoHandler) Atualizar(c *gin.Context) {
	uid, err := usuarioID(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	var req dto.ConfiguracaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteError(c, err)
		return
	}

	config, err := h.configuracaoService.Atualizar(c.Request.Context(), req.ToInput(), uid)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConfiguracaoResponse(config))
}

// Resetar volta as configurações aos valores padrão
//
//	@Summary	Resetar configurações
//	@Tags		configuracoes
//	@Produce	json
//	@Param		Usuario-Id	header		int	true	"ID do usuário"
//	@Success	200			{object}	dto.ConfiguracaoResponse
//	@Router		/api/configuracoes/resetar [post]
func (h *ConfiguracaoHandler) Resetar(c *gin.Context) {
	uid, err := usuarioID(c)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	config, err := h.configuracaoService.Resetar(c.Request.Context(), uid)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConfiguracaoResponse(config))
}
