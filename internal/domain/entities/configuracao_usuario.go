package entities

import (
	"time"

	domainerrors "github.com/projetovox/vox-backend/internal/domain/errors"
)

// TamanhoPictograma define o tamanho de exibição dos pictogramas
type TamanhoPictograma string

const (
	TamanhoPequeno TamanhoPictograma = "PEQUENO"
	TamanhoMedio   TamanhoPictograma = "MEDIO"
	TamanhoGrande  TamanhoPictograma = "GRANDE"
)

// IsValid verifica se o tamanho é conhecido
func (t TamanhoPictograma) IsValid() bool {
	return t == TamanhoPequeno || t == TamanhoMedio || t == TamanhoGrande
}

// Limites das preferências de voz e varredura
const (
	VelocidadeVozMin  = 0.0
	VelocidadeVozMax  = 2.0
	TempoVarreduraMin = 1
	TempoVarreduraMax = 10
	IdiomaVozMaxLen   = 10
)

// ConfiguracaoUsuario guarda as preferências de acessibilidade (1:1 com Usuario)
type ConfiguracaoUsuario struct {
	ID                 int64
	UsuarioID          int64
	TamanhoPictograma  TamanhoPictograma
	ModoAltoContraste  bool
	ModoEscuro         bool
	HabilitarSom       bool
	VelocidadeVoz      float64
	IdiomaVoz          string
	ModoVarredura      bool
	TempoVarredura     int
	ConfirmarSelecao   bool
	SalvarHistorico    bool
	PermitirRelatorios bool
	CriadoEm           time.Time
	AtualizadoEm       time.Time
}

// NewConfiguracaoPadrao cria a configuração inicial de um usuário
func NewConfiguracaoPadrao(usuarioID int64) *ConfiguracaoUsuario {
	c := &ConfiguracaoUsuario{UsuarioID: usuarioID}
	c.Resetar()
	return c
}

// Resetar restaura todas as preferências para os valores padrão
func (c *ConfiguracaoUsuario) Resetar() {
	c.TamanhoPictograma = TamanhoMedio
	c.ModoAltoContraste = false
	c.ModoEscuro = false
	c.HabilitarSom = true
	c.VelocidadeVoz = 1.0
	c.IdiomaVoz = "pt-BR"
	c.ModoVarredura = false
	c.TempoVarredura = 3
	c.ConfirmarSelecao = false
	c.SalvarHistorico = true
	c.PermitirRelatorios = true
}

func (c *ConfiguracaoUsuario) OwnerID() *int64 {
	return &c.UsuarioID
}

// Validate verifica os intervalos das preferências
func (c *ConfiguracaoUsuario) Validate() error {
	fields := map[string]domainerrors.FieldError{}

	if !c.TamanhoPictograma.IsValid() {
		fields["tamanhoPictograma"] = domainerrors.FieldError{
			Key:    "validation.oneof",
			Params: map[string]interface{}{"Param": "PEQUENO MEDIO GRANDE"},
		}
	}
	if c.VelocidadeVoz < VelocidadeVozMin || c.VelocidadeVoz > VelocidadeVozMax {
		fields["velocidadeVoz"] = rangeError(VelocidadeVozMin, VelocidadeVozMax)
	}
	if c.TempoVarredura < TempoVarreduraMin || c.TempoVarredura > TempoVarreduraMax {
		fields["tempoVarredura"] = rangeError(TempoVarreduraMin, TempoVarreduraMax)
	}
	if len(c.IdiomaVoz) > IdiomaVozMaxLen {
		fields["idiomaVoz"] = domainerrors.FieldError{
			Key:    "validation.max",
			Params: map[string]interface{}{"Param": IdiomaVozMaxLen},
		}
	}

	if len(fields) > 0 {
		return domainerrors.InvalidFields(fields)
	}
	return nil
}

func rangeError(minValue, maxValue interface{}) domainerrors.FieldError {
	return domainerrors.FieldError{
		Key:    "validation.between",
		Params: map[string]interface{}{"Min": minValue, "Max": maxValue},
	}
}
