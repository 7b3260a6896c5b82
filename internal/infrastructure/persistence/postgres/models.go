package postgres

import (
	"time"

	"gorm.io/datatypes"
)

// UsuarioModel é o model GORM para usuários
type UsuarioModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Nome         string    `gorm:"type:varchar(100);not null"`
	Telefone     string    `gorm:"type:varchar(20)"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password     string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	CriadoEm     time.Time `gorm:"column:criado_em;autoCreateTime"`
	AtualizadoEm time.Time `gorm:"column:atualizado_em;autoUpdateTime"`
}

func (UsuarioModel) TableName() string {
	return "usuarios"
}

// CategoriaModel é o model GORM para categorias. UsuarioID nulo = categoria padrão.
type CategoriaModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Nome         string    `gorm:"type:varchar(100);not null"`
	Descricao    string    `gorm:"type:varchar(500)"`
	Cor          string    `gorm:"type:varchar(50)"`
	Icone        string    `gorm:"type:varchar(50)"`
	Ativa        bool      `gorm:"not null;index"`
	Padrao       bool      `gorm:"not null"`
	Ordem        int       `gorm:"not null"`
	UsuarioID    *int64    `gorm:"column:usuario_id;index"`
	CriadoEm     time.Time `gorm:"column:criado_em;autoCreateTime"`
	AtualizadoEm time.Time `gorm:"column:atualizado_em;autoUpdateTime"`
}

func (CategoriaModel) TableName() string {
	return "categorias"
}

// PictogramaModel é o model GORM para pictogramas
type PictogramaModel struct {
	ID               int64     `gorm:"primaryKey;autoIncrement"`
	Label            string    `gorm:"type:varchar(100);not null"`
	LabelAlternativo string    `gorm:"column:label_alternativo;type:varchar(200)"`
	Cor              string    `gorm:"type:varchar(50)"`
	Icone            string    `gorm:"type:varchar(100)"`
	ImagemURL        string    `gorm:"column:imagem_url;type:varchar(1000)"`
	Tipo             string    `gorm:"type:varchar(20);not null"`
	Ativo            bool      `gorm:"not null;index"`
	Padrao           bool      `gorm:"not null"`
	Ordem            int       `gorm:"not null"`
	VezesUsado       int64     `gorm:"column:vezes_usado;not null"`
	CategoriaID      int64     `gorm:"column:categoria_id;not null;index"`
	UsuarioID        *int64    `gorm:"column:usuario_id;index"`
	CriadoEm         time.Time `gorm:"column:criado_em;autoCreateTime"`
	AtualizadoEm     time.Time `gorm:"column:atualizado_em;autoUpdateTime"`
}

func (PictogramaModel) TableName() string {
	return "pictogramas"
}

// FraseFavoritaModel é o model GORM para frases favoritas
type FraseFavoritaModel struct {
	ID            int64          `gorm:"primaryKey;autoIncrement"`
	Titulo        string         `gorm:"type:varchar(200);not null"`
	ConteudoJSON  datatypes.JSON `gorm:"column:conteudo_json;not null"`
	TextoCompleto string         `gorm:"column:texto_completo;type:text"`
	Ativa         bool           `gorm:"not null;index"`
	Ordem         int            `gorm:"not null"`
	VezesUsada    int64          `gorm:"column:vezes_usada;not null"`
	UsuarioID     int64          `gorm:"column:usuario_id;not null;index"`
	CriadoEm      time.Time      `gorm:"column:criado_em;autoCreateTime"`
	AtualizadoEm  time.Time      `gorm:"column:atualizado_em;autoUpdateTime"`
}

func (FraseFavoritaModel) TableName() string {
	return "frases_favoritas"
}

// MensagemModel é o model GORM para o histórico de mensagens
type MensagemModel struct {
	ID                int64          `gorm:"primaryKey;autoIncrement"`
	ConteudoJSON      datatypes.JSON `gorm:"column:conteudo_json;not null"`
	TextoCompleto     string         `gorm:"column:texto_completo;type:text"`
	Contexto          string         `gorm:"type:varchar(500)"`
	Favorita          bool           `gorm:"not null"`
	VezesReutilizada  int64          `gorm:"column:vezes_reutilizada;not null"`
	DispositivoOrigem string         `gorm:"column:dispositivo_origem;type:varchar(50)"`
	UsuarioID         int64          `gorm:"column:usuario_id;not null;index"`
	CriadoEm          time.Time      `gorm:"column:criado_em;autoCreateTime;index"`
}

func (MensagemModel) TableName() string {
	return "mensagens"
}

// ConfiguracaoUsuarioModel é o model GORM para as preferências (1:1 com usuarios)
type ConfiguracaoUsuarioModel struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement"`
	UsuarioID          int64     `gorm:"column:usuario_id;not null;uniqueIndex"`
	TamanhoPictograma  string    `gorm:"column:tamanho_pictograma;type:varchar(20);not null"`
	ModoAltoContraste  bool      `gorm:"column:modo_alto_contraste;not null"`
	ModoEscuro         bool      `gorm:"column:modo_escuro;not null"`
	HabilitarSom       bool      `gorm:"column:habilitar_som;not null"`
	VelocidadeVoz      float64   `gorm:"column:velocidade_voz;not null"`
	IdiomaVoz          string    `gorm:"column:idioma_voz;type:varchar(10);not null"`
	ModoVarredura      bool      `gorm:"column:modo_varredura;not null"`
	TempoVarredura     int       `gorm:"column:tempo_varredura;not null"`
	ConfirmarSelecao   bool      `gorm:"column:confirmar_selecao;not null"`
	SalvarHistorico    bool      `gorm:"column:salvar_historico;not null"`
	PermitirRelatorios bool      `gorm:"column:permitir_relatorios;not null"`
	CriadoEm           time.Time `gorm:"column:criado_em;autoCreateTime"`
	AtualizadoEm       time.Time `gorm:"column:atualizado_em;autoUpdateTime"`
}

func (ConfiguracaoUsuarioModel) TableName() string {
	return "configuracoes_usuario"
}

// Models lista todos os models, na ordem de criação das tabelas.
// Usado pelo AutoMigrate dos testes; em produção o schema vem das migrations.
func Models() []interface{} {
	return []interface{}{
		&UsuarioModel{},
		&CategoriaModel{},
		&PictogramaModel{},
		&FraseFavoritaModel{},
		&MensagemModel{},
		&ConfiguracaoUsuarioModel{},
	}
}
