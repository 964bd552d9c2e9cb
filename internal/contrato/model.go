package contrato

import (
	"time"

	"github.com/NexoJuridico/api-advocacia/internal/contratoitem"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Status do ciclo de vida de um contrato.
const (
	StatusRascunho  = "Rascunho"
	StatusEnviado   = "Enviado"
	StatusAprovado  = "Aprovado"
	StatusAssinado  = "Assinado"
	StatusCancelado = "Cancelado"
)

// Tipos de contrato vinculados a um processo.
const (
	TipoHonorarios     = "Honorários"
	TipoAcordoJudicial = "Acordo Judicial"
	TipoVenda          = "Venda"
	TipoOutro          = "Outro"
)

// transicoes é a tabela de arestas permitidas do ciclo de vida.
// Assinado e Cancelado são terminais.
var transicoes = map[string][]string{
	StatusRascunho: {StatusEnviado, StatusCancelado},
	StatusEnviado:  {StatusAprovado, StatusCancelado},
	StatusAprovado: {StatusAssinado, StatusCancelado},
}

// TransicaoPermitida informa se a aresta (de, para) existe na tabela.
func TransicaoPermitida(de, para string) bool {
	for _, p := range transicoes[de] {
		if p == para {
			return true
		}
	}
	return false
}

// TipoValido informa se o tipo de contrato é um dos conhecidos.
func TipoValido(tipo string) bool {
	switch tipo {
	case TipoHonorarios, TipoAcordoJudicial, TipoVenda, TipoOutro:
		return true
	}
	return false
}

// Contrato vincula um acerto comercial a um processo. O valor total é
// derivado da soma dos itens e recalculado a cada alteração de item.
type Contrato struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	EscritorioID uint `gorm:"not null;index" json:"escritorioId"`
	ProcessoID   uint `gorm:"not null;index" json:"processoId"`
	ClienteID    uint `gorm:"not null" json:"clienteId"`

	Titulo    string `gorm:"size:255;not null" json:"titulo"`
	Tipo      string `gorm:"size:50;not null" json:"tipo"`
	Descricao string `gorm:"type:text" json:"descricao"`

	Status     string          `gorm:"size:20;not null;default:'Rascunho';index" json:"status"`
	ValorTotal decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"valorTotal"`

	DataEnvio      *time.Time `json:"dataEnvio"`
	DataAprovacao  *time.Time `json:"dataAprovacao"`
	DataAssinatura *time.Time `json:"dataAssinatura"`

	Itens []contratoitem.ContratoItem `gorm:"foreignKey:ContratoID;constraint:OnDelete:CASCADE" json:"itens"`
}

// Migrate cria a tabela no banco de dados e aplica relacionamentos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Contrato{})
}
