package honorario

import (
	"time"

	"github.com/NexoJuridico/api-advocacia/internal/honorarioitem"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Status do ciclo de vida de um honorário.
const (
	StatusRascunho  = "Rascunho"
	StatusAprovado  = "Aprovado"
	StatusAssinado  = "Assinado"
	StatusCancelado = "Cancelado"
)

// transicoes é a tabela de arestas permitidas do ciclo de vida.
// Assinado e Cancelado são terminais.
var transicoes = map[string][]string{
	StatusRascunho: {StatusAprovado, StatusCancelado},
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

// Honorario é o acordo de honorários de um processo. Os totais definido e
// cobrado são derivados dos itens e recalculados a cada alteração de item.
// A aprovação exige o documento formal gerado e, quando o cobrado fica mais
// de 5% abaixo do definido, uma justificativa registrada.
type Honorario struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	EscritorioID uint `gorm:"not null;index" json:"escritorioId"`
	ProcessoID   uint `gorm:"not null;index" json:"processoId"`

	Objeto      string `gorm:"type:text;not null" json:"objeto"`
	Observacoes string `gorm:"type:text" json:"observacoes"`

	Status string `gorm:"size:20;not null;default:'Rascunho';index" json:"status"`

	ValorDefinido decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"valorDefinido"`
	ValorCobrado  decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"valorCobrado"`

	JustificativaVariacao string `gorm:"type:text" json:"justificativaVariacao"`
	DocumentoFormalGerado bool   `gorm:"not null;default:false" json:"documentoFormalGerado"`

	NomeAssinante    string     `gorm:"size:255" json:"nomeAssinante"`
	EmailAssinante   string     `gorm:"size:255" json:"emailAssinante"`
	MetodoAssinatura string     `gorm:"size:50" json:"metodoAssinatura"`
	DataAprovacao    *time.Time `json:"dataAprovacao"`
	DataAssinatura   *time.Time `json:"dataAssinatura"`

	Itens []honorarioitem.HonorarioItem `gorm:"foreignKey:HonorarioID;constraint:OnDelete:CASCADE" json:"itens"`
}

// Migrate cria a tabela no banco de dados e aplica relacionamentos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Honorario{})
}
