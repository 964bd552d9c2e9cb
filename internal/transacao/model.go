// internal/transacao/model.go
package transacao

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Tipos de lançamento no razão financeiro.
const (
	TipoReceita = "Receita"
	TipoDespesa = "Despesa"
)

// Origens possíveis de um título gerado. O par (origem_tipo, origem_id) é
// único: gerar títulos duas vezes para a mesma origem não duplica lançamento.
const (
	OrigemContratoItem     = "contrato_item"
	OrigemParcelaHonorario = "parcela_honorario"
)

// TransacaoFinanceira é o título (a receber/a pagar) derivado de um item de
// contrato ou de uma parcela de honorário.
type TransacaoFinanceira struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	EscritorioID uint            `gorm:"not null;index" json:"escritorioId"`
	ProcessoID   uint            `gorm:"index" json:"processoId"`
	Descricao    string          `gorm:"size:255" json:"descricao"`
	Tipo         string          `gorm:"size:20;not null" json:"tipo"`
	Valor        decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"valor"`
	ClienteID    uint            `gorm:"index" json:"clienteId"`

	DataVencimento time.Time `gorm:"not null" json:"dataVencimento"`

	OrigemTipo string `gorm:"size:40;not null;uniqueIndex:idx_transacao_origem" json:"origemTipo"`
	OrigemID   uint   `gorm:"not null;uniqueIndex:idx_transacao_origem" json:"origemId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&TransacaoFinanceira{})
}
