// internal/parcela/model.go
package parcela

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Status de pagamento de uma parcela de honorário.
const (
	StatusPendente  = "Pendente"
	StatusVencida   = "Vencida"
	StatusPaga      = "Paga"
	StatusCancelada = "Cancelada"
)

// ParcelaHonorario representa uma única parcela de um item de honorário.
// A soma das parcelas de um item deve fechar com o valor cobrado do item;
// a geração de títulos recusa itens em que isso não fecha.
type ParcelaHonorario struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	HonorarioItemID uint            `gorm:"not null;index" json:"honorarioItemId"`
	Numero          int             `gorm:"not null" json:"numero"`
	Valor           decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"valor"`
	DataVencimento  time.Time       `gorm:"not null" json:"dataVencimento"`
	Status          string          `gorm:"size:50;not null;default:'Pendente';index" json:"status"`
	Recorrente      bool            `gorm:"not null;default:false" json:"recorrente"`
	TransacaoID     *uint           `json:"transacaoId"`
	DataPagamento   *time.Time      `json:"dataPagamento"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ParcelaHonorario{})
}
