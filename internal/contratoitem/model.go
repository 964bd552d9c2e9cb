// internal/contratoitem/model.go
package contratoitem

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ContratoItem é uma linha (receita ou despesa) de um contrato. Pertence a
// exatamente um contrato e é removido em cascata com ele.
type ContratoItem struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ContratoID uint   `gorm:"not null;index" json:"contratoId"`
	Descricao  string `gorm:"size:255;not null" json:"descricao"`
	Tipo       string `gorm:"size:20;not null" json:"tipo"` // "Receita" ou "Despesa"

	Valor          decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"valor"`
	DataVencimento time.Time       `json:"dataVencimento"`

	NumeroParcela int    `gorm:"not null;default:1" json:"numeroParcela"`
	TotalParcelas int    `gorm:"not null;default:1" json:"totalParcelas"`
	Observacoes   string `gorm:"type:text" json:"observacoes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ContratoItem{})
}
