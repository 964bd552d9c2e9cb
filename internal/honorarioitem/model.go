// internal/honorarioitem/model.go
package honorarioitem

import (
	"time"

	"github.com/NexoJuridico/api-advocacia/internal/parcela"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Tipos de item de honorário.
const (
	TipoInicial = "Inicial"
	TipoMensal  = "Mensal"
	TipoExito   = "Êxito"
	TipoOutro   = "Outro"
)

// TipoValido informa se o tipo de item é um dos conhecidos.
func TipoValido(tipo string) bool {
	switch tipo {
	case TipoInicial, TipoMensal, TipoExito, TipoOutro:
		return true
	}
	return false
}

// HonorarioItem é um componente tipado de um honorário. Itens de êxito
// carregam percentual sobre o proveito; os demais, valor definido. O valor
// cobrado pode divergir do definido, dentro do limite de variação da OAB.
type HonorarioItem struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	HonorarioID uint   `gorm:"not null;index" json:"honorarioId"`
	Tipo        string `gorm:"size:20;not null" json:"tipo"`
	Descricao   string `gorm:"size:255;not null" json:"descricao"`

	ValorDefinido   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"valorDefinido"`
	PercentualExito decimal.Decimal `gorm:"type:numeric(6,2);not null;default:0" json:"percentualExito"`
	ValorCobrado    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"valorCobrado"`

	ReferenciaOAB string `gorm:"size:100" json:"referenciaOab"`
	Observacoes   string `gorm:"type:text" json:"observacoes"`

	Parcelas []parcela.ParcelaHonorario `gorm:"foreignKey:HonorarioItemID;constraint:OnDelete:CASCADE" json:"parcelas"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados e aplica relacionamentos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&HonorarioItem{})
}
