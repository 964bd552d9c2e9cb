package processo

import (
	"time"

	"github.com/NexoJuridico/api-advocacia/internal/andamento"
	"github.com/NexoJuridico/api-advocacia/internal/contrato"
	"github.com/NexoJuridico/api-advocacia/internal/honorario"
	"gorm.io/gorm"
)

// Processo representa um caso jurídico do escritório, a raiz a que
// contratos, honorários e andamentos se vinculam.
type Processo struct {
	ID        uint           `gorm:"primaryKey" json:"processoId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	EscritorioID uint `gorm:"not null;index" json:"escritorioId"`
	AdvogadoID   uint `gorm:"index" json:"advogadoId"`

	Numero  string `gorm:"size:50" json:"numero"` // numeração CNJ
	Titulo  string `gorm:"size:255;not null" json:"titulo"`
	Cliente string `gorm:"size:255" json:"cliente"`
	Area    string `gorm:"size:100" json:"area"` // ex: "Cível", "Trabalhista"
	UF      string `gorm:"size:2" json:"uf"`

	Status      string `gorm:"size:50;default:'Ativo'" json:"status"`
	Observacoes string `gorm:"type:text" json:"observacoes"`

	Contratos  []contrato.Contrato   `gorm:"foreignKey:ProcessoID;constraint:OnDelete:CASCADE" json:"contratos"`
	Honorarios []honorario.Honorario `gorm:"foreignKey:ProcessoID;constraint:OnDelete:CASCADE" json:"honorarios"`

	Andamentos []andamento.Andamento `gorm:"foreignKey:ProcessoID" json:"andamentos"`
}

// Migrate cria a tabela no banco de dados e aplica relacionamentos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Processo{})
}
