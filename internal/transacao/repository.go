// internal/transacao/repository.go
package transacao

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados do razão financeiro.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// CreateInBatch cria múltiplos títulos de uma vez (ignora se vazio).
func (r *Repository) CreateInBatch(ts []*TransacaoFinanceira) error {
	if len(ts) == 0 {
		return nil
	}
	return r.DB.Create(ts).Error
}

// FindByID busca um único título pelo seu ID.
func (r *Repository) FindByID(id uint) (*TransacaoFinanceira, error) {
	var t TransacaoFinanceira
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// ListByOrigem busca os títulos já gerados para um conjunto de origens.
func (r *Repository) ListByOrigem(escritorioID uint, origemTipo string, origemIDs []uint) ([]TransacaoFinanceira, error) {
	if len(origemIDs) == 0 {
		return nil, nil
	}
	var ts []TransacaoFinanceira
	err := r.DB.
		Where("escritorio_id = ? AND origem_tipo = ? AND origem_id IN ?", escritorioID, origemTipo, origemIDs).
		Find(&ts).Error
	return ts, err
}

// ListByProcesso busca todos os títulos de um processo, por vencimento.
func (r *Repository) ListByProcesso(escritorioID, processoID uint) ([]TransacaoFinanceira, error) {
	var ts []TransacaoFinanceira
	err := r.DB.
		Where("escritorio_id = ? AND processo_id = ?", escritorioID, processoID).
		Order("data_vencimento ASC").
		Find(&ts).Error
	return ts, err
}

// SumValorByProcesso soma os valores dos títulos de um processo.
func (r *Repository) SumValorByProcesso(escritorioID, processoID uint) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.DB.Model(&TransacaoFinanceira{}).
		Where("escritorio_id = ? AND processo_id = ?", escritorioID, processoID).
		Select("COALESCE(SUM(valor), 0)").
		Scan(&total).Error
	return total, err
}
