// internal/contratoitem/repository.go
package contratoitem

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(item *ContratoItem) error {
	return r.DB.Create(item).Error
}

func (r *Repository) CreateMany(itens []*ContratoItem) error {
	if len(itens) == 0 {
		return nil
	}
	return r.DB.Create(itens).Error
}

func (r *Repository) FindByID(id uint) (*ContratoItem, error) {
	var item ContratoItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByContratoID busca todos os itens de um contrato, por vencimento.
func (r *Repository) ListByContratoID(contratoID uint) ([]ContratoItem, error) {
	var itens []ContratoItem
	err := r.DB.
		Where("contrato_id = ?", contratoID).
		Order("data_vencimento ASC").
		Find(&itens).Error
	return itens, err
}

func (r *Repository) Delete(item *ContratoItem) error {
	return r.DB.Delete(item).Error
}

// SumValorByContratoID soma os valores dos itens de um contrato.
func (r *Repository) SumValorByContratoID(db *gorm.DB, contratoID uint) (decimal.Decimal, error) {
	if db == nil {
		db = r.DB
	}
	var total decimal.Decimal
	err := db.Model(&ContratoItem{}).
		Where("contrato_id = ?", contratoID).
		Select("COALESCE(SUM(valor), 0)").
		Scan(&total).Error
	return total, err
}
