// internal/parcela/repository.go
package parcela

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de parcelas de honorário.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB retorna uma cópia do repo usando um *gorm.DB específico (ex.: tx).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

// CreateInBatch cria múltiplas parcelas de uma vez (ignora se vazio).
func (r *Repository) CreateInBatch(parcelas []*ParcelaHonorario) error {
	if len(parcelas) == 0 {
		return nil
	}
	return r.DB.Create(parcelas).Error
}

// Save grava a parcela inteira (inclui o vínculo com o título gerado).
func (r *Repository) Save(p *ParcelaHonorario) error {
	return r.DB.Save(p).Error
}

// FindByID busca uma única parcela pelo seu ID.
func (r *Repository) FindByID(id uint) (*ParcelaHonorario, error) {
	var p ParcelaHonorario
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByItemID busca todas as parcelas de um item, por vencimento.
func (r *Repository) ListByItemID(itemID uint) ([]ParcelaHonorario, error) {
	var parcelas []ParcelaHonorario
	err := r.DB.
		Where("honorario_item_id = ?", itemID).
		Order("data_vencimento ASC").
		Find(&parcelas).Error
	return parcelas, err
}

// UpdateStatus atualiza o status e ajusta data_pagamento.
// - Se status == "Paga", define data_pagamento = data informada.
// - Caso contrário, zera data_pagamento (NULL).
func (r *Repository) UpdateStatus(id uint, status string, dataPagamento time.Time) error {
	updates := map[string]interface{}{"status": status}
	if status == StatusPaga {
		updates["data_pagamento"] = &dataPagamento
	} else {
		updates["data_pagamento"] = nil
	}
	return r.DB.Model(&ParcelaHonorario{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// DeleteByID apaga a parcela; retorna gorm.ErrRecordNotFound se nada foi deletado.
func (r *Repository) DeleteByID(id uint) error {
	res := r.DB.Delete(&ParcelaHonorario{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SumValorByItemID soma os valores das parcelas de um item.
func (r *Repository) SumValorByItemID(db *gorm.DB, itemID uint) (decimal.Decimal, error) {
	if db == nil {
		db = r.DB
	}
	var total decimal.Decimal
	err := db.Model(&ParcelaHonorario{}).
		Where("honorario_item_id = ?", itemID).
		Select("COALESCE(SUM(valor), 0)").
		Scan(&total).Error
	return total, err
}
