// internal/honorarioitem/repository.go
package honorarioitem

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(item *HonorarioItem) error {
	return r.DB.Create(item).Error
}

func (r *Repository) FindByID(id uint) (*HonorarioItem, error) {
	var item HonorarioItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByHonorarioID busca todos os itens de um honorário, com parcelas.
func (r *Repository) ListByHonorarioID(honorarioID uint) ([]HonorarioItem, error) {
	var itens []HonorarioItem
	err := r.DB.
		Preload("Parcelas").
		Where("honorario_id = ?", honorarioID).
		Find(&itens).Error
	return itens, err
}

func (r *Repository) Update(item *HonorarioItem) error {
	return r.DB.Save(item).Error
}

func (r *Repository) Delete(item *HonorarioItem) error {
	return r.DB.Delete(item).Error
}
