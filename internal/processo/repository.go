package processo

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(p *Processo) error {
	return r.DB.Create(p).Error
}

func (r *Repository) FindByID(escritorioID, id uint) (*Processo, error) {
	var p Processo
	err := r.DB.
		Preload("Contratos").
		Preload("Honorarios").
		Preload("Andamentos").
		Where("id = ? AND escritorio_id = ?", id, escritorioID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) ListByEscritorio(escritorioID uint) ([]Processo, error) {
	var ps []Processo
	err := r.DB.
		Where("escritorio_id = ?", escritorioID).
		Order("created_at DESC").
		Find(&ps).Error
	return ps, err
}

func (r *Repository) Update(p *Processo) error {
	return r.DB.Save(p).Error
}

func (r *Repository) Delete(p *Processo) error {
	return r.DB.Select("Contratos", "Honorarios").Delete(p).Error
}
