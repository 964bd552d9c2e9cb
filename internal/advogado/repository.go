package advogado

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(a *Advogado) error {
	return r.DB.Create(a).Error
}

func (r *Repository) FindByID(escritorioID, id uint) (*Advogado, error) {
	var a Advogado
	err := r.DB.
		Where("id = ? AND escritorio_id = ?", id, escritorioID).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) FindByEmail(email string) (*Advogado, error) {
	var a Advogado
	if err := r.DB.Where("email = ?", email).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) ListByEscritorio(escritorioID uint) ([]Advogado, error) {
	var as []Advogado
	err := r.DB.
		Where("escritorio_id = ?", escritorioID).
		Order("nome ASC").
		Find(&as).Error
	return as, err
}

func (r *Repository) Update(a *Advogado) error {
	return r.DB.Save(a).Error
}

func (r *Repository) Delete(a *Advogado) error {
	return r.DB.Delete(a).Error
}
