package andamento

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, a *Andamento) error
	ListarPorProcesso(db *gorm.DB, processoID uint) ([]Andamento, error)
	BuscarPorID(db *gorm.DB, id uint) (*Andamento, error)
	Atualizar(db *gorm.DB, id uint, novoTexto string) error
	Remover(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, a *Andamento) error {
	return db.Create(a).Error
}

func (r *repositoryImpl) ListarPorProcesso(db *gorm.DB, processoID uint) ([]Andamento, error) {
	var as []Andamento
	err := db.Where("processo_id = ?", processoID).Order("created_at DESC").Find(&as).Error
	return as, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Andamento, error) {
	var a Andamento
	err := db.First(&a, id).Error
	return &a, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novoTexto string) error {
	return db.Model(&Andamento{}).Where("id = ?", id).Update("texto", novoTexto).Error
}

func (r *repositoryImpl) Remover(db *gorm.DB, id uint) error {
	return db.Delete(&Andamento{}, id).Error
}
