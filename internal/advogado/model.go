package advogado

import (
	"time"

	"gorm.io/gorm"
)

// Advogado é um usuário do escritório. A senha é armazenada como hash
// bcrypt e nunca exposta no JSON.
type Advogado struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	EscritorioID uint `gorm:"not null;index" json:"escritorioId"`

	Nome      string `gorm:"size:100;not null" json:"nome"`
	Sobrenome string `gorm:"size:100" json:"sobrenome"`
	OAB       string `gorm:"size:20" json:"oab"`
	Email     string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Telefone  string `gorm:"size:20" json:"telefone"`
	Senha     string `gorm:"size:255;not null" json:"-"`
	IsAdmin   bool   `gorm:"default:false" json:"isAdmin"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Advogado{})
}
