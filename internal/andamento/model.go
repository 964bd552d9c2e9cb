package andamento

import "gorm.io/gorm"

// Andamento é uma anotação datada no histórico de um processo.
type Andamento struct {
	gorm.Model
	Texto      string `json:"texto"`
	ProcessoID uint   `json:"processoId"`
	AutorID    uint   `json:"autorId"`
}
