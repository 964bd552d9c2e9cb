package advogado

type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type CriarAdvogadoDTO struct {
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	OAB       string `json:"oab"`
	Email     string `json:"email"`
	Telefone  string `json:"telefone"`
	Senha     string `json:"senha"`
	IsAdmin   bool   `json:"isAdmin"`
}
