package contrato

// CriarContratoDTO é o payload de criação vindo da UI.
type CriarContratoDTO struct {
	ClienteID uint   `json:"clienteId"`
	Titulo    string `json:"titulo"`
	Tipo      string `json:"tipo"`
	Descricao string `json:"descricao"`
}

// CriarItemDTO é o payload de item. Valor chega como string no formato
// pt-BR ("1.500,00") e é convertido por moeda.ParseValor.
type CriarItemDTO struct {
	Descricao      string `json:"descricao"`
	Tipo           string `json:"tipo"`
	Valor          string `json:"valor"`
	DataVencimento string `json:"dataVencimento"` // RFC3339
	NumeroParcela  int    `json:"numeroParcela"`
	TotalParcelas  int    `json:"totalParcelas"`
	Observacoes    string `json:"observacoes"`
}

// AtualizarStatusDTO é o payload de transição de status.
type AtualizarStatusDTO struct {
	Status string `json:"status"`
}
