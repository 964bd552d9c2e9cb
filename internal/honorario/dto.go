package honorario

// CriarHonorarioDTO é o payload de criação vindo da UI.
type CriarHonorarioDTO struct {
	Objeto      string `json:"objeto"`
	Observacoes string `json:"observacoes"`
}

// CriarItemDTO é o payload de item. Valores chegam como string no formato
// pt-BR e são convertidos por moeda.ParseValor.
type CriarItemDTO struct {
	Tipo            string `json:"tipo"`
	Descricao       string `json:"descricao"`
	ValorDefinido   string `json:"valorDefinido"`
	PercentualExito string `json:"percentualExito"`
	ValorCobrado    string `json:"valorCobrado"`
	ReferenciaOAB   string `json:"referenciaOab"`
	Observacoes     string `json:"observacoes"`
}

// CriarParcelaDTO é o payload de parcela.
type CriarParcelaDTO struct {
	Numero         int    `json:"numero"`
	Valor          string `json:"valor"`
	DataVencimento string `json:"dataVencimento"` // RFC3339
	Recorrente     bool   `json:"recorrente"`
}

// StatusParcelaDTO atualiza o acompanhamento de pagamento de uma parcela.
type StatusParcelaDTO struct {
	Status        string `json:"status"`
	DataPagamento string `json:"dataPagamento"` // RFC3339, opcional
}

// JustificativaDTO registra a justificativa de variação.
type JustificativaDTO struct {
	Justificativa string `json:"justificativa"`
}

// AssinaturaDTO captura a identidade do assinante.
type AssinaturaDTO struct {
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Metodo string `json:"metodo"`
}
