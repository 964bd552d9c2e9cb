package contrato

import (
	"context"
	"time"

	"github.com/NexoJuridico/api-advocacia/internal/apperrors"
	"github.com/NexoJuridico/api-advocacia/internal/contratoitem"
	"github.com/NexoJuridico/api-advocacia/internal/moeda"
	"github.com/NexoJuridico/api-advocacia/internal/tenant"
	"github.com/NexoJuridico/api-advocacia/internal/transacao"
	"github.com/shopspring/decimal"
)

// Store é o colaborador de persistência do workflow de contratos. Todas as
// escritas de uma operação acontecem dentro de EmTransacao: ou tudo é
// aplicado, ou nada.
type Store interface {
	EmTransacao(ctx context.Context, fn func(Store) error) error

	BuscarContrato(ctx context.Context, tc tenant.Context, id uint) (*Contrato, error)
	CriarContrato(ctx context.Context, c *Contrato) error
	SalvarContrato(ctx context.Context, c *Contrato) error
	RemoverContrato(ctx context.Context, c *Contrato) error

	CriarItem(ctx context.Context, item *contratoitem.ContratoItem) error
	ListarItens(ctx context.Context, contratoID uint) ([]contratoitem.ContratoItem, error)

	CriarTransacoes(ctx context.Context, ts []*transacao.TransacaoFinanceira) error
	ListarTransacoesPorOrigem(ctx context.Context, escritorioID uint, origemTipo string, origemIDs []uint) ([]transacao.TransacaoFinanceira, error)
}

// Workflow implementa o ciclo de vida de contratos e a geração de títulos
// financeiros derivados dos itens.
type Workflow struct {
	Store Store
}

func NewWorkflow(store Store) *Workflow {
	return &Workflow{Store: store}
}

// NovoContrato são os dados de criação de um contrato.
type NovoContrato struct {
	ProcessoID uint   `json:"processoId"`
	ClienteID  uint   `json:"clienteId"`
	Titulo     string `json:"titulo"`
	Tipo       string `json:"tipo"`
	Descricao  string `json:"descricao"`
}

// NovoItem são os dados de criação de uma linha do contrato.
type NovoItem struct {
	Descricao      string          `json:"descricao"`
	Tipo           string          `json:"tipo"`
	Valor          decimal.Decimal `json:"valor"`
	DataVencimento time.Time       `json:"dataVencimento"`
	NumeroParcela  int             `json:"numeroParcela"`
	TotalParcelas  int             `json:"totalParcelas"`
	Observacoes    string          `json:"observacoes"`
}

// Criar registra um contrato em Rascunho.
func (w *Workflow) Criar(ctx context.Context, tc tenant.Context, n NovoContrato) (*Contrato, error) {
	if err := tc.Valida(); err != nil {
		return nil, err
	}
	if n.ProcessoID == 0 {
		return nil, apperrors.Validacao("contrato precisa de um processo")
	}
	if n.Titulo == "" {
		return nil, apperrors.Validacao("título é obrigatório")
	}
	if !TipoValido(n.Tipo) {
		return nil, apperrors.Validacao("tipo de contrato inválido: %q", n.Tipo)
	}
	if n.ClienteID == 0 {
		return nil, apperrors.Validacao("cliente é obrigatório")
	}

	c := &Contrato{
		EscritorioID: tc.EscritorioID,
		ProcessoID:   n.ProcessoID,
		ClienteID:    n.ClienteID,
		Titulo:       n.Titulo,
		Tipo:         n.Tipo,
		Descricao:    n.Descricao,
		Status:       StatusRascunho,
		ValorTotal:   decimal.Zero,
	}
	if err := w.Store.CriarContrato(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// AdicionarItem acrescenta uma linha ao contrato e recalcula o valor total.
// Itens só podem ser editados enquanto o contrato está em Rascunho ou
// Enviado; a partir da aprovação os valores congelam.
func (w *Workflow) AdicionarItem(ctx context.Context, tc tenant.Context, contratoID uint, n NovoItem) (*contratoitem.ContratoItem, error) {
	if err := tc.Valida(); err != nil {
		return nil, err
	}
	if n.Descricao == "" {
		return nil, apperrors.Validacao("descrição do item é obrigatória")
	}
	if n.Tipo != transacao.TipoReceita && n.Tipo != transacao.TipoDespesa {
		return nil, apperrors.Validacao("tipo de item inválido: %q", n.Tipo)
	}
	if n.Valor.IsNegative() {
		return nil, apperrors.Validacao("valor do item não pode ser negativo")
	}
	if n.NumeroParcela <= 0 {
		n.NumeroParcela = 1
	}
	if n.TotalParcelas <= 0 {
		n.TotalParcelas = 1
	}

	var item *contratoitem.ContratoItem
	err := w.Store.EmTransacao(ctx, func(s Store) error {
		c, err := s.BuscarContrato(ctx, tc, contratoID)
		if err != nil {
			return err
		}
		if c.Status != StatusRascunho && c.Status != StatusEnviado {
			return apperrors.Precondicao("itens não podem ser alterados com o contrato %s", c.Status)
		}

		item = &contratoitem.ContratoItem{
			ContratoID:     c.ID,
			Descricao:      n.Descricao,
			Tipo:           n.Tipo,
			Valor:          n.Valor,
			DataVencimento: n.DataVencimento,
			NumeroParcela:  n.NumeroParcela,
			TotalParcelas:  n.TotalParcelas,
			Observacoes:    n.Observacoes,
		}
		if err := s.CriarItem(ctx, item); err != nil {
			return err
		}

		itens, err := s.ListarItens(ctx, c.ID)
		if err != nil {
			return err
		}
		c.ValorTotal = moeda.SomarValores(itens, func(i contratoitem.ContratoItem) decimal.Decimal {
			return i.Valor
		})
		return s.SalvarContrato(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// AtualizarStatus move o contrato ao longo da tabela de transições e carimba
// a data correspondente ao novo estado.
func (w *Workflow) AtualizarStatus(ctx context.Context, tc tenant.Context, contratoID uint, novoStatus string) (*Contrato, error) {
	if err := tc.Valida(); err != nil {
		return nil, err
	}

	var c *Contrato
	err := w.Store.EmTransacao(ctx, func(s Store) error {
		var err error
		c, err = s.BuscarContrato(ctx, tc, contratoID)
		if err != nil {
			return err
		}
		if !TransicaoPermitida(c.Status, novoStatus) {
			return apperrors.TransicaoInvalida("contrato não pode ir de %s para %s", c.Status, novoStatus)
		}

		agora := time.Now()
		switch novoStatus {
		case StatusEnviado:
			c.DataEnvio = &agora
		case StatusAprovado:
			c.DataAprovacao = &agora
		case StatusAssinado:
			c.DataAssinatura = &agora
		}
		c.Status = novoStatus
		return s.SalvarContrato(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Remover apaga o contrato e, em cascata, seus itens. Contratos assinados
// não podem ser removidos; seria preciso um aditivo, não modelado aqui.
func (w *Workflow) Remover(ctx context.Context, tc tenant.Context, contratoID uint) error {
	if err := tc.Valida(); err != nil {
		return err
	}
	return w.Store.EmTransacao(ctx, func(s Store) error {
		c, err := s.BuscarContrato(ctx, tc, contratoID)
		if err != nil {
			return err
		}
		if c.Status == StatusAssinado {
			return apperrors.Precondicao("contrato assinado não pode ser removido")
		}
		return s.RemoverContrato(ctx, c)
	})
}

// GerarTransacoesFinanceiras cria um título no razão para cada item do
// contrato que ainda não tem um. Só roda com o contrato Aprovado ou
// Assinado. Idempotente: a segunda chamada não duplica títulos e devolve
// zero. Retorna quantos títulos foram criados nesta chamada.
func (w *Workflow) GerarTransacoesFinanceiras(ctx context.Context, tc tenant.Context, contratoID uint) (int, error) {
	if err := tc.Valida(); err != nil {
		return 0, err
	}

	gerados := 0
	err := w.Store.EmTransacao(ctx, func(s Store) error {
		c, err := s.BuscarContrato(ctx, tc, contratoID)
		if err != nil {
			return err
		}
		if c.Status != StatusAprovado && c.Status != StatusAssinado {
			return apperrors.Precondicao("geração de títulos exige contrato Aprovado ou Assinado, está %s", c.Status)
		}

		itens, err := s.ListarItens(ctx, c.ID)
		if err != nil {
			return err
		}
		if len(itens) == 0 {
			return nil
		}

		ids := make([]uint, 0, len(itens))
		for _, it := range itens {
			ids = append(ids, it.ID)
		}
		existentes, err := s.ListarTransacoesPorOrigem(ctx, tc.EscritorioID, transacao.OrigemContratoItem, ids)
		if err != nil {
			return err
		}
		jaGerado := make(map[uint]bool, len(existentes))
		for _, t := range existentes {
			jaGerado[t.OrigemID] = true
		}

		var novos []*transacao.TransacaoFinanceira
		for _, it := range itens {
			if jaGerado[it.ID] {
				continue
			}
			novos = append(novos, &transacao.TransacaoFinanceira{
				EscritorioID:   tc.EscritorioID,
				ProcessoID:     c.ProcessoID,
				ClienteID:      c.ClienteID,
				Descricao:      c.Titulo + " - " + it.Descricao,
				Tipo:           it.Tipo,
				Valor:          it.Valor,
				DataVencimento: it.DataVencimento,
				OrigemTipo:     transacao.OrigemContratoItem,
				OrigemID:       it.ID,
			})
		}
		if err := s.CriarTransacoes(ctx, novos); err != nil {
			return err
		}
		gerados = len(novos)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return gerados, nil
}
