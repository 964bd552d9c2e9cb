package honorario

import (
	"context"
	"time"

	"github.com/NexoJuridico/api-advocacia/internal/apperrors"
	"github.com/NexoJuridico/api-advocacia/internal/honorarioitem"
	"github.com/NexoJuridico/api-advocacia/internal/moeda"
	"github.com/NexoJuridico/api-advocacia/internal/parcela"
	"github.com/NexoJuridico/api-advocacia/internal/tenant"
	"github.com/NexoJuridico/api-advocacia/internal/transacao"
	"github.com/shopspring/decimal"
)

// Store é o colaborador de persistência do workflow de honorários. Todas as
// escritas de uma operação acontecem dentro de EmTransacao: ou tudo é
// aplicado, ou nada.
type Store interface {
	EmTransacao(ctx context.Context, fn func(Store) error) error

	BuscarHonorario(ctx context.Context, tc tenant.Context, id uint) (*Honorario, error)
	CriarHonorario(ctx context.Context, h *Honorario) error
	SalvarHonorario(ctx context.Context, h *Honorario) error
	RemoverHonorario(ctx context.Context, h *Honorario) error

	BuscarItem(ctx context.Context, itemID uint) (*honorarioitem.HonorarioItem, error)
	CriarItem(ctx context.Context, item *honorarioitem.HonorarioItem) error
	ListarItens(ctx context.Context, honorarioID uint) ([]honorarioitem.HonorarioItem, error)

	BuscarParcela(ctx context.Context, parcelaID uint) (*parcela.ParcelaHonorario, error)
	CriarParcela(ctx context.Context, p *parcela.ParcelaHonorario) error
	SalvarParcela(ctx context.Context, p *parcela.ParcelaHonorario) error
	AtualizarStatusParcela(ctx context.Context, parcelaID uint, status string, dataPagamento time.Time) error
	ListarParcelas(ctx context.Context, itemID uint) ([]parcela.ParcelaHonorario, error)

	CriarTransacoes(ctx context.Context, ts []*transacao.TransacaoFinanceira) error
	ListarTransacoesPorOrigem(ctx context.Context, escritorioID uint, origemTipo string, origemIDs []uint) ([]transacao.TransacaoFinanceira, error)
}

// Notificador recebe alertas fora do caminho transacional. A implementação
// padrão envia um webhook; nos testes fica nil ou um registro em memória.
type Notificador interface {
	AlertaVariacao(honorarioID uint, variacao decimal.Decimal)
}

// Workflow implementa o ciclo de vida de honorários: itens tipados,
// parcelas, variação definido/cobrado e geração de títulos.
type Workflow struct {
	Store       Store
	Notificador Notificador
}

func NewWorkflow(store Store, n Notificador) *Workflow {
	return &Workflow{Store: store, Notificador: n}
}

// NovoHonorario são os dados de criação de um honorário.
type NovoHonorario struct {
	ProcessoID  uint   `json:"processoId"`
	Objeto      string `json:"objeto"`
	Observacoes string `json:"observacoes"`
}

// NovoItem são os dados de criação de um item de honorário.
type NovoItem struct {
	Tipo            string          `json:"tipo"`
	Descricao       string          `json:"descricao"`
	ValorDefinido   decimal.Decimal `json:"valorDefinido"`
	PercentualExito decimal.Decimal `json:"percentualExito"`
	ValorCobrado    decimal.Decimal `json:"valorCobrado"`
	ReferenciaOAB   string          `json:"referenciaOab"`
	Observacoes     string          `json:"observacoes"`
}

// NovaParcela são os dados de criação de uma parcela.
type NovaParcela struct {
	Numero         int             `json:"numero"`
	Valor          decimal.Decimal `json:"valor"`
	DataVencimento time.Time       `json:"dataVencimento"`
	Recorrente     bool            `json:"recorrente"`
}

// Assinatura identifica quem assinou e por qual meio.
type Assinatura struct {
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Metodo string `json:"metodo"`
}

// Criar registra um honorário em Rascunho.
func (w *Workflow) Criar(ctx context.Context, tc tenant.Context, n NovoHonorario) (*Honorario, error) {
	if err := tc.Valida(); err != nil {
		return nil, err
	}
	if n.ProcessoID == 0 {
		return nil, apperrors.Validacao("honorário precisa de um processo")
	}
	if n.Objeto == "" {
		return nil, apperrors.Validacao("objeto é obrigatório")
	}

	h := &Honorario{
		EscritorioID:  tc.EscritorioID,
		ProcessoID:    n.ProcessoID,
		Objeto:        n.Objeto,
		Observacoes:   n.Observacoes,
		Status:        StatusRascunho,
		ValorDefinido: decimal.Zero,
		ValorCobrado:  decimal.Zero,
	}
	if err := w.Store.CriarHonorario(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// AdicionarItem acrescenta um item tipado e recalcula os totais definido e
// cobrado. Sem valor cobrado informado, assume o definido. Se a cobrança
// resultante ficar além do limite de variação, dispara o alerta — a
// exigência de justificativa em si é cobrada na aprovação.
func (w *Workflow) AdicionarItem(ctx context.Context, tc tenant.Context, honorarioID uint, n NovoItem) (*honorarioitem.HonorarioItem, error) {
	if err := tc.Valida(); err != nil {
		return nil, err
	}
	if !honorarioitem.TipoValido(n.Tipo) {
		return nil, apperrors.Validacao("tipo de item inválido: %q", n.Tipo)
	}
	if n.Descricao == "" {
		return nil, apperrors.Validacao("descrição do item é obrigatória")
	}
	if n.Tipo == honorarioitem.TipoExito {
		if !n.PercentualExito.IsPositive() {
			return nil, apperrors.Validacao("item de êxito exige percentual positivo")
		}
	} else if n.ValorDefinido.IsNegative() {
		return nil, apperrors.Validacao("valor definido não pode ser negativo")
	}
	if n.ValorCobrado.IsNegative() {
		return nil, apperrors.Validacao("valor cobrado não pode ser negativo")
	}
	if n.ValorCobrado.IsZero() {
		n.ValorCobrado = n.ValorDefinido
	}

	var item *honorarioitem.HonorarioItem
	var h *Honorario
	err := w.Store.EmTransacao(ctx, func(s Store) error {
		var err error
		h, err = s.BuscarHonorario(ctx, tc, honorarioID)
		if err != nil {
			return err
		}
		if h.Status != StatusRascunho {
			return apperrors.Precondicao("itens não podem ser alterados com o honorário %s", h.Status)
		}

		item = &honorarioitem.HonorarioItem{
			HonorarioID:     h.ID,
			Tipo:            n.Tipo,
			Descricao:       n.Descricao,
			ValorDefinido:   n.ValorDefinido,
			PercentualExito: n.PercentualExito,
			ValorCobrado:    n.ValorCobrado,
			ReferenciaOAB:   n.ReferenciaOAB,
			Observacoes:     n.Observacoes,
		}
		if err := s.CriarItem(ctx, item); err != nil {
			return err
		}

		itens, err := s.ListarItens(ctx, h.ID)
		if err != nil {
			return err
		}
		h.ValorDefinido = moeda.SomarValores(itens, func(i honorarioitem.HonorarioItem) decimal.Decimal {
			return i.ValorDefinido
		})
		h.ValorCobrado = moeda.SomarValores(itens, func(i honorarioitem.HonorarioItem) decimal.Decimal {
			return i.ValorCobrado
		})
		return s.SalvarHonorario(ctx, h)
	})
	if err != nil {
		return nil, err
	}

	if w.Notificador != nil && !h.ValorDefinido.IsZero() {
		if v, err := moeda.CalcularVariacao(h.ValorDefinido, h.ValorCobrado); err == nil && moeda.ExigeJustificativa(v) {
			w.Notificador.AlertaVariacao(h.ID, v)
		}
	}
	return item, nil
}

// AdicionarParcela acrescenta uma parcela ao item. Só enquanto o honorário
// está em Rascunho.
func (w *Workflow) AdicionarParcela(ctx context.Context, tc tenant.Context, itemID uint, n NovaParcela) (*parcela.ParcelaHonorario, error) {
	if err := tc.Valida(); err != nil {
		return nil, err
	}
	if n.Numero <= 0 {
		return nil, apperrors.Validacao("número da parcela deve ser positivo")
	}
	if !n.Valor.IsPositive() {
		return nil, apperrors.Validacao("valor da parcela deve ser positivo")
	}

	var p *parcela.ParcelaHonorario
	err := w.Store.EmTransacao(ctx, func(s Store) error {
		item, err := s.BuscarItem(ctx, itemID)
		if err != nil {
			return err
		}
		h, err := s.BuscarHonorario(ctx, tc, item.HonorarioID)
		if err != nil {
			return err
		}
		if h.Status != StatusRascunho {
			return apperrors.Precondicao("parcelas não podem ser alteradas com o honorário %s", h.Status)
		}

		p = &parcela.ParcelaHonorario{
			HonorarioItemID: item.ID,
			Numero:          n.Numero,
			Valor:           n.Valor,
			DataVencimento:  n.DataVencimento,
			Status:          parcela.StatusPendente,
			Recorrente:      n.Recorrente,
		}
		return s.CriarParcela(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// AtualizarStatusParcela registra o acompanhamento de pagamento de uma
// parcela. Paga carimba a data de pagamento (agora, se não informada); os
// demais status a limpam.
func (w *Workflow) AtualizarStatusParcela(ctx context.Context, tc tenant.Context, parcelaID uint, status string, dataPagamento time.Time) error {
	if err := tc.Valida(); err != nil {
		return err
	}
	switch status {
	case parcela.StatusPendente, parcela.StatusVencida, parcela.StatusPaga, parcela.StatusCancelada:
	default:
		return apperrors.Validacao("status de parcela inválido: %q", status)
	}

	return w.Store.EmTransacao(ctx, func(s Store) error {
		p, err := s.BuscarParcela(ctx, parcelaID)
		if err != nil {
			return err
		}
		item, err := s.BuscarItem(ctx, p.HonorarioItemID)
		if err != nil {
			return err
		}
		if _, err := s.BuscarHonorario(ctx, tc, item.HonorarioID); err != nil {
			return err
		}
		if status == parcela.StatusPaga && dataPagamento.IsZero() {
			dataPagamento = time.Now()
		}
		return s.AtualizarStatusParcela(ctx, p.ID, status, dataPagamento)
	})
}

// RegistrarJustificativa grava a justificativa de variação exigida quando a
// cobrança fica além do limite abaixo do definido.
func (w *Workflow) RegistrarJustificativa(ctx context.Context, tc tenant.Context, honorarioID uint, texto string) error {
	if err := tc.Valida(); err != nil {
		return err
	}
	if texto == "" {
		return apperrors.Validacao("justificativa não pode ser vazia")
	}
	return w.Store.EmTransacao(ctx, func(s Store) error {
		h, err := s.BuscarHonorario(ctx, tc, honorarioID)
		if err != nil {
			return err
		}
		if h.Status != StatusRascunho {
			return apperrors.Precondicao("justificativa só pode ser registrada em Rascunho")
		}
		h.JustificativaVariacao = texto
		return s.SalvarHonorario(ctx, h)
	})
}

// MarcarDocumentoGerado registra que o documento formal do honorário foi
// gerado. A aprovação depende disso.
func (w *Workflow) MarcarDocumentoGerado(ctx context.Context, tc tenant.Context, honorarioID uint) error {
	if err := tc.Valida(); err != nil {
		return err
	}
	return w.Store.EmTransacao(ctx, func(s Store) error {
		h, err := s.BuscarHonorario(ctx, tc, honorarioID)
		if err != nil {
			return err
		}
		if h.Status != StatusRascunho {
			return apperrors.Precondicao("documento formal só pode ser gerado em Rascunho")
		}
		h.DocumentoFormalGerado = true
		return s.SalvarHonorario(ctx, h)
	})
}

// Aprovar transiciona Rascunho -> Aprovado. Exige o documento formal gerado
// e, quando a variação passa do limite, justificativa registrada.
func (w *Workflow) Aprovar(ctx context.Context, tc tenant.Context, honorarioID uint) (*Honorario, error) {
	if err := tc.Valida(); err != nil {
		return nil, err
	}

	var h *Honorario
	err := w.Store.EmTransacao(ctx, func(s Store) error {
		var err error
		h, err = s.BuscarHonorario(ctx, tc, honorarioID)
		if err != nil {
			return err
		}
		if !TransicaoPermitida(h.Status, StatusAprovado) {
			return apperrors.TransicaoInvalida("honorário não pode ir de %s para %s", h.Status, StatusAprovado)
		}
		if !h.DocumentoFormalGerado {
			return apperrors.Precondicao("aprovação exige o documento formal gerado")
		}
		if !h.ValorDefinido.IsZero() {
			v, err := moeda.CalcularVariacao(h.ValorDefinido, h.ValorCobrado)
			if err != nil {
				return err
			}
			if moeda.ExigeJustificativa(v) && h.JustificativaVariacao == "" {
				return apperrors.Precondicao("variação de %s%% exige justificativa registrada", v.StringFixed(2))
			}
		}

		agora := time.Now()
		h.Status = StatusAprovado
		h.DataAprovacao = &agora
		return s.SalvarHonorario(ctx, h)
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Assinar transiciona Aprovado -> Assinado e grava a identidade do
// assinante.
func (w *Workflow) Assinar(ctx context.Context, tc tenant.Context, honorarioID uint, a Assinatura) (*Honorario, error) {
	if err := tc.Valida(); err != nil {
		return nil, err
	}
	if a.Nome == "" {
		return nil, apperrors.Validacao("nome do assinante é obrigatório")
	}
	if a.Email == "" {
		return nil, apperrors.Validacao("email do assinante é obrigatório")
	}

	var h *Honorario
	err := w.Store.EmTransacao(ctx, func(s Store) error {
		var err error
		h, err = s.BuscarHonorario(ctx, tc, honorarioID)
		if err != nil {
			return err
		}
		if !TransicaoPermitida(h.Status, StatusAssinado) {
			return apperrors.TransicaoInvalida("honorário não pode ir de %s para %s", h.Status, StatusAssinado)
		}

		agora := time.Now()
		h.Status = StatusAssinado
		h.NomeAssinante = a.Nome
		h.EmailAssinante = a.Email
		h.MetodoAssinatura = a.Metodo
		h.DataAssinatura = &agora
		return s.SalvarHonorario(ctx, h)
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Cancelar transiciona Rascunho ou Aprovado -> Cancelado.
func (w *Workflow) Cancelar(ctx context.Context, tc tenant.Context, honorarioID uint) (*Honorario, error) {
	if err := tc.Valida(); err != nil {
		return nil, err
	}

	var h *Honorario
	err := w.Store.EmTransacao(ctx, func(s Store) error {
		var err error
		h, err = s.BuscarHonorario(ctx, tc, honorarioID)
		if err != nil {
			return err
		}
		if !TransicaoPermitida(h.Status, StatusCancelado) {
			return apperrors.TransicaoInvalida("honorário não pode ir de %s para %s", h.Status, StatusCancelado)
		}
		h.Status = StatusCancelado
		return s.SalvarHonorario(ctx, h)
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}

// GerarTitulosFinanceiros cria um título no razão para cada parcela de cada
// item que ainda não tem um, e liga a parcela ao título criado. Só roda com
// o honorário Assinado. Para cada item com parcelas, a soma das parcelas
// deve fechar com o valor cobrado do item; divergência aborta tudo.
// Idempotente: a segunda chamada devolve zero. Retorna quantos títulos
// foram criados nesta chamada.
func (w *Workflow) GerarTitulosFinanceiros(ctx context.Context, tc tenant.Context, honorarioID uint) (int, error) {
	if err := tc.Valida(); err != nil {
		return 0, err
	}

	gerados := 0
	err := w.Store.EmTransacao(ctx, func(s Store) error {
		h, err := s.BuscarHonorario(ctx, tc, honorarioID)
		if err != nil {
			return err
		}
		if h.Status != StatusAssinado {
			return apperrors.Precondicao("geração de títulos exige honorário Assinado, está %s", h.Status)
		}

		itens, err := s.ListarItens(ctx, h.ID)
		if err != nil {
			return err
		}

		for _, item := range itens {
			parcelas, err := s.ListarParcelas(ctx, item.ID)
			if err != nil {
				return err
			}
			if len(parcelas) == 0 {
				continue
			}

			soma := moeda.SomarValores(parcelas, func(p parcela.ParcelaHonorario) decimal.Decimal {
				return p.Valor
			})
			if !soma.Equal(item.ValorCobrado) {
				return apperrors.Precondicao(
					"parcelas do item %q somam %s, valor cobrado é %s",
					item.Descricao, soma.StringFixed(2), item.ValorCobrado.StringFixed(2))
			}

			ids := make([]uint, 0, len(parcelas))
			for _, p := range parcelas {
				ids = append(ids, p.ID)
			}
			existentes, err := s.ListarTransacoesPorOrigem(ctx, tc.EscritorioID, transacao.OrigemParcelaHonorario, ids)
			if err != nil {
				return err
			}
			jaGerado := make(map[uint]bool, len(existentes))
			for _, t := range existentes {
				jaGerado[t.OrigemID] = true
			}

			for i := range parcelas {
				p := &parcelas[i]
				if jaGerado[p.ID] {
					continue
				}
				t := &transacao.TransacaoFinanceira{
					EscritorioID:   tc.EscritorioID,
					ProcessoID:     h.ProcessoID,
					Descricao:      "Honorário - " + item.Descricao,
					Tipo:           transacao.TipoReceita,
					Valor:          p.Valor,
					DataVencimento: p.DataVencimento,
					OrigemTipo:     transacao.OrigemParcelaHonorario,
					OrigemID:       p.ID,
				}
				if err := s.CriarTransacoes(ctx, []*transacao.TransacaoFinanceira{t}); err != nil {
					return err
				}
				p.TransacaoID = &t.ID
				if err := s.SalvarParcela(ctx, p); err != nil {
					return err
				}
				gerados++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return gerados, nil
}

// Remover apaga o honorário e, em cascata, itens e parcelas. Honorários
// assinados não podem ser removidos.
func (w *Workflow) Remover(ctx context.Context, tc tenant.Context, honorarioID uint) error {
	if err := tc.Valida(); err != nil {
		return err
	}
	return w.Store.EmTransacao(ctx, func(s Store) error {
		h, err := s.BuscarHonorario(ctx, tc, honorarioID)
		if err != nil {
			return err
		}
		if h.Status == StatusAssinado {
			return apperrors.Precondicao("honorário assinado não pode ser removido")
		}
		return s.RemoverHonorario(ctx, h)
	})
}
