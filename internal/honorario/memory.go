package honorario

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/NexoJuridico/api-advocacia/internal/apperrors"
	"github.com/NexoJuridico/api-advocacia/internal/honorarioitem"
	"github.com/NexoJuridico/api-advocacia/internal/parcela"
	"github.com/NexoJuridico/api-advocacia/internal/tenant"
	"github.com/NexoJuridico/api-advocacia/internal/transacao"
)

// MemStore é uma implementação de Store em memória, para testes e
// desenvolvimento local. EmTransacao executa direto, sem rollback.
type MemStore struct {
	mu         sync.Mutex
	proxID     uint
	Honorarios map[uint]*Honorario
	Itens      map[uint]*honorarioitem.HonorarioItem
	Parcelas   map[uint]*parcela.ParcelaHonorario
	Transacoes map[uint]*transacao.TransacaoFinanceira
}

func NewMemStore() *MemStore {
	return &MemStore{
		Honorarios: make(map[uint]*Honorario),
		Itens:      make(map[uint]*honorarioitem.HonorarioItem),
		Parcelas:   make(map[uint]*parcela.ParcelaHonorario),
		Transacoes: make(map[uint]*transacao.TransacaoFinanceira),
	}
}

func (s *MemStore) novoID() uint {
	s.proxID++
	return s.proxID
}

func (s *MemStore) EmTransacao(ctx context.Context, fn func(Store) error) error {
	return fn(s)
}

func (s *MemStore) BuscarHonorario(ctx context.Context, tc tenant.Context, id uint) (*Honorario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.Honorarios[id]
	if !ok || h.EscritorioID != tc.EscritorioID {
		return nil, apperrors.NaoEncontrado("honorário %d não encontrado", id)
	}
	copia := *h
	return &copia, nil
}

func (s *MemStore) CriarHonorario(ctx context.Context, h *Honorario) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	h.ID = s.novoID()
	copia := *h
	s.Honorarios[h.ID] = &copia
	return nil
}

func (s *MemStore) SalvarHonorario(ctx context.Context, h *Honorario) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copia := *h
	s.Honorarios[h.ID] = &copia
	return nil
}

func (s *MemStore) RemoverHonorario(ctx context.Context, h *Honorario) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Honorarios, h.ID)
	for id, it := range s.Itens {
		if it.HonorarioID != h.ID {
			continue
		}
		for pid, p := range s.Parcelas {
			if p.HonorarioItemID == id {
				delete(s.Parcelas, pid)
			}
		}
		delete(s.Itens, id)
	}
	return nil
}

func (s *MemStore) BuscarItem(ctx context.Context, itemID uint) (*honorarioitem.HonorarioItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.Itens[itemID]
	if !ok {
		return nil, apperrors.NaoEncontrado("item de honorário %d não encontrado", itemID)
	}
	copia := *it
	return &copia, nil
}

func (s *MemStore) CriarItem(ctx context.Context, item *honorarioitem.HonorarioItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.novoID()
	copia := *item
	s.Itens[item.ID] = &copia
	return nil
}

func (s *MemStore) ListarItens(ctx context.Context, honorarioID uint) ([]honorarioitem.HonorarioItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var itens []honorarioitem.HonorarioItem
	for _, it := range s.Itens {
		if it.HonorarioID == honorarioID {
			itens = append(itens, *it)
		}
	}
	sort.Slice(itens, func(i, j int) bool { return itens[i].ID < itens[j].ID })
	return itens, nil
}

func (s *MemStore) BuscarParcela(ctx context.Context, parcelaID uint) (*parcela.ParcelaHonorario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.Parcelas[parcelaID]
	if !ok {
		return nil, apperrors.NaoEncontrado("parcela %d não encontrada", parcelaID)
	}
	copia := *p
	return &copia, nil
}

func (s *MemStore) AtualizarStatusParcela(ctx context.Context, parcelaID uint, status string, dataPagamento time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.Parcelas[parcelaID]
	if !ok {
		return apperrors.NaoEncontrado("parcela %d não encontrada", parcelaID)
	}
	p.Status = status
	if status == parcela.StatusPaga {
		p.DataPagamento = &dataPagamento
	} else {
		p.DataPagamento = nil
	}
	return nil
}

func (s *MemStore) CriarParcela(ctx context.Context, p *parcela.ParcelaHonorario) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.novoID()
	copia := *p
	s.Parcelas[p.ID] = &copia
	return nil
}

func (s *MemStore) SalvarParcela(ctx context.Context, p *parcela.ParcelaHonorario) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copia := *p
	s.Parcelas[p.ID] = &copia
	return nil
}

func (s *MemStore) ListarParcelas(ctx context.Context, itemID uint) ([]parcela.ParcelaHonorario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ps []parcela.ParcelaHonorario
	for _, p := range s.Parcelas {
		if p.HonorarioItemID == itemID {
			ps = append(ps, *p)
		}
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i].ID < ps[j].ID })
	return ps, nil
}

func (s *MemStore) CriarTransacoes(ctx context.Context, ts []*transacao.TransacaoFinanceira) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range ts {
		for _, ex := range s.Transacoes {
			if ex.OrigemTipo == t.OrigemTipo && ex.OrigemID == t.OrigemID {
				return apperrors.Precondicao("título já gerado para %s %d", t.OrigemTipo, t.OrigemID)
			}
		}
		t.ID = s.novoID()
		copia := *t
		s.Transacoes[t.ID] = &copia
	}
	return nil
}

func (s *MemStore) ListarTransacoesPorOrigem(ctx context.Context, escritorioID uint, origemTipo string, origemIDs []uint) ([]transacao.TransacaoFinanceira, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	quer := make(map[uint]bool, len(origemIDs))
	for _, id := range origemIDs {
		quer[id] = true
	}
	var ts []transacao.TransacaoFinanceira
	for _, t := range s.Transacoes {
		if t.EscritorioID == escritorioID && t.OrigemTipo == origemTipo && quer[t.OrigemID] {
			ts = append(ts, *t)
		}
	}
	return ts, nil
}
