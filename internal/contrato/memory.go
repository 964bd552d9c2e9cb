package contrato

import (
	"context"
	"sync"

	"github.com/NexoJuridico/api-advocacia/internal/apperrors"
	"github.com/NexoJuridico/api-advocacia/internal/contratoitem"
	"github.com/NexoJuridico/api-advocacia/internal/tenant"
	"github.com/NexoJuridico/api-advocacia/internal/transacao"
)

// MemStore é uma implementação de Store em memória, para testes e
// desenvolvimento local. EmTransacao executa direto, sem rollback.
type MemStore struct {
	mu         sync.Mutex
	proxID     uint
	Contratos  map[uint]*Contrato
	Itens      map[uint]*contratoitem.ContratoItem
	Transacoes map[uint]*transacao.TransacaoFinanceira
}

func NewMemStore() *MemStore {
	return &MemStore{
		Contratos:  make(map[uint]*Contrato),
		Itens:      make(map[uint]*contratoitem.ContratoItem),
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

func (s *MemStore) BuscarContrato(ctx context.Context, tc tenant.Context, id uint) (*Contrato, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.Contratos[id]
	if !ok || c.EscritorioID != tc.EscritorioID {
		return nil, apperrors.NaoEncontrado("contrato %d não encontrado", id)
	}
	copia := *c
	return &copia, nil
}

func (s *MemStore) CriarContrato(ctx context.Context, c *Contrato) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.novoID()
	copia := *c
	s.Contratos[c.ID] = &copia
	return nil
}

func (s *MemStore) SalvarContrato(ctx context.Context, c *Contrato) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copia := *c
	s.Contratos[c.ID] = &copia
	return nil
}

func (s *MemStore) RemoverContrato(ctx context.Context, c *Contrato) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Contratos, c.ID)
	for id, it := range s.Itens {
		if it.ContratoID == c.ID {
			delete(s.Itens, id)
		}
	}
	return nil
}

func (s *MemStore) CriarItem(ctx context.Context, item *contratoitem.ContratoItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.novoID()
	copia := *item
	s.Itens[item.ID] = &copia
	return nil
}

func (s *MemStore) ListarItens(ctx context.Context, contratoID uint) ([]contratoitem.ContratoItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var itens []contratoitem.ContratoItem
	for _, it := range s.Itens {
		if it.ContratoID == contratoID {
			itens = append(itens, *it)
		}
	}
	return itens, nil
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
