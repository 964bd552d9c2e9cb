package honorario

import (
	"context"
	"errors"
	"time"

	"github.com/NexoJuridico/api-advocacia/internal/apperrors"
	"github.com/NexoJuridico/api-advocacia/internal/honorarioitem"
	"github.com/NexoJuridico/api-advocacia/internal/parcela"
	"github.com/NexoJuridico/api-advocacia/internal/tenant"
	"github.com/NexoJuridico/api-advocacia/internal/transacao"
	"gorm.io/gorm"
)

// GormStore implementa Store sobre o Postgres via gorm.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// EmTransacao roda fn dentro de uma transação do banco; o Store entregue à
// fn escreve na transação, não na conexão raiz.
func (s *GormStore) EmTransacao(ctx context.Context, fn func(Store) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{DB: tx})
	})
}

func (s *GormStore) BuscarHonorario(ctx context.Context, tc tenant.Context, id uint) (*Honorario, error) {
	var h Honorario
	err := s.DB.WithContext(ctx).
		Where("id = ? AND escritorio_id = ?", id, tc.EscritorioID).
		First(&h).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NaoEncontrado("honorário %d não encontrado", id)
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *GormStore) CriarHonorario(ctx context.Context, h *Honorario) error {
	return s.DB.WithContext(ctx).Create(h).Error
}

func (s *GormStore) SalvarHonorario(ctx context.Context, h *Honorario) error {
	return s.DB.WithContext(ctx).Save(h).Error
}

func (s *GormStore) RemoverHonorario(ctx context.Context, h *Honorario) error {
	return s.DB.WithContext(ctx).Select("Itens").Delete(h).Error
}

func (s *GormStore) BuscarItem(ctx context.Context, itemID uint) (*honorarioitem.HonorarioItem, error) {
	item, err := honorarioitem.NewRepository(s.DB.WithContext(ctx)).FindByID(itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NaoEncontrado("item de honorário %d não encontrado", itemID)
	}
	return item, err
}

func (s *GormStore) CriarItem(ctx context.Context, item *honorarioitem.HonorarioItem) error {
	return honorarioitem.NewRepository(s.DB.WithContext(ctx)).Create(item)
}

func (s *GormStore) ListarItens(ctx context.Context, honorarioID uint) ([]honorarioitem.HonorarioItem, error) {
	return honorarioitem.NewRepository(s.DB.WithContext(ctx)).ListByHonorarioID(honorarioID)
}

func (s *GormStore) BuscarParcela(ctx context.Context, parcelaID uint) (*parcela.ParcelaHonorario, error) {
	p, err := parcela.NewRepository(s.DB.WithContext(ctx)).FindByID(parcelaID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NaoEncontrado("parcela %d não encontrada", parcelaID)
	}
	return p, err
}

func (s *GormStore) CriarParcela(ctx context.Context, p *parcela.ParcelaHonorario) error {
	return parcela.NewRepository(s.DB.WithContext(ctx)).CreateInBatch([]*parcela.ParcelaHonorario{p})
}

func (s *GormStore) SalvarParcela(ctx context.Context, p *parcela.ParcelaHonorario) error {
	return parcela.NewRepository(s.DB.WithContext(ctx)).Save(p)
}

func (s *GormStore) AtualizarStatusParcela(ctx context.Context, parcelaID uint, status string, dataPagamento time.Time) error {
	return parcela.NewRepository(s.DB.WithContext(ctx)).UpdateStatus(parcelaID, status, dataPagamento)
}

func (s *GormStore) ListarParcelas(ctx context.Context, itemID uint) ([]parcela.ParcelaHonorario, error) {
	return parcela.NewRepository(s.DB.WithContext(ctx)).ListByItemID(itemID)
}

func (s *GormStore) CriarTransacoes(ctx context.Context, ts []*transacao.TransacaoFinanceira) error {
	return transacao.NewRepository(s.DB.WithContext(ctx)).CreateInBatch(ts)
}

func (s *GormStore) ListarTransacoesPorOrigem(ctx context.Context, escritorioID uint, origemTipo string, origemIDs []uint) ([]transacao.TransacaoFinanceira, error) {
	return transacao.NewRepository(s.DB.WithContext(ctx)).ListByOrigem(escritorioID, origemTipo, origemIDs)
}

// ListarPorProcesso busca os honorários de um processo, com itens e
// parcelas pré-carregados.
func (s *GormStore) ListarPorProcesso(ctx context.Context, tc tenant.Context, processoID uint) ([]Honorario, error) {
	var hs []Honorario
	err := s.DB.WithContext(ctx).
		Preload("Itens.Parcelas").
		Preload("Itens").
		Where("processo_id = ? AND escritorio_id = ?", processoID, tc.EscritorioID).
		Find(&hs).Error
	return hs, err
}
