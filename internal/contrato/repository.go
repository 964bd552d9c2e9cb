package contrato

import (
	"context"
	"errors"

	"github.com/NexoJuridico/api-advocacia/internal/apperrors"
	"github.com/NexoJuridico/api-advocacia/internal/contratoitem"
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

func (s *GormStore) BuscarContrato(ctx context.Context, tc tenant.Context, id uint) (*Contrato, error) {
	var c Contrato
	err := s.DB.WithContext(ctx).
		Where("id = ? AND escritorio_id = ?", id, tc.EscritorioID).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NaoEncontrado("contrato %d não encontrado", id)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *GormStore) CriarContrato(ctx context.Context, c *Contrato) error {
	return s.DB.WithContext(ctx).Create(c).Error
}

func (s *GormStore) SalvarContrato(ctx context.Context, c *Contrato) error {
	return s.DB.WithContext(ctx).Save(c).Error
}

func (s *GormStore) RemoverContrato(ctx context.Context, c *Contrato) error {
	return s.DB.WithContext(ctx).Select("Itens").Delete(c).Error
}

func (s *GormStore) CriarItem(ctx context.Context, item *contratoitem.ContratoItem) error {
	return contratoitem.NewRepository(s.DB.WithContext(ctx)).Create(item)
}

func (s *GormStore) ListarItens(ctx context.Context, contratoID uint) ([]contratoitem.ContratoItem, error) {
	return contratoitem.NewRepository(s.DB.WithContext(ctx)).ListByContratoID(contratoID)
}

func (s *GormStore) CriarTransacoes(ctx context.Context, ts []*transacao.TransacaoFinanceira) error {
	return transacao.NewRepository(s.DB.WithContext(ctx)).CreateInBatch(ts)
}

func (s *GormStore) ListarTransacoesPorOrigem(ctx context.Context, escritorioID uint, origemTipo string, origemIDs []uint) ([]transacao.TransacaoFinanceira, error) {
	return transacao.NewRepository(s.DB.WithContext(ctx)).ListByOrigem(escritorioID, origemTipo, origemIDs)
}

// ListarPorProcesso busca os contratos de um processo, com itens.
func (s *GormStore) ListarPorProcesso(ctx context.Context, tc tenant.Context, processoID uint) ([]Contrato, error) {
	var cs []Contrato
	err := s.DB.WithContext(ctx).
		Preload("Itens").
		Where("processo_id = ? AND escritorio_id = ?", processoID, tc.EscritorioID).
		Find(&cs).Error
	return cs, err
}
