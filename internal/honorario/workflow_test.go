package honorario

import (
	"context"
	"testing"
	"time"

	"github.com/NexoJuridico/api-advocacia/internal/apperrors"
	"github.com/NexoJuridico/api-advocacia/internal/honorarioitem"
	"github.com/NexoJuridico/api-advocacia/internal/tenant"
	"github.com/shopspring/decimal"
)

var tcTeste = tenant.Context{EscritorioID: 1, UsuarioID: 7}

type notificadorFake struct {
	chamadas []decimal.Decimal
}

func (n *notificadorFake) AlertaVariacao(honorarioID uint, variacao decimal.Decimal) {
	n.chamadas = append(n.chamadas, variacao)
}

func novoHonorarioValido(t *testing.T, wf *Workflow) *Honorario {
	t.Helper()
	h, err := wf.Criar(context.Background(), tcTeste, NovoHonorario{
		ProcessoID: 10,
		Objeto:     "Defesa em ação trabalhista",
	})
	if err != nil {
		t.Fatalf("Criar: %v", err)
	}
	return h
}

func TestCriarValidacoes(t *testing.T) {
	wf := NewWorkflow(NewMemStore(), nil)
	ctx := context.Background()

	if _, err := wf.Criar(ctx, tcTeste, NovoHonorario{ProcessoID: 1}); !apperrors.EKind(err, apperrors.KindValidacao) {
		t.Errorf("sem objeto: %v", err)
	}
	if _, err := wf.Criar(ctx, tcTeste, NovoHonorario{Objeto: "x"}); !apperrors.EKind(err, apperrors.KindValidacao) {
		t.Errorf("sem processo: %v", err)
	}
}

func TestAdicionarItemRecalculaTotais(t *testing.T) {
	st := NewMemStore()
	wf := NewWorkflow(st, nil)
	ctx := context.Background()
	h := novoHonorarioValido(t, wf)

	if _, err := wf.AdicionarItem(ctx, tcTeste, h.ID, NovoItem{
		Tipo: honorarioitem.TipoInicial, Descricao: "Entrada",
		ValorDefinido: decimal.NewFromInt(1000), ValorCobrado: decimal.NewFromInt(900),
	}); err != nil {
		t.Fatalf("item 1: %v", err)
	}
	if _, err := wf.AdicionarItem(ctx, tcTeste, h.ID, NovoItem{
		Tipo: honorarioitem.TipoMensal, Descricao: "Acompanhamento",
		ValorDefinido: decimal.NewFromInt(500),
	}); err != nil {
		t.Fatalf("item 2: %v", err)
	}

	salvo := st.Honorarios[h.ID]
	if !salvo.ValorDefinido.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("ValorDefinido = %s, esperado 1500", salvo.ValorDefinido)
	}
	// Sem valor cobrado informado, o item mensal assume o definido (500)
	if !salvo.ValorCobrado.Equal(decimal.NewFromInt(1400)) {
		t.Errorf("ValorCobrado = %s, esperado 1400", salvo.ValorCobrado)
	}
}

func TestAdicionarItemValidacoes(t *testing.T) {
	wf := NewWorkflow(NewMemStore(), nil)
	ctx := context.Background()
	h := novoHonorarioValido(t, wf)

	if _, err := wf.AdicionarItem(ctx, tcTeste, h.ID, NovoItem{
		Tipo: "Empreitada", Descricao: "x", ValorDefinido: decimal.NewFromInt(10),
	}); !apperrors.EKind(err, apperrors.KindValidacao) {
		t.Errorf("tipo inválido: %v", err)
	}
	if _, err := wf.AdicionarItem(ctx, tcTeste, h.ID, NovoItem{
		Tipo: honorarioitem.TipoExito, Descricao: "x",
	}); !apperrors.EKind(err, apperrors.KindValidacao) {
		t.Errorf("êxito sem percentual: %v", err)
	}
	if _, err := wf.AdicionarItem(ctx, tcTeste, h.ID, NovoItem{
		Tipo: honorarioitem.TipoInicial, Descricao: "x", ValorDefinido: decimal.NewFromInt(-1),
	}); !apperrors.EKind(err, apperrors.KindValidacao) {
		t.Errorf("valor definido negativo: %v", err)
	}
}

func TestAlertaDeVariacao(t *testing.T) {
	st := NewMemStore()
	fake := &notificadorFake{}
	wf := NewWorkflow(st, fake)
	ctx := context.Background()
	h := novoHonorarioValido(t, wf)

	// Cobrado 20% abaixo do definido: dispara o alerta
	if _, err := wf.AdicionarItem(ctx, tcTeste, h.ID, NovoItem{
		Tipo: honorarioitem.TipoInicial, Descricao: "Entrada",
		ValorDefinido: decimal.NewFromInt(1000), ValorCobrado: decimal.NewFromInt(800),
	}); err != nil {
		t.Fatalf("AdicionarItem: %v", err)
	}
	if len(fake.chamadas) != 1 {
		t.Fatalf("alertas = %d, esperado 1", len(fake.chamadas))
	}
	if !fake.chamadas[0].Equal(decimal.NewFromInt(-20)) {
		t.Errorf("variação alertada = %s, esperado -20", fake.chamadas[0])
	}
}

func TestAprovarExigeDocumentoFormal(t *testing.T) {
	wf := NewWorkflow(NewMemStore(), nil)
	h := novoHonorarioValido(t, wf)

	_, err := wf.Aprovar(context.Background(), tcTeste, h.ID)
	if !apperrors.EKind(err, apperrors.KindPrecondicao) {
		t.Errorf("aprovação sem documento deveria falhar com precondição, veio %v", err)
	}
}

func TestAprovarExigeJustificativaDeVariacao(t *testing.T) {
	st := NewMemStore()
	wf := NewWorkflow(st, nil)
	ctx := context.Background()
	h := novoHonorarioValido(t, wf)

	if _, err := wf.AdicionarItem(ctx, tcTeste, h.ID, NovoItem{
		Tipo: honorarioitem.TipoInicial, Descricao: "Entrada",
		ValorDefinido: decimal.NewFromInt(1000), ValorCobrado: decimal.NewFromInt(800),
	}); err != nil {
		t.Fatalf("AdicionarItem: %v", err)
	}
	if err := wf.MarcarDocumentoGerado(ctx, tcTeste, h.ID); err != nil {
		t.Fatalf("MarcarDocumentoGerado: %v", err)
	}

	if _, err := wf.Aprovar(ctx, tcTeste, h.ID); !apperrors.EKind(err, apperrors.KindPrecondicao) {
		t.Fatalf("variação de -20%% sem justificativa deveria barrar a aprovação, veio %v", err)
	}

	if err := wf.RegistrarJustificativa(ctx, tcTeste, h.ID, "Cliente em assistência gratuita parcial"); err != nil {
		t.Fatalf("RegistrarJustificativa: %v", err)
	}
	if _, err := wf.Aprovar(ctx, tcTeste, h.ID); err != nil {
		t.Fatalf("aprovação com justificativa: %v", err)
	}
}

func TestAssinarExigeAprovacaoEIdentidade(t *testing.T) {
	st := NewMemStore()
	wf := NewWorkflow(st, nil)
	ctx := context.Background()
	h := novoHonorarioValido(t, wf)

	if _, err := wf.Assinar(ctx, tcTeste, h.ID, Assinatura{Nome: "Ana", Email: "a@x.com"}); !apperrors.EKind(err, apperrors.KindTransicaoInvalida) {
		t.Errorf("assinar em Rascunho: %v", err)
	}

	st.Honorarios[h.ID].Status = StatusAprovado
	if _, err := wf.Assinar(ctx, tcTeste, h.ID, Assinatura{Email: "a@x.com"}); !apperrors.EKind(err, apperrors.KindValidacao) {
		t.Errorf("assinar sem nome: %v", err)
	}
	if _, err := wf.Assinar(ctx, tcTeste, h.ID, Assinatura{Nome: "Ana"}); !apperrors.EKind(err, apperrors.KindValidacao) {
		t.Errorf("assinar sem email: %v", err)
	}

	assinado, err := wf.Assinar(ctx, tcTeste, h.ID, Assinatura{Nome: "Ana", Email: "a@x.com", Metodo: "digital"})
	if err != nil {
		t.Fatalf("Assinar: %v", err)
	}
	if assinado.Status != StatusAssinado || assinado.DataAssinatura == nil {
		t.Error("assinatura não registrada")
	}
	if assinado.NomeAssinante != "Ana" || assinado.EmailAssinante != "a@x.com" || assinado.MetodoAssinatura != "digital" {
		t.Error("metadados do assinante não gravados")
	}
}

func TestCancelarArestas(t *testing.T) {
	ctx := context.Background()
	for _, de := range []string{StatusRascunho, StatusAprovado} {
		st := NewMemStore()
		wf := NewWorkflow(st, nil)
		h := novoHonorarioValido(t, wf)
		st.Honorarios[h.ID].Status = de
		if _, err := wf.Cancelar(ctx, tcTeste, h.ID); err != nil {
			t.Errorf("cancelar de %s: %v", de, err)
		}
	}
	for _, de := range []string{StatusAssinado, StatusCancelado} {
		st := NewMemStore()
		wf := NewWorkflow(st, nil)
		h := novoHonorarioValido(t, wf)
		st.Honorarios[h.ID].Status = de
		if _, err := wf.Cancelar(ctx, tcTeste, h.ID); !apperrors.EKind(err, apperrors.KindTransicaoInvalida) {
			t.Errorf("cancelar de %s deveria falhar, veio %v", de, err)
		}
	}
}

// Cenário ponta a ponta: item inicial de 1000 com parcela única, documento
// gerado, aprovado, assinado e com título gerado uma única vez.
func TestFluxoCompletoComTituloUnico(t *testing.T) {
	st := NewMemStore()
	wf := NewWorkflow(st, nil)
	ctx := context.Background()
	h := novoHonorarioValido(t, wf)

	item, err := wf.AdicionarItem(ctx, tcTeste, h.ID, NovoItem{
		Tipo: honorarioitem.TipoInicial, Descricao: "Honorários iniciais",
		ValorDefinido: decimal.NewFromInt(1000), ValorCobrado: decimal.NewFromInt(1000),
	})
	if err != nil {
		t.Fatalf("AdicionarItem: %v", err)
	}

	venc := time.Date(2026, 12, 5, 0, 0, 0, 0, time.UTC)
	if _, err := wf.AdicionarParcela(ctx, tcTeste, item.ID, NovaParcela{
		Numero: 1, Valor: decimal.NewFromInt(1000), DataVencimento: venc,
	}); err != nil {
		t.Fatalf("AdicionarParcela: %v", err)
	}

	if err := wf.MarcarDocumentoGerado(ctx, tcTeste, h.ID); err != nil {
		t.Fatalf("MarcarDocumentoGerado: %v", err)
	}
	if _, err := wf.Aprovar(ctx, tcTeste, h.ID); err != nil {
		t.Fatalf("Aprovar: %v", err)
	}
	if _, err := wf.Assinar(ctx, tcTeste, h.ID, Assinatura{Nome: "Ana", Email: "a@x.com", Metodo: "digital"}); err != nil {
		t.Fatalf("Assinar: %v", err)
	}

	gerados, err := wf.GerarTitulosFinanceiros(ctx, tcTeste, h.ID)
	if err != nil {
		t.Fatalf("GerarTitulosFinanceiros: %v", err)
	}
	if gerados != 1 {
		t.Fatalf("gerados = %d, esperado 1", gerados)
	}
	if len(st.Transacoes) != 1 {
		t.Fatalf("razão tem %d títulos, esperado 1", len(st.Transacoes))
	}
	for _, tr := range st.Transacoes {
		if !tr.Valor.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("valor do título = %s, esperado 1000", tr.Valor)
		}
		if !tr.DataVencimento.Equal(venc) {
			t.Errorf("vencimento do título = %s, esperado %s", tr.DataVencimento, venc)
		}
	}

	// Parcela ligada ao título
	for _, p := range st.Parcelas {
		if p.TransacaoID == nil {
			t.Error("parcela sem vínculo com o título gerado")
		}
	}

	// Segunda chamada: nada novo
	gerados, err = wf.GerarTitulosFinanceiros(ctx, tcTeste, h.ID)
	if err != nil {
		t.Fatalf("segunda geração: %v", err)
	}
	if gerados != 0 || len(st.Transacoes) != 1 {
		t.Errorf("segunda geração alterou o razão: gerados=%d, títulos=%d", gerados, len(st.Transacoes))
	}
}

func TestGerarTitulosExigeAssinatura(t *testing.T) {
	wf := NewWorkflow(NewMemStore(), nil)
	h := novoHonorarioValido(t, wf)

	_, err := wf.GerarTitulosFinanceiros(context.Background(), tcTeste, h.ID)
	if !apperrors.EKind(err, apperrors.KindPrecondicao) {
		t.Errorf("geração em Rascunho deveria falhar com precondição, veio %v", err)
	}
}

func TestGerarTitulosRecusaParcelasQueNaoFecham(t *testing.T) {
	st := NewMemStore()
	wf := NewWorkflow(st, nil)
	ctx := context.Background()
	h := novoHonorarioValido(t, wf)

	item, err := wf.AdicionarItem(ctx, tcTeste, h.ID, NovoItem{
		Tipo: honorarioitem.TipoInicial, Descricao: "Entrada",
		ValorDefinido: decimal.NewFromInt(1000), ValorCobrado: decimal.NewFromInt(1000),
	})
	if err != nil {
		t.Fatalf("AdicionarItem: %v", err)
	}
	if _, err := wf.AdicionarParcela(ctx, tcTeste, item.ID, NovaParcela{
		Numero: 1, Valor: decimal.NewFromInt(700), DataVencimento: time.Now(),
	}); err != nil {
		t.Fatalf("AdicionarParcela: %v", err)
	}

	st.Honorarios[h.ID].Status = StatusAssinado
	_, err = wf.GerarTitulosFinanceiros(ctx, tcTeste, h.ID)
	if !apperrors.EKind(err, apperrors.KindPrecondicao) {
		t.Errorf("parcelas que não fecham deveriam barrar a geração, veio %v", err)
	}
	if len(st.Transacoes) != 0 {
		t.Errorf("geração parcial: %d títulos criados", len(st.Transacoes))
	}
}

func TestRemoverHonorarioAssinadoFalha(t *testing.T) {
	st := NewMemStore()
	wf := NewWorkflow(st, nil)
	h := novoHonorarioValido(t, wf)
	st.Honorarios[h.ID].Status = StatusAssinado

	err := wf.Remover(context.Background(), tcTeste, h.ID)
	if !apperrors.EKind(err, apperrors.KindPrecondicao) {
		t.Errorf("remoção de assinado deveria falhar com precondição, veio %v", err)
	}
}

func TestRemoverCascateiaItensEParcelas(t *testing.T) {
	st := NewMemStore()
	wf := NewWorkflow(st, nil)
	ctx := context.Background()
	h := novoHonorarioValido(t, wf)

	item, err := wf.AdicionarItem(ctx, tcTeste, h.ID, NovoItem{
		Tipo: honorarioitem.TipoInicial, Descricao: "Entrada",
		ValorDefinido: decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("AdicionarItem: %v", err)
	}
	if _, err := wf.AdicionarParcela(ctx, tcTeste, item.ID, NovaParcela{
		Numero: 1, Valor: decimal.NewFromInt(100), DataVencimento: time.Now(),
	}); err != nil {
		t.Fatalf("AdicionarParcela: %v", err)
	}

	if err := wf.Remover(ctx, tcTeste, h.ID); err != nil {
		t.Fatalf("Remover: %v", err)
	}
	if len(st.Honorarios) != 0 || len(st.Itens) != 0 || len(st.Parcelas) != 0 {
		t.Errorf("cascata incompleta: %d honorários, %d itens, %d parcelas",
			len(st.Honorarios), len(st.Itens), len(st.Parcelas))
	}
}

func TestAtualizarStatusParcela(t *testing.T) {
	st := NewMemStore()
	wf := NewWorkflow(st, nil)
	ctx := context.Background()
	h := novoHonorarioValido(t, wf)

	item, err := wf.AdicionarItem(ctx, tcTeste, h.ID, NovoItem{
		Tipo: honorarioitem.TipoInicial, Descricao: "Entrada",
		ValorDefinido: decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("AdicionarItem: %v", err)
	}
	p, err := wf.AdicionarParcela(ctx, tcTeste, item.ID, NovaParcela{
		Numero: 1, Valor: decimal.NewFromInt(100), DataVencimento: time.Now(),
	})
	if err != nil {
		t.Fatalf("AdicionarParcela: %v", err)
	}

	if err := wf.AtualizarStatusParcela(ctx, tcTeste, p.ID, "Quitada", time.Time{}); !apperrors.EKind(err, apperrors.KindValidacao) {
		t.Errorf("status desconhecido: %v", err)
	}

	outro := tenant.Context{EscritorioID: 99, UsuarioID: 1}
	if err := wf.AtualizarStatusParcela(ctx, outro, p.ID, "Paga", time.Time{}); !apperrors.EKind(err, apperrors.KindNaoEncontrado) {
		t.Errorf("outro escritório deveria receber não-encontrado, veio %v", err)
	}

	if err := wf.AtualizarStatusParcela(ctx, tcTeste, p.ID, "Paga", time.Time{}); err != nil {
		t.Fatalf("marcar paga: %v", err)
	}
	if salva := st.Parcelas[p.ID]; salva.Status != "Paga" || salva.DataPagamento == nil {
		t.Error("pagamento não carimbado")
	}

	if err := wf.AtualizarStatusParcela(ctx, tcTeste, p.ID, "Pendente", time.Time{}); err != nil {
		t.Fatalf("reverter para pendente: %v", err)
	}
	if salva := st.Parcelas[p.ID]; salva.Status != "Pendente" || salva.DataPagamento != nil {
		t.Error("reversão deveria limpar a data de pagamento")
	}
}

func TestParcelaForaDoRascunhoFalha(t *testing.T) {
	st := NewMemStore()
	wf := NewWorkflow(st, nil)
	ctx := context.Background()
	h := novoHonorarioValido(t, wf)

	item, err := wf.AdicionarItem(ctx, tcTeste, h.ID, NovoItem{
		Tipo: honorarioitem.TipoInicial, Descricao: "Entrada",
		ValorDefinido: decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("AdicionarItem: %v", err)
	}

	st.Honorarios[h.ID].Status = StatusAprovado
	_, err = wf.AdicionarParcela(ctx, tcTeste, item.ID, NovaParcela{
		Numero: 1, Valor: decimal.NewFromInt(100), DataVencimento: time.Now(),
	})
	if !apperrors.EKind(err, apperrors.KindPrecondicao) {
		t.Errorf("parcela fora do Rascunho deveria falhar, veio %v", err)
	}
}
