package contrato

import (
	"context"
	"testing"
	"time"

	"github.com/NexoJuridico/api-advocacia/internal/apperrors"
	"github.com/NexoJuridico/api-advocacia/internal/tenant"
	"github.com/NexoJuridico/api-advocacia/internal/transacao"
	"github.com/shopspring/decimal"
)

var tcTeste = tenant.Context{EscritorioID: 1, UsuarioID: 7}

func novoContratoValido(t *testing.T, wf *Workflow) *Contrato {
	t.Helper()
	c, err := wf.Criar(context.Background(), tcTeste, NovoContrato{
		ProcessoID: 10,
		ClienteID:  20,
		Titulo:     "Prestação de serviços advocatícios",
		Tipo:       TipoHonorarios,
	})
	if err != nil {
		t.Fatalf("Criar: %v", err)
	}
	return c
}

func TestCriarValidacoes(t *testing.T) {
	wf := NewWorkflow(NewMemStore())
	ctx := context.Background()

	casos := []struct {
		nome string
		n    NovoContrato
	}{
		{"sem titulo", NovoContrato{ProcessoID: 1, ClienteID: 2, Tipo: TipoHonorarios}},
		{"sem tipo", NovoContrato{ProcessoID: 1, ClienteID: 2, Titulo: "x"}},
		{"tipo desconhecido", NovoContrato{ProcessoID: 1, ClienteID: 2, Titulo: "x", Tipo: "Aluguel"}},
		{"sem cliente", NovoContrato{ProcessoID: 1, Titulo: "x", Tipo: TipoVenda}},
		{"sem processo", NovoContrato{ClienteID: 2, Titulo: "x", Tipo: TipoVenda}},
	}
	for _, c := range casos {
		if _, err := wf.Criar(ctx, tcTeste, c.n); !apperrors.EKind(err, apperrors.KindValidacao) {
			t.Errorf("%s: esperado erro de validação, veio %v", c.nome, err)
		}
	}

	if _, err := wf.Criar(ctx, tenant.Context{}, NovoContrato{ProcessoID: 1, ClienteID: 2, Titulo: "x", Tipo: TipoVenda}); err == nil {
		t.Error("criação sem escritório deveria falhar")
	}
}

func TestTabelaDeTransicoes(t *testing.T) {
	todos := []string{StatusRascunho, StatusEnviado, StatusAprovado, StatusAssinado, StatusCancelado}
	permitidas := map[[2]string]bool{
		{StatusRascunho, StatusEnviado}:   true,
		{StatusRascunho, StatusCancelado}: true,
		{StatusEnviado, StatusAprovado}:   true,
		{StatusEnviado, StatusCancelado}:  true,
		{StatusAprovado, StatusAssinado}:  true,
		{StatusAprovado, StatusCancelado}: true,
	}

	ctx := context.Background()
	for _, de := range todos {
		for _, para := range todos {
			st := NewMemStore()
			wf := NewWorkflow(st)
			c := novoContratoValido(t, wf)
			st.Contratos[c.ID].Status = de

			_, err := wf.AtualizarStatus(ctx, tcTeste, c.ID, para)
			if permitidas[[2]string{de, para}] {
				if err != nil {
					t.Errorf("%s -> %s deveria ser permitido: %v", de, para, err)
				}
			} else if !apperrors.EKind(err, apperrors.KindTransicaoInvalida) {
				t.Errorf("%s -> %s deveria falhar com transição inválida, veio %v", de, para, err)
			}
		}
	}
}

func TestAtualizarStatusCarimbaDatas(t *testing.T) {
	st := NewMemStore()
	wf := NewWorkflow(st)
	ctx := context.Background()
	c := novoContratoValido(t, wf)

	c, err := wf.AtualizarStatus(ctx, tcTeste, c.ID, StatusEnviado)
	if err != nil {
		t.Fatalf("enviar: %v", err)
	}
	if c.DataEnvio == nil {
		t.Error("DataEnvio não carimbada")
	}

	c, err = wf.AtualizarStatus(ctx, tcTeste, c.ID, StatusAprovado)
	if err != nil {
		t.Fatalf("aprovar: %v", err)
	}
	if c.DataAprovacao == nil {
		t.Error("DataAprovacao não carimbada")
	}

	c, err = wf.AtualizarStatus(ctx, tcTeste, c.ID, StatusAssinado)
	if err != nil {
		t.Fatalf("assinar: %v", err)
	}
	if c.DataAssinatura == nil {
		t.Error("DataAssinatura não carimbada")
	}
}

func TestPuloDeEtapaFalha(t *testing.T) {
	wf := NewWorkflow(NewMemStore())
	c := novoContratoValido(t, wf)

	_, err := wf.AtualizarStatus(context.Background(), tcTeste, c.ID, StatusAssinado)
	if !apperrors.EKind(err, apperrors.KindTransicaoInvalida) {
		t.Errorf("Rascunho -> Assinado deveria falhar com transição inválida, veio %v", err)
	}
}

func TestAdicionarItemRecalculaTotal(t *testing.T) {
	st := NewMemStore()
	wf := NewWorkflow(st)
	ctx := context.Background()
	c := novoContratoValido(t, wf)

	venc := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	if _, err := wf.AdicionarItem(ctx, tcTeste, c.ID, NovoItem{
		Descricao: "Entrada", Tipo: transacao.TipoReceita,
		Valor: decimal.NewFromInt(600), DataVencimento: venc,
	}); err != nil {
		t.Fatalf("item 1: %v", err)
	}
	if _, err := wf.AdicionarItem(ctx, tcTeste, c.ID, NovoItem{
		Descricao: "Saldo", Tipo: transacao.TipoReceita,
		Valor: decimal.NewFromInt(400), DataVencimento: venc.AddDate(0, 1, 0),
	}); err != nil {
		t.Fatalf("item 2: %v", err)
	}

	salvo := st.Contratos[c.ID]
	if !salvo.ValorTotal.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("ValorTotal = %s, esperado 1000", salvo.ValorTotal)
	}
}

func TestAdicionarItemValidacoes(t *testing.T) {
	wf := NewWorkflow(NewMemStore())
	ctx := context.Background()
	c := novoContratoValido(t, wf)

	if _, err := wf.AdicionarItem(ctx, tcTeste, c.ID, NovoItem{
		Tipo: transacao.TipoReceita, Valor: decimal.NewFromInt(10),
	}); !apperrors.EKind(err, apperrors.KindValidacao) {
		t.Errorf("item sem descrição: %v", err)
	}
	if _, err := wf.AdicionarItem(ctx, tcTeste, c.ID, NovoItem{
		Descricao: "x", Tipo: transacao.TipoReceita, Valor: decimal.NewFromInt(-10),
	}); !apperrors.EKind(err, apperrors.KindValidacao) {
		t.Errorf("item com valor negativo: %v", err)
	}
	if _, err := wf.AdicionarItem(ctx, tcTeste, c.ID, NovoItem{
		Descricao: "x", Tipo: "Permuta", Valor: decimal.NewFromInt(10),
	}); !apperrors.EKind(err, apperrors.KindValidacao) {
		t.Errorf("item com tipo inválido: %v", err)
	}
}

func TestAdicionarItemAposAprovacaoFalha(t *testing.T) {
	st := NewMemStore()
	wf := NewWorkflow(st)
	c := novoContratoValido(t, wf)
	st.Contratos[c.ID].Status = StatusAprovado

	_, err := wf.AdicionarItem(context.Background(), tcTeste, c.ID, NovoItem{
		Descricao: "tarde demais", Tipo: transacao.TipoReceita, Valor: decimal.NewFromInt(10),
	})
	if !apperrors.EKind(err, apperrors.KindPrecondicao) {
		t.Errorf("esperado erro de precondição, veio %v", err)
	}
}

func TestGerarTransacoesExigeAprovacao(t *testing.T) {
	wf := NewWorkflow(NewMemStore())
	c := novoContratoValido(t, wf)

	_, err := wf.GerarTransacoesFinanceiras(context.Background(), tcTeste, c.ID)
	if !apperrors.EKind(err, apperrors.KindPrecondicao) {
		t.Errorf("geração em Rascunho deveria falhar com precondição, veio %v", err)
	}
}

// Cenário ponta a ponta: contrato de honorários com dois itens, enviado e
// aprovado, gera títulos somando o total derivado; a segunda geração não
// duplica nada.
func TestFluxoCompletoComGeracaoIdempotente(t *testing.T) {
	st := NewMemStore()
	wf := NewWorkflow(st)
	ctx := context.Background()
	c := novoContratoValido(t, wf)

	venc := time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC)
	for _, v := range []int64{600, 400} {
		if _, err := wf.AdicionarItem(ctx, tcTeste, c.ID, NovoItem{
			Descricao: "Parcela", Tipo: transacao.TipoReceita,
			Valor: decimal.NewFromInt(v), DataVencimento: venc,
		}); err != nil {
			t.Fatalf("AdicionarItem: %v", err)
		}
	}

	if _, err := wf.AtualizarStatus(ctx, tcTeste, c.ID, StatusEnviado); err != nil {
		t.Fatalf("enviar: %v", err)
	}
	if _, err := wf.AtualizarStatus(ctx, tcTeste, c.ID, StatusAprovado); err != nil {
		t.Fatalf("aprovar: %v", err)
	}

	gerados, err := wf.GerarTransacoesFinanceiras(ctx, tcTeste, c.ID)
	if err != nil {
		t.Fatalf("gerar: %v", err)
	}
	if gerados != 2 {
		t.Fatalf("gerados = %d, esperado 2", gerados)
	}

	total := decimal.Zero
	for _, tr := range st.Transacoes {
		total = total.Add(tr.Valor)
	}
	if !total.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("total gerado = %s, esperado 1000", total)
	}

	// Segunda chamada: nada novo
	gerados, err = wf.GerarTransacoesFinanceiras(ctx, tcTeste, c.ID)
	if err != nil {
		t.Fatalf("segunda geração: %v", err)
	}
	if gerados != 0 {
		t.Errorf("segunda geração criou %d títulos", gerados)
	}
	if len(st.Transacoes) != 2 {
		t.Errorf("razão tem %d títulos, esperado 2", len(st.Transacoes))
	}
}

func TestRemoverContratoAssinadoFalha(t *testing.T) {
	st := NewMemStore()
	wf := NewWorkflow(st)
	c := novoContratoValido(t, wf)
	st.Contratos[c.ID].Status = StatusAssinado

	err := wf.Remover(context.Background(), tcTeste, c.ID)
	if !apperrors.EKind(err, apperrors.KindPrecondicao) {
		t.Errorf("remoção de assinado deveria falhar com precondição, veio %v", err)
	}
}

func TestRemoverCascateiaItens(t *testing.T) {
	st := NewMemStore()
	wf := NewWorkflow(st)
	ctx := context.Background()
	c := novoContratoValido(t, wf)

	if _, err := wf.AdicionarItem(ctx, tcTeste, c.ID, NovoItem{
		Descricao: "Entrada", Tipo: transacao.TipoReceita, Valor: decimal.NewFromInt(100),
	}); err != nil {
		t.Fatalf("AdicionarItem: %v", err)
	}

	if err := wf.Remover(ctx, tcTeste, c.ID); err != nil {
		t.Fatalf("Remover: %v", err)
	}
	if len(st.Contratos) != 0 || len(st.Itens) != 0 {
		t.Errorf("cascata incompleta: %d contratos, %d itens", len(st.Contratos), len(st.Itens))
	}
}

func TestIsolamentoEntreEscritorios(t *testing.T) {
	wf := NewWorkflow(NewMemStore())
	c := novoContratoValido(t, wf)

	outro := tenant.Context{EscritorioID: 99, UsuarioID: 1}
	_, err := wf.AtualizarStatus(context.Background(), outro, c.ID, StatusEnviado)
	if !apperrors.EKind(err, apperrors.KindNaoEncontrado) {
		t.Errorf("outro escritório deveria receber não-encontrado, veio %v", err)
	}
}
