// internal/moeda/moeda.go
package moeda

import (
	"strings"

	"github.com/NexoJuridico/api-advocacia/internal/apperrors"
	"github.com/shopspring/decimal"
)

// LimiteJustificativaVariacao é o percentual abaixo do qual a cobrança exige
// justificativa (possível violação do mínimo da tabela OAB). Variação
// estritamente menor que -5% dispara a exigência; -5% exato não dispara.
var LimiteJustificativaVariacao = decimal.NewFromInt(-5)

// ParseValor converte uma entrada monetária no formato pt-BR ("R$ 1.234,56",
// "1500", "150,00") em decimal. Entrada vazia ou não numérica resulta em
// zero, de propósito: o valor cobre campos monetários opcionais de
// formulário, onde falhar seria pior que assumir zero.
func ParseValor(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	if strings.Contains(s, ",") {
		// vírgula decimal, pontos como separador de milhar
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// SomarValores totaliza uma lista pelo campo escolhido pelo seletor
// (definido vs cobrado, item de contrato vs item de honorário).
func SomarValores[T any](itens []T, valor func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, it := range itens {
		total = total.Add(valor(it))
	}
	return total
}

// CalcularVariacao devolve (cobrado - definido) / definido * 100.
// Definido igual a zero é rejeitado com erro de guarda aritmética em vez de
// produzir Inf/NaN.
func CalcularVariacao(definido, cobrado decimal.Decimal) (decimal.Decimal, error) {
	if definido.IsZero() {
		return decimal.Zero, apperrors.GuardaAritmetica("valor definido é zero; variação indefinida")
	}
	return cobrado.Sub(definido).Div(definido).Mul(decimal.NewFromInt(100)), nil
}

// ExigeJustificativa informa se a variação calculada obriga o registro de
// uma justificativa antes da aprovação.
func ExigeJustificativa(variacao decimal.Decimal) bool {
	return variacao.LessThan(LimiteJustificativaVariacao)
}
