package moeda

import (
	"math/rand"
	"testing"

	"github.com/NexoJuridico/api-advocacia/internal/apperrors"
	"github.com/shopspring/decimal"
)

func TestParseValor(t *testing.T) {
	casos := []struct {
		entrada string
		esperado string
	}{
		{"1500", "1500"},
		{"150,00", "150"},
		{"1.234,56", "1234.56"},
		{"R$ 2.500,00", "2500"},
		{"  99,9 ", "99.9"},
		{"", "0"},
		{"abc", "0"},
		{"12,34,56", "0"},
	}
	for _, c := range casos {
		got := ParseValor(c.entrada)
		want, _ := decimal.NewFromString(c.esperado)
		if !got.Equal(want) {
			t.Errorf("ParseValor(%q) = %s, esperado %s", c.entrada, got, want)
		}
	}
}

func TestSomarValoresIndependeDaOrdem(t *testing.T) {
	valores := []decimal.Decimal{
		decimal.NewFromFloat(600),
		decimal.NewFromFloat(400),
		decimal.NewFromFloat(123.45),
		decimal.NewFromFloat(0.55),
		decimal.NewFromFloat(999.99),
	}
	ident := func(d decimal.Decimal) decimal.Decimal { return d }
	esperado := SomarValores(valores, ident)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		perm := make([]decimal.Decimal, len(valores))
		copy(perm, valores)
		rng.Shuffle(len(perm), func(a, b int) { perm[a], perm[b] = perm[b], perm[a] })
		if got := SomarValores(perm, ident); !got.Equal(esperado) {
			t.Fatalf("soma dependente da ordem: %s != %s", got, esperado)
		}
	}
}

func TestCalcularVariacao(t *testing.T) {
	cem := decimal.NewFromInt(100)

	v, err := CalcularVariacao(cem, cem)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !v.IsZero() {
		t.Errorf("variação de 100 para 100 = %s, esperado 0", v)
	}

	v, err = CalcularVariacao(cem, decimal.NewFromInt(80))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !v.Equal(decimal.NewFromInt(-20)) {
		t.Errorf("variação de 100 para 80 = %s, esperado -20", v)
	}
}

func TestCalcularVariacaoDefinidoZero(t *testing.T) {
	_, err := CalcularVariacao(decimal.Zero, decimal.NewFromInt(50))
	if err == nil {
		t.Fatal("esperado erro de guarda aritmética, veio nil")
	}
	if !apperrors.EKind(err, apperrors.KindGuardaAritmetica) {
		t.Errorf("kind = %q, esperado guarda_aritmetica", apperrors.KindDe(err))
	}
}

func TestExigeJustificativa(t *testing.T) {
	casos := []struct {
		variacao float64
		esperado bool
	}{
		{-20, true},
		{-5.01, true},
		{-5, false}, // limite exato não exige
		{-4.99, false},
		{0, false},
		{10, false},
	}
	for _, c := range casos {
		if got := ExigeJustificativa(decimal.NewFromFloat(c.variacao)); got != c.esperado {
			t.Errorf("ExigeJustificativa(%v) = %v, esperado %v", c.variacao, got, c.esperado)
		}
	}
}
