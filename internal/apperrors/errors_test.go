package apperrors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestKindDe(t *testing.T) {
	err := Validacao("campo %q vazio", "titulo")
	if KindDe(err) != KindValidacao {
		t.Errorf("kind = %q, esperado %q", KindDe(err), KindValidacao)
	}
	if err.Mensagem != `campo "titulo" vazio` {
		t.Errorf("mensagem = %q", err.Mensagem)
	}

	embrulhado := fmt.Errorf("salvando: %w", TransicaoInvalida("de x para y"))
	if !EKind(embrulhado, KindTransicaoInvalida) {
		t.Error("kind não sobrevive ao embrulho com %w")
	}

	if KindDe(fmt.Errorf("erro qualquer")) != "" {
		t.Error("erro comum não deveria ter kind")
	}
}

func TestStatusHTTP(t *testing.T) {
	casos := []struct {
		err    error
		status int
	}{
		{Validacao("x"), http.StatusBadRequest},
		{GuardaAritmetica("x"), http.StatusBadRequest},
		{NaoEncontrado("x"), http.StatusNotFound},
		{TransicaoInvalida("x"), http.StatusConflict},
		{Precondicao("x"), http.StatusUnprocessableEntity},
		{fmt.Errorf("x"), http.StatusInternalServerError},
	}
	for _, c := range casos {
		if got := StatusHTTP(c.err); got != c.status {
			t.Errorf("StatusHTTP(%v) = %d, esperado %d", c.err, got, c.status)
		}
	}
}
