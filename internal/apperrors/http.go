// internal/apperrors/http.go
package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
)

// StatusHTTP traduz a categoria do erro para o status de resposta.
func StatusHTTP(err error) int {
	switch KindDe(err) {
	case KindValidacao, KindGuardaAritmetica:
		return http.StatusBadRequest
	case KindNaoEncontrado:
		return http.StatusNotFound
	case KindTransicaoInvalida:
		return http.StatusConflict
	case KindPrecondicao:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// EscreverHTTP serializa o erro como JSON {kind, mensagem} com o status
// apropriado. Erros que não são *Error viram 500 com kind vazio.
func EscreverHTTP(w http.ResponseWriter, err error) {
	var ae *Error
	if !errors.As(err, &ae) {
		ae = &Error{Mensagem: "erro interno"}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusHTTP(err))
	_ = json.NewEncoder(w).Encode(ae)
}
