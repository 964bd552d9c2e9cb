// internal/apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
)

// Kind identifica a categoria do erro de forma estável para a camada de UI.
type Kind string

const (
	KindValidacao         Kind = "validacao"
	KindTransicaoInvalida Kind = "transicao_invalida"
	KindPrecondicao       Kind = "precondicao"
	KindNaoEncontrado     Kind = "nao_encontrado"
	KindGuardaAritmetica  Kind = "guarda_aritmetica"
)

// Error carrega a categoria e uma mensagem legível, serializável em JSON.
type Error struct {
	Kind     Kind   `json:"kind"`
	Mensagem string `json:"mensagem"`
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Mensagem
}

func Validacao(format string, args ...any) *Error {
	return &Error{Kind: KindValidacao, Mensagem: fmt.Sprintf(format, args...)}
}

func TransicaoInvalida(format string, args ...any) *Error {
	return &Error{Kind: KindTransicaoInvalida, Mensagem: fmt.Sprintf(format, args...)}
}

func Precondicao(format string, args ...any) *Error {
	return &Error{Kind: KindPrecondicao, Mensagem: fmt.Sprintf(format, args...)}
}

func NaoEncontrado(format string, args ...any) *Error {
	return &Error{Kind: KindNaoEncontrado, Mensagem: fmt.Sprintf(format, args...)}
}

func GuardaAritmetica(format string, args ...any) *Error {
	return &Error{Kind: KindGuardaAritmetica, Mensagem: fmt.Sprintf(format, args...)}
}

// KindDe retorna a categoria do erro, ou "" se não for um *Error.
func KindDe(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

// EKind informa se o erro pertence à categoria dada.
func EKind(err error, k Kind) bool {
	return KindDe(err) == k
}
