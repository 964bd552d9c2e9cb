// internal/tenant/context.go
package tenant

import (
	"context"

	"github.com/NexoJuridico/api-advocacia/internal/apperrors"
)

// Context identifica o escritório e o usuário em nome dos quais uma operação
// de workflow executa. É passado explicitamente a cada operação; nenhum
// workflow consulta estado ambiente.
type Context struct {
	EscritorioID uint `json:"escritorioId"`
	UsuarioID    uint `json:"usuarioId"`
}

// Valida garante que o contexto aponta para um escritório real.
func (c Context) Valida() error {
	if c.EscritorioID == 0 {
		return apperrors.Validacao("contexto sem escritório")
	}
	return nil
}

type ctxKey string

const chave ctxKey = "tenantContext"

// NoContexto anexa o tenant ao context da requisição.
func NoContexto(ctx context.Context, tc Context) context.Context {
	return context.WithValue(ctx, chave, tc)
}

// DoContexto recupera o tenant anexado pelo middleware de autenticação.
func DoContexto(ctx context.Context) (Context, bool) {
	tc, ok := ctx.Value(chave).(Context)
	return tc, ok
}
