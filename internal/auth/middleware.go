package auth

import (
	"net/http"
	"strings"

	"github.com/NexoJuridico/api-advocacia/internal/tenant"
)

func MiddlewareAutenticacao(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "Token ausente", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := ParseAndValidate(raw)
		if err != nil {
			http.Error(w, "Token inválido", http.StatusUnauthorized)
			return
		}
		tc := tenant.Context{EscritorioID: claims.EscritorioID, UsuarioID: claims.UsuarioID}
		next.ServeHTTP(w, r.WithContext(tenant.NoContexto(r.Context(), tc)))
	})
}
