// internal/transacao/handler.go
package transacao

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/NexoJuridico/api-advocacia/internal/tenant"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Handler expõe o razão financeiro (somente leitura; títulos nascem dos
// workflows de contrato e honorário).
type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

func tenantDaRequisicao(w http.ResponseWriter, r *http.Request) (tenant.Context, bool) {
	tc, ok := tenant.DoContexto(r.Context())
	if !ok {
		http.Error(w, "Requisição sem contexto de escritório", http.StatusUnauthorized)
	}
	return tc, ok
}

// GET /processos/{id}/transacoes
func (h *Handler) ListarPorProcesso(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenantDaRequisicao(w, r)
	if !ok {
		return
	}
	processoID, _ := strconv.Atoi(mux.Vars(r)["id"])

	list, err := h.Repo.ListByProcesso(tc.EscritorioID, uint(processoID))
	if err != nil {
		http.Error(w, "Erro ao listar transações", http.StatusInternalServerError)
		return
	}
	total, err := h.Repo.SumValorByProcesso(tc.EscritorioID, uint(processoID))
	if err != nil {
		http.Error(w, "Erro ao somar transações", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(struct {
		Transacoes []TransacaoFinanceira `json:"transacoes"`
		Total      decimal.Decimal       `json:"total"`
	}{Transacoes: list, Total: total})
}

// GET /transacoes/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenantDaRequisicao(w, r)
	if !ok {
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	t, err := h.Repo.FindByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && t.EscritorioID != tc.EscritorioID) {
		http.Error(w, "Transação não encontrada", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Erro ao buscar transação", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(t)
}
