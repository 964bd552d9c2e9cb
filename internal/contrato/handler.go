package contrato

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/NexoJuridico/api-advocacia/internal/apperrors"
	"github.com/NexoJuridico/api-advocacia/internal/moeda"
	"github.com/NexoJuridico/api-advocacia/internal/tenant"
	"github.com/gorilla/mux"
)

// Handler expõe o workflow de contratos via HTTP. Toda a regra de negócio
// vive no Workflow; aqui é só decode, chamada e encode.
type Handler struct {
	Workflow *Workflow
	Store    *GormStore
}

func NewHandler(wf *Workflow, store *GormStore) *Handler {
	return &Handler{Workflow: wf, Store: store}
}

func tenantDaRequisicao(w http.ResponseWriter, r *http.Request) (tenant.Context, bool) {
	tc, ok := tenant.DoContexto(r.Context())
	if !ok {
		http.Error(w, "Requisição sem contexto de escritório", http.StatusUnauthorized)
	}
	return tc, ok
}

// POST /processos/{id}/contratos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenantDaRequisicao(w, r)
	if !ok {
		return
	}
	processoID, _ := strconv.Atoi(mux.Vars(r)["id"])

	var dto CriarContratoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Workflow.Criar(r.Context(), tc, NovoContrato{
		ProcessoID: uint(processoID),
		ClienteID:  dto.ClienteID,
		Titulo:     dto.Titulo,
		Tipo:       dto.Tipo,
		Descricao:  dto.Descricao,
	})
	if err != nil {
		apperrors.EscreverHTTP(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// GET /processos/{id}/contratos
func (h *Handler) ListarPorProcesso(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenantDaRequisicao(w, r)
	if !ok {
		return
	}
	processoID, _ := strconv.Atoi(mux.Vars(r)["id"])

	list, err := h.Store.ListarPorProcesso(r.Context(), tc, uint(processoID))
	if err != nil {
		http.Error(w, "Erro ao listar contratos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /contratos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenantDaRequisicao(w, r)
	if !ok {
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	c, err := h.Store.BuscarContrato(r.Context(), tc, uint(id))
	if err != nil {
		apperrors.EscreverHTTP(w, err)
		return
	}
	itens, err := h.Store.ListarItens(r.Context(), c.ID)
	if err != nil {
		http.Error(w, "Erro ao carregar itens", http.StatusInternalServerError)
		return
	}
	c.Itens = itens
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// POST /contratos/{id}/itens
func (h *Handler) AdicionarItem(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenantDaRequisicao(w, r)
	if !ok {
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var dto CriarItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	vencimento, _ := time.Parse(time.RFC3339, dto.DataVencimento)

	item, err := h.Workflow.AdicionarItem(r.Context(), tc, uint(id), NovoItem{
		Descricao:      dto.Descricao,
		Tipo:           dto.Tipo,
		Valor:          moeda.ParseValor(dto.Valor),
		DataVencimento: vencimento,
		NumeroParcela:  dto.NumeroParcela,
		TotalParcelas:  dto.TotalParcelas,
		Observacoes:    dto.Observacoes,
	})
	if err != nil {
		apperrors.EscreverHTTP(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(item)
}

// PATCH /contratos/{id}/status
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenantDaRequisicao(w, r)
	if !ok {
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var dto AtualizarStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if dto.Status == "" {
		http.Error(w, "O campo 'status' é obrigatório", http.StatusBadRequest)
		return
	}

	c, err := h.Workflow.AtualizarStatus(r.Context(), tc, uint(id), dto.Status)
	if err != nil {
		apperrors.EscreverHTTP(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// POST /contratos/{id}/transacoes
func (h *Handler) GerarTransacoes(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenantDaRequisicao(w, r)
	if !ok {
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	gerados, err := h.Workflow.GerarTransacoesFinanceiras(r.Context(), tc, uint(id))
	if err != nil {
		apperrors.EscreverHTTP(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]int{"gerados": gerados})
}

// DELETE /contratos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenantDaRequisicao(w, r)
	if !ok {
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Workflow.Remover(r.Context(), tc, uint(id)); err != nil {
		apperrors.EscreverHTTP(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
