package honorario

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

// Handler expõe o workflow de honorários via HTTP.
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

// POST /processos/{id}/honorarios
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenantDaRequisicao(w, r)
	if !ok {
		return
	}
	processoID, _ := strconv.Atoi(mux.Vars(r)["id"])

	var dto CriarHonorarioDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	hon, err := h.Workflow.Criar(r.Context(), tc, NovoHonorario{
		ProcessoID:  uint(processoID),
		Objeto:      dto.Objeto,
		Observacoes: dto.Observacoes,
	})
	if err != nil {
		apperrors.EscreverHTTP(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(hon)
}

// GET /processos/{id}/honorarios
func (h *Handler) ListarPorProcesso(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenantDaRequisicao(w, r)
	if !ok {
		return
	}
	processoID, _ := strconv.Atoi(mux.Vars(r)["id"])

	list, err := h.Store.ListarPorProcesso(r.Context(), tc, uint(processoID))
	if err != nil {
		http.Error(w, "Erro ao listar honorários", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /honorarios/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenantDaRequisicao(w, r)
	if !ok {
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	hon, err := h.Store.BuscarHonorario(r.Context(), tc, uint(id))
	if err != nil {
		apperrors.EscreverHTTP(w, err)
		return
	}
	itens, err := h.Store.ListarItens(r.Context(), hon.ID)
	if err != nil {
		http.Error(w, "Erro ao carregar itens", http.StatusInternalServerError)
		return
	}
	hon.Itens = itens
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(hon)
}

// POST /honorarios/{id}/itens
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

	item, err := h.Workflow.AdicionarItem(r.Context(), tc, uint(id), NovoItem{
		Tipo:            dto.Tipo,
		Descricao:       dto.Descricao,
		ValorDefinido:   moeda.ParseValor(dto.ValorDefinido),
		PercentualExito: moeda.ParseValor(dto.PercentualExito),
		ValorCobrado:    moeda.ParseValor(dto.ValorCobrado),
		ReferenciaOAB:   dto.ReferenciaOAB,
		Observacoes:     dto.Observacoes,
	})
	if err != nil {
		apperrors.EscreverHTTP(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(item)
}

// POST /honorarios/itens/{id}/parcelas
func (h *Handler) AdicionarParcela(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenantDaRequisicao(w, r)
	if !ok {
		return
	}
	itemID, _ := strconv.Atoi(mux.Vars(r)["id"])

	var dto CriarParcelaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	vencimento, _ := time.Parse(time.RFC3339, dto.DataVencimento)

	p, err := h.Workflow.AdicionarParcela(r.Context(), tc, uint(itemID), NovaParcela{
		Numero:         dto.Numero,
		Valor:          moeda.ParseValor(dto.Valor),
		DataVencimento: vencimento,
		Recorrente:     dto.Recorrente,
	})
	if err != nil {
		apperrors.EscreverHTTP(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// PATCH /honorarios/parcelas/{id}/status
func (h *Handler) AtualizarStatusParcela(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenantDaRequisicao(w, r)
	if !ok {
		return
	}
	parcelaID, _ := strconv.Atoi(mux.Vars(r)["id"])

	var dto StatusParcelaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	pagamento, _ := time.Parse(time.RFC3339, dto.DataPagamento)

	if err := h.Workflow.AtualizarStatusParcela(r.Context(), tc, uint(parcelaID), dto.Status, pagamento); err != nil {
		apperrors.EscreverHTTP(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// PUT /honorarios/{id}/justificativa
func (h *Handler) RegistrarJustificativa(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenantDaRequisicao(w, r)
	if !ok {
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var dto JustificativaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.Workflow.RegistrarJustificativa(r.Context(), tc, uint(id), dto.Justificativa); err != nil {
		apperrors.EscreverHTTP(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// POST /honorarios/{id}/documento
func (h *Handler) MarcarDocumentoGerado(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenantDaRequisicao(w, r)
	if !ok {
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Workflow.MarcarDocumentoGerado(r.Context(), tc, uint(id)); err != nil {
		apperrors.EscreverHTTP(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// POST /honorarios/{id}/aprovar
func (h *Handler) Aprovar(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenantDaRequisicao(w, r)
	if !ok {
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	hon, err := h.Workflow.Aprovar(r.Context(), tc, uint(id))
	if err != nil {
		apperrors.EscreverHTTP(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(hon)
}

// POST /honorarios/{id}/assinar
func (h *Handler) Assinar(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenantDaRequisicao(w, r)
	if !ok {
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var dto AssinaturaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	hon, err := h.Workflow.Assinar(r.Context(), tc, uint(id), Assinatura{
		Nome:   dto.Nome,
		Email:  dto.Email,
		Metodo: dto.Metodo,
	})
	if err != nil {
		apperrors.EscreverHTTP(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(hon)
}

// POST /honorarios/{id}/cancelar
func (h *Handler) Cancelar(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenantDaRequisicao(w, r)
	if !ok {
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	hon, err := h.Workflow.Cancelar(r.Context(), tc, uint(id))
	if err != nil {
		apperrors.EscreverHTTP(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(hon)
}

// POST /honorarios/{id}/titulos
func (h *Handler) GerarTitulos(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenantDaRequisicao(w, r)
	if !ok {
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	gerados, err := h.Workflow.GerarTitulosFinanceiros(r.Context(), tc, uint(id))
	if err != nil {
		apperrors.EscreverHTTP(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]int{"gerados": gerados})
}

// DELETE /honorarios/{id}
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
