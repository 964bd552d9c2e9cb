package andamento

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/NexoJuridico/api-advocacia/internal/tenant"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// POST /processos/{id}/andamentos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenant.DoContexto(r.Context())
	if !ok {
		http.Error(w, "Requisição sem contexto de escritório", http.StatusUnauthorized)
		return
	}
	processoID, _ := strconv.Atoi(mux.Vars(r)["id"])

	var a Andamento
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if a.Texto == "" {
		http.Error(w, "O campo 'texto' é obrigatório", http.StatusBadRequest)
		return
	}
	a.ProcessoID = uint(processoID)
	a.AutorID = tc.UsuarioID

	if err := h.Repository.Criar(h.DB, &a); err != nil {
		http.Error(w, "Erro ao salvar andamento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(a)
}

// GET /processos/{id}/andamentos
func (h *Handler) ListarPorProcesso(w http.ResponseWriter, r *http.Request) {
	processoID, _ := strconv.Atoi(mux.Vars(r)["id"])
	list, err := h.Repository.ListarPorProcesso(h.DB, uint(processoID))
	if err != nil {
		http.Error(w, "Erro ao listar andamentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// PUT /andamentos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var payload struct {
		Texto string `json:"texto"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Texto == "" {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), payload.Texto); err != nil {
		http.Error(w, "Erro ao atualizar andamento", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DELETE /andamentos/{id}
func (h *Handler) Remover(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repository.Remover(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir andamento", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
