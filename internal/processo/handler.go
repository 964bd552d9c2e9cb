package processo

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/NexoJuridico/api-advocacia/internal/tenant"
	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// POST /processos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenant.DoContexto(r.Context())
	if !ok {
		http.Error(w, "Requisição sem contexto de escritório", http.StatusUnauthorized)
		return
	}

	var p Processo
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if p.Titulo == "" {
		http.Error(w, "O campo 'titulo' é obrigatório", http.StatusBadRequest)
		return
	}
	p.EscritorioID = tc.EscritorioID
	if p.AdvogadoID == 0 {
		p.AdvogadoID = tc.UsuarioID
	}

	if err := h.Repo.Create(&p); err != nil {
		http.Error(w, "Erro ao criar processo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// GET /processos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenant.DoContexto(r.Context())
	if !ok {
		http.Error(w, "Requisição sem contexto de escritório", http.StatusUnauthorized)
		return
	}

	list, err := h.Repo.ListByEscritorio(tc.EscritorioID)
	if err != nil {
		http.Error(w, "Erro ao listar processos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /processos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenant.DoContexto(r.Context())
	if !ok {
		http.Error(w, "Requisição sem contexto de escritório", http.StatusUnauthorized)
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	p, err := h.Repo.FindByID(tc.EscritorioID, uint(id))
	if err != nil {
		http.Error(w, "Processo não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// PUT /processos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenant.DoContexto(r.Context())
	if !ok {
		http.Error(w, "Requisição sem contexto de escritório", http.StatusUnauthorized)
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	p, err := h.Repo.FindByID(tc.EscritorioID, uint(id))
	if err != nil {
		http.Error(w, "Processo não encontrado", http.StatusNotFound)
		return
	}

	var payload Processo
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	// Atualiza campos permitidos
	p.Numero = payload.Numero
	p.Titulo = payload.Titulo
	p.Cliente = payload.Cliente
	p.Area = payload.Area
	p.UF = payload.UF
	p.Status = payload.Status
	p.Observacoes = payload.Observacoes

	if err := h.Repo.Update(p); err != nil {
		http.Error(w, "Erro ao atualizar processo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// DELETE /processos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenant.DoContexto(r.Context())
	if !ok {
		http.Error(w, "Requisição sem contexto de escritório", http.StatusUnauthorized)
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	p, err := h.Repo.FindByID(tc.EscritorioID, uint(id))
	if err != nil {
		http.Error(w, "Processo não encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repo.Delete(p); err != nil {
		http.Error(w, "Erro ao excluir processo", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
