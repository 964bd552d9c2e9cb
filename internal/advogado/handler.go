package advogado

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/NexoJuridico/api-advocacia/internal/auth"
	"github.com/NexoJuridico/api-advocacia/internal/tenant"
	"github.com/NexoJuridico/api-advocacia/internal/utils"
	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// POST /login
// Valida email/senha e emite o access token com os claims do escritório.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	user, err := h.Repo.FindByEmail(req.Email)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Senha), []byte(req.Senha)); err != nil {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	access, err := auth.GerarToken(user.ID, user.EscritorioID)
	if err != nil {
		http.Error(w, "Erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"access_token": access,
		"token_type":   "Bearer",
		"expires_in":   int(auth.AccessTTL.Seconds()),
	})
}

// POST /advogados
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenant.DoContexto(r.Context())
	if !ok {
		http.Error(w, "Requisição sem contexto de escritório", http.StatusUnauthorized)
		return
	}

	var dto CriarAdvogadoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if dto.Nome == "" || dto.Email == "" || dto.Senha == "" {
		http.Error(w, "nome, email e senha são obrigatórios", http.StatusBadRequest)
		return
	}

	hash, err := utils.HashSenha(dto.Senha)
	if err != nil {
		http.Error(w, "Erro ao processar senha", http.StatusInternalServerError)
		return
	}

	a := Advogado{
		EscritorioID: tc.EscritorioID,
		Nome:         dto.Nome,
		Sobrenome:    dto.Sobrenome,
		OAB:          dto.OAB,
		Email:        dto.Email,
		Telefone:     dto.Telefone,
		Senha:        hash,
		IsAdmin:      dto.IsAdmin,
	}
	if err := h.Repo.Create(&a); err != nil {
		http.Error(w, "Erro ao criar advogado", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(a)
}

// GET /advogados
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenant.DoContexto(r.Context())
	if !ok {
		http.Error(w, "Requisição sem contexto de escritório", http.StatusUnauthorized)
		return
	}
	list, err := h.Repo.ListByEscritorio(tc.EscritorioID)
	if err != nil {
		http.Error(w, "Erro ao listar advogados", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /advogados/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenant.DoContexto(r.Context())
	if !ok {
		http.Error(w, "Requisição sem contexto de escritório", http.StatusUnauthorized)
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	a, err := h.Repo.FindByID(tc.EscritorioID, uint(id))
	if err != nil {
		http.Error(w, "Advogado não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a)
}

// PUT /advogados/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenant.DoContexto(r.Context())
	if !ok {
		http.Error(w, "Requisição sem contexto de escritório", http.StatusUnauthorized)
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	a, err := h.Repo.FindByID(tc.EscritorioID, uint(id))
	if err != nil {
		http.Error(w, "Advogado não encontrado", http.StatusNotFound)
		return
	}

	var dto CriarAdvogadoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	a.Nome = dto.Nome
	a.Sobrenome = dto.Sobrenome
	a.OAB = dto.OAB
	a.Telefone = dto.Telefone
	if dto.Senha != "" {
		hash, err := utils.HashSenha(dto.Senha)
		if err != nil {
			http.Error(w, "Erro ao processar senha", http.StatusInternalServerError)
			return
		}
		a.Senha = hash
	}

	if err := h.Repo.Update(a); err != nil {
		http.Error(w, "Erro ao atualizar advogado", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a)
}

// DELETE /advogados/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenant.DoContexto(r.Context())
	if !ok {
		http.Error(w, "Requisição sem contexto de escritório", http.StatusUnauthorized)
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	a, err := h.Repo.FindByID(tc.EscritorioID, uint(id))
	if err != nil {
		http.Error(w, "Advogado não encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repo.Delete(a); err != nil {
		http.Error(w, "Erro ao excluir advogado", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
