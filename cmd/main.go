package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/NexoJuridico/api-advocacia/internal/advogado"
	"github.com/NexoJuridico/api-advocacia/internal/andamento"
	"github.com/NexoJuridico/api-advocacia/internal/auth"
	"github.com/NexoJuridico/api-advocacia/internal/contrato"
	"github.com/NexoJuridico/api-advocacia/internal/contratoitem"
	"github.com/NexoJuridico/api-advocacia/internal/honorario"
	"github.com/NexoJuridico/api-advocacia/internal/honorarioitem"
	"github.com/NexoJuridico/api-advocacia/internal/notificacao"
	"github.com/NexoJuridico/api-advocacia/internal/parcela"
	"github.com/NexoJuridico/api-advocacia/internal/processo"
	"github.com/NexoJuridico/api-advocacia/internal/transacao"
	"github.com/NexoJuridico/api-advocacia/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&advogado.Advogado{},
		&processo.Processo{},
		&andamento.Andamento{},
		&contrato.Contrato{},
		&contratoitem.ContratoItem{},
		&honorario.Honorario{},
		&honorarioitem.HonorarioItem{},
		&parcela.ParcelaHonorario{},
		&transacao.TransacaoFinanceira{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Workflows e handlers
	advogadoHandler := advogado.NewHandler(advogado.NewRepository(database))
	processoHandler := processo.NewHandler(processo.NewRepository(database))
	andamentoHandler := andamento.NewHandler(database)

	contratoStore := contrato.NewGormStore(database)
	contratoHandler := contrato.NewHandler(contrato.NewWorkflow(contratoStore), contratoStore)

	honorarioStore := honorario.NewGormStore(database)
	honorarioWorkflow := honorario.NewWorkflow(honorarioStore, notificacao.NewWebhook())
	honorarioHandler := honorario.NewHandler(honorarioWorkflow, honorarioStore)

	transacaoHandler := transacao.NewHandler(transacao.NewRepository(database))

	// Router
	r := mux.NewRouter()

	// Rota pública de login
	r.HandleFunc("/login", advogadoHandler.Login).Methods("POST")

	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Rotas de advogados
	api.HandleFunc("/advogados", advogadoHandler.Criar).Methods("POST")
	api.HandleFunc("/advogados", advogadoHandler.Listar).Methods("GET")
	api.HandleFunc("/advogados/{id}", advogadoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/advogados/{id}", advogadoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/advogados/{id}", advogadoHandler.Deletar).Methods("DELETE")

	// Rotas de processos
	api.HandleFunc("/processos", processoHandler.Criar).Methods("POST")
	api.HandleFunc("/processos", processoHandler.Listar).Methods("GET")
	api.HandleFunc("/processos/{id}", processoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/processos/{id}", processoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/processos/{id}", processoHandler.Deletar).Methods("DELETE")

	// Rotas de andamentos
	api.HandleFunc("/processos/{id}/andamentos", andamentoHandler.Criar).Methods("POST")
	api.HandleFunc("/processos/{id}/andamentos", andamentoHandler.ListarPorProcesso).Methods("GET")
	api.HandleFunc("/andamentos/{id}", andamentoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/andamentos/{id}", andamentoHandler.Remover).Methods("DELETE")

	// Rotas de contratos
	api.HandleFunc("/processos/{id}/contratos", contratoHandler.Criar).Methods("POST")
	api.HandleFunc("/processos/{id}/contratos", contratoHandler.ListarPorProcesso).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/contratos/{id}/itens", contratoHandler.AdicionarItem).Methods("POST")
	api.HandleFunc("/contratos/{id}/status", contratoHandler.AtualizarStatus).Methods("PATCH")
	api.HandleFunc("/contratos/{id}/transacoes", contratoHandler.GerarTransacoes).Methods("POST")

	// Rotas de honorários
	api.HandleFunc("/processos/{id}/honorarios", honorarioHandler.Criar).Methods("POST")
	api.HandleFunc("/processos/{id}/honorarios", honorarioHandler.ListarPorProcesso).Methods("GET")
	api.HandleFunc("/honorarios/{id}", honorarioHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/honorarios/{id}", honorarioHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/honorarios/{id}/itens", honorarioHandler.AdicionarItem).Methods("POST")
	api.HandleFunc("/honorarios/itens/{id}/parcelas", honorarioHandler.AdicionarParcela).Methods("POST")
	api.HandleFunc("/honorarios/{id}/justificativa", honorarioHandler.RegistrarJustificativa).Methods("PUT")
	api.HandleFunc("/honorarios/{id}/documento", honorarioHandler.MarcarDocumentoGerado).Methods("POST")
	api.HandleFunc("/honorarios/{id}/aprovar", honorarioHandler.Aprovar).Methods("POST")
	api.HandleFunc("/honorarios/{id}/assinar", honorarioHandler.Assinar).Methods("POST")
	api.HandleFunc("/honorarios/{id}/cancelar", honorarioHandler.Cancelar).Methods("POST")
	api.HandleFunc("/honorarios/{id}/titulos", honorarioHandler.GerarTitulos).Methods("POST")
	api.HandleFunc("/honorarios/parcelas/{id}/status", honorarioHandler.AtualizarStatusParcela).Methods("PATCH")

	// Rotas do razão financeiro
	api.HandleFunc("/processos/{id}/transacoes", transacaoHandler.ListarPorProcesso).Methods("GET")
	api.HandleFunc("/transacoes/{id}", transacaoHandler.BuscarPorID).Methods("GET")

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	// Inicia servidor
	fmt.Println("Servidor rodando em http://localhost:" + porta)
	log.Fatal(http.ListenAndServe(":"+porta, handler))
}
