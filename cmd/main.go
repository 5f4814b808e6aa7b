package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/agendamento"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/auth"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/chat"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/cliente"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/config"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/depoimento"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/documento"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/equipe"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/lead"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/llm"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/noticia"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/notificacao"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/presenca"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/relatorio"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/servico"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/solicitacao"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/usuario"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: arquivo .env não encontrado, usando variáveis de ambiente")
	}
	cfg := config.Load()
	auth.SetSecret(cfg.JWTSecret)

	database, err := db.ConnectDataBase(cfg)
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&usuario.Usuario{},
		&equipe.Colaborador{},
		&lead.Lead{},
		&agendamento.Agendamento{},
		&cliente.Cliente{},
		&servico.Servico{},
		&servico.Atualizacao{},
		&solicitacao.Solicitacao{},
		&documento.Documento{},
		&noticia.Noticia{},
		&depoimento.Depoimento{},
		&chat.Mensagem{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Canais de notificação da equipe (melhor-esforço)
	var canais notificacao.Multi
	if cfg.WebhookURL != "" {
		canais = append(canais, notificacao.NewWebhook(cfg.WebhookURL))
	}
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		tg, err := notificacao.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("Aviso: Telegram indisponível: %v", err)
		} else {
			canais = append(canais, tg)
		}
	}

	// Presença de colaboradores (opcional)
	var presencaStore *presenca.Store
	if cfg.RedisURL != "" {
		presencaStore, err = presenca.NewStore(cfg.RedisURL)
		if err != nil {
			log.Printf("Aviso: Redis indisponível, presença desativada: %v", err)
		}
	}

	// Armazenamento de documentos (opcional)
	var storage documento.Storage
	if cfg.MinioEndpoint != "" {
		st, err := documento.NewMinioStorage(cfg.MinioEndpoint, cfg.MinioAccessKey,
			cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
		if err != nil {
			log.Printf("Aviso: MinIO indisponível, upload de documentos desativado: %v", err)
		} else {
			storage = st
		}
	}

	// Motor do chat
	llmClient := llm.NewHTTPClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel)
	chatEngine := chat.NewEngine(database, llmClient, canais, cfg.TelefoneContato)

	// Handlers
	usuarioHandler := usuario.NewHandler(database)
	leadHandler := lead.NewHandler(database, canais)
	agendamentoHandler := agendamento.NewHandler(database, canais)
	equipeHandler := equipe.NewHandler(database, presencaStore)
	clienteHandler := cliente.NewHandler(database)
	servicoHandler := servico.NewHandler(database)
	solicitacaoHandler := solicitacao.NewHandler(database, canais)
	documentoHandler := documento.NewHandler(database, storage, canais)
	noticiaHandler := noticia.NewHandler(database)
	depoimentoHandler := depoimento.NewHandler(database)
	chatHandler := chat.NewHandler(chatEngine)
	relatorioHandler := relatorio.NewHandler(database)

	// Router
	r := mux.NewRouter()

	// ---- Rotas públicas ----
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")
	r.HandleFunc("/registro", usuarioHandler.Registrar).Methods("POST")

	r.HandleFunc("/leads", leadHandler.Criar).Methods("POST")
	r.HandleFunc("/agendamentos", agendamentoHandler.Criar).Methods("POST")

	r.HandleFunc("/chat", chatHandler.Enviar).Methods("POST")
	r.HandleFunc("/chat/{sessionId}", chatHandler.Historico).Methods("GET")

	r.HandleFunc("/equipe", equipeHandler.Listar).Methods("GET")
	r.HandleFunc("/equipe/departamento/{departamento}", equipeHandler.PorDepartamento).Methods("GET")

	r.HandleFunc("/depoimentos", depoimentoHandler.Listar).Methods("GET")

	r.HandleFunc("/noticias", noticiaHandler.Listar).Methods("GET")
	r.HandleFunc("/noticias/destaques", noticiaHandler.Destaques).Methods("GET")
	r.HandleFunc("/noticias/busca", noticiaHandler.Buscar).Methods("GET")
	r.HandleFunc("/noticias/categoria/{categoria}", noticiaHandler.PorCategoria).Methods("GET")
	r.HandleFunc("/noticias/{id}", noticiaHandler.BuscarPorID).Methods("GET")

	// ---- Rotas autenticadas (qualquer papel) ----
	autenticado := r.NewRoute().Subrouter()
	autenticado.Use(auth.MiddlewareAutenticacao)

	autenticado.HandleFunc("/me", usuarioHandler.Me).Methods("GET")

	autenticado.HandleFunc("/leads", leadHandler.Listar).Methods("GET")
	autenticado.HandleFunc("/leads/{id}/status", leadHandler.AtualizarStatus).Methods("PUT")
	autenticado.HandleFunc("/leads/{id}/responsavel", leadHandler.Atribuir).Methods("PUT")

	autenticado.HandleFunc("/agendamentos", agendamentoHandler.Listar).Methods("GET")
	autenticado.HandleFunc("/agendamentos/{id}/status", agendamentoHandler.AtualizarStatus).Methods("PUT")

	autenticado.HandleFunc("/depoimentos", depoimentoHandler.Criar).Methods("POST")

	autenticado.HandleFunc("/meu-perfil", clienteHandler.MeuPerfil).Methods("GET")
	autenticado.HandleFunc("/meu-perfil", clienteHandler.SalvarPerfil).Methods("PUT")
	autenticado.HandleFunc("/meus-servicos", clienteHandler.MeusServicos).Methods("GET")
	autenticado.HandleFunc("/minhas-solicitacoes", solicitacaoHandler.MinhasSolicitacoes).Methods("GET")
	autenticado.HandleFunc("/solicitacoes", solicitacaoHandler.Criar).Methods("POST")
	autenticado.HandleFunc("/meus-documentos", documentoHandler.MeusDocumentos).Methods("GET")
	autenticado.HandleFunc("/documentos", documentoHandler.Enviar).Methods("POST")
	autenticado.HandleFunc("/documentos/{id}/download", documentoHandler.URLDownload).Methods("GET")

	autenticado.HandleFunc("/presenca/online", equipeHandler.MarcarOnline).Methods("POST")
	autenticado.HandleFunc("/presenca/offline", equipeHandler.MarcarOffline).Methods("POST")

	// ---- Rotas da equipe (staff ou admin) ----
	staff := r.NewRoute().Subrouter()
	staff.Use(auth.MiddlewareAutenticacao, auth.RequireStaff)

	staff.HandleFunc("/clientes", clienteHandler.Listar).Methods("GET")
	staff.HandleFunc("/servicos", servicoHandler.Criar).Methods("POST")
	staff.HandleFunc("/servicos", servicoHandler.Listar).Methods("GET")
	staff.HandleFunc("/servicos/{id}/status", servicoHandler.AtualizarStatus).Methods("PUT")
	staff.HandleFunc("/servicos/{id}/atualizacoes", servicoHandler.ListarAtualizacoes).Methods("GET")
	staff.HandleFunc("/solicitacoes", solicitacaoHandler.Listar).Methods("GET")
	staff.HandleFunc("/solicitacoes/{id}/status", solicitacaoHandler.AtualizarStatus).Methods("PUT")
	staff.HandleFunc("/solicitacoes/{id}/converter", solicitacaoHandler.Converter).Methods("POST")
	staff.HandleFunc("/documentos/{id}/processado", documentoHandler.MarcarProcessado).Methods("PUT")

	// ---- Rotas administrativas ----
	admin := r.NewRoute().Subrouter()
	admin.Use(auth.MiddlewareAutenticacao, auth.RequireAdmin)

	admin.HandleFunc("/equipe", equipeHandler.Criar).Methods("POST")
	admin.HandleFunc("/equipe/todos", equipeHandler.ListarTodos).Methods("GET")
	admin.HandleFunc("/equipe/{id}", equipeHandler.Atualizar).Methods("PUT")
	admin.HandleFunc("/equipe/{id}/desativar", equipeHandler.Desativar).Methods("PUT")
	admin.HandleFunc("/equipe/{id}/reativar", equipeHandler.Reativar).Methods("PUT")

	admin.HandleFunc("/noticias", noticiaHandler.Criar).Methods("POST")
	admin.HandleFunc("/noticias/{id}", noticiaHandler.Atualizar).Methods("PUT")
	admin.HandleFunc("/noticias/{id}/desativar", noticiaHandler.Desativar).Methods("PUT")

	admin.HandleFunc("/relatorios/leads.xlsx", relatorioHandler.ExportarLeads).Methods("GET")
	admin.HandleFunc("/relatorios/agendamentos.xlsx", relatorioHandler.ExportarAgendamentos).Methods("GET")

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	// Inicia servidor
	fmt.Printf("Servidor rodando em http://localhost:%s\n", cfg.Porta)
	log.Fatal(http.ListenAndServe(":"+cfg.Porta, handler))
}
