package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/KromaEnergia/api-arremate/internal/arremate"
	"github.com/KromaEnergia/api-arremate/internal/auth"
	"github.com/KromaEnergia/api-arremate/internal/calculosalvo"
	"github.com/KromaEnergia/api-arremate/internal/carteira"
	"github.com/KromaEnergia/api-arremate/internal/cliente"
	"github.com/KromaEnergia/api-arremate/internal/config"
	"github.com/KromaEnergia/api-arremate/internal/convite"
	"github.com/KromaEnergia/api-arremate/internal/lead"
	"github.com/KromaEnergia/api-arremate/internal/logger"
	"github.com/KromaEnergia/api-arremate/internal/oportunidade"
	"github.com/KromaEnergia/api-arremate/internal/usuario"
	"github.com/KromaEnergia/api-arremate/internal/viabilidade"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/fx"
)

var ServerModule = fx.Module("server",
	fx.Provide(novoRouter),
	fx.Invoke(iniciarServidor),
)

type rotas struct {
	fx.In

	Tokens       *auth.TokenService
	Sessoes      *auth.Sessoes
	Limitadores  *limitadores
	Calculadora  *viabilidade.Handler
	Usuarios     *usuario.Handler
	Convites     *convite.Handler
	Clientes     *cliente.Handler
	Carteira     *carteira.Handler
	Calculos     *calculosalvo.Handler
	Leads        *lead.Handler
	Oportunidade *oportunidade.Handler
	Arremates    *arremate.Handler
}

func novoRouter(h rotas) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	// Rotas públicas
	pub := r.PathPrefix("/api").Subrouter()
	pub.Handle("/auth/login", auth.RateLimit(h.Limitadores.Login)(http.HandlerFunc(h.Usuarios.Login))).Methods("POST")
	pub.HandleFunc("/auth/refresh", h.Sessoes.Refresh).Methods("POST")
	pub.HandleFunc("/auth/logout", h.Sessoes.Logout).Methods("POST")
	pub.HandleFunc("/convites/aceitar", h.Convites.Aceitar).Methods("POST")
	pub.Handle("/leads", auth.RateLimit(h.Limitadores.Lead)(http.HandlerFunc(h.Leads.Submeter))).Methods("POST")

	// Rotas autenticadas
	api := r.PathPrefix("/api").Subrouter()
	api.Use(auth.MiddlewareAutenticacao(h.Tokens))
	api.Use(auth.RateLimit(h.Limitadores.API))

	api.HandleFunc("/me", h.Usuarios.Me).Methods("GET")
	api.HandleFunc("/me", h.Usuarios.AtualizarPerfil).Methods("PUT")
	api.HandleFunc("/me/senha", h.Usuarios.AlterarSenha).Methods("PUT")

	api.HandleFunc("/calculadora", h.Calculadora.Calcular).Methods("POST")

	api.HandleFunc("/calculos", h.Calculos.Listar).Methods("GET")
	api.HandleFunc("/calculos", h.Calculos.Salvar).Methods("POST")
	api.HandleFunc("/calculos/{id:[0-9]+}", h.Calculos.Buscar).Methods("GET")
	api.HandleFunc("/calculos/{id:[0-9]+}", h.Calculos.Atualizar).Methods("PUT")
	api.HandleFunc("/calculos/{id:[0-9]+}", h.Calculos.Deletar).Methods("DELETE")
	api.HandleFunc("/calculos/{id:[0-9]+}/importar", h.Calculos.ImportarParaCarteira).Methods("POST")

	api.HandleFunc("/clientes", h.Clientes.Listar).Methods("GET")
	api.HandleFunc("/clientes", h.Clientes.Criar).Methods("POST")
	api.HandleFunc("/clientes/{id:[0-9]+}", h.Clientes.Buscar).Methods("GET")
	api.HandleFunc("/clientes/{id:[0-9]+}", h.Clientes.Atualizar).Methods("PUT")
	api.HandleFunc("/clientes/{id:[0-9]+}", h.Clientes.Deletar).Methods("DELETE")
	api.HandleFunc("/clientes/{id:[0-9]+}/dashboard", h.Clientes.Dashboard).Methods("GET")

	api.HandleFunc("/carteira/dashboard", h.Carteira.Dashboard).Methods("GET")
	api.HandleFunc("/carteira/imoveis", h.Carteira.ListarImoveis).Methods("GET")
	api.HandleFunc("/carteira/imoveis", h.Carteira.CriarImovel).Methods("POST")
	api.HandleFunc("/carteira/imoveis/{id:[0-9]+}", h.Carteira.BuscarImovel).Methods("GET")
	api.HandleFunc("/carteira/imoveis/{id:[0-9]+}", h.Carteira.AtualizarImovel).Methods("PUT")
	api.HandleFunc("/carteira/imoveis/{id:[0-9]+}", h.Carteira.DeletarImovel).Methods("DELETE")
	api.HandleFunc("/carteira/imoveis/{id:[0-9]+}/custos", h.Carteira.AdicionarCusto).Methods("POST")
	api.HandleFunc("/carteira/imoveis/{id:[0-9]+}/lancar-mensais", h.Carteira.LancarMensais).Methods("POST")
	api.HandleFunc("/carteira/custos/{id:[0-9]+}", h.Carteira.DeletarCusto).Methods("DELETE")

	api.HandleFunc("/leads/piscina", h.Leads.Piscina).Methods("GET")
	api.HandleFunc("/leads/{id:[0-9]+}/puxar", h.Leads.Puxar).Methods("POST")

	api.HandleFunc("/oportunidades", h.Oportunidade.Listar).Methods("GET")
	api.HandleFunc("/oportunidades", h.Oportunidade.Criar).Methods("POST")
	api.HandleFunc("/oportunidades/calculo/{id:[0-9]+}", h.Oportunidade.CriarDoCalculo).Methods("POST")
	api.HandleFunc("/oportunidades/{id:[0-9]+}/status", h.Oportunidade.AtualizarStatus).Methods("PUT")
	api.HandleFunc("/oportunidades/{id:[0-9]+}", h.Oportunidade.Deletar).Methods("DELETE")

	api.HandleFunc("/arremates", h.Arremates.Listar).Methods("GET")
	api.HandleFunc("/arremates", h.Arremates.Registrar).Methods("POST")
	api.HandleFunc("/arremates/relatorio", h.Arremates.Relatorio).Methods("GET")
	api.HandleFunc("/arremates/{id:[0-9]+}", h.Arremates.Buscar).Methods("GET")
	api.HandleFunc("/arremates/{id:[0-9]+}", h.Arremates.Editar).Methods("PUT")

	// Administração
	adm := api.PathPrefix("/admin").Subrouter()
	adm.Use(auth.RequireAdmin)
	adm.HandleFunc("/usuarios", h.Usuarios.Listar).Methods("GET")
	adm.HandleFunc("/usuarios/{id:[0-9]+}/redefinir-senha", h.Usuarios.RedefinirSenha).Methods("POST")
	adm.HandleFunc("/convites", h.Convites.Listar).Methods("GET")
	adm.HandleFunc("/convites", h.Convites.Criar).Methods("POST")
	adm.HandleFunc("/leads/historico", h.Leads.Historico).Methods("GET")

	return r
}

func iniciarServidor(lc fx.Lifecycle, cfg *config.Config, r *mux.Router) {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           c.Handler(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info().Str("address", srv.Addr).Str("environment", cfg.App.Environment).Msg("Servidor iniciando")
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal().Err(err).Msg("Falha no servidor HTTP")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Servidor parando...")
			return srv.Shutdown(ctx)
		},
	})
}
