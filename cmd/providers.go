package main

import (
	"context"
	"fmt"
	"os"
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
	"github.com/KromaEnergia/api-arremate/internal/models"
	"github.com/KromaEnergia/api-arremate/internal/notificacao"
	"github.com/KromaEnergia/api-arremate/internal/oportunidade"
	"github.com/KromaEnergia/api-arremate/internal/usuario"
	"github.com/KromaEnergia/api-arremate/internal/utils/db"
	"github.com/KromaEnergia/api-arremate/internal/viabilidade"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.Load,
		novosPadroes,
	),
	fx.Invoke(logger.Init),
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		novoBanco,
		novoTokenService,
		novasSessoes,
		novosLimitadores,
		novoNotificador,
		usuario.NewRepository,
		convite.NewRepository,
		cliente.NewRepository,
		carteira.NewRepository,
		calculosalvo.NewRepository,
		lead.NewRepository,
		oportunidade.NewRepository,
		arremate.NewRepository,
	),
	fx.Invoke(garantirAdmin),
)

var HandlerModule = fx.Module("handlers",
	fx.Provide(
		viabilidade.NewHandler,
		usuario.NewHandler,
		convite.NewHandler,
		cliente.NewHandler,
		carteira.NewHandler,
		calculosalvo.NewHandler,
		novoLeadHandler,
		oportunidade.NewHandler,
		arremate.NewHandler,
	),
)

// novosPadroes converte os percentuais do YAML para o formato da calculadora.
func novosPadroes(cfg *config.Config) viabilidade.Padroes {
	c := cfg.Calculadora
	p := viabilidade.Padroes{
		AssessoriaThreshold:       c.AssessoriaThreshold,
		AssessoriaFeeBelow:        c.AssessoriaFeeBelow,
		AssessoriaFeeAbovePercent: c.AssessoriaFeeAbovePercent,
	}
	if c.CorretagemPercent != nil {
		p.CorretagemPercent = *c.CorretagemPercent
	}
	if c.ItbiFinanciadoPercent != nil {
		p.ItbiFinanciadoPercent = *c.ItbiFinanciadoPercent
	}
	if c.AliquotaIRGCPercent != nil {
		aliquota := *c.AliquotaIRGCPercent / 100
		p.AliquotaIRGC = &aliquota
	}
	return p
}

func novoBanco(cfg *config.Config) (*gorm.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := db.ConnectDataBase(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("conectando ao banco: %w", err)
	}
	if err := migrar(database); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	logger.Info().Str("driver", cfg.Database.Driver).Msg("Banco pronto")
	return database, nil
}

func migrar(database *gorm.DB) error {
	return database.AutoMigrate(
		&usuario.Usuario{},
		&auth.RefreshToken{},
		&convite.Convite{},
		&models.Cliente{},
		&models.Imovel{},
		&models.Custo{},
		&models.Lead{},
		&calculosalvo.CalculoSalvo{},
		&oportunidade.Oportunidade{},
		&arremate.Arremate{},
	)
}

func novoTokenService(cfg *config.Config) *auth.TokenService {
	return auth.NewTokenService(cfg.Auth.JWTSecret)
}

func novasSessoes(database *gorm.DB, tokens *auth.TokenService, cfg *config.Config) *auth.Sessoes {
	return auth.NewSessoes(database, tokens, cfg.Auth.CookieSecure)
}

// limitadores separa o limite do login, o do formulário público de leads e
// o geral das rotas autenticadas (por usuário).
type limitadores struct {
	Login *auth.RateLimiter
	Lead  *auth.RateLimiter
	API   *auth.RateLimiter
}

func novosLimitadores(lc fx.Lifecycle) *limitadores {
	l := &limitadores{
		Login: auth.NewRateLimiter(10, 15*time.Minute),
		Lead:  auth.NewRateLimiter(5, time.Hour),
		API:   auth.NewRateLimiter(300, 15*time.Minute),
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			l.Login.Stop()
			l.Lead.Stop()
			l.API.Stop()
			return nil
		},
	})
	return l
}

func novoNotificador(cfg *config.Config) *notificacao.Notificador {
	if cfg.Lead.WebhookURL == "" {
		logger.Warn().Msg("LEAD_WEBHOOK_URL não definida; alertas de lead desativados")
		return nil
	}
	return notificacao.NewNotificador(cfg.Lead.WebhookURL)
}

func novoLeadHandler(database *gorm.DB, repo lead.Repository, n *notificacao.Notificador, cfg *config.Config) *lead.Handler {
	return lead.NewHandler(database, repo, lead.PontuadorPadrao{}, n, cfg.Lead.WebhookMinScore)
}

func garantirAdmin(database *gorm.DB, repo usuario.Repository, cfg *config.Config) error {
	if cfg.Auth.AdminEmail == "" {
		return nil
	}
	return usuario.GarantirAdmin(database, repo, usuario.AdminInicial{
		Email:       cfg.Auth.AdminEmail,
		Senha:       cfg.Auth.AdminPassword,
		ExigirSenha: cfg.IsProduction(),
		Saida:       os.Stderr,
	})
}
