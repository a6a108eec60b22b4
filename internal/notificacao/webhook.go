package notificacao

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/KromaEnergia/api-arremate/internal/logger"
	"github.com/KromaEnergia/api-arremate/internal/models"
	"github.com/KromaEnergia/api-arremate/internal/utils"
)

const timeoutEnvio = 5 * time.Second

// Notificador envia alertas para um webhook externo. Sem URL, não faz nada.
type Notificador struct {
	URL    string
	Client *http.Client
}

func NewNotificador(url string) *Notificador {
	return &Notificador{URL: url, Client: &http.Client{Timeout: timeoutEnvio}}
}

type alertaLead struct {
	Mensagem  string `json:"mensagem"`
	LeadID    uint   `json:"leadId"`
	Nome      string `json:"nome"`
	Whatsapp  string `json:"whatsapp"`
	Score     int    `json:"score"`
	Capital   string `json:"capital"`
	Cidade    string `json:"cidade,omitempty"`
	Estado    string `json:"estado,omitempty"`
	Interesse string `json:"interesse,omitempty"`
}

// EnviarAlertaLead publica o lead no webhook e devolve erro em status fora de 2xx.
func (n *Notificador) EnviarAlertaLead(ctx context.Context, lead models.Lead) error {
	if n == nil || n.URL == "" {
		return nil
	}
	body, err := json.Marshal(alertaLead{
		Mensagem:  fmt.Sprintf("Novo lead quente: %s (score %d)", lead.Nome, lead.Score),
		LeadID:    lead.ID,
		Nome:      lead.Nome,
		Whatsapp:  lead.Whatsapp,
		Score:     lead.Score,
		Capital:   utils.FormatarBRL(lead.CapitalDisponivel),
		Cidade:    lead.Cidade,
		Estado:    lead.Estado,
		Interesse: lead.Interesse,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.Client.Do(req)
	if err != nil {
		return fmt.Errorf("enviando webhook: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook respondeu %d", resp.StatusCode)
	}
	return nil
}

// AlertarLead dispara o envio em segundo plano; falhas só são registradas.
func (n *Notificador) AlertarLead(lead models.Lead) {
	if n == nil || n.URL == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeoutEnvio)
		defer cancel()
		if err := n.EnviarAlertaLead(ctx, lead); err != nil {
			logger.Warn().Err(err).Uint("lead_id", lead.ID).Msg("Erro ao enviar webhook de lead")
		}
	}()
}
