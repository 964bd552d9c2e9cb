package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

// Webhook envia alertas de variação de honorários para a URL configurada em
// WEBHOOK_ALERTA_URL. Sem URL configurada, não faz nada.
type Webhook struct{}

func NewWebhook() *Webhook {
	return &Webhook{}
}

// AlertaVariacao avisa que a cobrança de um honorário ficou abaixo do
// limite de variação da tabela OAB. Melhor esforço: falha só é logada.
func (wh *Webhook) AlertaVariacao(honorarioID uint, variacao decimal.Decimal) {
	url := os.Getenv("WEBHOOK_ALERTA_URL")
	if url == "" {
		return
	}

	payload := map[string]string{
		"mensagem":    "Alerta: honorário cobrado abaixo do limite de variação da tabela OAB",
		"honorarioId": strconv.FormatUint(uint64(honorarioID), 10),
		"variacao":    variacao.StringFixed(2) + "%",
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook: %v", err)
		return
	}
	defer resp.Body.Close()
}
