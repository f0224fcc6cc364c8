package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/uguryukselwork/quickserve/store"
	"github.com/uguryukselwork/quickserve/utils"
)

// FallbackMessage is returned whenever the assistant backend cannot be
// reached or answers with garbage. The core never retries.
const FallbackMessage = "Üzgünüm, şu an asistan hizmeti veremiyorum. Lütfen garson çağırmayı deneyin."

// AssistantService forwards customer questions to an external
// language-model endpoint together with the menu text and the customer's
// current cart. Failures degrade to the fixed fallback sentence.
type AssistantService struct {
	Store    *store.Store
	Client   *http.Client
	Endpoint string
	APIKey   string
}

func NewAssistantService(st *store.Store) *AssistantService {
	return &AssistantService{
		Store:    st,
		Client:   &http.Client{Timeout: 15 * time.Second},
		Endpoint: os.Getenv("ASSISTANT_ENDPOINT"),
		APIKey:   os.Getenv("ASSISTANT_API_KEY"),
	}
}

type assistantRequest struct {
	Prompt string `json:"prompt"`
}

type assistantResponse struct {
	Text string `json:"text"`
}

// Ask builds the prompt and performs one request. Any failure returns the
// fallback sentence; errors never propagate.
func (as *AssistantService) Ask(tableID, question string) string {
	if as.Endpoint == "" {
		return FallbackMessage
	}

	body, err := json.Marshal(assistantRequest{Prompt: as.buildPrompt(tableID, question)})
	if err != nil {
		return FallbackMessage
	}

	req, err := http.NewRequest(http.MethodPost, as.Endpoint, bytes.NewReader(body))
	if err != nil {
		return FallbackMessage
	}
	req.Header.Set("Content-Type", "application/json")
	if as.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+as.APIKey)
	}

	resp, err := as.Client.Do(req)
	if err != nil {
		utils.ErrorLogger.Printf("assistant request failed: %v", err)
		return FallbackMessage
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		utils.ErrorLogger.Printf("assistant returned status %d", resp.StatusCode)
		return FallbackMessage
	}

	var parsed assistantResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil || parsed.Text == "" {
		return FallbackMessage
	}
	return parsed.Text
}

func (as *AssistantService) buildPrompt(tableID, question string) string {
	var menu strings.Builder
	for _, item := range as.Store.Menu() {
		fmt.Fprintf(&menu, "%s (%s): %s - %dTL\n", item.Name, item.Category, item.Description, item.Price)
	}

	return fmt.Sprintf(`Sen QuickServe restoranının akıllı dijital asistanısın. Müşterilere yemek seçimi konusunda yardımcı oluyorsun.

Mevcut Menü:
%s
Müşterinin Sepeti:
%s
Müşterinin Sorusu:
%s

Kısa, nazik ve iştah açıcı bir cevap ver. Cevapların her zaman Türkçe olsun.`,
		menu.String(), as.Store.CartContext(tableID), question)
}
