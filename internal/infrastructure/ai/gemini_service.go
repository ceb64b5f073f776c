package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturia/internal/application/dto"
	"github.com/jhoicas/facturia/internal/application/ports"
	"github.com/jhoicas/facturia/internal/domain/entity"
)

// Verificar en tiempo de compilación que GeminiService implementa DraftService.
var _ ports.DraftService = (*GeminiService)(nil)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// instructionTemplate es la instrucción enviada al modelo. El formato de
// salida no depende del texto: responseSchema obliga a Gemini a devolver
// exactamente el objeto esperado, sin bloques markdown que limpiar.
const instructionTemplate = `Generate a list of line items for a %s based on the following request: "%s". Provide realistic quantities and prices.`

// GeminiService adaptador que implementa DraftService llamando a la API REST
// de Google Gemini con salida estructurada. Usa únicamente net/http para no
// añadir dependencias externas.
type GeminiService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-1.5-flash".
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultGeminiBaseURL,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	ResponseMIMEType string         `json:"responseMimeType"` // "application/json" → JSON puro garantizado
	ResponseSchema   map[string]any `json:"responseSchema"`
	Temperature      float32        `json:"temperature"`
	MaxOutputTokens  int            `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// lineItemsSchema es el esquema fijo exigido al modelo: un objeto con el
// campo lineItems, array de objetos {description, quantity, unitPrice}.
var lineItemsSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"lineItems": map[string]any{
			"type": "ARRAY",
			"items": map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"description": map[string]any{"type": "STRING"},
					"quantity":    map[string]any{"type": "NUMBER"},
					"unitPrice":   map[string]any{"type": "NUMBER"},
				},
				"required": []string{"description", "quantity", "unitPrice"},
			},
		},
	},
	"required": []string{"lineItems"},
}

// draftPayload es el JSON que esperamos recibir del modelo.
type draftPayload struct {
	LineItems []struct {
		Description string  `json:"description"`
		Quantity    float64 `json:"quantity"`
		UnitPrice   float64 `json:"unitPrice"`
	} `json:"lineItems"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// GenerateLineItems llama a Gemini con la petición en texto libre y devuelve
// las líneas candidatas para un documento del tipo indicado.
func (s *GeminiService) GenerateLineItems(
	ctx context.Context,
	docType entity.DocumentType,
	prompt string,
) ([]dto.DraftLineItem, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("IA: GEMINI_API_KEY no configurado")
	}

	payload := geminiRequest{
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: fmt.Sprintf(instructionTemplate, docType, prompt)}},
			},
		},
		GenerationConfig: genConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   lineItemsSchema,
			Temperature:      0.7,
			MaxOutputTokens:  1024,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("IA: serializar request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("IA: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("IA: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("IA: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("IA: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Intentar extraer el mensaje de error de Gemini
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return nil, fmt.Errorf("IA: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return nil, fmt.Errorf("IA: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return nil, fmt.Errorf("IA: deserializar respuesta Gemini: %w", err)
	}

	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("IA: Gemini devolvió respuesta vacía")
	}

	rawJSON := strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text)

	var draft draftPayload
	if err := json.Unmarshal([]byte(rawJSON), &draft); err != nil {
		return nil, fmt.Errorf("IA: respuesta del modelo no cumple el esquema: %w (respuesta: %s)", err, rawJSON)
	}
	if len(draft.LineItems) == 0 {
		return nil, fmt.Errorf("IA: el modelo no devolvió ninguna línea")
	}

	items := make([]dto.DraftLineItem, 0, len(draft.LineItems))
	for _, li := range draft.LineItems {
		if li.Description == "" {
			return nil, fmt.Errorf("IA: línea sin descripción en la respuesta del modelo")
		}
		items = append(items, dto.DraftLineItem{
			Description: li.Description,
			Quantity:    decimal.NewFromFloat(li.Quantity),
			UnitPrice:   decimal.NewFromFloat(li.UnitPrice),
		})
	}
	return items, nil
}
