// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/card-tracker/backend/internal/application/adapter"
	"github.com/card-tracker/backend/internal/domain/entity"
)

// GeminiAdvisor implements the AdvisorService using Google Gemini.
type GeminiAdvisor struct {
	apiKey    string
	modelName string
}

// NewGeminiAdvisor creates a new Gemini advisor instance.
func NewGeminiAdvisor(apiKey string) *GeminiAdvisor {
	return &GeminiAdvisor{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the advisor is available and properly configured.
func (s *GeminiAdvisor) IsAvailable() bool {
	return s.apiKey != ""
}

// Evaluate asks the model for a purchase verdict and recommendation.
func (s *GeminiAdvisor) Evaluate(ctx context.Context, request *adapter.AdvisorRequest) (*entity.Evaluation, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini advisor is not configured")
	}

	// Create client
	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	// Configure model for JSON output
	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	// Build the prompt
	prompt := s.buildPrompt(request)

	// Generate response
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	// Parse response
	evaluation, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return evaluation, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiAdvisor) buildPrompt(request *adapter.AdvisorRequest) string {
	var sb strings.Builder

	sb.WriteString(`Voce e um consultor financeiro especializado em cartao de credito. Sua tarefa e avaliar se uma compra parcelada hipotetica cabe no orcamento do usuario.

IMPORTANTE - IDIOMA:
- Todas as respostas devem ser em Portugues Brasileiro
- Seja direto e pratico, sem jargao financeiro

DADOS DA SIMULACAO:
`)

	sb.WriteString(fmt.Sprintf("- Valor total da compra: %s\n", request.Amount.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("- Numero de parcelas: %d\n", request.InstallmentCount))
	sb.WriteString(fmt.Sprintf("- Valor mensal da parcela: %s\n", request.MonthlyImpact.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("- Limite do cartao: %s\n", request.CreditLimit.StringFixed(2)))
	if request.MonthlyBudget.IsPositive() {
		sb.WriteString(fmt.Sprintf("- Orcamento mensal definido pelo usuario: %s\n", request.MonthlyBudget.StringFixed(2)))
	}
	sb.WriteString(fmt.Sprintf("- Mes de pico apos a compra: %s com %.1f%% do limite comprometido\n",
		request.PeakMonthLabel, request.PeakUsagePercent))

	if len(request.DangerMonthLabels) > 0 {
		sb.WriteString(fmt.Sprintf("- Meses que ultrapassariam 80%% do limite: %s\n",
			strings.Join(request.DangerMonthLabels, ", ")))
	} else {
		sb.WriteString("- Nenhum mes ultrapassaria 80% do limite\n")
	}

	sb.WriteString(`
Avalie a compra e responda com um unico objeto JSON:
{
  "viable": true ou false,
  "impact_score": 0-10 (0 = sem impacto, 10 = critico),
  "recommendation": "recomendacao pratica em Portugues, no maximo 2 frases",
  "best_timing": "quando fazer a compra, em Portugues, no maximo 1 frase"
}

REGRAS:
- "viable" deve ser false se algum mes ultrapassar 100% do limite
- "impact_score" deve crescer com o percentual de pico e com o numero de meses em perigo
- "best_timing" deve sugerir esperar quando o pico esta alto e meses mais leves existem adiante

FORMATO DE RESPOSTA: Retorne apenas o objeto JSON, sem texto adicional.
`)

	return sb.String()
}

// geminiEvaluation represents the raw response from Gemini.
type geminiEvaluation struct {
	Viable         *bool  `json:"viable"`
	ImpactScore    *int   `json:"impact_score"`
	Recommendation string `json:"recommendation"`
	BestTiming     string `json:"best_timing"`
}

// parseResponse parses the Gemini response into an Evaluation. Any deviation
// from the expected shape is an error; the caller falls back to the local
// deterministic evaluation.
func (s *GeminiAdvisor) parseResponse(resp *genai.GenerateContentResponse) (*entity.Evaluation, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	// Get the text content from the response
	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	// Parse JSON
	var raw geminiEvaluation
	if err := json.Unmarshal([]byte(textContent), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	// Validate required fields
	if raw.Viable == nil || raw.ImpactScore == nil {
		return nil, fmt.Errorf("missing required fields in response: %s", textContent)
	}
	if *raw.ImpactScore < 0 || *raw.ImpactScore > 10 {
		return nil, fmt.Errorf("impact score out of range: %d", *raw.ImpactScore)
	}
	if strings.TrimSpace(raw.Recommendation) == "" {
		return nil, fmt.Errorf("empty recommendation in response")
	}

	return &entity.Evaluation{
		Viable:         *raw.Viable,
		ImpactScore:    *raw.ImpactScore,
		Recommendation: strings.TrimSpace(raw.Recommendation),
		BestTiming:     strings.TrimSpace(raw.BestTiming),
		Source:         entity.EvaluationSourceAdvisor,
	}, nil
}
