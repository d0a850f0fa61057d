package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/medtrack-app/medtrack-backend/internal/config"
	"github.com/medtrack-app/medtrack-backend/internal/models"
	"gorm.io/gorm"
)

// AINoDataAnswer is returned without calling the provider when the user has
// no records in the requested period.
const AINoDataAnswer = "Нет данных о симптомах или медикаментах за указанный период."

// aiNoResponseAnswer is the sentinel for an unexpected provider response shape.
const aiNoResponseAnswer = "Ответ не получен"

const aiSystemPrompt = "Ты опытный врач. Отвечай на русском языке, не ставь точных диагнозов."

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// AIService builds a prompt from a user's recent records and proxies it to
// the chat-completion provider. All calls pass through one shared Pacer.
type AIService struct {
	db         *gorm.DB
	cfg        *config.Config
	pacer      *Pacer
	httpClient *http.Client
}

func NewAIService(db *gorm.DB, cfg *config.Config, pacer *Pacer) *AIService {
	return &AIService{
		db:         db,
		cfg:        cfg,
		pacer:      pacer,
		httpClient: &http.Client{Timeout: cfg.AITimeout},
	}
}

// Recommendations aggregates occurrence counts over [start, end] and returns
// the provider's advice text verbatim. Explicitly not a diagnosis.
func (s *AIService) Recommendations(ctx context.Context, userID uuid.UUID, start, end time.Time) (string, error) {
	var records []models.HealthRecord
	err := s.db.
		Preload("Symptom").
		Preload("Medication").
		Where("user_id = ? AND record_date >= ? AND record_date < ?", userID, start, end.AddDate(0, 0, 1)).
		Find(&records).Error
	if err != nil {
		return "", fmt.Errorf("failed to fetch health records: %w", err)
	}

	if len(records) == 0 {
		return AINoDataAnswer, nil
	}

	prompt := BuildAdvicePrompt(records)

	if err := s.pacer.Acquire(ctx); err != nil {
		return "", err
	}
	defer s.pacer.Release()

	return s.complete(ctx, prompt)
}

// BuildAdvicePrompt renders the fixed advice prompt from record counts.
func BuildAdvicePrompt(records []models.HealthRecord) string {
	symptomCounts := make(map[string]int)
	medicationCounts := make(map[string]int)
	for _, r := range records {
		if r.Symptom != nil {
			symptomCounts[r.Symptom.Name]++
		}
		if r.Medication != nil {
			medicationCounts[r.Medication.Name]++
		}
	}

	return fmt.Sprintf(
		`У пользователя за период наблюдения были зафиксированы следующие симптомы: %s.
За тот же период он принимал следующие лекарства: %s.
Проанализируй эти данные и дай развернутые рекомендации. Укажи:
1. Что могут значить симптомы.
2. Как лекарства влияют на ситуацию.
3. Рекомендации по дальнейшему лечению.
4. Изменения в образе жизни для улучшения состояния.
5. Когда стоит обратиться к врачу.
Не ставь точный диагноз, а предоставь общие рекомендации на основе симптомов и медикаментов.`,
		countList(symptomCounts), countList(medicationCounts))
}

func countList(counts map[string]int) string {
	if len(counts) == 0 {
		return "отсутствуют"
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %d раз", name, counts[name]))
	}
	return strings.Join(parts, ", ")
}

func (s *AIService) complete(ctx context.Context, prompt string) (string, error) {
	reqBody, err := json.Marshal(chatRequest{
		Model: s.cfg.AIModel,
		Messages: []chatMessage{
			{Role: "system", Content: aiSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   1000,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.AIAPIURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.AIAPIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("AI request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI provider returned status %d", resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode AI response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return aiNoResponseAnswer, nil
	}

	content := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	if content == "" {
		return aiNoResponseAnswer, nil
	}
	return content, nil
}
