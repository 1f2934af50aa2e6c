package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nutrichat-be/internal/dto"
	"nutrichat-be/internal/entity"
	"nutrichat-be/internal/pkg/apperror"
	"nutrichat-be/internal/pkg/logger"
	"nutrichat-be/internal/repository/contract"
	"nutrichat-be/pkg/llm"
	"nutrichat-be/pkg/rag/prompt"

	"golang.org/x/sync/errgroup"
)

// persistTimeout bounds the detached history write after a completed answer.
const persistTimeout = 10 * time.Second

// ContextRetriever returns the k nearest article chunks for a free-text
// query. Satisfied by retrieval.Retriever.
type ContextRetriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]entity.ArticleChunk, error)
}

// IChatService defines the chat request handler
type IChatService interface {
	Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
}

// Options bound the per-request work. All values come from config.
type Options struct {
	HistoryLimit     int
	ActivityLogLimit int
	RetrievalTopK    int
	Temperature      float64
	AiTimeout        time.Duration
}

type chatService struct {
	activityRepo contract.ActivityLogRepository
	goalRepo     contract.GoalRepository
	historyRepo  contract.ChatHistoryRepository
	retriever    ContextRetriever
	llmProvider  llm.LLMProvider
	log          logger.ILogger
	opts         Options
}

func NewChatService(
	activityRepo contract.ActivityLogRepository,
	goalRepo contract.GoalRepository,
	historyRepo contract.ChatHistoryRepository,
	retriever ContextRetriever,
	llmProvider llm.LLMProvider,
	log logger.ILogger,
	opts Options,
) IChatService {
	return &chatService{
		activityRepo: activityRepo,
		goalRepo:     goalRepo,
		historyRepo:  historyRepo,
		retriever:    retriever,
		llmProvider:  llmProvider,
		log:          log,
		opts:         opts,
	}
}

// Chat runs one request end to end:
// validate -> fetch user context + history -> assemble -> retrieve ->
// generate -> persist turn -> respond.
// The two fetches run concurrently; both must finish before assembly.
// A persistence failure after a successful answer is logged, never surfaced.
func (s *chatService) Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	if strings.TrimSpace(request.Email) == "" || strings.TrimSpace(request.Question) == "" {
		return nil, apperror.New(apperror.KindValidation, "email and question are required")
	}

	var (
		goal    *entity.GoalRecord
		entries []entity.ActivityEntry
		history []entity.ConversationTurn
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		goal, err = s.goalRepo.FindByEmail(gctx, request.Email)
		if err != nil {
			return apperror.Wrap(apperror.KindStoreUnavailable, "goal lookup failed", err)
		}
		entries, err = s.activityRepo.FindRecentByEmail(gctx, request.Email, s.opts.ActivityLogLimit)
		if err != nil {
			return apperror.Wrap(apperror.KindStoreUnavailable, "activity log lookup failed", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		history, err = s.historyRepo.FindRecentByEmail(gctx, request.Email, s.opts.HistoryLimit)
		if err != nil {
			return apperror.Wrap(apperror.KindStoreUnavailable, "chat history lookup failed", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	bundle := prompt.Assemble(goal, entries, history)
	promptContext := bundle.PromptContext()
	s.log.Debug("chat", "assembled prompt context", map[string]interface{}{
		"email":   request.Email,
		"context": promptContext,
	})

	chunks := s.retrieveChunks(ctx, request.Question)

	answer, err := s.generate(ctx, promptContext, chunks, request.Question)
	if err != nil {
		return nil, err
	}

	// Best effort: the answer is already complete, a failed write must not
	// block the response. It is logged for operational visibility.
	// Detached from the request context so a client disconnect after
	// generation does not cancel the write; only the timeout bounds it.
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()
	if err := s.historyRepo.Append(pctx, request.Email, request.Question, answer); err != nil {
		s.log.Error("chat", "failed to persist conversation turn", map[string]interface{}{
			"kind":  string(apperror.KindPersistence),
			"email": request.Email,
			"error": err.Error(),
		})
	}

	return &dto.ChatResponse{Reply: answer}, nil
}

// retrieveChunks degrades to an empty result when the index is unhealthy:
// an answer without reference articles beats no answer at all.
func (s *chatService) retrieveChunks(ctx context.Context, question string) []entity.ArticleChunk {
	rctx, cancel := context.WithTimeout(ctx, s.opts.AiTimeout)
	defer cancel()

	chunks, err := s.retriever.Retrieve(rctx, question, s.opts.RetrievalTopK)
	if err != nil {
		s.log.Warn("chat", "retrieval failed, continuing without reference articles", map[string]interface{}{
			"kind":  string(apperror.KindRetrievalUnavailable),
			"error": err.Error(),
		})
		return nil
	}
	return chunks
}

func (s *chatService) generate(ctx context.Context, promptContext string, chunks []entity.ArticleChunk, question string) (string, error) {
	gctx, cancel := context.WithTimeout(ctx, s.opts.AiTimeout)
	defer cancel()

	answer, err := s.llmProvider.Generate(gctx, buildFullPrompt(promptContext, chunks, question),
		llm.WithTemperature(s.opts.Temperature),
	)
	if err != nil {
		return "", apperror.Wrap(apperror.KindGenerationUnavailable, "completion request failed", err)
	}
	return answer, nil
}

func buildFullPrompt(promptContext string, chunks []entity.ArticleChunk, question string) string {
	var sb strings.Builder
	sb.WriteString(promptContext)

	if len(chunks) > 0 {
		sb.WriteString("\n\nReference Articles:\n")
		for i, chunk := range chunks {
			sb.WriteString(fmt.Sprintf("[%d] %s\n", i+1, chunk.Content))
		}
	}

	sb.WriteString("\n\nUser question: ")
	sb.WriteString(question)
	return sb.String()
}
