package staffing

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"

	"github.com/artem13815/staffing/pkg/document"
	"github.com/artem13815/staffing/pkg/llm"
)

// UseCase — сценарии работы с заявками на подбор.
type UseCase interface {
	Parse(ctx context.Context, ownerID uuid.UUID, filename string, data []byte) (Request, error)
	ParseText(ctx context.Context, ownerID uuid.UUID, text string) (Request, error)
	Preview(ctx context.Context, text string) (Extraction, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (Request, error)
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Request, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	Export(ctx context.Context, ownerID, id uuid.UUID) ([]byte, error)
}

// Options — параметры сервиса. Нулевые значения заменяются значениями по умолчанию.
type Options struct {
	CacheSize  int
	CacheTTL   time.Duration
	MaxTextLen int // сколько символов текста уходит в LLM
	ModelName  string
}

type service struct {
	repo      Repository
	extractor *Extractor
	exporter  Exporter
	llm       llm.ChatModel
	cache     *expirable.LRU[string, Extraction]
	opts      Options
	logger    *zap.Logger
}

// NewService собирает сервис. model может быть nil, тогда краткое резюме не строится.
func NewService(repo Repository, extractor *Extractor, exporter Exporter, model llm.ChatModel, opts Options, logger *zap.Logger) UseCase {
	if opts.CacheSize <= 0 {
		opts.CacheSize = 256
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 30 * time.Minute
	}
	if opts.MaxTextLen <= 0 {
		opts.MaxTextLen = 12000
	}
	if extractor == nil {
		extractor = NewExtractor(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		repo:      repo,
		extractor: extractor,
		exporter:  exporter,
		llm:       model,
		cache:     expirable.NewLRU[string, Extraction](opts.CacheSize, nil, opts.CacheTTL),
		opts:      opts,
		logger:    logger,
	}
}

func (s *service) Parse(ctx context.Context, ownerID uuid.UUID, filename string, data []byte) (Request, error) {
	text, err := document.ExtractText(filename, data)
	if err != nil {
		return Request{}, fmt.Errorf("read %s: %w", filename, err)
	}
	return s.create(ctx, ownerID, filename, text)
}

func (s *service) ParseText(ctx context.Context, ownerID uuid.UUID, text string) (Request, error) {
	return s.create(ctx, ownerID, "", text)
}

func (s *service) Preview(_ context.Context, text string) (Extraction, error) {
	return s.extract(text)
}

func (s *service) create(ctx context.Context, ownerID uuid.UUID, filename, text string) (Request, error) {
	ex, err := s.extract(text)
	if err != nil {
		return Request{}, err
	}
	r := Request{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Filename:   filename,
		Extraction: ex,
		CreatedAt:  time.Now().UTC(),
	}
	if s.llm != nil {
		summary, err := s.summarize(ctx, ex)
		if err != nil {
			// заявка сохраняется и без резюме
			s.logger.Warn("request summary failed", zap.Error(err))
		} else {
			r.Summary = summary
			r.Model = s.opts.ModelName
		}
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return Request{}, fmt.Errorf("save request: %w", err)
	}
	s.logger.Info("request parsed",
		zap.String("id", r.ID.String()),
		zap.Int("items", len(ex.Items)),
		zap.Int("missing", len(ex.MissingItems)),
		zap.Int("technologies", len(ex.Technologies.All())),
	)
	return r, nil
}

// extract возвращает разбор из кэша по SHA-256 сырого текста или прогоняет конвейер.
func (s *service) extract(text string) (Extraction, error) {
	if strings.TrimSpace(text) == "" {
		return Extraction{}, ErrEmptyText
	}
	sum := sha256.Sum256([]byte(text))
	key := hex.EncodeToString(sum[:])
	if ex, ok := s.cache.Get(key); ok {
		return ex, nil
	}
	ex := s.extractor.Extract(text)
	if ex.Normalized == "" {
		return Extraction{}, ErrEmptyText
	}
	s.cache.Add(key, ex)
	return ex, nil
}

func (s *service) Get(ctx context.Context, ownerID, id uuid.UUID) (Request, error) {
	return s.repo.GetForOwner(ctx, ownerID, id)
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Request, error) {
	return s.repo.ListByOwner(ctx, ownerID, limit, offset)
}

func (s *service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteForOwner(ctx, ownerID, id)
}

func (s *service) Export(ctx context.Context, ownerID, id uuid.UUID) ([]byte, error) {
	r, err := s.repo.GetForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	b, err := s.exporter.RequestXLSX(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("export request %s: %w", id, err)
	}
	return b, nil
}

func (s *service) summarize(ctx context.Context, ex Extraction) (string, error) {
	text := ex.Normalized
	if r := []rune(text); len(r) > s.opts.MaxTextLen {
		text = string(r[:s.opts.MaxTextLen])
	}
	system := "Ты помощник менеджера по подбору. Отвечай кратко, без списков и markdown."
	user := fmt.Sprintf(
		"Роль: %s\nТехнология: %s\nКомпания: %s\nОбязательные технологии: %s\nЖелательные технологии: %s\n\nТекст заявки:\n<<<\n%s\n>>>\n\nОпиши заявку в 2-3 предложениях: кого ищут, на какой проект и с каким стеком.",
		ex.Meta.Role,
		ex.Meta.Technology,
		ex.Meta.Company,
		strings.Join(ex.Technologies.Required, ", "),
		strings.Join(ex.Technologies.Preferred, ", "),
		text,
	)
	raw, err := s.llm.Ask(ctx, system, user)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}
