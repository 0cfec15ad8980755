package staffing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/staffing/pkg/nlp"
)

var (
	// ErrNotFound — заявка не найдена или принадлежит другому владельцу.
	ErrNotFound = errors.New("request not found")
	// ErrEmptyText — после нормализации в заявке не осталось текста.
	ErrEmptyText = errors.New("empty request text")
)

// Extraction — всё, что конвейер извлёк из одного текста заявки.
// Значение считается неизменяемым: оно же лежит в кэше разборов.
type Extraction struct {
	Normalized       string                                 `json:"normalized"`
	Meta             nlp.MetaInfo                           `json:"meta"`
	MetaLines        []string                               `json:"metaLines"`
	Links            []string                               `json:"links"`
	Description      string                                 `json:"description"`
	Items            map[int]string                         `json:"items"`
	MissingItems     []int                                  `json:"missingItems"`
	Dates            []string                               `json:"dates"`
	Matches          map[nlp.PatternName][]nlp.PatternMatch `json:"matches"`
	Technologies     nlp.Classified                         `json:"technologies"`
	ItemTechnologies map[int]nlp.Classified                 `json:"itemTechnologies"`
	Keywords         map[nlp.Category][]string              `json:"keywords"`
}

// Request — сохранённая разобранная заявка.
type Request struct {
	ID         uuid.UUID  `json:"id"`
	OwnerID    uuid.UUID  `json:"ownerId,omitempty"`
	Filename   string     `json:"filename,omitempty"`
	Extraction Extraction `json:"extraction"`
	Summary    string     `json:"summary,omitempty"`
	Model      string     `json:"model,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// Repository — порт хранения заявок. Все выборки ограничены владельцем.
type Repository interface {
	Create(ctx context.Context, r Request) error
	GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (Request, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Request, error)
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
}

// Exporter рендерит заявку в файл для выгрузки.
type Exporter interface {
	RequestXLSX(ctx context.Context, r Request) ([]byte, error)
}
