package health

import (
	"context"
	"fmt"
)

// Checker — проверка одной внешней зависимости.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// ReadinessUseCase сообщает, готов ли сервис принимать заявки.
type ReadinessUseCase interface {
	Ready(ctx context.Context) error
}

type service struct {
	checkers []Checker
}

// NewService объединяет проверки; без проверок сервис всегда готов.
func NewService(checkers ...Checker) ReadinessUseCase {
	return &service{checkers: checkers}
}

// Ready останавливается на первой упавшей проверке и называет её в ошибке.
func (s *service) Ready(ctx context.Context) error {
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			return fmt.Errorf("%s: %w", ch.Name(), err)
		}
	}
	return nil
}
