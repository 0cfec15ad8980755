package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/staffing/api/http/presenter"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 200
)

// pageQuery — параметры выборки ?limit=&offset=.
type pageQuery struct {
	Limit  int
	Offset int
}

// readPage читает limit и offset. Нечисловые значения и значения вне
// диапазона заменяются значениями по умолчанию, ошибки клиенту не отдаём.
func readPage(c *fiber.Ctx) pageQuery {
	q := pageQuery{
		Limit:  c.QueryInt("limit", defaultPageLimit),
		Offset: c.QueryInt("offset", 0),
	}
	if q.Limit <= 0 || q.Limit > maxPageLimit {
		q.Limit = defaultPageLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return q
}

func pageOf[T any](q pageQuery, items []T) presenter.Page[T] {
	if items == nil {
		items = []T{}
	}
	return presenter.Page[T]{Items: items, Limit: q.Limit, Offset: q.Offset}
}
