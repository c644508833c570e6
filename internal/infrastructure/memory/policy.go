package memory

import (
	"lizzyShop/internal/domain"
	"lizzyShop/internal/ports"
)

var _ ports.OperationValidator = (*AllowList)(nil)

// AllowList — политика операций из конфига: разрешено то, что перечислено.
// Не меняется после создания, безопасна для конкурентных вызовов.
type AllowList struct {
	allowed map[string]struct{}
}

// NewAllowList создаёт политику. Имена нормализуются, пустые пропускаются.
func NewAllowList(names ...string) *AllowList {
	allowed := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n = domain.NormalizeOperation(n); n != "" {
			allowed[n] = struct{}{}
		}
	}
	return &AllowList{allowed: allowed}
}

// IsValidOperation реализует ports.OperationValidator. Для пустого имени — false.
func (a *AllowList) IsValidOperation(name string) bool {
	n := domain.NormalizeOperation(name)
	if n == "" {
		return false
	}
	_, ok := a.allowed[n]
	return ok
}
