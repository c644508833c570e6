package domain

import "errors"

// Виды ошибок ядра. Конкретные ошибки оборачивают вид через %w, проверка — errors.Is.
var (
	// ErrInvalidArgument — некорректный запрос или конструирование: пустая операция,
	// запрещённая/неподдерживаемая операция, неположительное количество, отрицательная цена,
	// отсутствующая зависимость.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDivisionByZero — деление на ноль после того, как операция divide уже прошла валидацию.
	ErrDivisionByZero = errors.New("division by zero")
)
