package domain

import "strings"

// Префиксы ключей сообщений в топике: по ним консьюмер выбирает обработчик.
const (
	EventOperation = "operation"
	EventCheckout  = "checkout"
)

// EventKey собирает ключ сообщения вида "operation:10 add 5".
func EventKey(kind, id string) string {
	return kind + ":" + id
}

// EventKind возвращает префикс ключа сообщения ("" если ключ без префикса).
func EventKind(key string) string {
	kind, _, found := strings.Cut(key, ":")
	if !found {
		return ""
	}
	return kind
}
