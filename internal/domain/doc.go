// Package domain содержит доменные типы forge.
//
// Включает:
//   - dependency.go — зависимость (bare или структурированная форма)
//   - table.go      — таблица зависимостей с сохранением порядка вставки
//
// Типы не зависят от формата файлов: сериализацией в манифест
// занимается пакет manifest, парсингом дескриптора — пакет descriptor.
package domain
