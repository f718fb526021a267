// Package descriptor парсит дескриптор зависимостей forge.
//
// Формат — строчный UTF-8 текст:
//
//	logging: "0.4"
//	serde: "1.0"
//	  features = [derive, rc]
//	  optional = false
//
// Строка верхнего уровня (без отступа, с ':') открывает зависимость;
// строки с отступом и '=' задают атрибуты ближайшей открытой зависимости.
// Пустые строки и комментарии (#) игнорируются.
//
// Парсер — один проход с явным аккумулятором, без состояния на уровне
// пакета. По умолчанию режим lenient: непонятные строки пропускаются,
// но собираются в диагностику. ParseStrict превращает любую пропущенную
// строку в ошибку.
package descriptor
