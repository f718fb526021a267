// Package builder вызывает внешний toolchain (cargo) и доставляет артефакт.
//
// Probe проверяет, что toolchain вообще вызывается (лёгкий version-probe),
// Build выполняет release-сборку в каталоге workspace с полным захватом
// stdout/stderr, Deliver копирует готовый бинарник в целевой путь.
//
// Команда toolchain инжектируется (по умолчанию "cargo"), поэтому тесты
// подставляют вместо cargo стаб-скрипт.
package builder
