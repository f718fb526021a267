// Package cli реализует команды forge.
//
// # Обзор
//
// CLI — единственная поверхность forge. Команды организованы через
// cobra и создаются фабричными функциями (NewBuildCmd, NewDepsCmd).
//
// ## build
//
// Полный цикл: staging исходников, синтез манифеста, merge зависимостей,
// release-сборка, доставка бинарника.
//
//	forge build -d deps.txt -s ./src -m main.rs -o ./bin/app
//
// ## deps
//
// Разбор дескриптора без сборки: таблица зависимостей выводится
// в stdout (tabwriter или JSON с флагом --json).
//
//	forge deps -d deps.txt --json | jq .
//
// ## Output
//
// Данные выводятся в stdout, сообщения (Success/Error) — в stderr.
// Это позволяет использовать pipe.
package cli
