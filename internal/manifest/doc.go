// Package manifest читает и пишет манифест сборки (Cargo.toml).
//
// Write создаёт манифест с идентичностью пакета и пустой таблицей
// зависимостей; Merge заменяет таблицу зависимостей целиком.
// Замена — контракт, а не упрощение: позднее слияние полностью
// вытесняет прежние зависимости, слияния по отдельным полям нет.
//
// Обе операции атомарны для вызывающего: запись идёт во временный
// файл в том же каталоге с последующим rename, так что при любой
// ошибке прежнее содержимое манифеста остаётся нетронутым.
package manifest
