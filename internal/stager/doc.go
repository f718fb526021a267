// Package stager управляет жизненным циклом workspace.
//
// Stage зеркалирует дерево исходников в изолированный каталог,
// сохраняя относительные пути, права и mtime файлов. Remove убирает
// workspace после сборки.
//
// Stage идемпотентен: повторная выгрузка в существующий каталог
// перезаписывает файлы, но не удаляет лишние файлы от прежних
// запусков. Известный риск накопления устаревших файлов закрыт тем,
// что оркестратор всегда создаёт свежий каталог с уникальным именем.
package stager
