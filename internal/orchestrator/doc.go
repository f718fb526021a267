// Package orchestrator последовательно проводит сборку через все этапы.
//
// Orchestrator отвечает за:
//   - Создание изолированного workspace с уникальным именем
//   - Зеркалирование дерева исходников (stager)
//   - Синтез манифеста и merge таблицы зависимостей (manifest, descriptor)
//   - Вызов release-сборки и доставку артефакта (builder)
//   - Гарантированное удаление workspace на любом пути выхода
//
// Выполнение строго последовательное, без retry: любая ошибка этапа
// терминальна для запуска. Workspace удаляется и при успехе, и при
// ошибке, если явно не запрошено его сохранение (debug).
package orchestrator
