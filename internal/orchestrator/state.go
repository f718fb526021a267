package orchestrator

// Stage — этап жизненного цикла одного запуска.
//
// Жизненный цикл:
//
//	INIT → STAGED → MANIFEST_WRITTEN → DEPENDENCIES_MERGED → BUILT → DELIVERED
//	                                                      ↘ FAILED (из любого нетерминального)
type Stage string

const (
	// StageInit — запуск создан, workspace ещё не готов.
	StageInit Stage = "INIT"

	// StageStaged — дерево исходников отзеркалировано в workspace.
	StageStaged Stage = "STAGED"

	// StageManifestWritten — манифест с идентичностью пакета записан.
	StageManifestWritten Stage = "MANIFEST_WRITTEN"

	// StageDependenciesMerged — таблица зависимостей влита в манифест.
	StageDependenciesMerged Stage = "DEPENDENCIES_MERGED"

	// StageBuilt — release-сборка завершилась, артефакт найден.
	StageBuilt Stage = "BUILT"

	// StageDelivered — артефакт скопирован в целевой путь.
	StageDelivered Stage = "DELIVERED"

	// StageFailed — запуск завершился ошибкой (терминальный).
	StageFailed Stage = "FAILED"
)

// IsTerminal возвращает true, если этап финальный.
func (s Stage) IsTerminal() bool {
	return s == StageDelivered || s == StageFailed
}

// RunState — состояние одного запуска в памяти.
//
// Создаётся в начале Run и живёт до его завершения; никакого
// разделяемого состояния между запусками нет.
type RunState struct {
	// Binary — идентификатор собираемого бинарника
	// (имя entry-файла без расширения).
	Binary string

	// Workspace — каталог workspace этого запуска.
	Workspace string

	stage Stage
	err   error
}

func newRunState(binary, workspace string) *RunState {
	return &RunState{
		Binary:    binary,
		Workspace: workspace,
		stage:     StageInit,
	}
}

// advance переводит запуск на следующий этап.
func (s *RunState) advance(next Stage) {
	s.stage = next
}

// fail переводит запуск в FAILED и запоминает ошибку этапа.
// Возвращает err для удобной записи `return st, st.fail(err)`.
func (s *RunState) fail(err error) error {
	s.stage = StageFailed
	s.err = err
	return err
}

// Stage возвращает текущий этап запуска.
func (s *RunState) Stage() Stage {
	return s.stage
}

// Err возвращает ошибку, с которой запуск перешёл в FAILED.
func (s *RunState) Err() error {
	return s.err
}
