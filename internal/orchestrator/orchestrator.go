package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/shaiso/forge/internal/builder"
	"github.com/shaiso/forge/internal/descriptor"
	"github.com/shaiso/forge/internal/domain"
	"github.com/shaiso/forge/internal/manifest"
	"github.com/shaiso/forge/internal/stager"
	"github.com/shaiso/forge/internal/telemetry"
)

// Значения по умолчанию для запуска.
const (
	// defaultEntryFile — канонический entry-файл toolchain;
	// для него bin-override в манифесте не нужен.
	defaultEntryFile = "main.rs"

	// defaultSubpath — подкаталог workspace для исходников.
	defaultSubpath = "src"

	// Идентичность пакета в синтезированном манифесте.
	packageVersion = "0.1.0"
	packageEdition = "2021"
)

// Request — параметры одного запуска сборки.
type Request struct {
	// SourceDir — каталог с деревом исходников.
	SourceDir string

	// DescriptorPath — путь к дескриптору зависимостей.
	// Отсутствующий файл не ошибка: таблица зависимостей остаётся пустой.
	DescriptorPath string

	// EntryFile — имя entry-файла (например, main.rs).
	// Имя без расширения становится идентификатором бинарника.
	EntryFile string

	// SourceSubpath — подкаталог workspace для исходников (default: src).
	SourceSubpath string

	// Destination — целевой путь для готового бинарника.
	// На Windows суффикс .exe добавляется автоматически.
	Destination string

	// RetainWorkspace — не удалять workspace после запуска (debug).
	RetainWorkspace bool

	// StrictDescriptor — любая пропущенная строка дескриптора
	// становится ошибкой вместо диагностики в логе.
	StrictDescriptor bool
}

// Config — конфигурация Orchestrator.
type Config struct {
	// Builder — обёртка над внешним toolchain (default: cargo).
	Builder *builder.Builder

	// WorkRoot — каталог, в котором создаются workspace
	// (default: системный temp).
	WorkRoot string

	// Logger — логгер (default: slog.Default).
	Logger *slog.Logger
}

// Orchestrator проводит запуск сборки через все этапы.
type Orchestrator struct {
	builder  *builder.Builder
	workRoot string
	logger   *slog.Logger
}

// New создаёт новый Orchestrator.
func New(cfg Config) *Orchestrator {
	b := cfg.Builder
	if b == nil {
		b = builder.New("")
	}

	workRoot := cfg.WorkRoot
	if workRoot == "" {
		workRoot = os.TempDir()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Orchestrator{
		builder:  b,
		workRoot: workRoot,
		logger:   logger,
	}
}

// Run выполняет один запуск сборки.
//
// Этапы идут строго последовательно; первая же ошибка терминальна
// и возвращается с контекстом этапа. Возвращаемый RunState отражает
// достигнутый этап (DELIVERED при успехе, FAILED при ошибке).
//
// Workspace удаляется на любом пути выхода, кроме явного запроса
// сохранения; ошибка удаления пишется в лог и не эскалируется.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*RunState, error) {
	if req.EntryFile == "" {
		return nil, ErrNoEntryFile
	}
	if req.Destination == "" {
		return nil, ErrNoDestination
	}

	binary := strings.TrimSuffix(req.EntryFile, filepath.Ext(req.EntryFile))
	subpath := req.SourceSubpath
	if subpath == "" {
		subpath = defaultSubpath
	}

	// Уникальный суффикс закрывает гонку двух запусков
	// с одинаковым именем бинарника.
	workspace := filepath.Join(o.workRoot,
		fmt.Sprintf("forge-%s-%s", binary, uuid.NewString()[:8]))

	st := newRunState(binary, workspace)
	logger := telemetry.WithWorkspace(telemetry.WithBinary(o.logger, binary), workspace)
	ctx = telemetry.WithLogger(ctx, logger)

	defer func() {
		if req.RetainWorkspace {
			logger.Info("workspace retained")
			return
		}
		if err := stager.Remove(workspace); err != nil {
			logger.Warn("failed to remove workspace", "error", err)
		}
	}()

	// Init → Staged
	if err := stager.Stage(req.SourceDir, workspace, subpath); err != nil {
		return st, st.fail(fmt.Errorf("stage sources: %w", err))
	}
	st.advance(StageStaged)
	logger.Info("sources staged")

	// Staged → ManifestWritten
	// Bin-override обязан указывать на реально выгруженный entry-файл.
	entryPath := filepath.Join(workspace, subpath, req.EntryFile)
	if _, err := os.Stat(entryPath); err != nil {
		return st, st.fail(fmt.Errorf("%w: %s", ErrEntryNotStaged, entryPath))
	}
	pkg := manifest.Package{Name: binary, Version: packageVersion, Edition: packageEdition}
	var bin *manifest.BinTarget
	if req.EntryFile != defaultEntryFile {
		bin = &manifest.BinTarget{
			Name: binary,
			Path: path.Join(filepath.ToSlash(subpath), req.EntryFile),
		}
	}
	if err := manifest.Write(workspace, pkg, bin); err != nil {
		return st, st.fail(fmt.Errorf("write manifest: %w", err))
	}
	st.advance(StageManifestWritten)
	logger.Info("manifest written", "bin_override", bin != nil)

	// ManifestWritten → DependenciesMerged
	table, err := o.loadDependencies(req, logger)
	if err != nil {
		return st, st.fail(fmt.Errorf("parse descriptor: %w", err))
	}
	if err := manifest.Merge(workspace, table); err != nil {
		return st, st.fail(fmt.Errorf("merge dependencies: %w", err))
	}
	st.advance(StageDependenciesMerged)
	logger.Info("dependencies merged", "count", table.Len())

	// DependenciesMerged → Built
	if err := o.builder.Probe(ctx); err != nil {
		return st, st.fail(err)
	}
	artifact, err := o.builder.Build(ctx, workspace, binary)
	if err != nil {
		return st, st.fail(err)
	}
	st.advance(StageBuilt)
	logger.Info("build succeeded")

	// Built → Delivered
	destination := req.Destination
	if suffix := builder.ExeSuffix(); suffix != "" && !strings.HasSuffix(destination, suffix) {
		destination += suffix
	}
	if err := o.builder.Deliver(artifact, destination); err != nil {
		return st, st.fail(fmt.Errorf("deliver artifact: %w", err))
	}
	st.advance(StageDelivered)
	logger.Info("artifact delivered", "destination", destination)

	return st, nil
}

// loadDependencies читает и парсит дескриптор зависимостей.
// Отсутствующий файл даёт пустую таблицу (поведение оригинала).
func (o *Orchestrator) loadDependencies(req Request, logger *slog.Logger) (*domain.Table, error) {
	if req.DescriptorPath == "" {
		return domain.NewTable(), nil
	}

	data, err := os.ReadFile(req.DescriptorPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("descriptor file absent, dependency table stays empty",
				"path", req.DescriptorPath)
			return domain.NewTable(), nil
		}
		return nil, fmt.Errorf("read descriptor: %w", err)
	}

	if req.StrictDescriptor {
		return descriptor.ParseStrict(string(data))
	}

	table, diags := descriptor.Parse(string(data))
	for _, d := range diags {
		logger.Debug("descriptor line skipped",
			"line", d.Line,
			"reason", d.Reason,
			"text", d.Text,
		)
	}
	return table, nil
}
