package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tempizhere/urlmap/internal/service"
	"go.uber.org/zap"
)

// App реализует построчный консольный интерфейс поверх сервиса. Команды
// читаются из in, ответы пишутся в out, поэтому цикл полностью тестируем.
type App struct {
	svc       *service.Service
	in        io.Reader
	out       io.Writer
	logger    *zap.Logger
	maxURLLen int
}

// NewApp создаёт новое приложение.
func NewApp(svc *service.Service, in io.Reader, out io.Writer, logger *zap.Logger, maxURLLen int) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxURLLen <= 0 {
		maxURLLen = service.DefaultMaxURLLen
	}
	return &App{
		svc:       svc,
		in:        in,
		out:       out,
		logger:    logger,
		maxURLLen: maxURLLen,
	}
}

// Run выполняет цикл чтения и обработки команд до exit или конца входа.
// Перед возвратом хранилище очищается.
func (a *App) Run() error {
	fmt.Fprintln(a.out, "URL Shortener CLI")
	a.printHelp()

	scanner := bufio.NewScanner(a.in)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)

loop:
	for {
		fmt.Fprint(a.out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)
		a.logger.Debug("команда получена", zap.String("cmd", cmd))

		switch cmd {
		case "gen":
			a.handleGen(arg)
		case "get":
			a.handleGet(arg)
		case "del":
			a.handleDel(arg)
		case "delurl":
			a.handleDelURL(arg)
		case "list":
			a.handleList()
		case "count":
			a.handleCount()
		case "help":
			a.printHelp()
		case "exit":
			break loop
		default:
			fmt.Fprintln(a.out, "Unknown command.")
		}
	}

	a.svc.Clear()
	fmt.Fprintln(a.out, "Clean-up done, exiting.")
	a.logger.Info("работа завершена")
	return scanner.Err()
}

// printHelp выводит список поддерживаемых команд.
func (a *App) printHelp() {
	fmt.Fprintln(a.out, "Commands: gen <long_url>, get <short_code>, del <short_code>, delurl <long_url>, list, count, help, exit")
}

// handleGen сокращает длинный URL. Слишком длинный ввод отклоняется до
// обращения к сервису.
func (a *App) handleGen(arg string) {
	if arg == "" {
		fmt.Fprintln(a.out, "Usage: gen <long_url>")
		return
	}
	if len(arg) > a.maxURLLen {
		fmt.Fprintf(a.out, "Error: URL is too long! Maximum allowed length is %d characters.\n", a.maxURLLen)
		return
	}

	code, err := a.svc.Shorten(arg)
	if err != nil {
		if errors.Is(err, service.ErrSpaceExhausted) {
			fmt.Fprintln(a.out, "Error: no free short codes available.")
		} else {
			fmt.Fprintf(a.out, "Error: %v\n", err)
		}
		a.logger.Error("не удалось сократить URL", zap.Error(err))
		return
	}
	fmt.Fprintf(a.out, "Short code: %s\n", code)
}

// handleGet разрешает короткий код в оригинальный URL.
func (a *App) handleGet(arg string) {
	code, ok := firstToken(arg)
	if !ok {
		fmt.Fprintln(a.out, "Usage: get <short_code>")
		return
	}
	url, err := a.svc.Resolve(code)
	if err != nil {
		fmt.Fprintln(a.out, "Not found.")
		return
	}
	fmt.Fprintf(a.out, "Original URL: %s\n", url)
}

// handleDel удаляет запись по короткому коду.
func (a *App) handleDel(arg string) {
	code, ok := firstToken(arg)
	if !ok {
		fmt.Fprintln(a.out, "Usage: del <short_code>")
		return
	}
	if a.svc.Delete(code) {
		fmt.Fprintf(a.out, "Deleted mapping %s\n", code)
		return
	}
	fmt.Fprintln(a.out, "Not found.")
}

// handleDelURL удаляет запись по длинному URL.
func (a *App) handleDelURL(arg string) {
	if arg == "" {
		fmt.Fprintln(a.out, "Usage: delurl <long_url>")
		return
	}
	if a.svc.DeleteByURL(arg) {
		fmt.Fprintf(a.out, "Deleted mapping for %s\n", arg)
		return
	}
	fmt.Fprintln(a.out, "Not found.")
}

// handleList выводит все записи.
func (a *App) handleList() {
	fmt.Fprintln(a.out, "Current mappings (short -> long):")
	for code, url := range a.svc.List() {
		fmt.Fprintf(a.out, "%s -> %s\n", code, url)
	}
}

// handleCount выводит заполненность корзин индексов и число записей.
func (a *App) handleCount() {
	st := a.svc.Stats()
	fmt.Fprintf(a.out, "Short index non-empty buckets: %d\n", st.ShortBuckets)
	fmt.Fprintf(a.out, "Long index non-empty buckets: %d\n", st.LongBuckets)
	fmt.Fprintf(a.out, "Records: %d\n", st.Records)
}

// firstToken возвращает первое слово аргумента.
func firstToken(arg string) (string, bool) {
	fields := strings.Fields(arg)
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}
