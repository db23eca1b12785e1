package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/coveooss/multilogger"
	"github.com/sirupsen/logrus"
)

var log = multilogger.New("relauncher")

// Level names accepted in addition to the logrus ones
var levelAliases = map[string]logrus.Level{
	"critical": logrus.FatalLevel,
	"notice":   logrus.InfoLevel,
}

func parseLogLevel(name string) (logrus.Level, error) {
	if level, ok := levelAliases[strings.ToLower(name)]; ok {
		return level, nil
	}
	return multilogger.TryParseLogLevel(name)
}

// fileHook copies log entries to a diagnostics file. The relauncher runs
// without a console, so this is the only way to see what happened.
type fileHook struct {
	out       io.Writer
	level     logrus.Level
	formatter logrus.Formatter
}

func newFileHook(out io.Writer, level logrus.Level) *fileHook {
	return &fileHook{
		out:       out,
		level:     level,
		formatter: &logrus.TextFormatter{DisableColors: true, FullTimestamp: true},
	}
}

func (hook *fileHook) Levels() []logrus.Level {
	return logrus.AllLevels[:hook.level+1]
}

func (hook *fileHook) Fire(entry *logrus.Entry) error {
	line, err := hook.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = hook.out.Write(line)
	return err
}

// configureLogging applies the console level and opens the diagnostics file if
// one is configured. The returned function detaches and closes it. An invalid
// level leaves the console silent and is reported once the file is attached.
func configureLogging(config *RelauncherConfig) (func(), error) {
	level, levelErr := parseLogLevel(config.LogLevel)
	if levelErr != nil {
		level = logrus.FatalLevel
	}
	if err := log.SetDefaultConsoleHookLevel(level); err != nil {
		return func() {}, err
	}
	if config.LogFile == "" {
		return func() {}, levelErr
	}

	if err := os.MkdirAll(filepath.Dir(config.LogFile), 0755); err != nil {
		return func() {}, err
	}
	file, err := os.OpenFile(config.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return func() {}, err
	}

	hooks := make(logrus.LevelHooks, len(log.Logger.Hooks))
	for level, list := range log.Logger.Hooks {
		hooks[level] = append([]logrus.Hook(nil), list...)
	}
	previous := log.Logger.ReplaceHooks(hooks)
	log.Logger.AddHook(newFileHook(file, logrus.DebugLevel))
	return func() {
		log.Logger.ReplaceHooks(previous)
		file.Close()
	}, levelErr
}
