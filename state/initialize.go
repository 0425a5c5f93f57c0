package state

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"bml/config"
	"bml/misc"
)

// Initialize loads configuration from configFile (defaults when empty),
// prepares debug report when requested and sets up logging.
func (e *LocalEnv) Initialize(configFile string, report bool) (err error) {
	if e.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return fmt.Errorf("unable to prepare configuration: %w", err)
	}
	e.Format = e.Cfg.Output.Format
	e.Overwrite = e.Cfg.Output.Overwrite

	if report {
		if e.Rpt, err = e.Cfg.Reporting.Prepare(); err != nil {
			return fmt.Errorf("unable to prepare debug report: %w", err)
		}
		if len(configFile) > 0 {
			if data, err := config.Dump(e.Cfg); err == nil {
				e.Rpt.StoreData(fmt.Sprintf("config/%s", filepath.Base(configFile)), data)
			}
		}
	}
	if e.Log, err = e.Cfg.Logging.Prepare(e.Rpt); err != nil {
		return fmt.Errorf("unable to prepare logs: %w", err)
	}
	e.RedirectStdLog()

	e.Log.Debug("Program started",
		zap.Strings("args", os.Args), zap.String("ver", misc.GetVersion()), zap.String("runtime", runtime.Version()), zap.String("hash", misc.GetGitHash()))
	if e.Rpt != nil {
		e.Log.Info("Creating debug report", zap.String("location", e.Rpt.Name()))
	}
	if len(configFile) == 0 {
		e.Log.Info("Using defaults (no configuration file)")
	}
	return nil
}

// Teardown flushes logs, closes debug report and removes empty panic log.
// After this call errors could only be reported to stderr.
func (e *LocalEnv) Teardown(args []string) (err error) {
	if e.Log != nil {
		e.Log.Debug("Program ended", zap.Duration("elapsed", e.Uptime()), zap.Strings("parsed args", args))
	}
	e.RestoreStdLog()

	if er := e.Rpt.Close(); er != nil {
		err = multierr.Append(err, fmt.Errorf("unable to close debug report: %w", er))
	}

	if e.Cfg == nil || len(e.Cfg.Logging.FileLogger.Destination) == 0 {
		return err
	}
	_ = debug.SetCrashOutput(nil, debug.CrashOptions{})
	fname := filepath.Join(filepath.Dir(e.Cfg.Logging.FileLogger.Destination), misc.GetAppName()+"-panic.log")
	if fi, er := os.Stat(fname); er == nil && fi.Size() == 0 {
		if er := os.Remove(fname); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to remove empty panic log file '%s': %w", fname, er))
		}
	}
	return err
}
