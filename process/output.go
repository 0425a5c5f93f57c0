package process

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"bml/common"
	"bml/config"
	"bml/dump"
	"bml/grammar"
	"bml/markup"
	"bml/state"
)

const syntaxExt = ".syntax.txt"

// buildOutputPath returns output file name for document "src" (relative to
// the source root). Source directory structure is kept unless NoDirs is set.
func buildOutputPath(src, dst, ext string, env *state.LocalEnv) string {
	outDir := dst
	if !env.NoDirs {
		outDir = filepath.Join(dst, filepath.Dir(src))
	}
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	if env.Cfg != nil && env.Cfg.Output.FileNameTransliterate {
		base = slug.Make(base)
	}
	return filepath.Join(outDir, config.CleanFileName(base)+ext)
}

// prepareOutput makes sure file could be created at name: directory exists
// and old file is removed when overwriting is allowed.
func prepareOutput(name string, overwrite bool, log *zap.Logger) error {
	if _, err := os.Stat(name); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", name)
		}
		log.Warn("Overwriting existing file", zap.String("file", name))
		return os.Remove(name)
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	return nil
}

func writeTree(name string, format common.OutputFmt, roots []*markup.NodeTree, log *zap.Logger) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("unable to create output: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	if err := dump.Write(f, format, roots, log); err != nil {
		return fmt.Errorf("unable to write %s output: %w", format, err)
	}
	return nil
}

// writeSyntax stores concrete syntax tree of the document for grammar
// debugging.
func writeSyntax(text, name string, overwrite bool, log *zap.Logger) error {
	if err := prepareOutput(name, overwrite, log); err != nil {
		return err
	}
	src := []byte(text)
	if err := os.WriteFile(name, []byte(grammar.Dump(grammar.Parse(src), src)), 0644); err != nil {
		return fmt.Errorf("unable to write syntax tree: %w", err)
	}
	return nil
}
