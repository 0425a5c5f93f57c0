// Package process implements "parse" command: it finds markup documents in
// files, directories and zip archives, builds document trees and writes them
// out in requested format.
package process

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"bml/archive"
	"bml/common"
	"bml/loader"
	"bml/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("parse")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	format := env.Format
	if cmd.IsSet("to") {
		if format, err = common.ParseOutputFmt(cmd.String("to")); err != nil {
			log.Warn("Unknown output format requested, switching to default", zap.Error(err), zap.Stringer("format", env.Format))
			format = env.Format
		}
	}

	env.Overwrite = env.Overwrite || cmd.Bool("overwrite")
	env.NoDirs, env.Syntax = cmd.Bool("nodirs"), cmd.Bool("syntax")

	// zip does not define file name encoding, old archives may need
	// code page forced
	if cp := cmd.String("force-zip-cp"); len(cp) > 0 {
		if env.CodePage, err = ianaindex.IANA.Encoding(cp); err != nil || env.CodePage == nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Forcefully converting all non UTF-8 file names in archives", zap.String("charset", n))
		}
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, format, log)
}

// process finds out what src is (directory, archive with optional path
// inside, or single document) by walking it up until existing path is found.
func process(ctx context.Context, src, dst string, format common.OutputFmt, log *zap.Logger) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// may be path inside archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if err := processDir(ctx, head, dst, format, log); err != nil {
				return fmt.Errorf("unable to process directory: %w", err)
			}
			return nil
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		isArchive, err := archive.IsArchiveFile(head)
		if err != nil {
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if isArchive {
			tail = strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))
			if err := processArchive(ctx, head, filepath.ToSlash(tail), "", dst, format, log); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			return nil
		}

		isMarkup, err := loader.IsMarkupFile(head)
		if err != nil {
			return fmt.Errorf("unable to check file type: %w", err)
		}
		if isMarkup && len(tail) == 0 {
			doc, err := loader.Load(head)
			if err != nil {
				return err
			}
			return processDocument(ctx, doc, filepath.Base(head), dst, format, log)
		}
		return fmt.Errorf("input was not recognized as markup document (%s)", head)
	}
	return fmt.Errorf("input source was not found (%s)", src)
}

// processDir handles all markup documents and zip archives under dir. Failed
// documents do not stop processing, their errors are combined.
func processDir(ctx context.Context, dir, dst string, format common.OutputFmt, log *zap.Logger) error {
	files, err := loader.List(dir, log)
	if err != nil {
		return err
	}
	archives, err := listArchives(dir, log)
	if err != nil {
		return err
	}
	if len(files) == 0 && len(archives) == 0 {
		log.Debug("Nothing to process", zap.String("dir", dir))
		return nil
	}

	var errs error
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		doc, err := loader.Load(path)
		if err == nil {
			err = processDocument(ctx, doc, rel, dst, format, log)
		}
		if err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			errs = multierr.Append(errs, err)
		}
	}
	for _, path := range archives {
		if err := ctx.Err(); err != nil {
			return err
		}
		pathOut := filepath.Dir(strings.TrimPrefix(path, dir))
		if err := processArchive(ctx, path, "", pathOut, dst, format, log); err != nil {
			log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

func listArchives(dir string, log *zap.Logger) ([]string, error) {
	var out []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		ok, err := archive.IsArchiveFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if ok {
			out = append(out, path)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return natural.Less(out[i], out[j]) })
	return out, err
}

// processArchive handles markup documents found in archive under pathIn.
// Output keeps archive structure rooted at pathOut.
func processArchive(ctx context.Context, path, pathIn, pathOut, dst string, format common.OutputFmt, log *zap.Logger) error {
	count := 0
	var errs error
	err := archive.Walk(path, pathIn, func(arc string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		ok, err := loader.IsMarkupInArchive(f)
		if err != nil {
			log.Warn("Skipping file in archive", zap.String("archive", arc), zap.String("path", f.Name), zap.Error(err))
			return nil
		}
		if !ok {
			log.Debug("Skipping file, not recognized as markup", zap.String("archive", arc), zap.String("file", f.Name))
			return nil
		}
		count++

		doc, err := loader.LoadArchived(f)
		if err == nil {
			err = processDocument(ctx, doc, filepath.Join(pathOut, archivedName(ctx, f, log)), dst, format, log)
		}
		if err != nil {
			log.Error("Unable to process file in archive", zap.String("archive", arc), zap.String("file", f.Name), zap.Error(err))
			errs = multierr.Append(errs, err)
		}
		return nil
	})
	if err == nil && count == 0 {
		log.Debug("Nothing to process", zap.String("archive", path))
	}
	return multierr.Append(err, errs)
}

// archivedName converts non UTF-8 name using forced code page when requested.
func archivedName(ctx context.Context, f *zip.File, log *zap.Logger) string {
	name := f.Name
	cp := state.EnvFromContext(ctx).CodePage
	if cp == nil || !f.NonUTF8 {
		return filepath.FromSlash(name)
	}
	if n, err := cp.NewDecoder().String(name); err == nil {
		name = n
	} else {
		cs, _ := ianaindex.IANA.Name(cp)
		log.Warn("Unable to convert archive name from specified encoding", zap.String("charset", cs), zap.String("path", name), zap.Error(err))
	}
	return filepath.FromSlash(name)
}

// processDocument parses single document and writes result. "src" is path
// relative to processing root (base name for a single file) and defines
// output location under dst.
func processDocument(ctx context.Context, doc *loader.Document, src, dst string, format common.OutputFmt, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var outputName string
	log.Info("Parsing starting", zap.String("from", src), zap.String("charset", doc.Charset))
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Parsing ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("parsing panic: %v", r)
		} else if rerr == nil {
			log.Info("Parsing completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
		}
	}(time.Now())

	tree, err := env.Parser().Parse(doc.Text)
	if err != nil {
		return fmt.Errorf("unable to parse markup (%s): %w", src, err)
	}
	tree.Log(log)
	if env.Rpt != nil {
		env.Rpt.StoreData(filepath.ToSlash(filepath.Join("source", src)), []byte(doc.Text))
		env.Rpt.StoreData(filepath.ToSlash(filepath.Join("flat", src+".txt")), []byte(tree.String()))
	}

	outputName = buildOutputPath(src, dst, format.Ext(), env)
	if err := prepareOutput(outputName, env.Overwrite, log); err != nil {
		return err
	}
	if env.Syntax {
		if err := writeSyntax(doc.Text, buildOutputPath(src, dst, syntaxExt, env), env.Overwrite, log); err != nil {
			return err
		}
	}
	if err := writeTree(outputName, format, tree.Export(), log); err != nil {
		return err
	}
	if rel, err := filepath.Rel(dst, outputName); err == nil {
		env.Rpt.Store(filepath.ToSlash(filepath.Join("result", rel)), outputName)
	}
	return nil
}
