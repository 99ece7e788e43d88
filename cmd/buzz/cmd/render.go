package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"slices"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/buzzkit/buzz/cmd/buzz/internal/config"
	"github.com/buzzkit/buzz/pkg/declare"
	"github.com/buzzkit/buzz/pkg/errors"
	"github.com/buzzkit/buzz/pkg/surface/dom"
)

var (
	renderOut   string
	renderWatch bool
)

func init() {
	renderCmd := &cobra.Command{
		Use:   "render [document]",
		Short: "Render a widget document to HTML",
		Long: `Render a widget document and print the resulting surface tree as HTML.

The document defaults to the entry named in buzz.yaml (app.yaml).
With --watch the document is rendered again whenever it or buzz.yaml
changes, until interrupted.

Examples:
  buzz render
  buzz render ui/settings.yaml --out settings.html
  buzz render --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRender,
	}
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "write HTML to this file instead of stdout")
	renderCmd.Flags().BoolVarP(&renderWatch, "watch", "w", false, "render again when the document changes")
	RegisterCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	res, err := resolveProject()
	if err != nil {
		return err
	}
	path := res.EntryPath()
	if len(args) > 0 {
		if path, err = filepath.Abs(args[0]); err != nil {
			return err
		}
	}

	if err := renderTo(res, path, renderOut, cmd.OutOrStdout()); err != nil {
		if !renderWatch {
			return err
		}
		log.Printf("render failed: %v", err)
	}
	if !renderWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return watchAndRender(ctx, res.Root, path, func() {
		// The project file may have changed too.
		if fresh, err := config.Resolve(res.Root); err == nil {
			res = fresh
		} else {
			log.Printf("%v", err)
		}
		if err := renderTo(res, path, renderOut, cmd.OutOrStdout()); err != nil {
			log.Printf("render failed: %v", err)
			return
		}
		log.Printf("rendered %s", filepath.Base(path))
	})
}

// renderTo renders the document at path into the file out, or into w
// when out is empty.
func renderTo(res *config.Resolved, path, out string, w io.Writer) error {
	if out == "" {
		return renderDocument(res, path, w)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	if err := renderDocument(res, path, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// renderDocument loads, builds and mounts the document, then writes the
// HTML of the mounted tree. Fatal render errors are turned into errors.
func renderDocument(res *config.Resolved, path string, w io.Writer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fatal, ok := errors.AsFatal(r)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("%s: %w", path, fatal)
		}
	}()

	doc, err := declare.Load(path)
	if err != nil {
		return err
	}

	surfaces := dom.NewDocument()
	ctx := res.Context(surfaces)
	tree, err := doc.Build(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	body := surfaces.CreateNode("body")
	tree.Mount(ctx, body)
	for _, n := range body.Nodes() {
		if err := dom.WriteHTML(w, n); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w)
	return err
}

// watchAndRender calls render whenever the document or the project file
// changes, until ctx is done.
func watchAndRender(ctx context.Context, root, path string, render func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace files, so watch the directories.
	dirs := []string{filepath.Dir(path)}
	if !slices.Contains(dirs, root) {
		dirs = append(dirs, root)
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	watched := []string{filepath.Clean(path), filepath.Join(root, config.FileName)}
	log.Printf("watching %s", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			if !slices.Contains(watched, filepath.Clean(event.Name)) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				render()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Println("watcher error:", err)
		}
	}
}
