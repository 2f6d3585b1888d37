package sbrx

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bodgit/sbrx/character"
)

const workers = 4

func (e *Editor) findCharacters(ctx context.Context, ds []character.Descriptor) (<-chan *character.Descriptor, <-chan error, error) {
	out := make(chan *character.Descriptor)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		for i := range ds {
			select {
			case out <- &ds[i]:
			case <-ctx.Done():
				errc <- errors.New("export cancelled")
				return
			}
		}
	}()
	return out, errc, nil
}

func (e *Editor) exportWorker(ctx context.Context, in <-chan *character.Descriptor, fn func(*character.Descriptor) error) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for d := range in {
			if err := fn(d); err != nil {
				errc <- fmt.Errorf("%s: %w", d.Name, err)
				return
			}
		}
	}()
	return errc, nil
}

func (e *Editor) export(d *character.Descriptor, dir, format string) error {
	if err := e.Read(d); err != nil {
		return err
	}

	m, err := e.Image(d)
	if err != nil {
		return err
	}

	file := filepath.Join(dir, fmt.Sprintf("%s.%s", d.Name, format))
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := Encode(f, m, format); err != nil {
		return err
	}

	e.logger.Printf("Exported %s to \"%s\"\n", d.Name, file)

	return f.Close()
}

func (e *Editor) exportAnimations(d *character.Descriptor, dir string) error {
	if err := e.Read(d); err != nil {
		return err
	}

	animations, err := e.Animations(d)
	if err != nil {
		return err
	}

	dir = filepath.Join(dir, d.Name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for i, frames := range animations {
		file := filepath.Join(dir, fmt.Sprintf("%02d.%s", i, FormatGIF))
		f, err := os.Create(file)
		if err != nil {
			return err
		}

		if err := EncodeAnimation(f, frames); err != nil {
			f.Close()
			return err
		}

		if err := f.Close(); err != nil {
			return err
		}
	}

	e.logger.Printf("Exported %d animations for %s to \"%s\"\n", len(animations), d.Name, dir)

	return nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

func (e *Editor) runExport(dir string, ds []character.Descriptor, fn func(*character.Descriptor, string) error) error {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	chars, errc, err := e.findCharacters(ctx, ds)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < workers; i++ {
		errc, err := e.exportWorker(ctx, chars, func(d *character.Descriptor) error {
			return fn(d, dir)
		})
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}

// Export reads each character from the ROM and writes its spritesheet as an
// image named after the character into dir
func (e *Editor) Export(dir, format string, ds ...character.Descriptor) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	return e.runExport(dir, ds, func(d *character.Descriptor, dir string) error {
		return e.export(d, dir, format)
	})
}

// ExportAnimations reads each character from the ROM and writes every
// animation as an animated GIF into a directory named after the character
// within dir
func (e *Editor) ExportAnimations(dir string, ds ...character.Descriptor) error {
	return e.runExport(dir, ds, e.exportAnimations)
}

// Apply decodes every image staged in db and writes it to the ROM
func (e *Editor) Apply(db *DB, reduce bool) error {
	names, err := db.Names()
	if err != nil {
		return err
	}

	for _, name := range names {
		d, err := character.Find(name)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		m, err := db.FindImage(d.Name)
		if err != nil {
			return err
		}

		if err := e.SetImage(d, m, reduce); err != nil {
			return fmt.Errorf("%s: %w", d.Name, err)
		}

		if err := e.Write(d); err != nil {
			return fmt.Errorf("%s: %w", d.Name, err)
		}
	}

	return nil
}
