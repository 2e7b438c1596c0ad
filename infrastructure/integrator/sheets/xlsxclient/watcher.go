package xlsxclient

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/vfg2006/event-dashboard-api/pkg/log"
)

const debounceInterval = 200 * time.Millisecond

// Watch chama onChange quando o arquivo da pasta de trabalho é gravado,
// criado ou substituído. Eventos próximos são agrupados. Termina com ctx.
func (c *XLSXClient) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "falha ao criar o watcher")
	}

	// o diretório é observado para pegar editores que substituem o arquivo
	if err := watcher.Add(filepath.Dir(c.path)); err != nil {
		_ = watcher.Close()
		return errors.Wrapf(err, "falha ao observar %s", filepath.Dir(c.path))
	}

	go c.watchLoop(ctx, watcher, onChange)
	return nil
}

func (c *XLSXClient) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, onChange func()) {
	defer watcher.Close()

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	target := filepath.Base(c.path)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}

			log.L.WithField("file", event.Name).Debugf("xlsx: alteração detectada (%s)", event.Op)
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceInterval, onChange)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.L.WithError(err).Warn("xlsx: erro no watcher")
		}
	}
}
