package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/gymkeeper/internal/client/store"
	"github.com/iudanet/gymkeeper/internal/client/storage"
	"github.com/iudanet/gymkeeper/internal/client/sync"
)

func (c *Cli) runSync(ctx context.Context) error {
	if _, err := c.requireAuth(); err != nil {
		return err
	}

	c.io.Println("=== Synchronization ===")
	c.io.Println()
	c.io.Println("Synchronizing with the remote store...")

	report, err := c.syncer.SyncNow(ctx)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Synchronization completed successfully!")
	c.io.Println()
	printSyncResult(c, storage.KeyTrainings, report.Trainings)
	printSyncResult(c, storage.KeySessions, report.Sessions)
	return nil
}

func printSyncResult(c *Cli, name string, res sync.SyncResult) {
	c.io.Printf("%s: pulled %d, added %d, updated %d, kept %d\n",
		name, res.Pulled, res.Added, res.Updated, res.Kept)
}

func (c *Cli) runStorageSwitch(ctx context.Context, kindName string) error {
	kind, err := storage.ParseKind(kindName)
	if err != nil {
		return err
	}
	if kind == storage.KindRemote {
		if _, err := c.requireAuth(); err != nil {
			return err
		}
	}
	if kind == c.syncer.StorageKind() {
		c.io.Printf("Already using %s storage.\n", kind)
		return nil
	}

	if err := c.syncer.SwitchStorage(ctx, kind); err != nil {
		return err
	}
	trainings, err := c.workout.ListTrainings(ctx)
	if err != nil {
		return err
	}
	sessions, err := c.workout.ListSessions(ctx)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Switched to %s storage: %d training(s), %d session(s)\n", kind, len(trainings), len(sessions))
	c.io.Println("Set 'storage' in the config file to keep this mode for later runs.")
	return nil
}

// runWatch starts background sync and prints store events until ctx is done.
func (c *Cli) runWatch(ctx context.Context) error {
	if _, err := c.requireAuth(); err != nil {
		return err
	}

	cancel := c.syncer.Subscribe(func(ev store.Event) {
		if ev.ItemID != "" {
			c.io.Printf("%s: %s %s\n", ev.Store, ev.Action, ev.ItemID)
			return
		}
		c.io.Printf("%s: %s\n", ev.Store, ev.Action)
	})
	defer cancel()

	c.io.Println("Watching for changes. Press Ctrl+C to stop.")
	if !c.syncer.StartSync() {
		c.io.Printf("Cloud sync is off with %s storage; watching realtime updates only.\n", c.syncer.StorageKind())
	}

	<-ctx.Done()
	return nil
}
