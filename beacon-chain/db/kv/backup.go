package kv

import (
	"context"
	"fmt"
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	bolt "go.etcd.io/bbolt"
	"go.opencensus.io/trace"
)

const backupsDirectoryName = "backups"

// Backup the database to the datadir backup directory.
// Example for backup at slot 345: $DATADIR/backups/blockrewards_at_slot_0000345.backup
// An existing backup directory must not be readable by others unless permissionOverride is set.
func (s *Store) Backup(ctx context.Context, outputDir string, permissionOverride bool) error {
	ctx, span := trace.StartSpan(ctx, "BeaconDB.Backup")
	defer span.End()

	backupsDir := path.Join(s.databasePath, backupsDirectoryName)
	if outputDir != "" {
		backupsDir = outputDir
	}
	slot := primitives.Slot(0)
	if headRoot, err := s.HeadRoot(ctx); err == nil {
		head, err := s.Block(ctx, headRoot)
		if err != nil {
			return err
		}
		if head != nil {
			slot = head.Block.Slot
		}
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}
	if err := mkdirAll(backupsDir, permissionOverride); err != nil {
		return err
	}
	backupPath := path.Join(backupsDir, fmt.Sprintf("blockrewards_at_slot_%07d.backup", slot))
	log.WithField("backup", backupPath).Info("Writing backup database")

	copyDB, err := bolt.Open(backupPath, 0600, &bolt.Options{Timeout: boltTimeout})
	if err != nil {
		return err
	}
	defer func() {
		if err := copyDB.Close(); err != nil {
			log.WithError(err).Error("Failed to close backup database")
		}
	}()

	return s.db.View(func(tx *bolt.Tx) error {
		return tx.ForEach(func(name []byte, b *bolt.Bucket) error {
			log.Debugf("Copying bucket %s", name)
			return copyDB.Update(func(tx2 *bolt.Tx) error {
				b2, err := tx2.CreateBucketIfNotExists(name)
				if err != nil {
					return err
				}
				return b.ForEach(b2.Put)
			})
		})
	})
}

func mkdirAll(dirPath string, permissionOverride bool) error {
	info, err := os.Stat(dirPath)
	if os.IsNotExist(err) {
		return os.MkdirAll(dirPath, 0700)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return errors.Errorf("%s is not a directory", dirPath)
	}
	if !permissionOverride && info.Mode().Perm()&0077 != 0 {
		return errors.Errorf("dir %s already exists with permissions %s, expected %s", dirPath, info.Mode().Perm(), os.FileMode(0700))
	}
	return nil
}
