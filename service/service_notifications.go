// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keywarden Authors

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/keywarden/vaultsync/adapter"
	"github.com/keywarden/vaultsync/logger"
	"github.com/keywarden/vaultsync/models"
	"github.com/keywarden/vaultsync/store"
)

// notificationService is the concrete implementation of
// [NotificationService]. It applies push-delivered single-entity change
// events between full syncs.
type notificationService struct {
	storages *store.Storages
	adapter  adapter.ServerAdapter
	logger   *logger.Logger
}

// NewNotificationService constructs a [NotificationService].
func NewNotificationService(storages *store.Storages, serverAdapter adapter.ServerAdapter, log *logger.Logger) NotificationService {
	return &notificationService{storages: storages, adapter: serverAdapter, logger: log}
}

// forActiveUser resolves the active account and reports whether the
// notification addresses it. Notifications for other accounts are dropped
// without error: on a multi-account device pushes for inactive accounts are
// routine.
func (n *notificationService) forActiveUser(ctx context.Context, notification models.SyncNotification) (bool, error) {
	account, err := n.storages.Accounts.ActiveAccount(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNoActiveAccount) {
			return false, ErrNoActiveAccount
		}
		return false, fmt.Errorf("resolve active account: %w", err)
	}

	return account.UserID == notification.UserID, nil
}

// Apply implements [NotificationService].
func (n *notificationService) Apply(ctx context.Context, notification models.SyncNotification) error {
	switch notification.Kind {
	case models.NotificationKindCipher:
		return n.ApplyCipherNotification(ctx, notification)
	case models.NotificationKindFolder:
		return n.ApplyFolderNotification(ctx, notification)
	case models.NotificationKindSend:
		return n.ApplySendNotification(ctx, notification)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownNotificationKind, notification.Kind)
	}
}

// ApplyCipherNotification implements [NotificationService].
func (n *notificationService) ApplyCipherNotification(ctx context.Context, notification models.SyncNotification) error {
	log := logger.FromContext(ctx)

	match, err := n.forActiveUser(ctx, notification)
	if err != nil {
		return err
	}
	if !match {
		return nil
	}
	userID := notification.UserID

	if notification.Action == models.NotificationDelete {
		return n.storages.Vault.DeleteCipher(ctx, userID, notification.ID)
	}

	local, err := n.storages.Vault.GetCipher(ctx, userID, notification.ID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		// No local copy yet; fall through to the fetch.
	case err != nil:
		return fmt.Errorf("read local cipher %s: %w", notification.ID, err)
	default:
		if notification.RevisionDate != nil && !local.RevisionDate.Before(*notification.RevisionDate) {
			// Local state is already current or newer.
			return nil
		}
	}

	if len(notification.CollectionIDs) > 0 {
		visible, err := n.cipherVisible(ctx, userID, notification.CollectionIDs)
		if err != nil {
			return err
		}
		if !visible {
			log.Debug().
				Str("cipher_id", notification.ID).
				Msg("cipher notification outside visible collections, ignoring")
			return nil
		}
	}

	cipher, err := n.adapter.FetchCipher(ctx, notification.ID)
	if errors.Is(err, adapter.ErrNotFound) {
		// Removed server-side between notification and fetch.
		return n.storages.Vault.DeleteCipher(ctx, userID, notification.ID)
	}
	if err != nil {
		return fmt.Errorf("fetch cipher %s: %w", notification.ID, err)
	}

	cipher.UserID = userID
	if err := n.storages.Vault.UpsertCipher(ctx, cipher); err != nil {
		return fmt.Errorf("upsert cipher %s: %w", notification.ID, err)
	}
	return nil
}

// cipherVisible reports whether any currently-visible (read-write)
// collection intersects the notification's collection set.
func (n *notificationService) cipherVisible(ctx context.Context, userID string, collectionIDs []string) (bool, error) {
	collections, err := n.storages.Vault.ListCollections(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("list collections: %w", err)
	}

	notified := make(map[string]struct{}, len(collectionIDs))
	for _, id := range collectionIDs {
		notified[id] = struct{}{}
	}

	for _, collection := range collections {
		if collection.ReadOnly {
			continue
		}
		if _, ok := notified[collection.ID]; ok {
			return true, nil
		}
	}

	return false, nil
}

// ApplyFolderNotification implements [NotificationService].
func (n *notificationService) ApplyFolderNotification(ctx context.Context, notification models.SyncNotification) error {
	match, err := n.forActiveUser(ctx, notification)
	if err != nil {
		return err
	}
	if !match {
		return nil
	}
	userID := notification.UserID

	if notification.Action == models.NotificationDelete {
		return n.deleteFolderLocally(ctx, userID, notification.ID)
	}

	local, err := n.storages.Vault.GetFolder(ctx, userID, notification.ID)
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		return fmt.Errorf("read local folder %s: %w", notification.ID, err)
	default:
		if notification.RevisionDate != nil && !local.RevisionDate.Before(*notification.RevisionDate) {
			return nil
		}
	}

	folder, err := n.adapter.FetchFolder(ctx, notification.ID)
	if errors.Is(err, adapter.ErrNotFound) {
		return n.deleteFolderLocally(ctx, userID, notification.ID)
	}
	if err != nil {
		return fmt.Errorf("fetch folder %s: %w", notification.ID, err)
	}

	folder.UserID = userID
	if err := n.storages.Vault.UpsertFolder(ctx, folder); err != nil {
		return fmt.Errorf("upsert folder %s: %w", notification.ID, err)
	}
	return nil
}

// deleteFolderLocally removes the folder and detaches it from any ciphers
// that pointed to it, all without server round-trips.
func (n *notificationService) deleteFolderLocally(ctx context.Context, userID, folderID string) error {
	if err := n.storages.Vault.DeleteFolder(ctx, userID, folderID); err != nil {
		return fmt.Errorf("delete folder %s: %w", folderID, err)
	}
	if err := n.storages.Vault.ClearFolderReferences(ctx, userID, folderID); err != nil {
		return fmt.Errorf("clear folder references %s: %w", folderID, err)
	}
	return nil
}

// ApplySendNotification implements [NotificationService].
func (n *notificationService) ApplySendNotification(ctx context.Context, notification models.SyncNotification) error {
	match, err := n.forActiveUser(ctx, notification)
	if err != nil {
		return err
	}
	if !match {
		return nil
	}
	userID := notification.UserID

	if notification.Action == models.NotificationDelete {
		return n.storages.Vault.DeleteSend(ctx, userID, notification.ID)
	}

	local, err := n.storages.Vault.GetSend(ctx, userID, notification.ID)
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		return fmt.Errorf("read local send %s: %w", notification.ID, err)
	default:
		if notification.RevisionDate != nil && !local.RevisionDate.Before(*notification.RevisionDate) {
			return nil
		}
	}

	send, err := n.adapter.FetchSend(ctx, notification.ID)
	if errors.Is(err, adapter.ErrNotFound) {
		return n.storages.Vault.DeleteSend(ctx, userID, notification.ID)
	}
	if err != nil {
		return fmt.Errorf("fetch send %s: %w", notification.ID, err)
	}

	send.UserID = userID
	if err := n.storages.Vault.UpsertSend(ctx, send); err != nil {
		return fmt.Errorf("upsert send %s: %w", notification.ID, err)
	}
	return nil
}
