package models

import "time"

// NotificationKind is the entity kind of a push notification.
type NotificationKind int

const (
	NotificationKindCipher NotificationKind = iota
	NotificationKindFolder
	NotificationKindSend
)

// NotificationAction is the mutation carried by a push notification.
type NotificationAction int

const (
	NotificationUpsert NotificationAction = iota
	NotificationDelete
)

// SyncNotification is a server-pushed, single-entity change event applied
// incrementally between full syncs. RevisionDate is absent for deletes.
// CollectionIDs, when present on a cipher upsert, lists the collections the
// cipher now belongs to.
type SyncNotification struct {
	UserID        string             `json:"userId"`
	ID            string             `json:"id"`
	RevisionDate  *time.Time         `json:"revisionDate,omitempty"`
	CollectionIDs []string           `json:"collectionIds,omitempty"`
	Kind          NotificationKind   `json:"-"`
	Action        NotificationAction `json:"-"`
}
