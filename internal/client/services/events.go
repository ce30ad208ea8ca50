package services

import "time"

// Event types emitted by mutating views. The coordinator routes them to
// sibling refreshes; no child holds a reference into another child.
const (
	EventUploadSuccess = "upload_success"
	EventCommentChange = "comment_change"
	EventPhotoChange   = "photo_change"
	EventProfileUpdate = "profile_update"
)

// Event is a typed change notification. UserID is the identity the mutation
// belongs to (owner, author, or edited profile); PhotoID is set for photo and
// comment mutations.
type Event struct {
	Type       string
	UserID     string
	PhotoID    string
	OccurredAt time.Time
}

// Notify delivers an event to whoever composes the services. A nil Notify is
// valid and means nobody is listening.
type Notify func(Event)

func (n Notify) emit(e Event) {
	if n != nil {
		n(e)
	}
}

// NewUploadSuccessEvent reports a completed photo upload by ownerID.
func NewUploadSuccessEvent(ownerID, photoID string) Event {
	return Event{Type: EventUploadSuccess, UserID: ownerID, PhotoID: photoID, OccurredAt: time.Now()}
}

// NewCommentChangeEvent reports a comment added by authorID on photoID.
func NewCommentChangeEvent(authorID, photoID string) Event {
	return Event{Type: EventCommentChange, UserID: authorID, PhotoID: photoID, OccurredAt: time.Now()}
}

// NewPhotoChangeEvent reports a photo removed from ownerID's collection.
func NewPhotoChangeEvent(ownerID, photoID string) Event {
	return Event{Type: EventPhotoChange, UserID: ownerID, PhotoID: photoID, OccurredAt: time.Now()}
}

// NewProfileUpdateEvent reports an edit of userID's profile fields.
func NewProfileUpdateEvent(userID string) Event {
	return Event{Type: EventProfileUpdate, UserID: userID, OccurredAt: time.Now()}
}
