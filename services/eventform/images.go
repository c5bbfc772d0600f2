package eventform

import (
	"errors"
	"fmt"
)

const (
	// MaxImages caps existing plus pending images per event.
	MaxImages = 5
	// MaxImageBytes is the per-file size limit (5MB).
	MaxImageBytes = 5 << 20
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Each rejection has its own user-visible message.
var (
	ErrTooManyImages        = errors.New("an event can have at most 5 images")
	ErrUnsupportedImageType = errors.New("only jpeg, png and webp images are allowed")
	ErrImageTooLarge        = errors.New("image exceeds the 5MB size limit")
)

// ExistingImage is an image already persisted server-side, identified by a
// stable id so deletion survives list reindexing.
type ExistingImage struct {
	ID       string `json:"id"`
	Filename string `json:"filename,omitempty"`
}

// PendingImage is a locally selected file awaiting upload on submit.
// Release frees the preview/temp resource backing it, if any.
type PendingImage struct {
	Filename    string
	ContentType string
	Size        int64
	Release     func()
}

// ImageSet tracks an event draft's images across the create and edit flows:
// persisted images, new files to upload, and persisted images marked for
// server-side deletion.
type ImageSet struct {
	Existing []ExistingImage
	Pending  []PendingImage
	Deleted  []string
}

// Count is the combined number of images the event would end up with.
func (set *ImageSet) Count() int {
	return len(set.Existing) + len(set.Pending)
}

// Validate checks one candidate file against the intake rules without
// touching the set. The over-cap check counts existing plus pending.
func (set *ImageSet) Validate(contentType string, size int64) error {
	if set.Count()+1 > MaxImages {
		return ErrTooManyImages
	}
	if !allowedImageTypes[contentType] {
		return fmt.Errorf("%w: got %q", ErrUnsupportedImageType, contentType)
	}
	if size > MaxImageBytes {
		return ErrImageTooLarge
	}
	return nil
}

// AddPending appends a new file after validation. A rejected file leaves
// the set untouched.
func (set *ImageSet) AddPending(img PendingImage) error {
	if err := set.Validate(img.ContentType, img.Size); err != nil {
		return err
	}
	set.Pending = append(set.Pending, img)
	return nil
}

// RemovePending drops a not-yet-uploaded file by index, releasing its
// preview resource so nothing dangles for the life of the form.
func (set *ImageSet) RemovePending(index int) error {
	if index < 0 || index >= len(set.Pending) {
		return fmt.Errorf("pending image index %d out of range", index)
	}
	if release := set.Pending[index].Release; release != nil {
		release()
	}
	set.Pending = append(set.Pending[:index], set.Pending[index+1:]...)
	return nil
}

// RemoveExisting moves a persisted image into the to-delete list, tracked
// by its stable identifier rather than its position. Returns false when no
// existing image has that id.
func (set *ImageSet) RemoveExisting(id string) bool {
	for i, img := range set.Existing {
		if img.ID == id {
			set.Existing = append(set.Existing[:i], set.Existing[i+1:]...)
			set.Deleted = append(set.Deleted, id)
			return true
		}
	}
	return false
}

// Dispose releases every pending preview resource and empties the set.
func (set *ImageSet) Dispose() {
	for _, img := range set.Pending {
		if img.Release != nil {
			img.Release()
		}
	}
	set.Pending = nil
}
