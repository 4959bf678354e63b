// Package community validates social feed actions. Posts, likes and comments
// are accepted but not stored anywhere yet.
package community

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/messages"
)

// MaxImageBytes is the largest image a post may carry.
const MaxImageBytes = 5 * 1024 * 1024

var (
	ErrEmptyPost     = errors.New(messages.AddTextOrImage)
	ErrImageTooLarge = errors.New(messages.ImageTooLarge)
	ErrEmptyComment  = errors.New(messages.EnterComment)
	ErrDisabled      = errors.New("community features are disabled")
)

// Image is an attachment reference; only its size is checked.
type Image struct {
	Name string
	Size int64
}

// Comment is a reaction on a post.
type Comment struct {
	ID        string
	PostID    string
	Username  string
	Content   string
	Timestamp time.Time
}

// Post is a feed message.
type Post struct {
	ID        string
	Username  string
	Content   string
	Image     *Image
	Timestamp time.Time
}

// Feed accepts feed actions for one user.
type Feed struct {
	Username string
	Enabled  bool
	Now      func() time.Time
}

func (f Feed) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}

// CheckImage rejects images over MaxImageBytes.
func CheckImage(img Image) error {
	if img.Size > MaxImageBytes {
		return ErrImageTooLarge
	}
	return nil
}

// Post validates a new post. It needs text or an image.
func (f Feed) Post(text string, img *Image) (Post, error) {
	if !f.Enabled {
		return Post{}, ErrDisabled
	}
	if strings.TrimSpace(text) == "" && img == nil {
		return Post{}, ErrEmptyPost
	}
	if img != nil {
		if err := CheckImage(*img); err != nil {
			return Post{}, err
		}
	}
	// TODO: persist posts once a feed backend exists.
	return Post{
		ID:        uuid.NewString(),
		Username:  f.Username,
		Content:   text,
		Image:     img,
		Timestamp: f.now(),
	}, nil
}

// Like accepts a like on a post.
func (f Feed) Like(postID string) error {
	if !f.Enabled {
		return ErrDisabled
	}
	if _, err := uuid.Parse(postID); err != nil {
		return err
	}
	return nil
}

// Comment validates a comment on a post.
func (f Feed) Comment(postID, text string) (Comment, error) {
	if !f.Enabled {
		return Comment{}, ErrDisabled
	}
	if strings.TrimSpace(text) == "" {
		return Comment{}, ErrEmptyComment
	}
	if _, err := uuid.Parse(postID); err != nil {
		return Comment{}, err
	}
	return Comment{
		ID:        uuid.NewString(),
		PostID:    postID,
		Username:  f.Username,
		Content:   text,
		Timestamp: f.now(),
	}, nil
}
