package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonboulle/clockwork"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/community"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/config"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/messages"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/session"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/settings"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var communityCmd = GroupCommand{
	Use:   "community",
	Short: "Post, like and comment in the community feed",
	Subcommands: []*cobra.Command{
		communityPostCmd,
		communityLikeCmd,
		communityCommentCmd,
	},
}.Build()

var communityPostCmd = LeafCommand{
	Use:   "post [text]",
	Short: "Place a post with text, an image or both",
	Args:  cobra.MaximumNArgs(1),
	StrFlags: []StringFlag{
		{Name: "image", Shorthand: "i", Usage: "image file to attach (max 5MB)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := config.HomeDir()
		if err != nil {
			return err
		}
		imagePath, _ := cmd.Flags().GetString("image")
		var text string
		if len(args) > 0 {
			text = args[0]
		}
		return runCommunityPost(cmd, homeDir, text, imagePath, clockwork.NewRealClock())
	},
}.Build()

var communityLikeCmd = LeafCommand{
	Use:   "like <post>",
	Short: "Like a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := config.HomeDir()
		if err != nil {
			return err
		}
		return runCommunityLike(cmd, homeDir, args[0], clockwork.NewRealClock())
	},
}.Build()

var communityCommentCmd = LeafCommand{
	Use:   "comment <post> [text]",
	Short: "Comment on a post",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := config.HomeDir()
		if err != nil {
			return err
		}
		var text string
		if len(args) > 1 {
			text = args[1]
		}
		return runCommunityComment(cmd, homeDir, args[0], text, NewPromptKit(), clockwork.NewRealClock())
	},
}.Build()

// loadFeed builds the feed for the stored user, honouring the community flag.
func loadFeed(homeDir string, clock clockwork.Clock) (community.Feed, error) {
	enabled, err := settings.CommunityEnabled(settings.NewFileStore(homeDir, logger))
	if err != nil {
		return community.Feed{}, err
	}
	u, err := session.NewFileStore(homeDir, logger).ReadUser()
	if err != nil {
		return community.Feed{}, err
	}
	return community.Feed{Username: u.Username, Enabled: enabled, Now: clock.Now}, nil
}

func runCommunityPost(cmd *cobra.Command, homeDir, text, imagePath string, clock clockwork.Clock) error {
	feed, err := loadFeed(homeDir, clock)
	if err != nil {
		return err
	}

	var img *community.Image
	if imagePath != "" {
		info, err := os.Stat(imagePath)
		if err != nil {
			return fmt.Errorf("reading image: %w", err)
		}
		img = &community.Image{Name: filepath.Base(imagePath), Size: info.Size()}
	}

	post, err := feed.Post(text, img)
	if err != nil {
		return err
	}
	logger.Debug("post accepted", zap.String("id", post.ID))

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Success(messages.PostPlaced), Silent("("+post.ID+")"))
	return nil
}

func runCommunityLike(cmd *cobra.Command, homeDir, postID string, clock clockwork.Clock) error {
	feed, err := loadFeed(homeDir, clock)
	if err != nil {
		return err
	}
	if err := feed.Like(postID); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), Success(messages.PostLiked))
	return nil
}

func runCommunityComment(cmd *cobra.Command, homeDir, postID, text string, pk PromptKit, clock clockwork.Clock) error {
	feed, err := loadFeed(homeDir, clock)
	if err != nil {
		return err
	}

	if text == "" && feed.Enabled && pk.PromptWithDefault != nil {
		text, err = pk.PromptWithDefault("Reactie", "")
		if err != nil {
			return err
		}
	}

	c, err := feed.Comment(postID, text)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Success(messages.CommentPlaced), Silent("("+c.ID+")"))
	return nil
}
