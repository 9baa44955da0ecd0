package cli

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/linkfo/internal/filex"
	"github.com/dmitrijs2005/linkfo/internal/netx"
	smodels "github.com/dmitrijs2005/linkfo/internal/server/models"
)

// EditProfile prompts for a new name and bio; blank answers keep the
// current value.
func (a *App) EditProfile(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Name (empty to keep)", a.out)
	if err != nil {
		return err
	}
	bio, err := getMultiline(a.reader, "Bio (empty to keep)", a.out)
	if err != nil {
		return err
	}

	u, err := a.api.UpdateProfile(ctx, smodels.ProfilePatch{Name: optional(name), Bio: optional(bio)})
	if err != nil {
		return err
	}
	a.user = u
	fmt.Fprintln(a.out, "Profile updated")
	return nil
}

// Stats prints profile views, total clicks, chat activity and the most
// clicked links.
func (a *App) Stats(ctx context.Context) error {
	st, err := a.api.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Profile views:     %d\n", st.ProfileViews)
	fmt.Fprintf(a.out, "Link clicks:       %d\n", st.LinkClicks)
	fmt.Fprintf(a.out, "Chat interactions: %d\n", st.ChatInteractions)
	if len(st.TopLinks) > 0 {
		fmt.Fprintln(a.out, "Top links:")
		for i, l := range st.TopLinks {
			fmt.Fprintf(a.out, "  %d. %s (%d clicks)\n", i+1, l.Title, l.Clicks)
		}
	}
	return nil
}

// uploadAvatar is a test seam for the presigned PUT.
var uploadAvatar = netx.UploadToPresignedURL

const maxAvatarBytes = 5 << 20

// Avatar requests a presigned upload URL. The argument is either a MIME
// type or an image file; for a file the type follows its extension and
// the file is uploaded right away.
func (a *App) Avatar(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("avatar <image/png|file.png>")
	}

	contentType := args[0]
	if ext := filepath.Ext(contentType); ext != "" {
		if t := mime.TypeByExtension(ext); t != "" {
			contentType = t
		}
	}

	var data []byte
	if fi, err := os.Stat(args[0]); err == nil && fi.Mode().IsRegular() {
		if data, err = filex.ReadFileLimit(args[0], maxAvatarBytes); err != nil {
			return err
		}
	}

	up, err := a.api.RequestAvatarUpload(ctx, contentType)
	if err != nil {
		return err
	}

	if data != nil {
		if err := uploadAvatar(ctx, up.UploadURL, contentType, data); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Avatar uploaded: %s\n", up.AvatarURL)
		return nil
	}

	fmt.Fprintf(a.out, "Upload with: curl -X PUT -H 'Content-Type: %s' --data-binary @<file> '%s'\n", contentType, up.UploadURL)
	fmt.Fprintf(a.out, "Avatar URL:  %s\n", up.AvatarURL)
	return nil
}
