package service

import (
	"context"
	"fmt"
	"strings"

	"post_archiver/internal/domain"
)

// bodyRef locates the post a body belongs to, for attachment paths.
type bodyRef struct {
	postID    string
	creatorID string
	service   string
}

// normalize renders a post body into a single markup string. Flat text/html
// comes first, verbatim; block fragments follow in strict source order.
// Image and file blocks fetch their assets as a side effect of rendering,
// so the sequential walk doubles as a content-fidelity guarantee: fragments
// can never land out of order.
func (s *ArchiveService) normalize(ctx context.Context, body *domain.Body, sessionKey string, ref bodyRef) (string, error) {
	flat := body.Text
	if flat == "" {
		flat = body.HTML
	}
	flat = decodeEscapes(flat)

	var frags strings.Builder
	for _, block := range body.Blocks {
		switch block.Type {
		case domain.BlockParagraph:
			if block.Text != "" {
				frags.WriteString(decodeEscapes(block.Text))
				frags.WriteString("<br>")
			}

		case domain.BlockImage:
			info, ok := body.ImageMap[block.ImageID]
			if !ok {
				s.logger.Warn("image block without map entry", "post_id", ref.postID, "image_id", block.ImageID)
				continue
			}
			destDir := "/inline/" + ref.service
			name, err := s.fetcher.Fetch(ctx, decodeEscapes(info.URL), destDir, info.FileName(), sessionKey)
			if err != nil {
				return "", fmt.Errorf("fetch inline image %s: %w", info.ID, err)
			}
			fmt.Fprintf(&frags, `<img src="%s/%s"><br>`, destDir, name)

		case domain.BlockFile:
			info, ok := body.FileMap[block.FileID]
			if !ok {
				s.logger.Warn("file block without map entry", "post_id", ref.postID, "file_id", block.FileID)
				continue
			}
			destDir := fmt.Sprintf("/attachments/%s/%s/%s", ref.service, ref.creatorID, ref.postID)
			name, err := s.fetcher.Fetch(ctx, decodeEscapes(info.URL), destDir, decodeEscapes(info.FileName()), sessionKey)
			if err != nil {
				return "", fmt.Errorf("fetch file %s: %w", info.ID, err)
			}
			fmt.Fprintf(&frags, `<a href="%s/%s" target="_blank">Download %s</a><br>`, destDir, name, name)

		case domain.BlockEmbed:
			info, ok := body.EmbedMap[block.EmbedID]
			if !ok {
				s.logger.Warn("embed block without map entry", "post_id", ref.postID, "embed_id", block.EmbedID)
				continue
			}
			frags.WriteString(renderEmbed(info))
		}
	}

	return flat + "<br>" + frags.String(), nil
}

// renderEmbed maps a provider to its link fragment. The provider set is
// closed; anything unrecognized contributes nothing.
func renderEmbed(e domain.EmbedInfo) string {
	var href, label string
	switch e.Provider {
	case domain.ProviderTwitter:
		href, label = "https://twitter.com/_/status/"+e.ContentID, "Twitter"
	case domain.ProviderYouTube:
		href, label = "https://www.youtube.com/watch?v="+e.ContentID, "YouTube"
	case domain.ProviderFanbox:
		href, label = "https://www.pixiv.net/fanbox/"+e.ContentID, "Fanbox"
	case domain.ProviderVimeo:
		href, label = "https://vimeo.com/"+e.ContentID, "Vimeo"
	case domain.ProviderGoogleForms:
		href, label = "https://docs.google.com/forms/d/e/"+e.ContentID+"/viewform?usp=sf_link", "Google Forms"
	case domain.ProviderSoundcloud:
		href, label = "https://soundcloud.com/"+e.ContentID, "Soundcloud"
	default:
		return ""
	}
	return fmt.Sprintf(`<a href="%s" target="_blank"><div class="embed-view"><h3 class="subtitle">(%s)</h3></div></a><br>`, href, label)
}
