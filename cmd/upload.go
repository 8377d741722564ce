package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/telegraph/telegraph"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>...",
	Short: "Upload images or videos",
	Long: `Upload local files to Telegraph. The returned src paths can be used in img
and video nodes, e.g. {"tag":"img","attrs":{"src":"/file/abc.jpg"}}.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpload,
}

// uploadResult pairs an uploaded file with its location
type uploadResult struct {
	File string `json:"file"`
	Src  string `json:"src"`
	URL  string `json:"url"`
}

func runUpload(cmd *cobra.Command, args []string) error {
	if dryRun {
		files := make([]map[string]string, len(args))
		for i, path := range args {
			files[i] = map[string]string{"file": path, "content_type": telegraph.MediaType(path)}
		}
		return printOutput(cmd.OutOrStdout(), map[string]any{"method": "upload", "files": files})
	}

	logger.Info().Strs("files", args).Msg("Uploading media")

	media, err := client.Upload(cmd.Context(), args...)
	if err != nil {
		return err
	}

	results := make([]uploadResult, 0, len(media))
	for i, m := range media {
		r := uploadResult{Src: m.Src, URL: mediaURL(cfg.API.UploadURL, m.Src)}
		if i < len(args) {
			r.File = args[i]
		}
		results = append(results, r)
	}
	return printOutput(cmd.OutOrStdout(), results)
}

// mediaURL resolves src against the host of the upload endpoint
func mediaURL(uploadURL, src string) string {
	base := strings.TrimSuffix(uploadURL, "/upload")
	return base + src
}
