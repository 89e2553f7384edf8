package themesync

import (
	"fmt"

	"github.com/hellenic-development/figma-theme-sync/pkg/cssvar"
	"github.com/hellenic-development/figma-theme-sync/pkg/figma"
	"github.com/hellenic-development/figma-theme-sync/pkg/palette"
)

// Options configures a sync run.
type Options struct {
	AccessToken  string
	FileURL      string   // Figma file URL
	NodeIDs      []string // empty = read node IDs from the URL, then whole file
	SnapshotPath string   // local snapshot; takes precedence over FileURL

	ContentGroup string // name of the content container, default "Content"
	PaletteGroup string // name of the per-group palette child, default "Palette"

	Overrides map[string]string // token name -> CSS color string
	Hex       bool              // also emit <name>-hex companion variables

	Sink   cssvar.Sink // nil = in-memory only (dry run)
	Logger Logger      // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the sync output.
type Result struct {
	Tokens      []palette.Token // resolved tokens, in input order
	FileName    string          // Figma file name
	CSS         string          // rendered :root block for this run's tokens
	GroupCounts map[string]int  // swatches contributed per content group
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

// flusher is implemented by sinks that buffer writes, like the stylesheet.
type flusher interface {
	Flush() error
}

// Run executes the theme sync pipeline: load or fetch the document tree,
// collect palette swatches, resolve color tokens, and write them through
// the sink. The traversal is a single synchronous pass; re-running with
// the same tree overwrites the same variables (last-write-wins).
func Run(opts Options) (*Result, error) {
	swatches, fileName, err := collect(&opts)
	if err != nil {
		return nil, err
	}
	if len(swatches) == 0 {
		opts.logWarn("No palette swatches found")
	} else {
		opts.logInfo("Found %d swatch(es)", len(swatches))
	}

	tokens, err := palette.Resolve(swatches, opts.Overrides)
	if err != nil {
		return nil, err
	}

	groupCounts := make(map[string]int)
	for _, sw := range swatches {
		groupCounts[sw.Group]++
	}

	sink := opts.Sink
	if sink == nil {
		sink = cssvar.NewMemory()
	}

	written := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		if tok.Value == "" {
			continue
		}
		if err := sink.SetVariable(tok.Name, tok.Value); err != nil {
			return nil, fmt.Errorf("set variable --%s: %w", tok.Name, err)
		}
		written[tok.Name] = tok.Value

		if opts.Hex && tok.Hex != "" {
			hexName := tok.Name + "-hex"
			if err := sink.SetVariable(hexName, tok.Hex); err != nil {
				return nil, fmt.Errorf("set variable --%s: %w", hexName, err)
			}
			written[hexName] = tok.Hex
		}
	}
	opts.logInfo("Applied %d variable(s)", len(written))

	if f, ok := sink.(flusher); ok {
		if err := f.Flush(); err != nil {
			return nil, err
		}
	}

	return &Result{
		Tokens:      tokens,
		FileName:    fileName,
		CSS:         cssvar.Render(written),
		GroupCounts: groupCounts,
	}, nil
}

// collect obtains the document tree from the configured source and walks
// it for swatches. Snapshot paths win over URLs; node-scoped fetches treat
// each fetched node as the content container itself.
func collect(opts *Options) ([]palette.Swatch, string, error) {
	if opts.SnapshotPath != "" {
		opts.logInfo("Loading snapshot %s...", opts.SnapshotPath)
		fileResp, err := figma.LoadSnapshot(opts.SnapshotPath)
		if err != nil {
			return nil, "", err
		}
		opts.logInfo("File: %s", fileResp.Name)
		return palette.CollectSwatches(&fileResp.Document, opts.ContentGroup, opts.PaletteGroup), fileResp.Name, nil
	}

	if opts.FileURL == "" {
		return nil, "", fmt.Errorf("either a Figma file URL or a snapshot path is required")
	}
	if opts.AccessToken == "" {
		return nil, "", fmt.Errorf("a Figma access token is required to fetch %s", opts.FileURL)
	}

	fileKey, err := figma.ExtractFileKey(opts.FileURL)
	if err != nil {
		return nil, "", fmt.Errorf("extract file key: %w", err)
	}
	opts.logInfo("File key: %s", fileKey)

	targetNodeIDs := opts.NodeIDs
	if len(targetNodeIDs) == 0 {
		targetNodeIDs = figma.ExtractNodeIDs(opts.FileURL)
	}

	client := figma.NewClient(opts.AccessToken)

	if len(targetNodeIDs) > 0 {
		opts.logInfo("Fetching %d node(s) from Figma...", len(targetNodeIDs))
		nodesResp, err := client.GetFileNodes(fileKey, targetNodeIDs)
		if err != nil {
			return nil, "", fmt.Errorf("fetch nodes: %w", err)
		}
		opts.logInfo("File: %s", nodesResp.Name)

		var swatches []palette.Swatch
		for _, id := range targetNodeIDs {
			nodeData, ok := nodesResp.Nodes[id]
			if !ok {
				opts.logWarn("Node %s not found in file", id)
				continue
			}
			swatches = append(swatches, palette.CollectFromContent(&nodeData.Document, opts.PaletteGroup)...)
		}
		return swatches, nodesResp.Name, nil
	}

	opts.logInfo("Fetching file from Figma...")
	fileResp, err := client.GetFile(fileKey)
	if err != nil {
		return nil, "", fmt.Errorf("fetch file: %w", err)
	}
	opts.logInfo("File: %s", fileResp.Name)

	return palette.CollectSwatches(&fileResp.Document, opts.ContentGroup, opts.PaletteGroup), fileResp.Name, nil
}

// Fetch retrieves the raw file response for a URL, for saving snapshots.
func Fetch(accessToken, fileURL string) (*figma.FileResponse, error) {
	fileKey, err := figma.ExtractFileKey(fileURL)
	if err != nil {
		return nil, fmt.Errorf("extract file key: %w", err)
	}
	return figma.NewClient(accessToken).GetFile(fileKey)
}
